package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/opencode-ai/cmdmock/internal/models"
)

// PTY runs commands under a pseudo-terminal. Some tools change or suppress
// output when stdout is not a TTY; recording those through a PTY preserves
// their interactive behavior. Stdout and stderr share the terminal, so the
// captured result carries the combined output in Stdout and an empty Stderr.
type PTY struct{}

// Run executes argv attached to a fresh pseudo-terminal and returns the
// combined terminal output and exit code.
func (PTY) Run(ctx context.Context, argv []string) (*models.Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("start pty for %s: %w", argv[0], err)
	}
	defer ptyFile.Close()

	var output bytes.Buffer
	// Reading the master side returns an error once the child exits; that is
	// the normal end-of-stream signal, not a capture failure.
	_, _ = io.Copy(&output, ptyFile)

	exitCode := 0
	if waitErr := cmd.Wait(); waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, fmt.Errorf("wait for %s: %w", argv[0], waitErr)
		}
		exitCode = exitErr.ExitCode()
	}

	return &models.Result{
		Stdout:   output.String(),
		ExitCode: exitCode,
	}, nil
}
