// Package proc executes real commands and captures their results for the
// recorder. A non-zero exit code is captured as data, not returned as an
// error; only failures to start the process at all (tool not found,
// permission denied) surface as errors.
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/opencode-ai/cmdmock/internal/models"
)

// ErrEmptyCommand indicates an empty argument list was supplied.
var ErrEmptyCommand = errors.New("command is required")

// Executor runs a command and captures its result.
type Executor interface {
	Run(ctx context.Context, argv []string) (*models.Result, error)
}

// Local runs commands directly via os/exec with separate stdout and stderr
// capture.
type Local struct{}

// Run executes argv and returns its captured output and exit code.
func (Local) Run(ctx context.Context, argv []string) (*models.Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", argv[0], err)
		}
		exitCode = exitErr.ExitCode()
	}

	return &models.Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}, nil
}
