package proc

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLocalRunCapturesStdout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Local{}.Run(ctx, []string{"sh", "-c", "echo hello"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stdout != "hello\n" {
		t.Fatalf("expected stdout %q, got %q", "hello\n", res.Stdout)
	}
	if res.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", res.ExitCode)
	}
}

func TestLocalRunCapturesFailureAsData(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Local{}.Run(ctx, []string{"sh", "-c", "echo oops >&2; exit 3"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "oops") {
		t.Fatalf("expected stderr to contain %q, got %q", "oops", res.Stderr)
	}
}

func TestLocalRunToolNotFound(t *testing.T) {
	ctx := context.Background()

	_, err := Local{}.Run(ctx, []string{"definitely-not-a-real-tool-12345"})
	if err == nil {
		t.Fatal("expected error for missing tool")
	}
}

func TestLocalRunEmptyCommand(t *testing.T) {
	_, err := Local{}.Run(context.Background(), nil)
	if !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestPTYRunCapturesOutput(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := PTY{}.Run(ctx, []string{"sh", "-c", "echo from-a-tty"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Stdout, "from-a-tty") {
		t.Fatalf("expected combined output to contain %q, got %q", "from-a-tty", res.Stdout)
	}
	if res.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", res.ExitCode)
	}
}
