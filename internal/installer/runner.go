package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/modseven/installer/internal/logging"
)

// Runner executes a shell command line in dir and reports its exit code.
// A non-zero exit is not an error; err is reserved for failing to run at all.
type Runner interface {
	Run(ctx context.Context, dir, line string) (int, error)
}

// ShellRunner runs command lines through /bin/sh or cmd.exe, streaming the
// child's output to Stdout and Stderr.
type ShellRunner struct {
	Stdout io.Writer
	Stderr io.Writer

	// commandContext allows mocking os/exec in tests.
	commandContext func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewShellRunner creates a ShellRunner. Nil writers default to the process's
// own stdout and stderr.
func NewShellRunner(stdout, stderr io.Writer) *ShellRunner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ShellRunner{
		Stdout:         stdout,
		Stderr:         stderr,
		commandContext: exec.CommandContext,
	}
}

// Run implements Runner.
func (r *ShellRunner) Run(ctx context.Context, dir, line string) (int, error) {
	if r.commandContext == nil {
		r.commandContext = exec.CommandContext
	}

	cmd := r.createCommand(ctx, line)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logging.Debug("exec", "command", line, "dir", dir)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return -1, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("running %s: %w", line, err)
	}
	return 0, nil
}
