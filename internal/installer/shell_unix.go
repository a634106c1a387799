//go:build !windows

package installer

import (
	"context"
	"os/exec"

	"golang.org/x/sys/unix"
)

// createCommand wraps line in /bin/sh -c. The child leads its own process
// group and cancelling ctx kills the whole group, not just the shell.
func (r *ShellRunner) createCommand(ctx context.Context, line string) *exec.Cmd {
	cmd := r.commandContext(ctx, "/bin/sh", "-c", line)
	cmd.SysProcAttr = &unix.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
	return cmd
}
