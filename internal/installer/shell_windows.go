//go:build windows

package installer

import (
	"context"
	"os/exec"

	"golang.org/x/sys/windows"
)

// createCommand wraps line in cmd /C inside a new process group.
func (r *ShellRunner) createCommand(ctx context.Context, line string) *exec.Cmd {
	cmd := r.commandContext(ctx, "cmd", "/C", line)
	cmd.SysProcAttr = &windows.SysProcAttr{CreationFlags: windows.CREATE_NEW_PROCESS_GROUP}
	return cmd
}
