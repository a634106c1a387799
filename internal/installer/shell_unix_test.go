//go:build !windows

package installer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// A grandchild that inherits stdout keeps the pipe open, so Run only returns
// promptly when cancellation reaches the whole process group.
func TestShellRunner_CancelKillsProcessGroup(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := NewShellRunner(&stdout, &stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	dir := t.TempDir()
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx, dir, "sleep 30 & sleep 30; echo finished")
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancellation; child processes survived")
	}
	if bytes.Contains(stdout.Bytes(), []byte("finished")) {
		t.Error("command ran to completion despite cancellation")
	}
}

func TestCreateCommand_OwnProcessGroup(t *testing.T) {
	r := NewShellRunner(nil, nil)
	cmd := r.createCommand(context.Background(), "true")

	if cmd.SysProcAttr == nil || !cmd.SysProcAttr.Setpgid {
		t.Error("child does not get its own process group")
	}
	if cmd.Cancel == nil {
		t.Error("cancellation does not target the process group")
	}
}

// The vendored line must survive a working directory with spaces when it
// actually goes through the shell.
func TestShellRunner_VendoredPathWithSpaces(t *testing.T) {
	cwd := filepath.Join(t.TempDir(), "my projects")
	if err := os.Mkdir(cwd, 0o755); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(cwd, "composer.phar")
	if err := os.WriteFile(script, []byte("echo \"ran $1\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Resolve(cwd, Settings{Vendored: "composer.phar", PHP: "/bin/sh", Args: "install"})
	var stdout, stderr bytes.Buffer
	code, err := NewShellRunner(&stdout, &stderr).Run(context.Background(), cwd, c.Line(Flags{}))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "ran install" {
		t.Errorf("stdout = %q, want %q", got, "ran install")
	}
}
