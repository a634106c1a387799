package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestPrepare_SetsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "application", "cache", "nested", ".gitkeep"), "")
	writeTestFile(t, filepath.Join(root, "application", "logs", ".gitkeep"), "")

	p := NewPreparer([]string{"application/cache", "application/logs"}, 0o700)
	r := p.Prepare(root)
	if r.Outcome != Success || r.Err != nil {
		t.Fatalf("Prepare() = %+v, want success", r)
	}

	for _, dir := range []string{"application/cache", "application/cache/nested", "application/logs"} {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o700 {
			t.Errorf("%s mode = %v, want 0700", dir, info.Mode().Perm())
		}
	}
}

func TestPrepare_FailureIsWarning(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "application", "logs", ".gitkeep"), "")

	calls := 0
	p := &Preparer{
		Dirs: []string{"application/cache", "application/logs"},
		Mode: 0o755,
		chmod: func(dir string, _ os.FileMode) error {
			calls++
			if filepath.Base(dir) == "cache" {
				return errors.New("operation not permitted")
			}
			return nil
		},
	}

	r := p.Prepare(root)
	if r.Outcome != Warning {
		t.Fatalf("Outcome = %v, want warning", r.Outcome)
	}
	if calls != 2 {
		t.Errorf("chmod called %d times, want every directory attempted", calls)
	}

	var w *WritableDirectoryWarning
	if !errors.As(r.Err, &w) {
		t.Fatalf("Err = %v, want *WritableDirectoryWarning", r.Err)
	}
	if got := w.Dirs(); len(got) != 1 || got[0] != "application/cache" {
		t.Errorf("failed dirs = %v, want [application/cache]", got)
	}
}

func TestPrepare_MissingDirectory(t *testing.T) {
	p := NewPreparer([]string{"application/cache"}, 0o755)

	r := p.Prepare(t.TempDir())
	if r.Outcome != Warning {
		t.Fatalf("Outcome = %v, want warning", r.Outcome)
	}
}

func TestWritableHint(t *testing.T) {
	w := &WritableDirectoryWarning{Failures: []DirFailure{
		{Dir: "application/logs", Err: errors.New("x")},
		{Dir: "application/cache", Err: errors.New("y")},
	}}
	got := writableHint(w, nil)
	want := `You should verify that the "application/logs" and "application/cache" directories are writable.`
	if got != want {
		t.Errorf("hint = %q, want %q", got, want)
	}

	single := writableHint(&WritableDirectoryWarning{Failures: []DirFailure{{Dir: "tmp"}}}, nil)
	if single != `You should verify that the "tmp" directory is writable.` {
		t.Errorf("single hint = %q", single)
	}
}
