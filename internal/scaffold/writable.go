package scaffold

import (
	"os"
	"path/filepath"

	"github.com/modseven/installer/internal/logging"
	"github.com/modseven/installer/internal/platform"
)

// Preparer applies Mode recursively to Dirs below the application root.
type Preparer struct {
	Dirs []string
	Mode os.FileMode

	// chmod is swapped in tests.
	chmod func(root string, mode os.FileMode) error
}

// NewPreparer returns a Preparer backed by platform.ChmodRecursive.
func NewPreparer(dirs []string, mode os.FileMode) *Preparer {
	return &Preparer{Dirs: dirs, Mode: mode, chmod: platform.ChmodRecursive}
}

// Prepare never fails the run. Every directory is attempted; failures are
// collected into a *WritableDirectoryWarning with a Warning outcome.
func (p *Preparer) Prepare(root string) StepResult {
	chmod := p.chmod
	if chmod == nil {
		chmod = platform.ChmodRecursive
	}

	var failures []DirFailure
	for _, rel := range p.Dirs {
		dir := filepath.Join(root, filepath.FromSlash(rel))
		if err := chmod(dir, p.Mode); err != nil {
			logging.Debug("chmod failed", "dir", rel, "error", err)
			failures = append(failures, DirFailure{Dir: rel, Err: err})
			continue
		}
		logging.Debug("chmod", "dir", rel, "mode", p.Mode.String())
	}

	if len(failures) > 0 {
		return warned(&WritableDirectoryWarning{Failures: failures})
	}
	return succeeded()
}
