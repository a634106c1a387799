package scaffold

import (
	"os"
	"path/filepath"
	"strings"
)

// CheckSource fails with *TemplateOverlapError when dest is templateRoot or
// a directory below it. An empty templateRoot means the template is not on
// disk and always passes.
func CheckSource(dest, templateRoot string) error {
	if templateRoot == "" {
		return nil
	}
	d := resolvePath(dest)
	root := resolvePath(templateRoot)
	rel, err := filepath.Rel(root, d)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return &TemplateOverlapError{Destination: d, Template: root}
	}
	return nil
}

// resolvePath returns the absolute, symlink-free form of path. Missing
// trailing components are joined back onto their nearest existing parent.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	var missing []string
	for cur := abs; ; {
		if resolved, err := filepath.EvalSymlinks(cur); err == nil {
			for i := len(missing) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, missing[i])
			}
			return resolved
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return abs
		}
		missing = append(missing, filepath.Base(cur))
		cur = parent
	}
}

// CheckDestination fails with *DestinationExistsError when dest is occupied
// by a file or directory. It passes unconditionally when force is set or when
// dest is the working directory itself.
func CheckDestination(dest, cwd string, force bool) error {
	if force || samePath(dest, cwd) {
		return nil
	}
	if _, err := os.Lstat(dest); err == nil {
		return &DestinationExistsError{Path: dest}
	}
	return nil
}

// ResolveDestination maps an application name to its root. An empty name or
// "." selects cwd.
func ResolveDestination(cwd, name string) string {
	if name == "" || name == "." {
		return cwd
	}
	return filepath.Join(cwd, name)
}

// AppName returns the substitution value for name. For "." it is the name of
// the working directory.
func AppName(cwd, name string) string {
	if name == "" || name == "." {
		return filepath.Base(filepath.Clean(cwd))
	}
	return filepath.Base(filepath.Clean(name))
}

func samePath(a, b string) bool {
	ca, errA := filepath.Abs(a)
	cb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return ca == cb
}
