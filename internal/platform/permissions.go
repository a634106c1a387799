package platform

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// ChmodRecursive applies mode to root and to every file and directory below
// it. Parents are changed before their children. The first failure stops the
// walk; root must exist.
func ChmodRecursive(root string, mode os.FileMode) error {
	if _, err := os.Lstat(root); err != nil {
		return err
	}
	if runtime.GOOS == "windows" {
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Symlinks are left alone; chmod would follow them out of the tree.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if err := os.Chmod(path, mode); err != nil {
			return fmt.Errorf("chmod %s: %w", path, err)
		}
		return nil
	})
}
