package scaffold

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/modseven/installer/internal/logging"
	"github.com/modseven/installer/internal/manifest"
)

// DefaultExcludes are never copied from a template.
var DefaultExcludes = []string{".git", ".DS_Store", manifest.FileName}

const dirMode os.FileMode = 0o755

// Copier instantiates a template tree on disk.
type Copier struct {
	// Exclude lists entry names skipped at any depth.
	Exclude []string
}

// NewCopier returns a Copier skipping DefaultExcludes.
func NewCopier() *Copier {
	return &Copier{Exclude: DefaultExcludes}
}

// copyJob is one directory still to be instantiated.
type copyJob struct {
	src string // slash path inside the template FS
	dst string // OS path
}

// Copy creates dst and reproduces every directory and regular file of src
// beneath it. Traversal uses an explicit stack; the first failure aborts the
// copy and the remaining jobs are dropped. Files already written stay on
// disk. Symlinks and special files are skipped.
func (c *Copier) Copy(src fs.FS, dst string) error {
	stack := []copyJob{{src: ".", dst: dst}}

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := makeDir(job.dst); err != nil {
			return err
		}

		entries, err := fs.ReadDir(src, job.src)
		if err != nil {
			return &FileCopyError{File: job.src, Err: err}
		}

		for _, entry := range entries {
			if c.excluded(entry.Name()) {
				continue
			}
			srcPath := path.Join(job.src, entry.Name())
			dstPath := filepath.Join(job.dst, entry.Name())

			switch {
			case entry.IsDir():
				stack = append(stack, copyJob{src: srcPath, dst: dstPath})
			case entry.Type().IsRegular():
				if err := copyFile(src, srcPath, dstPath); err != nil {
					return &FileCopyError{File: srcPath, Err: err}
				}
			default:
				logging.Debug("skipping non-regular template entry", "path", srcPath)
			}
		}
	}
	return nil
}

func (c *Copier) excluded(name string) bool {
	for _, e := range c.Exclude {
		if e == name {
			return true
		}
	}
	return false
}

// makeDir creates dir, tolerating an existing directory.
func makeDir(dir string) error {
	err := os.Mkdir(dir, dirMode)
	if err == nil {
		logging.Debug("mkdir", "path", dir)
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return nil
		}
	}
	return &DirectoryCreationError{Path: dir, Err: err}
}

// copyFile copies name from fsys byte for byte. The owner write bit is always
// set so placeholder files can be rewritten in place.
func copyFile(fsys fs.FS, name, dst string) error {
	in, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()|0o200)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	logging.Debug("copy", "file", name, "to", dst)
	return out.Close()
}
