package scaffold

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/modseven/installer/internal/logging"
)

// Rewriter replaces Token with the application name in Files, given relative
// to the application root with forward slashes.
type Rewriter struct {
	Token string
	Files []string
}

// Rewrite substitutes every occurrence of the token in each file and writes
// the result back in place. A listed file that cannot be read, including one
// that is missing, fails the rewrite.
func (r *Rewriter) Rewrite(appName, root string) error {
	if r.Token == "" {
		return errors.New("placeholder token is empty")
	}
	token := []byte(r.Token)

	for _, rel := range r.Files {
		file := filepath.Join(root, filepath.FromSlash(rel))

		info, err := os.Stat(file)
		if err != nil {
			return &FileRewriteError{File: rel, Err: err}
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return &FileRewriteError{File: rel, Err: err}
		}

		n := bytes.Count(data, token)
		replaced := bytes.ReplaceAll(data, token, []byte(appName))
		if err := os.WriteFile(file, replaced, info.Mode().Perm()); err != nil {
			return &FileRewriteError{File: rel, Err: err}
		}
		logging.Debug("rewrite", "file", rel, "replacements", n)
	}
	return nil
}
