package skeleton

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/modseven/installer/internal/logging"
	"github.com/modseven/installer/internal/manifest"
)

//go:embed all:files
var embedded embed.FS

// EmbeddedSource is the Source of the template compiled into the binary.
const EmbeddedSource = "embedded"

// Template is an opened, read-only template tree together with its manifest.
type Template struct {
	FS       fs.FS
	Manifest *manifest.Manifest
	Source   string

	// HasManifest is false when the template carried no skeleton.yaml and
	// manifest.Default() was used instead.
	HasManifest bool

	// Root is the absolute directory FS reads from: the template directory or
	// the extracted archive root. It is empty for the embedded skeleton.
	Root string

	cleanup func() error
}

// Close releases temporary files created for archive templates.
func (t *Template) Close() error {
	if t == nil || t.cleanup == nil {
		return nil
	}
	err := t.cleanup()
	t.cleanup = nil
	return err
}

// Default opens the skeleton compiled into the binary.
func Default() (*Template, error) {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		return nil, fmt.Errorf("opening embedded skeleton: %w", err)
	}
	return newTemplate(sub, EmbeddedSource, nil)
}

// Open resolves source to a template. An empty source selects the embedded
// skeleton; a directory is used in place; a .tar.gz, .tgz or .tar.zst file is
// extracted to a temporary directory that Close removes.
func Open(source string) (*Template, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Default()
	}

	info, err := os.Stat(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("template %s does not exist", source)
		}
		return nil, fmt.Errorf("cannot stat template %s: %w", source, err)
	}

	if info.IsDir() {
		root, err := filepath.Abs(source)
		if err != nil {
			return nil, fmt.Errorf("resolving template %s: %w", source, err)
		}
		t, err := newTemplate(os.DirFS(root), source, nil)
		if err != nil {
			return nil, err
		}
		t.Root = root
		return t, nil
	}

	format, ok := detectFormat(source)
	if !ok {
		return nil, fmt.Errorf("template %s is neither a directory nor a supported archive (.tar.gz, .tgz, .tar.zst)", source)
	}

	tmp, err := os.MkdirTemp("", "modseven-template-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary directory: %w", err)
	}
	cleanup := func() error { return os.RemoveAll(tmp) }

	logging.Debug("extracting template archive", "archive", source, "target", tmp)
	if err := extract(source, tmp, format); err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("extracting template %s: %w", source, err)
	}

	root, err := archiveRoot(tmp)
	if err != nil {
		_ = cleanup()
		return nil, err
	}

	t, err := newTemplate(os.DirFS(root), source, cleanup)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	t.Root = root
	return t, nil
}

func newTemplate(fsys fs.FS, source string, cleanup func() error) (*Template, error) {
	m, found, err := loadManifest(fsys)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", source, err)
	}
	return &Template{
		FS:          fsys,
		Manifest:    m,
		Source:      source,
		HasManifest: found,
		cleanup:     cleanup,
	}, nil
}

// loadManifest reads skeleton.yaml from the template root. A missing file
// selects the default Modseven manifest.
func loadManifest(fsys fs.FS) (*manifest.Manifest, bool, error) {
	data, err := fs.ReadFile(fsys, manifest.FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return manifest.Default(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", manifest.FileName, err)
	}
	m, err := manifest.Load(data)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", manifest.FileName, err)
	}
	return m, true, nil
}

// archiveRoot descends into a single top-level directory when that directory
// holds the manifest, which is how release tarballs are usually laid out.
func archiveRoot(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading extracted template: %w", err)
	}
	if len(entries) == 1 && entries[0].IsDir() {
		inner := filepath.Join(dir, entries[0].Name())
		if _, err := os.Stat(filepath.Join(inner, manifest.FileName)); err == nil {
			return inner, nil
		}
	}
	return dir, nil
}
