package manifest

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse reads a manifest file and returns it with defaults applied.
func Parse(file string) (*Manifest, error) {
	data, err := readFile(file)
	if err != nil {
		return nil, err
	}
	m, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", file, err)
	}
	return m, nil
}

// ParseBytes unmarshals manifest YAML, fills in writable_mode when absent and
// rejects paths that escape the application root.
func ParseBytes(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	if m.Placeholder == "" {
		return nil, fmt.Errorf("manifest missing required 'placeholder' field")
	}
	if m.WritableMode == "" {
		m.WritableMode = DefaultWritableMode
	}
	if _, err := parseMode(m.WritableMode); err != nil {
		return nil, err
	}
	for _, p := range m.PlaceholderFiles {
		if err := checkRelPath(p); err != nil {
			return nil, fmt.Errorf("placeholder_files: %w", err)
		}
	}
	for _, p := range m.WritableDirs {
		if err := checkRelPath(p); err != nil {
			return nil, fmt.Errorf("writable_dirs: %w", err)
		}
	}
	return &m, nil
}

// Mode returns writable_mode as a permission value.
func (m *Manifest) Mode() os.FileMode {
	mode, err := parseMode(m.WritableMode)
	if err != nil {
		mode, _ = parseMode(DefaultWritableMode)
	}
	return mode
}

func parseMode(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o777 {
		return 0, fmt.Errorf("invalid writable_mode %q: want an octal permission such as 0755", s)
	}
	return os.FileMode(v), nil
}

// checkRelPath accepts clean, slash-separated paths that stay inside the root.
func checkRelPath(p string) error {
	if p == "" || strings.Contains(p, "\\") || path.IsAbs(p) {
		return fmt.Errorf("path %q must be relative and slash-separated", p)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path %q escapes the application root", p)
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", file, err)
	}
	return data, nil
}
