package skeleton

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/modseven/installer/internal/logging"
)

type format int

const (
	tarGz format = iota
	tarZst
)

func detectFormat(name string) (format, bool) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return tarGz, true
	case strings.HasSuffix(lower, ".tar.zst"), strings.HasSuffix(lower, ".tzst"):
		return tarZst, true
	}
	return 0, false
}

// extract unpacks a compressed tar archive into target. Only directories and
// regular files are materialized; links and devices are skipped.
func extract(archivePath, target string, f format) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer file.Close()

	var r io.Reader
	switch f {
	case tarGz:
		gz, err := pgzip.NewReader(file)
		if err != nil {
			return err
		}
		defer gz.Close()
		r = gz
	case tarZst:
		zr, err := zstd.NewReader(file)
		if err != nil {
			return err
		}
		defer zr.Close()
		r = zr
	default:
		return fmt.Errorf("unsupported archive format")
	}

	root := filepath.Clean(target) + string(os.PathSeparator)
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		// Zip Slip: every entry must land inside target.
		absTarget := filepath.Join(target, filepath.FromSlash(header.Name))
		if !strings.HasPrefix(absTarget+string(os.PathSeparator), root) {
			return fmt.Errorf("illegal file path in archive: %s", header.Name)
		}

		// Strip SUID and SGID bits.
		mode := os.FileMode(header.Mode).Perm()

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(absTarget, mode|0o700); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(absTarget), 0o755); err != nil {
				return err
			}
			if err := writeEntry(absTarget, tr, mode|0o600); err != nil {
				return err
			}
		default:
			logging.Debug("skipping archive entry", "name", header.Name, "type", string(header.Typeflag))
		}
	}
}

func writeEntry(path string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
