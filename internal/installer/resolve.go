package installer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Settings controls how the installer is located and invoked.
type Settings struct {
	// Command is the installer looked up on PATH, e.g. "composer".
	Command string
	// Vendored is a file name checked in the working directory first, e.g.
	// "composer.phar". It is run through PHP.
	Vendored string
	// PHP is the interpreter used for a vendored installer.
	PHP string
	// Args follow the executable, e.g. "install --no-scripts".
	Args string
}

// Flags are appended to the command line as literal suffixes.
type Flags struct {
	NoANSI bool
	Quiet  bool
}

// Command is a resolved installer invocation.
type Command struct {
	// Program is the binary that must be reachable for the command to run.
	Program string
	// Executable is the leading part of the shell line.
	Executable string
	Args       string
	// VendoredPath is set when a vendored installer was found.
	VendoredPath string
}

// Resolve picks the installer for cwd.
func Resolve(cwd string, s Settings) Command {
	if s.Vendored != "" {
		candidate := filepath.Join(cwd, s.Vendored)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			php := s.PHP
			if php == "" {
				php = "php"
			}
			return Command{
				Program:      php,
				Executable:   fmt.Sprintf(`"%s" "%s"`, php, candidate),
				Args:         s.Args,
				VendoredPath: candidate,
			}
		}
	}
	return Command{
		Program:    s.Command,
		Executable: s.Command,
		Args:       s.Args,
	}
}

// Vendored reports whether the command runs a vendored installer.
func (c Command) Vendored() bool {
	return c.VendoredPath != ""
}

// Line composes the shell command line.
func (c Command) Line(f Flags) string {
	line := c.Executable
	if c.Args != "" {
		line += " " + c.Args
	}
	if f.NoANSI {
		line += " --no-ansi"
	}
	if f.Quiet {
		line += " --quiet"
	}
	return line
}

// Available returns the resolved path of Program on PATH.
func (c Command) Available() (string, error) {
	if c.Program == "" {
		return "", fmt.Errorf("no installer configured")
	}
	path, err := exec.LookPath(c.Program)
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", c.Program, err)
	}
	return path, nil
}
