package scaffold

import (
	"fmt"
	"strings"
)

// DestinationExistsError is returned when the destination is already
// occupied and force was not requested.
type DestinationExistsError struct {
	Path string
}

func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("application already exists at %s", e.Path)
}

// TemplateOverlapError is returned when the destination is the template
// directory or lies inside it.
type TemplateOverlapError struct {
	Destination string
	Template    string
}

func (e *TemplateOverlapError) Error() string {
	if e.Destination == e.Template {
		return fmt.Sprintf("destination %s is the template directory", e.Destination)
	}
	return fmt.Sprintf("destination %s is inside the template directory %s", e.Destination, e.Template)
}

// DirectoryCreationError is returned when a directory of the new tree could
// not be created.
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("directory %q was not created: %v", e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error { return e.Err }

// FileCopyError names the template file that could not be copied.
type FileCopyError struct {
	File string
	Err  error
}

func (e *FileCopyError) Error() string {
	return fmt.Sprintf("there was a problem copying %q: %v", e.File, e.Err)
}

func (e *FileCopyError) Unwrap() error { return e.Err }

// FileRewriteError names the placeholder file that could not be prepared.
type FileRewriteError struct {
	File string
	Err  error
}

func (e *FileRewriteError) Error() string {
	return fmt.Sprintf("there was a problem preparing the file %q: %v", e.File, e.Err)
}

func (e *FileRewriteError) Unwrap() error { return e.Err }

// DirFailure is one writable directory whose permissions could not be set.
type DirFailure struct {
	Dir string
	Err error
}

// WritableDirectoryWarning collects permission failures. It never aborts a
// run.
type WritableDirectoryWarning struct {
	Failures []DirFailure
}

func (w *WritableDirectoryWarning) Error() string {
	parts := make([]string, 0, len(w.Failures))
	for _, f := range w.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Dir, f.Err))
	}
	return "setting permissions failed: " + strings.Join(parts, "; ")
}

// Dirs returns the failed directories in order.
func (w *WritableDirectoryWarning) Dirs() []string {
	dirs := make([]string, 0, len(w.Failures))
	for _, f := range w.Failures {
		dirs = append(dirs, f.Dir)
	}
	return dirs
}

// InstallError reports a dependency installer that could not be started or
// exited non-zero. ExitCode is the status the tool should exit with.
type InstallError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dependency installation failed (%s): %v", e.Command, e.Err)
	}
	return fmt.Sprintf("dependency installation failed (%s): exit status %d", e.Command, e.ExitCode)
}

func (e *InstallError) Unwrap() error { return e.Err }
