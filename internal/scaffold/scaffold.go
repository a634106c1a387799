package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/modseven/installer/internal/console"
	"github.com/modseven/installer/internal/installer"
	"github.com/modseven/installer/internal/logging"
	"github.com/modseven/installer/internal/skeleton"
)

// Request describes one application to create.
type Request struct {
	// Name is the application directory below Cwd, or "." for Cwd itself.
	Name string
	Cwd  string

	Force     bool
	NoInstall bool
	Flags     installer.Flags

	Template *skeleton.Template

	// Version is the running tool version, checked against the manifest's
	// requires constraint.
	Version string
}

// Result holds the outcome of a successful run.
type Result struct {
	Destination string
	AppName     string
	// InstallCommand is the command line that was run, empty when the
	// installation was skipped.
	InstallCommand string
	Warnings       []error
}

// Orchestrator sequences the scaffold steps and the dependency installation.
type Orchestrator struct {
	Installer installer.Settings
	Runner    installer.Runner
	Console   *console.Printer
	Copier    *Copier
}

// Run creates the application described by req. Fatal step errors are
// returned as-is; a failing installer is reported as *InstallError. A
// permission warning is printed and recorded in Result.Warnings but the run
// still succeeds.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Template == nil {
		return nil, errors.New("no template given")
	}
	m := req.Template.Manifest

	if err := m.CheckRequires(req.Version); err != nil {
		return nil, fmt.Errorf("template %s: %w", req.Template.Source, err)
	}

	dest := ResolveDestination(req.Cwd, req.Name)
	if err := CheckSource(dest, req.Template.Root); err != nil {
		return nil, err
	}
	if err := CheckDestination(dest, req.Cwd, req.Force); err != nil {
		return nil, err
	}

	out := o.printer()
	out.Info("Crafting application...")

	res := &Result{
		Destination: dest,
		AppName:     AppName(req.Cwd, req.Name),
	}
	logging.Debug("scaffold", "template", req.Template.Source, "destination", dest, "app", res.AppName)

	copier := o.Copier
	if copier == nil {
		copier = NewCopier()
	}
	rewriter := &Rewriter{Token: m.Placeholder, Files: m.PlaceholderFiles}
	preparer := NewPreparer(m.WritableDirs, m.Mode())

	steps := []struct {
		name string
		run  func() StepResult
	}{
		{"copy", func() StepResult { return failed(copier.Copy(req.Template.FS, dest)) }},
		{"rewrite", func() StepResult { return failed(rewriter.Rewrite(res.AppName, dest)) }},
		{"writable", func() StepResult { return preparer.Prepare(dest) }},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		r := step.run()
		switch r.Outcome {
		case Fatal:
			logging.Debug("step failed", "step", step.name, "error", r.Err)
			return res, r.Err
		case Warning:
			res.Warnings = append(res.Warnings, r.Err)
			out.Warning("%s", writableHint(r.Err, m.WritableDirs))
		}
	}

	if !req.NoInstall {
		if err := o.install(ctx, req, res); err != nil {
			return res, err
		}
	}

	out.Comment("Application ready! Build something amazing.")
	return res, nil
}

func (o *Orchestrator) install(ctx context.Context, req Request, res *Result) error {
	if o.Runner == nil {
		return errors.New("no installer runner configured")
	}

	cmd := installer.Resolve(req.Cwd, o.Installer)
	line := cmd.Line(req.Flags)
	res.InstallCommand = line

	code, err := o.Runner.Run(ctx, res.Destination, line)
	if err != nil {
		return &InstallError{Command: line, ExitCode: 1, Err: err}
	}
	if code != 0 {
		if code < 0 {
			code = 1
		}
		return &InstallError{Command: line, ExitCode: code}
	}
	return nil
}

func (o *Orchestrator) printer() *console.Printer {
	if o.Console != nil {
		return o.Console
	}
	return console.New(io.Discard, io.Discard, true, true)
}

// writableHint names the directories the user should check by hand.
func writableHint(err error, dirs []string) string {
	var w *WritableDirectoryWarning
	if errors.As(err, &w) && len(w.Failures) > 0 {
		dirs = w.Dirs()
	}
	quoted := make([]string, 0, len(dirs))
	for _, d := range dirs {
		quoted = append(quoted, fmt.Sprintf("%q", d))
	}
	noun := "directory is"
	if len(quoted) > 1 {
		noun = "directories are"
	}
	return fmt.Sprintf("You should verify that the %s %s writable.", joinAnd(quoted), noun)
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
