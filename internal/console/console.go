// Package console prints user-facing messages. Styling comes from lipgloss and
// is dropped entirely when ANSI output is disabled.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes styled lines. Info and comment lines go to out and are hidden
// in quiet mode; warnings and errors go to errOut and are always shown.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool

	info    lipgloss.Style
	comment lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// New creates a Printer. noANSI forces a plain-text colour profile.
func New(out, errOut io.Writer, noANSI, quiet bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if noANSI {
		r.SetColorProfile(termenv.Ascii)
	}
	er := lipgloss.NewRenderer(errOut)
	if noANSI {
		er.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:     out,
		errOut:  errOut,
		quiet:   quiet,
		info:    r.NewStyle().Foreground(lipgloss.Color("2")),
		comment: r.NewStyle().Foreground(lipgloss.Color("3")),
		warning: er.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		failure: er.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
	}
}

// Info prints a progress line (green).
func (p *Printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.info.Render(fmt.Sprintf(format, args...)))
}

// Comment prints a notice line (yellow).
func (p *Printer) Comment(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.comment.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a remediation hint.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.warning.Render(fmt.Sprintf(format, args...)))
}

// Error prints a fatal error.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.errOut, p.failure.Render(" "+err.Error()+" "))
}
