// Package console prints the logger's own notices on the terminal.
//
// Notices are informational only. Printing never fails the caller: write
// errors on the terminal are ignored.
package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

// Printer prints notices on the console
type Printer interface {
	// Inf prints an informational notice
	Inf(text string)
	// Err prints an error notice
	Err(text string)
	// Exc prints an error that could not be handled any further
	Exc(err error)
}

// Console is a Printer writing colourised lines. Informational notices go to
// out, errors go to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer

	inf *color.Color
	err *color.Color
	exc *color.Color
}

// New returns a Console writing to out and errOut. Colours are disabled when
// noColor is set.
func New(out, errOut io.Writer, noColor bool) *Console {
	c := &Console{
		out:    out,
		errOut: errOut,
		inf:    color.New(color.FgCyan),
		err:    color.New(color.FgRed),
		exc:    color.New(color.FgHiRed, color.Bold),
	}
	if noColor {
		c.inf.DisableColor()
		c.err.DisableColor()
		c.exc.DisableColor()
	} else {
		c.inf.EnableColor()
		c.err.EnableColor()
		c.exc.EnableColor()
	}
	return c
}

// Stdio returns a Console on the process standard output and error.
// Colours are only enabled when both are terminals.
func Stdio(noColor bool) *Console {
	if !noColor {
		noColor = color.NoColor || !isTerminal(os.Stdout) || !isTerminal(os.Stderr)
	}
	return New(colorable.NewColorableStdout(), colorable.NewColorableStderr(), noColor)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) Inf(text string) {
	c.inf.Fprintln(c.out, text)
}

func (c *Console) Err(text string) {
	c.err.Fprintln(c.errOut, text)
}

func (c *Console) Exc(err error) {
	if err == nil {
		return
	}
	c.exc.Fprintln(c.errOut, err.Error())
}

// Discard returns a Printer that prints nothing
func Discard() Printer {
	return discard{}
}

type discard struct{}

func (discard) Inf(text string) {}
func (discard) Err(text string) {}
func (discard) Exc(err error)   {}
