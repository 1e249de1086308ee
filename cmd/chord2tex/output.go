package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// errorLabel is the prefix of the final error line on stderr.
func errorLabel() string {
	return color.New(color.FgRed, color.Bold).Sprint("error:")
}

// printer writes per-song status lines. Successes go to stdout unless quiet,
// failures always go to stderr.
type printer struct {
	stdout  io.Writer
	stderr  io.Writer
	quiet   bool
	verbose bool
	ok      *color.Color
	failed  *color.Color
	dim     *color.Color
}

// newPrinter creates a printer. Colour follows fatih/color detection
// (NO_COLOR, TERM=dumb, non-terminal stdout) and can be forced off.
func newPrinter(env *Environment, common commonFlags) *printer {
	p := &printer{
		stdout:  env.Stdout,
		stderr:  env.Stderr,
		quiet:   common.quiet,
		verbose: common.verbose,
		ok:      color.New(color.FgGreen),
		failed:  color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}
	if common.noColor {
		p.ok.DisableColor()
		p.failed.DisableColor()
		p.dim.DisableColor()
	}
	return p
}

// created reports a written file.
func (p *printer) created(path string, d time.Duration) {
	if p.quiet {
		return
	}
	if p.verbose {
		fmt.Fprintf(p.stdout, "%s %s %s\n", p.ok.Sprint("Created"), path, p.dim.Sprintf("(%v)", d.Round(time.Millisecond)))
		return
	}
	fmt.Fprintf(p.stdout, "%s %s\n", p.ok.Sprint("Created"), path)
}

// failure reports a song that could not be converted or written.
func (p *printer) failure(path string, err error) {
	fmt.Fprintf(p.stderr, "%s %s: %v\n", p.failed.Sprint("FAILED"), path, err)
}

// summary prints the batch tally.
func (p *printer) summary(succeeded, failed int) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
}
