package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	noColor bool
}

// outputFlags holds song output flags.
type outputFlags struct {
	dir       string
	extension string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	output outputFlags
	stdout bool
}

// bookFlags holds all flags for the book command.
type bookFlags struct {
	common    commonFlags
	output    outputFlags
	workers   int
	index     string
	template  string
	title     string
	date      string
	assetPath string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "trace line classification and timing")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// addOutputFlags adds song output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "song output directory (default \"songs\")")
	fs.StringVarP(&f.extension, "ext", "e", "", "song file extension (default \".tex\")")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	addOutputFlags(fs, &f.output)
	fs.BoolVar(&f.stdout, "stdout", false, "print the song instead of writing a file")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, &flagParseError{err: err}
	}

	return f, fs.Args(), nil
}

// parseBookFlags parses book command flags and returns positional args.
func parseBookFlags(args []string, stderr io.Writer) (*bookFlags, []string, error) {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &bookFlags{}

	addOutputFlags(fs, &f.output)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.index, "index", "i", "", "book index file (default \"songbook.tex\")")
	fs.StringVarP(&f.template, "template", "t", "", "book index template name (default \"songbook\")")
	fs.StringVar(&f.title, "title", "", "book title passed to the template")
	fs.StringVar(&f.date, "date", "", "book date: text, \"auto\" or \"auto:FORMAT\"")
	fs.StringVar(&f.assetPath, "assets", "", "directory with custom templates/")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBookUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, &flagParseError{err: err}
	}

	return f, fs.Args(), nil
}
