package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chord2tex <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert one chord sheet to a LaTeX songs file")
	fmt.Fprintln(w, "  book       Convert every song of a songbook manifest and write its index")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'chord2tex help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chord2tex convert <sheet> [artist] [title] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a chord sheet to LaTeX songs markup and print its \\input line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  sheet     Plain-text chord sheet, or Markdown (.md, .markdown)")
	fmt.Fprintln(w, "  artist    Song artist (may be empty)")
	fmt.Fprintln(w, "  title     Song title (optional for Markdown with a '# Title' heading)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Song directory (default: songs)")
	fmt.Fprintln(w, "  -e, --ext <ext>           Song file extension (default: .tex)")
	fmt.Fprintln(w, "      --stdout              Print the song instead of writing a file")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printBookUsage prints usage for the book command.
func printBookUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chord2tex book [manifest] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert all songs listed in a YAML manifest in parallel, then write a")
	fmt.Fprintln(w, "book index that \\inputs them in manifest order. The index is only")
	fmt.Fprintln(w, "written when every song succeeded.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  manifest  Config name or path (default: --config or CHORD2TEX_CONFIG)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Song directory (default: songs)")
	fmt.Fprintln(w, "  -e, --ext <ext>           Song file extension (default: .tex)")
	fmt.Fprintln(w, "  -i, --index <path>        Book index file (default: songbook.tex)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "  -t, --template <name>     Index template (default: songbook)")
	fmt.Fprintln(w, "      --title <s>           Book title")
	fmt.Fprintln(w, "      --date <s>            Book date: text, auto, auto:FORMAT or auto:PRESET")
	fmt.Fprintln(w, "                            (FORMAT tokens: YYYY YY MMMM MMM MM M DD D;")
	fmt.Fprintln(w, "                            presets: iso, european, us, long)")
	fmt.Fprintln(w, "      --assets <dir>        Directory holding templates/<name>.tex")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Trace line classification and timing")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CHORD2TEX_CONFIG, CHORD2TEX_OUTPUT_DIR, CHORD2TEX_WORKERS, NO_COLOR")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "book":
		printBookUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: chord2tex version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: chord2tex help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
