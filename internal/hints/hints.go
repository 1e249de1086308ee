// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-chord2tex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/songbook.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-chord2tex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForEmptyTitle returns hints for a song without a title.
func ForEmptyTitle() string {
	return format("pass the title as third argument, set songs[].title, or start a Markdown sheet with '# Title'")
}

// ForNoChordSheet returns hints for Markdown files without a chord block.
func ForNoChordSheet() string {
	return format("put the chord sheet in a fenced block: ``` or ```chords")
}

// ForMalformedLine returns hints for chord lines the tokenizer rejected.
func ForMalformedLine() string {
	return format("retype the chord line with plain spaces between chords")
}

// ForTemplateNotFound returns hints listing the available book templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
