package pipeline

import (
	"regexp"
	"strings"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// SplitSheet normalizes line endings and splits content into lines.
// Zero-length lines are dropped, as is the missing line after a final
// newline. Lines holding only spaces or tabs are kept; the classifier
// treats them as empty.
func SplitSheet(content string) []string {
	content = normalizeLineEndings(content)
	raw := strings.Split(content, "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
