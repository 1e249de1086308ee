package pipeline

import (
	"regexp"
	"strings"
)

// LineKind is the role a line of a chord sheet plays.
type LineKind int

const (
	KindEmpty LineKind = iota
	KindSectionMarker
	KindChordLine
	KindLyricLine
)

// String returns the lowercase name of the kind.
func (k LineKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSectionMarker:
		return "section"
	case KindChordLine:
		return "chord"
	case KindLyricLine:
		return "lyric"
	default:
		return "unknown"
	}
}

// chordSymbol matches one chord: root, accidental, quality, extension, bass.
const chordSymbol = `[A-G][#b]?(?:maj|min|dim|aug|sus|add|m)?[0-9]?(?:/[A-G][#b]?)?`

// Precompiled regex patterns for performance.
var (
	// One or more chord symbols separated by whitespace
	chordLinePattern = regexp.MustCompile(`^` + chordSymbol + `(?:\s+` + chordSymbol + `)*$`)

	// [anything] with optional trailing whitespace
	sectionMarkerPattern = regexp.MustCompile(`^\[.*\]\s*$`)
)

// Classify returns the kind of a single line.
// Chord lines take precedence over section markers, and anything that is
// neither falls back to a lyric line, so Classify never fails.
func Classify(line string) LineKind {
	trimmed := trimHorizontal(line)

	if trimmed == "" {
		return KindEmpty
	}
	if chordLinePattern.MatchString(trimmed) {
		return KindChordLine
	}
	if sectionMarkerPattern.MatchString(trimmed) {
		return KindSectionMarker
	}
	return KindLyricLine
}

// trimHorizontal strips leading and trailing spaces and tabs only.
func trimHorizontal(s string) string {
	return strings.Trim(s, " \t")
}
