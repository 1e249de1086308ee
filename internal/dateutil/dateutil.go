// Package dateutil resolves the songbook date shown on the index title page.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a malformed date or date format.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits the length of a date format.
const MaxFormatLength = 50

// DefaultFormat is used by a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

// autoPrefix introduces a date computed at build time.
const autoPrefix = "auto"

// layoutTokens maps format tokens to time layout elements, longest first.
var layoutTokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named formats usable after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout converts a date format (YYYY, YY, MMMM, MMM, MM, M, DD, D) into a
// time layout. Text in square brackets is copied literally, as is any
// character that is not part of a token.
func Layout(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	case len(format) > MaxFormatLength:
		return "", fmt.Errorf("%w: format longer than %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}

		n := tokenAt(rest, &b)
		if n == 0 {
			b.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}

	return b.String(), nil
}

// tokenAt writes the layout of the token starting s and returns its length,
// or 0 when s does not start with a token.
func tokenAt(s string, b *strings.Builder) int {
	for _, t := range layoutTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return len(t.token)
		}
	}
	return 0
}

// Resolve returns the date to print for value:
//   - "" or any value not starting with "auto": returned unchanged
//   - "auto": now, formatted as DefaultFormat
//   - "auto:FORMAT" or "auto:PRESET": now, formatted as requested
func Resolve(value string, now time.Time) (string, error) {
	if !strings.HasPrefix(strings.ToLower(value), autoPrefix) {
		return value, nil
	}

	format, err := autoFormat(value)
	if err != nil {
		return "", err
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}

// Validate reports whether value would resolve, without needing a time.
func Validate(value string) error {
	_, err := Resolve(value, time.Time{})
	return err
}

// autoFormat extracts the date format of an "auto" value.
func autoFormat(value string) (string, error) {
	rest := value[len(autoPrefix):]
	if rest == "" {
		return DefaultFormat, nil
	}
	if rest[0] != ':' {
		return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	format := rest[1:]
	if format == "" {
		return "", fmt.Errorf("%w: empty format after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		return preset, nil
	}
	return format, nil
}
