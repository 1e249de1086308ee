package fileutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SafeName turns free text into a CamelCase file name.
// ASCII letters and digits are kept, the first of each run upper-cased and
// the rest lower-cased. Hyphens are kept and, like any other character,
// start a new word. Accents are stripped first so "Café" gives "Cafe";
// characters with no ASCII form are dropped.
func SafeName(s string) string {
	var b strings.Builder
	capitalizeNext := true

	for _, r := range foldAccents(s) {
		if isASCIIAlnum(r) {
			if capitalizeNext {
				b.WriteRune(unicode.ToUpper(r))
				capitalizeNext = false
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			continue
		}
		if r == '-' {
			b.WriteRune(r)
		}
		capitalizeNext = true
	}

	return b.String()
}

// foldAccents removes combining marks after canonical decomposition.
// A new transformer is built per call since transformers carry state.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
