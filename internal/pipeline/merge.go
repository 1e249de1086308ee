package pipeline

import (
	"strings"
	"unicode/utf8"
)

// MergeKind tells how a chord line was rendered.
type MergeKind int

const (
	// MergeSpliced means the chords were inserted into the following lyric line.
	MergeSpliced MergeKind = iota
	// MergeStandalone means the chord line was rendered on its own.
	MergeStandalone
)

// String returns the lowercase name of the merge kind.
func (k MergeKind) String() string {
	if k == MergeSpliced {
		return "spliced"
	}
	return "standalone"
}

// MergeResult is the output of Merge. Line holds either the lyric line with
// chord markers spliced in, or the chord-only marker line.
type MergeResult struct {
	Kind MergeKind
	Line string
}

// ChordMarker returns the inline songs-package marker for a chord.
func ChordMarker(chord string) string {
	return `\[` + chord + `]`
}

// Merge renders a chord line. When next is a lyric line, each chord marker is
// spliced into it at the chord's column, shifted right by the length of the
// markers already inserted. Chords past the end of the lyric are appended
// after a single space. Otherwise the markers are concatenated with no
// separators, since there is nothing to align against.
func Merge(chordLine string, next *string, nextKind LineKind) (MergeResult, error) {
	tokens, err := Tokenize(chordLine)
	if err != nil {
		return MergeResult{}, err
	}

	if next == nil || nextKind != KindLyricLine {
		return MergeResult{Kind: MergeStandalone, Line: standalone(tokens)}, nil
	}

	return MergeResult{Kind: MergeSpliced, Line: splice(*next, tokens)}, nil
}

// splice inserts chord markers into lyric. Positions count characters, so a
// marker never lands inside a multi-byte character. Lyric bytes are copied
// as they are, invalid UTF-8 included.
func splice(lyric string, tokens []Token) string {
	line := lyric
	inserted := 0

	for _, tok := range tokens {
		marker := ChordMarker(tok.Text)

		if at, ok := byteOffset(line, tok.Offset+inserted); ok {
			line = line[:at] + marker + line[at:]
		} else {
			line += " " + marker
		}

		inserted += utf8.RuneCountInString(marker)
	}

	return line
}

// byteOffset returns the byte index of the n-th character of s. An invalid
// byte counts as one character, as in utf8.RuneCountInString. ok is false
// when s has n characters or fewer.
func byteOffset(s string, n int) (int, bool) {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i, n == 0 && i < len(s)
}

// standalone concatenates the markers of every chord, dropping the spacing.
func standalone(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(ChordMarker(tok.Text))
	}
	return b.String()
}
