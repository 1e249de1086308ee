package pipeline

import (
	"errors"
	"strings"
)

// Directives of the LaTeX songs package emitted around the song body.
const (
	DirectiveBeginVerse = `\beginverse`
	DirectiveEndVerse   = `\endverse`
	DirectiveEndSong    = `\endsong`
)

// BeginSong returns the song-open directive carrying title and artist.
func BeginSong(title, artist string) string {
	return `\beginsong{` + title + `}[by={` + artist + `}]`
}

// Metadata identifies the song in its opening directive.
type Metadata struct {
	Artist string
	Title  string
}

// Stats counts what the assembler saw in the input.
type Stats struct {
	Lines            int // input lines, including empty ones
	Empty            int
	SectionMarkers   int
	ChordsSpliced    int // chord lines merged into a lyric line
	ChordsStandalone int // chord lines rendered on their own
	Lyrics           int // lyric lines, spliced or not
	Verses           int
}

// Document is the assembled output. It is not modified after Assemble returns.
type Document struct {
	Lines []string
	Stats Stats
}

// String renders the document with a newline after every line.
func (d *Document) String() string {
	if len(d.Lines) == 0 {
		return ""
	}
	return strings.Join(d.Lines, "\n") + "\n"
}

// Assemble converts classified chord sheet lines into a songs document.
//
// Empty lines are dropped. Each section marker becomes a verse boundary
// (end, then begin) and its text is discarded. A chord line followed by a
// lyric line is merged into that lyric line, which is then consumed; any
// other chord line is rendered standalone. Lyric lines pass through.
//
// The leading verse-open is unconditional, so a sheet starting with a
// section marker yields an empty first verse.
//
// On error the partially built sequence is discarded and the returned
// *MalformedLineError carries the index and content of the offending line.
func Assemble(lines []string, meta Metadata) (*Document, error) {
	body := make([]string, 0, len(lines))
	stats := Stats{Lines: len(lines), Verses: 1}

	kinds := make([]LineKind, len(lines))
	for i, line := range lines {
		kinds[i] = Classify(line)
	}

	for i := 0; i < len(lines); i++ {
		switch kinds[i] {
		case KindEmpty:
			stats.Empty++

		case KindSectionMarker:
			stats.SectionMarkers++
			stats.Verses++
			body = append(body, DirectiveEndVerse, DirectiveBeginVerse)

		case KindChordLine:
			var next *string
			nextKind := KindEmpty
			if i+1 < len(lines) {
				next = &lines[i+1]
				nextKind = kinds[i+1]
			}

			result, err := Merge(lines[i], next, nextKind)
			if err != nil {
				return nil, withIndex(err, i)
			}

			body = append(body, result.Line)
			if result.Kind == MergeSpliced {
				stats.ChordsSpliced++
				stats.Lyrics++
				i++
			} else {
				stats.ChordsStandalone++
			}

		case KindLyricLine:
			stats.Lyrics++
			body = append(body, lines[i])
		}
	}

	out := make([]string, 0, len(body)+4)
	out = append(out, BeginSong(meta.Title, meta.Artist), DirectiveBeginVerse)
	out = append(out, body...)
	out = append(out, DirectiveEndVerse, DirectiveEndSong)

	return &Document{Lines: out, Stats: stats}, nil
}

// withIndex records the input index on a tokenizer error.
func withIndex(err error, index int) error {
	var mle *MalformedLineError
	if errors.As(err, &mle) {
		return &MalformedLineError{Index: index, Line: mle.Line, Token: mle.Token}
	}
	return err
}
