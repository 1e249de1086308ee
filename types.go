package chord2tex

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alnah/go-chord2tex/internal/fileutil"
	"github.com/alnah/go-chord2tex/internal/pipeline"
)

// Format identifies how Input.Sheet is encoded.
type Format string

// Sheet formats.
const (
	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
)

// MaxMetadataLength bounds artist and title length.
const MaxMetadataLength = 200

// FormatForPath guesses the sheet format from a file extension.
// .md and .markdown are Markdown; anything else is plain text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatPlain
	}
}

// Input contains conversion parameters.
type Input struct {
	Sheet  string // Chord sheet content (plain text or Markdown)
	Format Format // "" or FormatPlain, FormatMarkdown
	Artist string // Optional, rendered as by={} when empty
	Title  string // Required, except for Markdown with a level-1 heading
}

// Validate checks the format and metadata.
// An empty title is accepted here because Markdown sheets may supply it;
// Convert reports ErrEmptyTitle once the title is resolved.
func (in Input) Validate() error {
	switch in.Format {
	case "", FormatPlain, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, in.Format)
	}
	if err := validateMetadata("artist", in.Artist); err != nil {
		return err
	}
	return validateMetadata("title", in.Title)
}

// validateMetadata rejects values that would break the one-line song directive.
func validateMetadata(field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %s contains a line break", ErrInvalidMetadata, field)
	}
	if len(value) > MaxMetadataLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrInvalidMetadata, field, len(value), MaxMetadataLength)
	}
	return nil
}

// LineKind is the role of one chord sheet line.
type LineKind = pipeline.LineKind

// Line kinds.
const (
	KindEmpty         = pipeline.KindEmpty
	KindSectionMarker = pipeline.KindSectionMarker
	KindChordLine     = pipeline.KindChordLine
	KindLyricLine     = pipeline.KindLyricLine
)

// Classify returns the kind of a single chord sheet line.
func Classify(line string) LineKind {
	return pipeline.Classify(line)
}

// Stats summarizes what a conversion saw.
type Stats struct {
	Lines            int
	Empty            int
	SectionMarkers   int
	ChordsSpliced    int
	ChordsStandalone int
	Lyrics           int
	Verses           int
}

// Result holds the converted song.
type Result struct {
	Lines  []string // Output lines, song directives included
	Artist string
	Title  string // Resolved title (from Input or the Markdown heading)
	Stats  Stats
}

// TeX returns the document with a newline after every line.
func (r *Result) TeX() []byte {
	doc := pipeline.Document{Lines: r.Lines}
	return []byte(doc.String())
}

// FileName returns the sanitized base name (no extension) for the song file.
func (r *Result) FileName() string {
	return SongFileName(r.Artist, r.Title)
}

// SongFileName builds a file-system safe name from artist and title:
// "Simon & Garfunkel", "The Boxer" gives "SimonGarfunkel-TheBoxer".
func SongFileName(artist, title string) string {
	return fileutil.SafeName(artist + "-" + title)
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for the debug trace of classified lines.
// Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("chord2tex: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.logger = l
	}
}

// withSheetExtractor replaces the Markdown extractor (tests).
func withSheetExtractor(e pipeline.SheetExtractor) Option {
	return func(c *Converter) {
		c.extractor = e
	}
}

// toStats converts internal pipeline stats to the public type.
func toStats(s pipeline.Stats) Stats {
	return Stats(s)
}
