package chord2tex

import (
	"errors"

	"github.com/alnah/go-chord2tex/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyTitle        = errors.New("song title cannot be empty")
	ErrInvalidMetadata   = errors.New("invalid song metadata")
	ErrUnsupportedFormat = errors.New("unsupported sheet format")

	// ErrMalformedLine is returned (wrapped in a *MalformedLineError) when a
	// chord line cannot be tokenized.
	ErrMalformedLine = pipeline.ErrMalformedLine

	// ErrNoChordSheet indicates a Markdown input holds no chord block.
	ErrNoChordSheet = pipeline.ErrNoChordSheet

	// ErrBookTemplate and ErrBookRender report songbook index failures.
	ErrBookTemplate = pipeline.ErrBookTemplate
	ErrBookRender   = pipeline.ErrBookRender
)

// MalformedLineError names the input line that halted a conversion.
type MalformedLineError = pipeline.MalformedLineError
