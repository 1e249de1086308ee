package chord2tex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alnah/go-chord2tex/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.SheetExtractor = (*pipeline.GoldmarkExtractor)(nil)

// Converter orchestrates the chord-sheet-to-songs conversion pipeline.
// Create with NewConverter and use Convert for each song.
type Converter struct {
	logger    *slog.Logger
	extractor pipeline.SheetExtractor
}

// NewConverter creates a Converter with default configuration.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger:    slog.New(slog.DiscardHandler),
		extractor: pipeline.NewGoldmarkExtractor(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Convert turns one chord sheet into a songs document.
// The context is checked before work starts; the conversion itself does not
// block. Nothing is returned on error, so callers never see a partial song.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, title, err := c.sheetLines(ctx, input)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if err := validateMetadata("title", title); err != nil {
		return nil, err
	}

	c.trace(lines)

	doc, err := pipeline.Assemble(lines, pipeline.Metadata{Artist: input.Artist, Title: title})
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", title, err)
	}

	c.logger.Debug("song converted",
		"title", title,
		"artist", input.Artist,
		"verses", doc.Stats.Verses,
		"output_lines", len(doc.Lines),
	)

	return &Result{
		Lines:  doc.Lines,
		Artist: input.Artist,
		Title:  title,
		Stats:  toStats(doc.Stats),
	}, nil
}

// sheetLines returns the raw sheet lines and the resolved title.
func (c *Converter) sheetLines(ctx context.Context, input Input) ([]string, string, error) {
	if input.Format != FormatMarkdown {
		return pipeline.SplitSheet(input.Sheet), input.Title, nil
	}

	sheet, err := c.extractor.Extract(ctx, input.Sheet)
	if err != nil {
		return nil, "", fmt.Errorf("reading markdown sheet: %w", err)
	}

	title := input.Title
	if title == "" {
		title = sheet.Heading
	}
	return sheet.Lines, title, nil
}

// trace logs the kind of every line at debug level.
func (c *Converter) trace(lines []string) {
	if !c.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for i, line := range lines {
		c.logger.Debug("line classified",
			"index", i,
			"kind", pipeline.Classify(line).String(),
			"text", line,
		)
	}
}
