package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ErrNoChordSheet indicates a Markdown document holds no chord block.
var ErrNoChordSheet = errors.New("no chord sheet found in markdown")

// chordBlockLanguages are the fenced code block info strings read as chord
// sheets. The empty string covers fences without an info string.
var chordBlockLanguages = map[string]bool{
	"":       true,
	"chords": true,
	"chord":  true,
	"text":   true,
	"txt":    true,
	"plain":  true,
}

// MarkdownSheet is the chord sheet found in a Markdown document.
type MarkdownSheet struct {
	Lines   []string // raw lines of every chord block, in document order
	Heading string   // text of the first level-1 heading, if any
}

// SheetExtractor abstracts pulling a chord sheet out of a richer document.
type SheetExtractor interface {
	Extract(ctx context.Context, content string) (*MarkdownSheet, error)
}

// GoldmarkExtractor reads chord blocks from Markdown using goldmark (pure Go).
type GoldmarkExtractor struct {
	md goldmark.Markdown
}

// NewGoldmarkExtractor creates a GoldmarkExtractor with GFM parsing.
func NewGoldmarkExtractor() *GoldmarkExtractor {
	return &GoldmarkExtractor{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Extract parses content and collects the lines of every fenced code block
// tagged as a chord sheet: no info string, chords, chord, text, txt or plain
// (case-insensitive).
// Column positions inside the blocks are preserved. Zero-length lines are
// dropped, matching SplitSheet. Returns ErrNoChordSheet when no block matches.
func (e *GoldmarkExtractor) Extract(ctx context.Context, content string) (*MarkdownSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := []byte(normalizeLineEndings(content))
	doc := e.md.Parser().Parse(text.NewReader(src))

	sheet := &MarkdownSheet{}
	found := false

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && sheet.Heading == "" {
				sheet.Heading = strings.TrimSpace(inlineText(node, src))
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lang := strings.ToLower(string(node.Language(src)))
			if !chordBlockLanguages[lang] {
				return ast.WalkSkipChildren, nil
			}
			found = true
			segments := node.Lines()
			for i := 0; i < segments.Len(); i++ {
				seg := segments.At(i)
				line := strings.TrimRight(string(seg.Value(src)), "\n")
				if line != "" {
					sheet.Lines = append(sheet.Lines, line)
				}
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrNoChordSheet
	}
	return sheet, nil
}

// inlineText concatenates the text segments below n.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
