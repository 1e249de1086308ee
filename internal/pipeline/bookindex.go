package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"text/template"
)

// Book index template delimiters. LaTeX is full of braces, so the usual
// {{ }} would collide with \input{...}.
const (
	LeftDelim  = "<<"
	RightDelim = ">>"
)

// Sentinel errors for book index rendering.
var (
	ErrBookTemplate = errors.New("invalid book template")
	ErrBookRender   = errors.New("book index rendering failed")
)

// BookSong is one \input entry of a book index.
type BookSong struct {
	Artist string
	Title  string
	Input  string // Path passed to \input, forward slashes, no extension
}

// BookData holds everything a book index template can reference.
type BookData struct {
	Title string
	Date  string // Already resolved; empty leaves \date{} blank
	Songs []BookSong
}

// BookIndex renders a songbook index from a parsed template.
type BookIndex struct {
	tmpl *template.Template
}

// NewBookIndex parses a book index template.
// Returns ErrBookTemplate if the template cannot be parsed.
func NewBookIndex(name, tmplContent string) (*BookIndex, error) {
	tmpl, err := template.New(name).
		Delims(LeftDelim, RightDelim).
		Option("missingkey=error").
		Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookTemplate, err)
	}

	return &BookIndex{tmpl: tmpl}, nil
}

// Render executes the template for data.
// Returns ErrBookRender if template execution fails.
func (b *BookIndex) Render(ctx context.Context, data *BookData) ([]byte, error) {
	if data == nil {
		data = &BookData{}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookRender, err)
	}

	return buf.Bytes(), nil
}

// InputPath returns the \input argument for songPath as seen from the
// directory of the index file: relative when possible, slash-separated, and
// without the .tex extension (LaTeX adds it).
func InputPath(indexDir, songPath string) string {
	target := songPath
	if rel, err := filepath.Rel(indexDir, songPath); err == nil {
		target = rel
	}
	if filepath.Ext(target) == ".tex" {
		target = target[:len(target)-len(".tex")]
	}
	return filepath.ToSlash(target)
}
