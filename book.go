package chord2tex

import (
	"context"

	"github.com/alnah/go-chord2tex/internal/pipeline"
)

// BookSong is one song of a songbook index.
type BookSong = pipeline.BookSong

// BookData is the data passed to a songbook index template.
type BookData = pipeline.BookData

// BookIndex is a parsed songbook index template.
type BookIndex = pipeline.BookIndex

// NewBookIndex parses a songbook index template. Templates use << and >> as
// action delimiters and see BookData as their dot.
func NewBookIndex(name, tmplContent string) (*BookIndex, error) {
	return pipeline.NewBookIndex(name, tmplContent)
}

// RenderBook parses and renders a songbook index template in one step.
func RenderBook(ctx context.Context, name, tmplContent string, data *BookData) ([]byte, error) {
	index, err := NewBookIndex(name, tmplContent)
	if err != nil {
		return nil, err
	}
	return index.Render(ctx, data)
}

// InputPath returns the \input argument that reaches songPath from indexDir.
func InputPath(indexDir, songPath string) string {
	return pipeline.InputPath(indexDir, songPath)
}

// IncludeLine returns the LaTeX line that includes a converted song.
func IncludeLine(inputPath string) string {
	return `\input{` + inputPath + `}`
}
