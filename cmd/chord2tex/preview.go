package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Preview highlighting settings.
const (
	previewLexer     = "latex"
	previewFormatter = "terminal256"
	previewStyle     = "monokai"
)

// writePreview prints a converted song. With highlight, the LaTeX is
// colored for a 256-color terminal; otherwise it is written verbatim.
func writePreview(w io.Writer, tex []byte, highlight bool) error {
	if !highlight {
		_, err := w.Write(tex)
		return err
	}

	lexer := lexers.Get(previewLexer)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, string(tex))
	if err != nil {
		return fmt.Errorf("highlighting preview: %w", err)
	}

	if err := formatters.Get(previewFormatter).Format(w, styles.Get(previewStyle), iterator); err != nil {
		return fmt.Errorf("highlighting preview: %w", err)
	}
	return nil
}
