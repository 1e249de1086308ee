package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrMalformedLine indicates a token could not be located in its own line.
var ErrMalformedLine = errors.New("malformed line")

// MalformedLineError reports the line that halted a conversion.
// Index is the 0-based position of the line in the lines given to Assemble,
// which no longer hold empty lines, or -1 when the tokenizer was called
// outside of document assembly. It is not a line number of the source file.
type MalformedLineError struct {
	Index int
	Line  string
	Token string
}

func (e *MalformedLineError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: token %q not found in %q", ErrMalformedLine, e.Token, e.Line)
	}
	return fmt.Sprintf("%v: sheet line index %d (0-based, empty lines skipped) %q: token %q not found", ErrMalformedLine, e.Index, e.Line, e.Token)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

// Token is a whitespace-delimited word and the column where it starts.
// Offset counts characters (runes), not bytes, in the untrimmed line.
type Token struct {
	Text   string
	Offset int
}

// Tokenize splits a line on runs of whitespace and records each token's
// starting column. Offsets are found by searching left to right from the end
// of the previous token, so a repeated chord keeps its own column.
func Tokenize(line string) ([]Token, error) {
	return locateTokens(line, strings.Fields(line))
}

// locateTokens finds each word at or after the end of the previous one.
// A word missing from the remainder of the line is an error; there is no
// fallback to the first occurrence.
func locateTokens(line string, words []string) ([]Token, error) {
	tokens := make([]Token, 0, len(words))
	bytePos := 0
	runePos := 0

	for _, word := range words {
		rel := strings.Index(line[bytePos:], word)
		if rel < 0 {
			return nil, &MalformedLineError{Index: -1, Line: line, Token: word}
		}

		runePos += utf8.RuneCountInString(line[bytePos : bytePos+rel])
		tokens = append(tokens, Token{Text: word, Offset: runePos})

		bytePos += rel + len(word)
		runePos += utf8.RuneCountInString(word)
	}

	return tokens, nil
}
