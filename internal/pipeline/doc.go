// Package pipeline implements the chord-sheet-to-songs conversion pipeline.
//
// The stages run in a single forward pass over the input lines:
//   - Sheet preparation (line ending normalization, blank line removal,
//     chord block extraction from Markdown)
//   - Line classification (empty, section marker, chord line, lyric line)
//   - Column tokenization of chord lines
//   - Chord merging into the following lyric line
//   - Document assembly into verse blocks with song directives
//
// Songbooks are tied together by a BookIndex, a text/template rendered with
// << >> delimiters that \inputs every converted song.
//
// Reading and writing files is handled by the root chord2tex package and the
// CLI. Every function here works on in-memory strings and has no side effects,
// so independent songs can be converted concurrently without synchronization.
package pipeline
