// Package chord2tex converts plain-text chord sheets to LaTeX songs-package
// markup.
//
// # Quick Start
//
// Create a converter and convert a sheet:
//
//	conv := chord2tex.NewConverter()
//
//	result, err := conv.Convert(ctx, chord2tex.Input{
//	    Sheet:  "[Verse]\nC       G\nAmazing grace\n",
//	    Artist: "John Newton",
//	    Title:  "Amazing Grace",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.FileName()+".tex", result.TeX(), 0644)
//
// # Conversion Pipeline
//
// Every line of the sheet is classified as empty, a section marker such as
// "[Chorus]", a chord line, or a lyric line. Then, in a single pass:
//
//  1. Empty lines are dropped.
//  2. Section markers become verse boundaries (\endverse, \beginverse).
//  3. A chord line followed by a lyric line is spliced into it, each chord
//     written as \[chord] at the column it stood above.
//  4. Any other chord line becomes a line of chord markers.
//  5. The body is wrapped in \beginsong{title}[by={artist}] ... \endsong.
//
// # Markdown Sheets
//
// With Input.Format set to FormatMarkdown, the sheet is read from the fenced
// code blocks of a Markdown document (untagged, or tagged chords, text, txt
// or plain). The first level-1 heading becomes the title when Input.Title is
// empty.
//
// # Concurrency
//
// A Converter holds no per-conversion state and is safe for concurrent use.
// Songs are independent, so a songbook can be converted in parallel.
package chord2tex
