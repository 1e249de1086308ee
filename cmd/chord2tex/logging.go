package main

import (
	"io"
	"log/slog"
)

// newLogger returns the debug trace logger: text records on w with
// --verbose, discarded otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
