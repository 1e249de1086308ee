package main

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/alnah/go-chord2tex/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, terminal detection and template loading.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.TemplateLoader // Used when no assets.basePath is configured

	// StdoutIsTerminal reports whether Stdout is an interactive terminal
	// that accepts colour. Highlighted previews are only sent there.
	StdoutIsTerminal func() bool
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		// color.NoColor is computed from NO_COLOR, TERM=dumb and isatty(stdout).
		StdoutIsTerminal: func() bool { return !color.NoColor },
	}
}
