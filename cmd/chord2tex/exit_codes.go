package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	chord2tex "github.com/alnah/go-chord2tex"
	"github.com/alnah/go-chord2tex/internal/assets"
	"github.com/alnah/go-chord2tex/internal/config"
	"github.com/alnah/go-chord2tex/internal/dateutil"
)

// Exit codes for chord2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitConversion = 4 // Chord sheet could not be converted
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conversion errors (exit 4)
	if errors.Is(err, chord2tex.ErrMalformedLine) ||
		errors.Is(err, chord2tex.ErrNoChordSheet) {
		return ExitConversion
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSheet) ||
		errors.Is(err, ErrWriteSong) ||
		errors.Is(err, ErrWriteIndex) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, chord2tex.ErrEmptyTitle) ||
		errors.Is(err, chord2tex.ErrInvalidMetadata) ||
		errors.Is(err, chord2tex.ErrUnsupportedFormat) ||
		errors.Is(err, chord2tex.ErrBookTemplate) ||
		errors.Is(err, chord2tex.ErrBookRender) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoSongs) ||
		errors.Is(err, ErrDuplicateSong) ||
		isFlagError(err) {
		return ExitUsage
	}

	return ExitGeneral
}

// flagParseError marks errors returned by pflag parsing.
type flagParseError struct{ err error }

func (e *flagParseError) Error() string { return e.err.Error() }
func (e *flagParseError) Unwrap() error { return e.err }

// isFlagError reports whether err came from flag parsing.
func isFlagError(err error) bool {
	var fe *flagParseError
	return errors.As(err, &fe) && !errors.Is(err, flag.ErrHelp)
}
