package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	chord2tex "github.com/alnah/go-chord2tex"
	"github.com/alnah/go-chord2tex/internal/fileutil"
	"github.com/alnah/go-chord2tex/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxWorkers caps the book worker pool.
const maxWorkers = 8

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrTooManyArgs        = errors.New("too many arguments")
	ErrReadSheet          = errors.New("failed to read chord sheet")
	ErrWriteSong          = errors.New("failed to write song file")
	ErrWriteIndex         = errors.New("failed to write book index")
	ErrNoSongs            = errors.New("manifest lists no songs")
	ErrDuplicateSong      = errors.New("two songs map to the same file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// SongConverter is the interface for the conversion service.
type SongConverter interface {
	Convert(ctx context.Context, input chord2tex.Input) (*chord2tex.Result, error)
}

// Compile-time interface implementation check.
var _ SongConverter = (*chord2tex.Converter)(nil)

// SongToConvert is one chord sheet and its metadata.
type SongToConvert struct {
	InputPath string
	Artist    string
	Title     string
}

// ConversionResult holds the outcome of a single song.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Song       *chord2tex.Result
	Err        error
	Duration   time.Duration
}

// outputSpec says where converted songs are written.
type outputSpec struct {
	dir       string
	extension string // with leading dot
}

// path returns the file a song is written to.
func (o outputSpec) path(song *chord2tex.Result) string {
	return filepath.Join(o.dir, song.FileName()+o.extension)
}

// convertBatch converts songs concurrently. The converter is shared: it
// keeps no per-song state. Results keep the order of songs.
func convertBatch(ctx context.Context, conv SongConverter, songs []SongToConvert, workers int) []ConversionResult {
	if len(songs) == 0 {
		return nil
	}

	concurrency := min(workers, len(songs))
	concurrency = max(concurrency, 1)

	results := make([]ConversionResult, len(songs))
	var wg sync.WaitGroup
	jobs := make(chan int, len(songs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: songs[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertSong(ctx, conv, songs[idx])
			}
		}()
	}

	for i := range songs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertSong reads and converts one chord sheet in memory.
func convertSong(ctx context.Context, conv SongConverter, s SongToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: s.InputPath}

	content, err := os.ReadFile(s.InputPath) // #nosec G304 -- user-provided sheet path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadSheet, err)
		result.Duration = time.Since(start)
		return result
	}

	song, err := conv.Convert(ctx, chord2tex.Input{
		Sheet:  string(content),
		Format: chord2tex.FormatForPath(s.InputPath),
		Artist: s.Artist,
		Title:  s.Title,
	})
	if err != nil {
		result.Err = withHint(err)
		result.Duration = time.Since(start)
		return result
	}

	result.Song = song
	result.Duration = time.Since(start)
	return result
}

// writeSongs writes every converted song to out, in order. A song whose
// file name was already taken by an earlier song of the batch fails
// instead of overwriting it.
func writeSongs(results []ConversionResult, out outputSpec) {
	taken := make(map[string]string, len(results))

	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}

		start := time.Now()
		r.OutputPath = out.path(r.Song)

		if first, ok := taken[r.OutputPath]; ok {
			r.Err = fmt.Errorf("%w: %s (already written for %s)", ErrDuplicateSong, r.OutputPath, first)
			continue
		}
		taken[r.OutputPath] = r.InputPath

		if err := writeSong(r.OutputPath, r.Song.TeX()); err != nil {
			r.Err = err
		}
		r.Duration += time.Since(start)
	}
}

// writeSong writes one song file atomically, creating its directory.
func writeSong(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteSong, err)
	}
	return nil
}

// withHint appends an actionable hint to conversion errors.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, chord2tex.ErrEmptyTitle):
		hint = hints.ForEmptyTitle()
	case errors.Is(err, chord2tex.ErrNoChordSheet):
		hint = hints.ForNoChordSheet()
	case errors.Is(err, chord2tex.ErrMalformedLine):
		hint = hints.ForMalformedLine()
	default:
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// ResultSummary holds the count of succeeded and failed songs.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed songs.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in result order, or nil.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs per-song status and, for batches, a summary.
// Returns the number of failures.
func printResults(results []ConversionResult, p *printer) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			p.failure(r.InputPath, r.Err)
			continue
		}
		p.created(r.OutputPath, r.Duration)
	}

	if len(results) > 1 {
		p.summary(summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for container CPU quotas.
	n := runtime.GOMAXPROCS(0) / 2

	if n < 1 {
		return 1
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// validateWorkers rejects negative worker counts.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be 0 for auto or a positive number)", ErrInvalidWorkerCount, n)
	}
	return nil
}
