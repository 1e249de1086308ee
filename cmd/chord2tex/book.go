package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	chord2tex "github.com/alnah/go-chord2tex"
	"github.com/alnah/go-chord2tex/internal/assets"
	"github.com/alnah/go-chord2tex/internal/config"
	"github.com/alnah/go-chord2tex/internal/dateutil"
	"github.com/alnah/go-chord2tex/internal/fileutil"
	"github.com/alnah/go-chord2tex/internal/hints"
)

// runBookCmd parses flags and runs the book command.
func runBookCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBookFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	warnUnknownEnvVars(env.Stderr)
	return runBook(ctx, positional, flags, env)
}

// runBook converts every song of a manifest concurrently, writes each song
// file, then renders the book index. The index is written only when every
// song succeeded, so it never \inputs a missing file.
func runBook(ctx context.Context, args []string, flags *bookFlags, env *Environment) error {
	start := time.Now()

	if len(args) > 1 {
		return fmt.Errorf("%w: got %d, want at most one manifest", ErrTooManyArgs, len(args))
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()

	var manifestArg string
	if len(args) == 1 {
		manifestArg = args[0]
	}
	manifest := firstNonEmpty(manifestArg, flags.common.config, envCfg.ConfigPath)
	if manifest == "" {
		return fmt.Errorf("%w: pass a manifest, --config, or %s", ErrNoInput, envConfigPath)
	}

	cfg, err := loadConfig(manifest)
	if err != nil {
		return err
	}
	if len(cfg.Songs) == 0 {
		return fmt.Errorf("%w: %s", ErrNoSongs, manifest)
	}

	out, err := resolveOutput(flags.output, envCfg, cfg)
	if err != nil {
		return err
	}

	date, err := dateutil.Resolve(firstNonEmpty(flags.date, cfg.Book.Date), env.Now())
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.verbose)

	// Template problems are reported before any song is converted.
	index, err := loadBookIndex(firstNonEmpty(flags.template, cfg.Book.Template, config.DefaultBookTemplate),
		firstNonEmpty(flags.assetPath, cfg.Assets.BasePath), env, logger)
	if err != nil {
		return err
	}

	workers := resolvePoolSize(flags.workers)
	if flags.workers == 0 && envCfg.Workers > 0 {
		workers = envCfg.Workers
	}

	logger.Debug("book started",
		"manifest", manifest,
		"songs", len(cfg.Songs),
		"workers", workers,
		"gomaxprocs", runtime.GOMAXPROCS(0),
	)

	songs := make([]SongToConvert, len(cfg.Songs))
	for i, s := range cfg.Songs {
		songs[i] = SongToConvert{InputPath: cfg.SongPath(s), Artist: s.Artist, Title: s.Title}
	}

	conv := chord2tex.NewConverter(chord2tex.WithLogger(logger))
	results := convertBatch(ctx, conv, songs, workers)
	writeSongs(results, out)

	p := newPrinter(env, flags.common)
	indexPath := firstNonEmpty(flags.index, cfg.Book.Index, config.DefaultBookIndex)

	if failed := printResults(results, p); failed > 0 {
		return fmt.Errorf("%d of %d song(s) failed, %s not written: %w", failed, len(results), indexPath, firstError(results))
	}

	data := bookData(firstNonEmpty(flags.title, cfg.Book.Title), filepath.Dir(indexPath), results)
	data.Date = date
	content, err := index.Render(ctx, data)
	if err != nil {
		return err
	}

	if err := writeIndex(indexPath, content); err != nil {
		return err
	}

	p.created(indexPath, time.Since(start))
	return nil
}

// loadBookIndex loads and parses the index template. Custom templates
// under basePath take precedence over the embedded ones.
func loadBookIndex(name, basePath string, env *Environment, logger *slog.Logger) (*chord2tex.BookIndex, error) {
	loader := env.AssetLoader
	custom := false
	if basePath != "" {
		resolver, err := assets.NewAssetResolver(basePath)
		if err != nil {
			return nil, fmt.Errorf("loading templates: %w", err)
		}
		loader = resolver
		custom = resolver.HasCustomLoader()
	}

	logger.Debug("book template", "name", name, "custom_assets", custom, "base_path", basePath)

	content, err := loader.LoadTemplate(name)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) {
			return nil, fmt.Errorf("loading template: %w%s", err, hints.ForTemplateNotFound(assets.TemplateNames()))
		}
		return nil, fmt.Errorf("loading template: %w", err)
	}

	return chord2tex.NewBookIndex(name, content)
}

// bookData lists the converted songs in manifest order, with \input paths
// relative to the index directory.
func bookData(title, indexDir string, results []ConversionResult) *chord2tex.BookData {
	data := &chord2tex.BookData{
		Title: title,
		Songs: make([]chord2tex.BookSong, 0, len(results)),
	}
	for _, r := range results {
		data.Songs = append(data.Songs, chord2tex.BookSong{
			Artist: r.Song.Artist,
			Title:  r.Song.Title,
			Input:  chord2tex.InputPath(indexDir, r.OutputPath),
		})
	}
	return data
}

// writeIndex writes the book index atomically, creating its directory.
func writeIndex(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("creating index directory: %w%s", err, hints.ForOutputDirectory())
		}
	}
	if err := fileutil.WriteFileAtomic(path, content, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteIndex, err)
	}
	return nil
}
