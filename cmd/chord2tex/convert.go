package main

import (
	"context"
	"errors"
	"fmt"

	chord2tex "github.com/alnah/go-chord2tex"
	"github.com/alnah/go-chord2tex/internal/config"
	"github.com/alnah/go-chord2tex/internal/fileutil"
	"github.com/alnah/go-chord2tex/internal/hints"
)

// runConvertCmd parses flags and runs the convert command.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	warnUnknownEnvVars(env.Stderr)
	return runConvert(ctx, positional, flags, env)
}

// runConvert converts one chord sheet. Arguments: <sheet> [artist] [title].
// The song is written to <output>/<Artist-Title><ext> and its \input line
// is printed on stdout. With --stdout, the song itself is printed instead.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: chord2tex convert <sheet> [artist] [title]", ErrNoInput)
	}
	if len(args) > 3 {
		return fmt.Errorf("%w: got %d, want <sheet> [artist] [title]", ErrTooManyArgs, len(args))
	}

	envCfg := loadEnvConfig()

	cfg, err := loadConfig(firstNonEmpty(flags.common.config, envCfg.ConfigPath))
	if err != nil {
		return err
	}

	out, err := resolveOutput(flags.output, envCfg, cfg)
	if err != nil {
		return err
	}

	song := SongToConvert{InputPath: args[0]}
	if len(args) > 1 {
		song.Artist = args[1]
	}
	if len(args) > 2 {
		song.Title = args[2]
	}

	conv := chord2tex.NewConverter(chord2tex.WithLogger(newLogger(env.Stderr, flags.common.verbose)))

	result := convertSong(ctx, conv, song)
	if result.Err != nil {
		return result.Err
	}

	if flags.stdout {
		highlight := !flags.common.noColor && env.StdoutIsTerminal()
		return writePreview(env.Stdout, result.Song.TeX(), highlight)
	}

	results := []ConversionResult{result}
	writeSongs(results, out)
	if results[0].Err != nil {
		return results[0].Err
	}

	newPrinter(env, flags.common).created(results[0].OutputPath, results[0].Duration)
	fmt.Fprintln(env.Stdout, chord2tex.IncludeLine(chord2tex.InputPath(".", results[0].OutputPath)))

	return nil
}

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// resolveOutput picks the song directory and extension.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveOutput(flags outputFlags, env *envConfig, cfg *config.Config) (outputSpec, error) {
	ext := firstNonEmpty(flags.extension, cfg.Output.Extension, config.DefaultExtension)
	if err := fileutil.ValidateExtension(ext); err != nil {
		return outputSpec{}, fmt.Errorf("%w: extension %q: %v", config.ErrInvalidField, ext, err)
	}

	return outputSpec{
		dir:       firstNonEmpty(flags.dir, env.OutputDir, cfg.Output.Dir, config.DefaultOutputDir),
		extension: fileutil.NormalizeExtension(ext),
	}, nil
}
