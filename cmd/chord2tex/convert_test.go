package main

// Notes:
// - runConvert: we test file output, the \input line, --stdout previews,
//   config-driven output settings, and argument validation.
// - Previews are only highlighted on a terminal; tests use buffers, so the
//   highlighted branch is covered by TestWritePreview instead.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chord2tex "github.com/alnah/go-chord2tex"
	"github.com/alnah/go-chord2tex/internal/config"
)

func TestRunConvert(t *testing.T) {
	t.Parallel()

	t.Run("writes song and prints include line", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sheet := writeFile(t, dir, "grace.txt", amazingGrace)
		outDir := filepath.Join(dir, "songs")

		env, stdout, _ := testEnv()
		flags := &convertFlags{output: outputFlags{dir: outDir}, common: commonFlags{quiet: true}}

		if err := runConvert(context.Background(), []string{sheet, "John Newton", "Amazing Grace"}, flags, env); err != nil {
			t.Fatalf("runConvert() unexpected error: %v", err)
		}

		outPath := filepath.Join(outDir, "JohnNewton-AmazingGrace.tex")
		if got := readFile(t, outPath); got != amazingGraceTeX {
			t.Errorf("song file = %q, want %q", got, amazingGraceTeX)
		}

		// The temp dir is absolute, so the path cannot be made relative to ".".
		wantInclude := `\input{` + filepath.ToSlash(strings.TrimSuffix(outPath, ".tex")) + "}\n"
		if stdout.String() != wantInclude {
			t.Errorf("stdout = %q, want %q", stdout.String(), wantInclude)
		}
	})

	t.Run("stdout prints the song", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sheet := writeFile(t, dir, "grace.txt", amazingGrace)

		env, stdout, _ := testEnv()
		flags := &convertFlags{output: outputFlags{dir: filepath.Join(dir, "songs")}, stdout: true}

		if err := runConvert(context.Background(), []string{sheet, "John Newton", "Amazing Grace"}, flags, env); err != nil {
			t.Fatalf("runConvert() unexpected error: %v", err)
		}
		if stdout.String() != amazingGraceTeX {
			t.Errorf("stdout = %q, want %q", stdout.String(), amazingGraceTeX)
		}
		if _, err := os.Stat(filepath.Join(dir, "songs")); !os.IsNotExist(err) {
			t.Error("--stdout should not create the output directory")
		}
	})

	t.Run("markdown title from heading", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sheet := writeFile(t, dir, "song.md", "# Sweet Song\n\n```chords\nAm\nhey there\n```\n")

		env, _, _ := testEnv()
		flags := &convertFlags{output: outputFlags{dir: dir}, common: commonFlags{quiet: true}}

		if err := runConvert(context.Background(), []string{sheet, "Band"}, flags, env); err != nil {
			t.Fatalf("runConvert() unexpected error: %v", err)
		}

		got := readFile(t, filepath.Join(dir, "Band-SweetSong.tex"))
		if !strings.HasPrefix(got, `\beginsong{Sweet Song}[by={Band}]`) {
			t.Errorf("song file = %q, want heading title", got)
		}
	})

	t.Run("config sets output extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sheet := writeFile(t, dir, "song.txt", "la")
		cfgPath := writeFile(t, dir, "settings.yaml", "output:\n  dir: "+filepath.ToSlash(filepath.Join(dir, "out"))+"\n  extension: ltx\n")

		env, _, _ := testEnv()
		flags := &convertFlags{common: commonFlags{config: cfgPath, quiet: true}}

		if err := runConvert(context.Background(), []string{sheet, "A", "B"}, flags, env); err != nil {
			t.Fatalf("runConvert() unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "out", "A-B.ltx")); err != nil {
			t.Errorf("expected song at out/A-B.ltx: %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sheet := writeFile(t, dir, "song.txt", "la")

		env, _, _ := testEnv()
		err := runConvert(context.Background(), []string{sheet, "A"}, &convertFlags{output: outputFlags{dir: dir}}, env)
		if !errors.Is(err, chord2tex.ErrEmptyTitle) {
			t.Errorf("runConvert() error = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("invalid extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sheet := writeFile(t, dir, "song.txt", "la")

		env, _, _ := testEnv()
		flags := &convertFlags{output: outputFlags{dir: dir, extension: "../x"}}

		err := runConvert(context.Background(), []string{sheet, "A", "B"}, flags, env)
		if !errors.Is(err, config.ErrInvalidField) {
			t.Errorf("runConvert() error = %v, want ErrInvalidField", err)
		}
	})

	t.Run("config not found carries hint", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		flags := &convertFlags{common: commonFlags{config: "./no/such/config.yaml"}}

		err := runConvert(context.Background(), []string{"song.txt", "A", "B"}, flags, env)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("runConvert() error = %v, want ErrConfigNotFound", err)
		}
	})
}

func TestResolveOutput(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Dir = "from-config"

	tests := []struct {
		name    string
		flags   outputFlags
		env     *envConfig
		wantDir string
		wantExt string
	}{
		{
			name:    "config over defaults",
			env:     &envConfig{},
			wantDir: "from-config",
			wantExt: ".tex",
		},
		{
			name:    "env over config",
			env:     &envConfig{OutputDir: "from-env"},
			wantDir: "from-env",
			wantExt: ".tex",
		},
		{
			name:    "flag over env",
			flags:   outputFlags{dir: "from-flag", extension: "ltx"},
			env:     &envConfig{OutputDir: "from-env"},
			wantDir: "from-flag",
			wantExt: ".ltx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOutput(tt.flags, tt.env, cfg)
			if err != nil {
				t.Fatalf("resolveOutput() unexpected error: %v", err)
			}
			if got.dir != tt.wantDir || got.extension != tt.wantExt {
				t.Errorf("resolveOutput() = %+v, want dir %q ext %q", got, tt.wantDir, tt.wantExt)
			}
		})
	}
}
