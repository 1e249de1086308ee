package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-chord2tex/internal/dateutil"
	"github.com/alnah/go-chord2tex/internal/fileutil"
	"github.com/alnah/go-chord2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxExtensionLength = 16   // ".tex"
	MaxNameLength      = 100  // template name
	MaxArtistLength    = 200
	MaxTitleLength     = 200
	MaxDateLength      = 100
	MaxSongs           = 10000
)

// Defaults match the original songs directory layout.
const (
	DefaultOutputDir    = "songs"
	DefaultExtension    = ".tex"
	DefaultBookIndex    = "songbook.tex"
	DefaultBookTemplate = "songbook"
)

// Config holds all configuration for song and songbook generation.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Book   BookConfig   `yaml:"book"`
	Assets AssetsConfig `yaml:"assets"`
	Songs  []SongConfig `yaml:"songs"`

	// BaseDir is the directory of the loaded config file. Relative song
	// paths are resolved against it. Empty for DefaultConfig.
	BaseDir string `yaml:"-"`
}

// OutputConfig defines where song files are written.
type OutputConfig struct {
	Dir       string `yaml:"dir"`       // Song directory, also used in \input lines (default: "songs")
	Extension string `yaml:"extension"` // Song file extension (default: ".tex")
}

// BookConfig defines the songbook index file.
type BookConfig struct {
	Index    string `yaml:"index"`    // Index file path (default: "songbook.tex")
	Template string `yaml:"template"` // Template name in assets/templates (default: "songbook")
	Title    string `yaml:"title"`    // Optional book title passed to the template
	Date     string `yaml:"date"`     // Literal date, "auto" or "auto:FORMAT"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// SongConfig is one songbook entry.
type SongConfig struct {
	File   string `yaml:"file"`   // Chord sheet path, relative to the config file
	Artist string `yaml:"artist"` // Optional
	Title  string `yaml:"title"`  // Optional for Markdown sheets with a heading
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
		return err
	}
	if c.Output.Extension != "" {
		if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
			return fmt.Errorf("%w: output.extension: %v", ErrInvalidField, err)
		}
	}

	if err := validateFieldLength("book.index", c.Book.Index, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("book.template", c.Book.Template, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("book.title", c.Book.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("book.date", c.Book.Date, MaxDateLength); err != nil {
		return err
	}
	if err := dateutil.Validate(c.Book.Date); err != nil {
		return fmt.Errorf("%w: book.date: %v", ErrInvalidField, err)
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if len(c.Songs) > MaxSongs {
		return fmt.Errorf("%w: songs (%d entries, max %d)", ErrInvalidField, len(c.Songs), MaxSongs)
	}
	for i, song := range c.Songs {
		if strings.TrimSpace(song.File) == "" {
			return fmt.Errorf("%w: songs[%d].file: required", ErrInvalidField, i)
		}
		if err := validateFieldLength(fmt.Sprintf("songs[%d].file", i), song.File, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("songs[%d].artist", i), song.Artist, MaxArtistLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("songs[%d].title", i), song.Title, MaxTitleLength); err != nil {
			return err
		}
	}

	return nil
}

// SongPath resolves a song file path against BaseDir.
// Absolute paths and configs without a BaseDir are returned unchanged.
func (c *Config) SongPath(song SongConfig) string {
	if c.BaseDir == "" || filepath.IsAbs(song.File) {
		return song.File
	}
	return filepath.Join(c.BaseDir, song.File)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: DefaultOutputDir, Extension: DefaultExtension},
		Book:   BookConfig{Index: DefaultBookIndex, Template: DefaultBookTemplate},
		Assets: AssetsConfig{BasePath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) || fileutil.FileExists(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.BaseDir = filepath.Dir(configPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order.
// Extensions: .yaml, .yml. Locations: current directory, then
// the user config directory under go-chord2tex/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-chord2tex", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)

	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
