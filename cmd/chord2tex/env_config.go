package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	envConfigPath = "CHORD2TEX_CONFIG"
	envOutputDir  = "CHORD2TEX_OUTPUT_DIR"
	envWorkers    = "CHORD2TEX_WORKERS"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CHORD2TEX_CONFIG: config file name or path
	OutputDir  string // CHORD2TEX_OUTPUT_DIR: song output directory
	Workers    int    // CHORD2TEX_WORKERS: parallel workers for book
}

// knownEnvVars lists valid CHORD2TEX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigPath: true,
	envOutputDir:  true,
	envWorkers:    true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid or non-positive worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv(envConfigPath),
		OutputDir:  os.Getenv(envOutputDir),
	}

	if workers := os.Getenv(envWorkers); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes warnings for unrecognized CHORD2TEX_* variables.
// Helps catch typos like CHORD2TEX_OUTDIR instead of CHORD2TEX_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CHORD2TEX_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// firstNonEmpty returns the first non-empty value, in precedence order.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
