package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-chord2tex/internal/assets"
)

// testEnv returns an Environment writing to buffers, with embedded
// templates and no terminal.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:              func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout:           &stdout,
		Stderr:           &stderr,
		AssetLoader:      assets.NewEmbeddedLoader(),
		StdoutIsTerminal: func() bool { return false },
	}
	return env, &stdout, &stderr
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

const amazingGrace = "[Verse 1]\nC       G\nAmazing grace\n\nF   C\nhow sweet\n"

const amazingGraceTeX = `\beginsong{Amazing Grace}[by={John Newton}]
\beginverse
\endverse
\beginverse
\[C]Amazing \[G]grace
\[F]how \[C]sweet
\endverse
\endsong
`
