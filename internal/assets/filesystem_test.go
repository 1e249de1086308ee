package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTemplate creates {dir}/templates/{name}.tex with the given content.
func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()

	templatesDir := filepath.Join(dir, "templates")
	if err := os.MkdirAll(templatesDir, 0o750); err != nil {
		t.Fatalf("failed to create templates dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(templatesDir, name+TemplateExtension), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		_, err := NewFilesystemLoader(file)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeTemplate(t, tmpDir, "custom", `\input{<< .Input >>}`)

	loader, err := NewFilesystemLoader(tmpDir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	tests := []struct {
		name         string
		templateName string
		want         string
		wantErr      error
	}{
		{
			name:         "loads existing template",
			templateName: "custom",
			want:         `\input{<< .Input >>}`,
		},
		{
			name:         "missing template",
			templateName: "missing",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "invalid name",
			templateName: "../custom",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}
			if got != tt.want {
				t.Errorf("LoadTemplate(%q) = %q, want %q", tt.templateName, got, tt.want)
			}
		})
	}
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	t.Run("rejects symlink escape attempt", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		templatesDir := filepath.Join(tmpDir, "templates")
		if err := os.MkdirAll(templatesDir, 0o750); err != nil {
			t.Fatalf("failed to create templates dir: %v", err)
		}

		secretFile := filepath.Join(t.TempDir(), "secret.tex")
		if err := os.WriteFile(secretFile, []byte("secret content"), 0o600); err != nil {
			t.Fatalf("failed to write secret file: %v", err)
		}

		if err := os.Symlink(secretFile, filepath.Join(templatesDir, "evil.tex")); err != nil {
			t.Skipf("symlink creation not supported: %v", err)
		}

		loader, err := NewFilesystemLoader(tmpDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadTemplate("evil")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("LoadTemplate() with symlink escape error = %v, want ErrPathTraversal", err)
		}
	})
}
