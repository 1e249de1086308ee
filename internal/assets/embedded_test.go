package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  string
	}{
		{
			name:         "loads songbook template",
			templateName: "songbook",
			wantContain:  `\usepackage[chorded]{songs}`,
		},
		{
			name:         "loads inputs template",
			templateName: "inputs",
			wantContain:  `\input{<< .Input >>}`,
		},
		{
			name:         "returns ErrTemplateNotFound for nonexistent",
			templateName: "nonexistent-template-xyz",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "returns ErrInvalidAssetName for empty name",
			templateName: "",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "returns ErrInvalidAssetName for path traversal",
			templateName: "../secret",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "returns ErrInvalidAssetName for extension",
			templateName: "songbook.tex",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := loader.LoadTemplate(tt.templateName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}
			if !strings.Contains(content, tt.wantContain) {
				t.Errorf("LoadTemplate(%q) content missing %q", tt.templateName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_Names(t *testing.T) {
	t.Parallel()

	names := NewEmbeddedLoader().Names()

	for _, want := range []string{"inputs", "songbook"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
}

func TestLoadTemplate_DefaultLoader(t *testing.T) {
	t.Parallel()

	content, err := LoadTemplate("songbook")
	if err != nil {
		t.Fatalf("LoadTemplate() unexpected error: %v", err)
	}
	if !strings.Contains(content, `\begin{songs}{}`) {
		t.Error("songbook template should open a songs environment")
	}
	if len(TemplateNames()) == 0 {
		t.Error("TemplateNames() should list the built-in templates")
	}
}
