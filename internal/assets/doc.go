// Package assets provides the LaTeX templates used to render songbook index
// files.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in templates (songbook, inputs) embedded
// at compile time.
//
// FilesystemLoader allows users to provide custom templates from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the CLI. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the template is
// not found. A single built-in template can be overridden this way.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.tex           # book index template (e.g., songbook.tex)
//
// # Template Syntax
//
// Templates are text/template sources using << and >> as action delimiters,
// so LaTeX braces never collide with template actions.
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
