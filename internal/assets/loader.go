package assets

// TemplateExtension is the file extension of book templates.
const TemplateExtension = ".tex"

// TemplateLoader defines the contract for loading book index templates.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
