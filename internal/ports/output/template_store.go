package output

// TemplateStore reads source templates and writes per-locale artifacts.
type TemplateStore interface {
	ReadTemplate(name string) ([]byte, error)
	// PrepareLocale creates the locale's output container if absent.
	PrepareLocale(locale string) error
	// WriteArtifact replaces the named document of locale with data.
	WriteArtifact(locale, name string, data []byte) error
}
