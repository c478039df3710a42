package filesystem

import (
	"os"
	"path/filepath"

	"storeshots/internal/ports/output"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var _ output.TemplateStore = (*Store)(nil)

// Store keeps one directory per locale under root. Source templates are read
// from the source locale's directory.
type Store struct {
	root   string
	source string
}

// NewStore creates a Store rooted at root reading templates from root/source.
func NewStore(root, source string) *Store {
	return &Store{root: root, source: source}
}

func (s *Store) ReadTemplate(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, s.source, name))
}

func (s *Store) PrepareLocale(locale string) error {
	return os.MkdirAll(s.LocaleDir(locale), dirPerm)
}

func (s *Store) WriteArtifact(locale, name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.LocaleDir(locale), name), data, filePerm)
}

// LocaleDir returns the output directory of locale.
func (s *Store) LocaleDir(locale string) string {
	return filepath.Join(s.root, locale)
}
