package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"storeshots/internal/domain"
	"storeshots/internal/domain/entities"
	"storeshots/internal/ports/output"
)

//go:embed locales/*.toml
var localeFS embed.FS

const manifestFile = "manifest.toml"

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

type manifest struct {
	Locales []struct {
		ID       string `toml:"id"`
		Register string `toml:"register"`
	} `toml:"locale"`
}

// Catalog is the translation table, resolved once from go-i18n message files
// and read-only afterwards.
type Catalog struct {
	order     []string
	entries   map[string]entities.LocaleEntry
	registers map[string]string
	anchors   entities.LocaleEntry
}

// NewCatalog loads the embedded translation table. source names the locale
// whose strings appear in the template documents (e.g. "en").
func NewCatalog(source string) (*Catalog, error) {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}
	return LoadCatalog(sub, source)
}

// LoadCatalog reads manifest.toml and one active.<locale>.toml per locale
// from fsys, plus active.<source>.toml for the anchors.
func LoadCatalog(fsys fs.FS, source string) (*Catalog, error) {
	sourceTag, err := language.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("i18n: %w: %q", domain.ErrInvalidLocale, source)
	}
	if _, err := fs.Stat(fsys, messageFile(source)); err != nil {
		return nil, fmt.Errorf("i18n: %w: no %s for source %q", domain.ErrLocaleNotFound, messageFile(source), source)
	}
	bundle := i18n.NewBundle(sourceTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	raw, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", manifestFile, err)
	}
	var m manifest
	if err := toml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("i18n: parse %s: %w", manifestFile, err)
	}

	c := &Catalog{
		order:     make([]string, 0, len(m.Locales)),
		entries:   make(map[string]entities.LocaleEntry, len(m.Locales)),
		registers: make(map[string]string, len(m.Locales)),
	}

	anchors, err := resolve(bundle, fsys, source)
	if err != nil {
		return nil, err
	}
	c.anchors = anchors

	for _, l := range m.Locales {
		if _, err := language.Parse(l.ID); err != nil {
			return nil, fmt.Errorf("i18n: %w: %q", domain.ErrInvalidLocale, l.ID)
		}
		if l.ID == source {
			return nil, fmt.Errorf("i18n: %w: %q is the source locale", domain.ErrInvalidLocale, l.ID)
		}
		if _, dup := c.entries[l.ID]; dup {
			return nil, fmt.Errorf("i18n: %w: %q listed twice", domain.ErrInvalidLocale, l.ID)
		}
		entry, err := resolve(bundle, fsys, l.ID)
		if err != nil {
			return nil, err
		}
		c.order = append(c.order, l.ID)
		c.entries[l.ID] = entry
		c.registers[l.ID] = l.Register
	}
	return c, nil
}

func messageFile(locale string) string {
	return "active." + locale + ".toml"
}

// resolve loads the message file of locale and localizes every caption
// message. Messages served by the bundle's fallback language count as
// missing.
func resolve(bundle *i18n.Bundle, fsys fs.FS, locale string) (entities.LocaleEntry, error) {
	file := messageFile(locale)
	mf, err := bundle.LoadMessageFileFS(fsys, file)
	if err != nil {
		return entities.LocaleEntry{}, fmt.Errorf("i18n: load %s: %w", file, err)
	}

	localizer := i18n.NewLocalizer(bundle, mf.Tag.String())
	var tuple [len(entities.MessageIDs)]string
	for i, id := range entities.MessageIDs {
		msg, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: id})
		if err != nil || tag.String() != mf.Tag.String() {
			return entities.LocaleEntry{}, fmt.Errorf("i18n: %w: %s lacks %s", domain.ErrIncompleteEntry, locale, id)
		}
		tuple[i] = msg
	}

	entry := entities.NewLocaleEntry(locale, tuple)
	if err := entry.Validate(); err != nil {
		return entities.LocaleEntry{}, fmt.Errorf("i18n: %w", err)
	}
	return entry, nil
}

// Locales returns the locale identifiers in table order.
func (c *Catalog) Locales() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) Entry(locale string) (entities.LocaleEntry, error) {
	e, ok := c.entries[locale]
	if !ok {
		return entities.LocaleEntry{}, fmt.Errorf("%w: %s", domain.ErrLocaleNotFound, locale)
	}
	return e, nil
}

func (c *Catalog) Anchors() entities.LocaleEntry {
	return c.anchors
}

// Register returns the translator note on the form of address used by
// locale. It is informational only.
func (c *Catalog) Register(locale string) string {
	return c.registers[locale]
}
