package output

import "storeshots/internal/domain/entities"

// Catalog exposes the translation table. Implementations are immutable once
// built.
type Catalog interface {
	// Locales returns the locale identifiers in table order.
	Locales() []string
	// Entry returns the captions of locale, or domain.ErrLocaleNotFound.
	Entry(locale string) (entities.LocaleEntry, error)
	// Anchors returns the canonical captions present in the source templates.
	Anchors() entities.LocaleEntry
}
