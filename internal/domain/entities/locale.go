package entities

import (
	"fmt"

	"storeshots/internal/domain"
)

// SlotCount is the number of caption slots: three shared by phone and
// tablet, plus the tablet-only third screenshot.
const SlotCount = 4

// TabletSlot is the slot carrying the tablet-distinct copy.
const TabletSlot = 3

// MessageIDs lists the catalog message identifiers of a locale entry, in
// tuple order.
var MessageIDs = [2 * SlotCount]string{
	"title1", "desc1",
	"title2", "desc2",
	"title3", "desc3",
	"title_tablet3", "desc_tablet3",
}

// Caption is the text shown on one screenshot.
type Caption struct {
	Title       string
	Description string
}

// LocaleEntry holds the translated captions of one locale.
type LocaleEntry struct {
	Locale   string
	Captions [SlotCount]Caption
}

// NewLocaleEntry builds an entry from the ordered tuple
// (title1, desc1, title2, desc2, title3, desc3, title_tablet3, desc_tablet3).
func NewLocaleEntry(locale string, tuple [2 * SlotCount]string) LocaleEntry {
	e := LocaleEntry{Locale: locale}
	for i := range e.Captions {
		e.Captions[i] = Caption{Title: tuple[2*i], Description: tuple[2*i+1]}
	}
	return e
}

// Tuple returns the entry in tuple order.
func (e LocaleEntry) Tuple() [2 * SlotCount]string {
	var out [2 * SlotCount]string
	for i, c := range e.Captions {
		out[2*i] = c.Title
		out[2*i+1] = c.Description
	}
	return out
}

// CaptionFor returns the caption rendered on template t.
func (e LocaleEntry) CaptionFor(t Template) Caption {
	return e.Captions[t.Slot()]
}

// Validate reports an entry with an empty string as incomplete.
func (e LocaleEntry) Validate() error {
	for i, s := range e.Tuple() {
		if s == "" {
			return fmt.Errorf("%w: %s has empty %s", domain.ErrIncompleteEntry, e.Locale, MessageIDs[i])
		}
	}
	return nil
}
