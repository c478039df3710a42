package entities

import "sort"

// Summary describes a completed run.
type Summary struct {
	Locales []string // table order
	Files   int
}

// SortedLocales returns the rendered locales in lexical order.
func (s *Summary) SortedLocales() []string {
	out := append([]string(nil), s.Locales...)
	sort.Strings(out)
	return out
}
