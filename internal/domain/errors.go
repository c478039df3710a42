package domain

import "errors"

// Domain errors.
var (
	ErrLocaleNotFound  = errors.New("locale not found in translation table")
	ErrIncompleteEntry = errors.New("translation entry is incomplete")
	ErrInvalidLocale   = errors.New("invalid locale identifier")
)
