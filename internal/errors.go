package internal

import "errors"

var (
	// ErrSourceNotFound is returned when a lexicon or rule file is missing.
	ErrSourceNotFound = errors.New("source not found")

	// ErrSourceEmpty is returned when no usable entries survive loading.
	ErrSourceEmpty = errors.New("source empty")
)
