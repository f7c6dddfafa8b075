package combination

import (
	"errors"
)

var (
	// ErrUnknownAlias is returned when a curated tuple names a value alias
	// that none of the product's assignments define.
	ErrUnknownAlias = errors.New("unknown value alias")

	// ErrEmptyTuple is returned when a curated tuple names no aliases.
	ErrEmptyTuple = errors.New("curated tuple names no value aliases")
)
