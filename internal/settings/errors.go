package settings

import (
	"errors"
)

var (
	// ErrNilSettings is returned when a nil settings object is given.
	ErrNilSettings = errors.New("settings object is nil")

	// ErrNotStruct is returned when the settings object is not a struct.
	ErrNotStruct = errors.New("settings object must be a struct")
)
