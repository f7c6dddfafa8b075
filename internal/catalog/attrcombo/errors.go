package attrcombo

import (
	"errors"
)

var (
	// ErrEmptySelection is returned for an empty selection on encode or decode.
	ErrEmptySelection = errors.New("selection is empty")

	// ErrDuplicateAssignment is returned when an assignment appears more than once.
	ErrDuplicateAssignment = errors.New("assignment selected more than once")

	// ErrMissingValue is returned when an encoded assignment carries no value.
	ErrMissingValue = errors.New("assignment has no selected value")

	// ErrMultiSelect is returned when an encoded assignment carries several values.
	ErrMultiSelect = errors.New("multi-select attributes are not supported")
)
