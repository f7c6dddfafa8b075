package seed

import (
	"errors"
	"fmt"
)

var (
	// ErrDBNil is returned when the seeder is constructed without a database handle.
	ErrDBNil = errors.New("database connection is nil")

	// ErrProviderNil is returned when the seeder is constructed without a data provider.
	ErrProviderNil = errors.New("data provider is nil")

	// ErrProductNotFound is returned when a procedural stage cannot resolve a
	// product persisted by an earlier stage.
	ErrProductNotFound = errors.New("product not found")

	// ErrLookupNotFound is returned when a name lookup into an earlier stage's
	// entities finds no match.
	ErrLookupNotFound = errors.New("referenced entity not found")
)

// StageError wraps a failure with the identity of the stage it occurred in.
// The installer surfaces the stage name so an operator can diagnose which
// population step failed.
type StageError struct {
	Stage string
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("seeding stage %q failed: %v", e.Stage, e.Err)
}

// Unwrap returns the inner cause.
func (e *StageError) Unwrap() error {
	return e.Err
}
