// errors.go defines sentinel errors for batch validation failures.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking at the command boundary.

package validate

import "errors"

var (
	// ErrNoDataDir is returned when the data directory does not exist.
	// This is the only fatal condition a batch run can hit; everything
	// else is reported per file.
	ErrNoDataDir = errors.New("data directory not found")
)
