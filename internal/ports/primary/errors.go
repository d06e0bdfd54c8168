package primary

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a plant is absent or owned by another
// user. The two cases are deliberately indistinguishable so callers
// cannot probe for existence.
var ErrNotFound = errors.New("resource not found")

// ValidationError reports malformed caller input. Field names the
// offending input in snake_case, matching the wire shape callers use.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// StorageError wraps a persistence failure. It is a server-class fault:
// transports log the operation and plant id, then show the caller an
// opaque failure instead of driver internals.
type StorageError struct {
	Op      string
	PlantID string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
