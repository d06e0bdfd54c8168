package cli

import (
	"errors"
	"log"

	"github.com/example/verdant/internal/core/schedule"
	"github.com/example/verdant/internal/ports/primary"
)

// errInternal is what callers see in place of a server-class fault.
var errInternal = errors.New("internal error (details logged)")

// opaqueFault is the error-classification point of the CLI boundary.
// Server-class faults - corrupted schedule sets and storage failures -
// are logged with the operation and plant id, then replaced with an
// opaque failure so integrity diagnostics and driver internals never
// reach the user. Caller-facing errors pass through untouched.
func opaqueFault(op, plantID string, err error) error {
	if err == nil {
		return nil
	}

	var integrity *schedule.IntegrityError
	if errors.As(err, &integrity) {
		log.Printf("%s failed for plant %s: %v", op, orDash(plantID), err)
		return errInternal
	}

	var storage *primary.StorageError
	if errors.As(err, &storage) {
		log.Printf("%s failed for plant %s: %v", op, orDash(storage.PlantID), err)
		return errInternal
	}

	return err
}
