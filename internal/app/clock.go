package app

import (
	"time"

	"github.com/example/verdant/internal/ports/secondary"
)

// SystemClock implements secondary.Clock with the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

var _ secondary.Clock = SystemClock{}
