// Package careaction contains the pure validation rules for recording
// a care event. Guards are evaluated by the application service in a
// fixed order; each returns a typed error the transport layer can map
// to a distinct failure.
package careaction

import (
	"fmt"

	"github.com/example/verdant/internal/core/calendar"
	"github.com/example/verdant/internal/core/schedule"
)

// Type identifies the kind of care event.
type Type string

const (
	Watering    Type = "watering"
	Fertilizing Type = "fertilizing"
)

// ParseType validates an action type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Watering, Fertilizing:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown action type %q: expected watering or fertilizing", s)
}

// FutureDateError reports a performed-at date after today.
type FutureDateError struct {
	PerformedAt calendar.Date
	Today       calendar.Date
}

func (e *FutureDateError) Error() string {
	return fmt.Sprintf("performed_at %s is after today (%s)", e.PerformedAt, e.Today)
}

// ScheduleMissingError reports that the plant has no schedule entry for
// the season the action falls in (or no schedule at all).
type ScheduleMissingError struct {
	Season calendar.Season
}

func (e *ScheduleMissingError) Error() string {
	return fmt.Sprintf("no schedule entry for season %s", e.Season)
}

// FertilizingDisabledError reports a fertilizing action in a season
// whose fertilizing interval is the zero sentinel.
type FertilizingDisabledError struct {
	Season calendar.Season
}

func (e *FertilizingDisabledError) Error() string {
	return fmt.Sprintf("fertilizing is disabled for season %s", e.Season)
}

// ResolveDate resolves the performed-at input: empty means today,
// otherwise a strict YYYY-MM-DD calendar date.
func ResolveDate(raw string, today calendar.Date) (calendar.Date, error) {
	if raw == "" {
		return today, nil
	}
	return calendar.ParseDate(raw)
}

// CheckNotFuture rejects performed-at dates after today. Today itself
// is accepted.
func CheckNotFuture(performedAt, today calendar.Date) error {
	if performedAt.After(today) {
		return &FutureDateError{PerformedAt: performedAt, Today: today}
	}
	return nil
}

// IntervalFor picks the interval for the action from the season's
// schedule entry and applies the fertilizing-disabled gate.
func IntervalFor(t Type, entry schedule.Entry) (int, error) {
	if t == Fertilizing {
		if entry.FertilizingInterval == 0 {
			return 0, &FertilizingDisabledError{Season: entry.Season}
		}
		return entry.FertilizingInterval, nil
	}
	return entry.WateringInterval, nil
}
