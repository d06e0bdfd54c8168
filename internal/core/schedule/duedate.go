package schedule

import "github.com/example/verdant/internal/core/calendar"

// NextDue holds recomputed next-due dates. A zero Date means "nothing
// due" (never performed, no entry for the relevant season, or
// fertilizing disabled).
type NextDue struct {
	Watering    calendar.Date
	Fertilizing calendar.Date
}

// Recompute derives both next-due dates from the last-performed dates
// and the schedule set. Deterministic and side-effect-free; the caller
// persists the result.
//
// The season used for the interval lookup is the season the action was
// last performed in, not the current season: a plant watered on the
// last day of spring stays on the spring cadence until watered again.
func Recompute(lastWatered, lastFertilized calendar.Date, entries []Entry) NextDue {
	var next NextDue

	if !lastWatered.IsZero() {
		if e, ok := FindSeason(entries, calendar.SeasonOf(lastWatered)); ok {
			next.Watering = lastWatered.AddDays(e.WateringInterval)
		}
	}

	if !lastFertilized.IsZero() {
		if e, ok := FindSeason(entries, calendar.SeasonOf(lastFertilized)); ok {
			// Interval zero disables fertilizing for the season, even
			// though the plant has been fertilized before.
			if e.FertilizingInterval != 0 {
				next.Fertilizing = lastFertilized.AddDays(e.FertilizingInterval)
			}
		}
	}

	return next
}
