// Package priority reduces a plant's next-due dates into a three-tier
// urgency. The tier is always computed on read from the derived dates;
// nothing persists it, so it cannot drift from the care history.
package priority

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/example/verdant/internal/core/calendar"
)

// Tier is an urgency bucket. Lower sorts first.
type Tier int

const (
	Urgent  Tier = 0 // nearest due date is in the past
	Warning Tier = 1 // nearest due date is today
	OK      Tier = 2 // nothing due yet, or nothing scheduled
)

// Classify reduces the two next-due dates to a tier relative to today.
// Zero dates are ignored; when both are zero the plant has nothing
// scheduled and is OK.
func Classify(nextWatering, nextFertilizing, today calendar.Date) Tier {
	nearest := calendar.MinDate(nextWatering, nextFertilizing)
	if nearest.IsZero() {
		return OK
	}
	switch {
	case nearest.Before(today):
		return Urgent
	case nearest.Equal(today):
		return Warning
	default:
		return OK
	}
}

// Name collation matches the reference UI, which compares plant names
// with the Polish locale.
var nameCollator = collate.New(language.Polish)

// CompareNames orders plant names with locale-aware collation.
// Returns <0, 0 or >0 like strings.Compare.
func CompareNames(a, b string) int {
	return nameCollator.CompareString(a, b)
}
