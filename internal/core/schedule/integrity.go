// Package schedule contains the pure business logic for seasonal care
// schedules: set integrity validation and next-due-date derivation.
// This is part of the Functional Core - no I/O, only pure functions.
package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/verdant/internal/core/calendar"
)

// Interval bounds for watering and fertilizing cadences, in days.
// Zero is legal: for watering it means "due again the same day", for
// fertilizing it is the disable sentinel.
const (
	MinInterval = 0
	MaxInterval = 365
)

// Entry is one (season, watering interval, fertilizing interval) tuple
// of a plant's schedule.
type Entry struct {
	Season              calendar.Season
	WateringInterval    int
	FertilizingInterval int
}

// IntegrityError reports a stored schedule set that violates the
// one-entry-per-season invariant. It indicates storage-level corruption
// (a writer bypassed validation), not user error, so it carries the full
// diagnostic picture and must never be silently repaired.
type IntegrityError struct {
	Expected   []calendar.Season
	Received   []calendar.Season
	Missing    []calendar.Season
	Duplicates []calendar.Season
}

func (e *IntegrityError) Error() string {
	var b strings.Builder
	b.WriteString("schedule set is incomplete")
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": missing %s", joinSeasons(e.Missing))
	}
	if len(e.Duplicates) > 0 {
		fmt.Fprintf(&b, ": duplicated %s", joinSeasons(e.Duplicates))
	}
	return b.String()
}

func joinSeasons(seasons []calendar.Season) string {
	names := make([]string, len(seasons))
	for i, s := range seasons {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// ValidateIntegrity checks that a stored schedule set contains exactly
// one entry per season. Read paths must call this before exposing
// schedule data; any violation is a server-class fault.
func ValidateIntegrity(entries []Entry) error {
	received := make([]calendar.Season, len(entries))
	counts := make(map[calendar.Season]int, len(entries))
	for i, e := range entries {
		received[i] = e.Season
		counts[e.Season]++
	}

	expected := calendar.Seasons()
	var missing, duplicates []calendar.Season
	for _, s := range expected {
		if counts[s] == 0 {
			missing = append(missing, s)
		}
		if counts[s] > 1 {
			duplicates = append(duplicates, s)
		}
	}

	if len(entries) == len(expected) && len(missing) == 0 && len(duplicates) == 0 {
		return nil
	}

	return &IntegrityError{
		Expected:   expected,
		Received:   received,
		Missing:    missing,
		Duplicates: duplicates,
	}
}

// DuplicateSeasonError reports caller-supplied schedule input with
// repeated seasons. Unlike IntegrityError this is an ordinary conflict
// the caller can correct.
type DuplicateSeasonError struct {
	Seasons []calendar.Season
}

func (e *DuplicateSeasonError) Error() string {
	return fmt.Sprintf("duplicate schedule seasons: %s", joinSeasons(e.Seasons))
}

// InputError reports a rejected schedule input value, carrying the
// offending field so transports can surface it to the caller.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidateInput checks caller-supplied schedule entries: at least one,
// at most four, known seasons, intervals within bounds, no repeated
// seasons. Returns *DuplicateSeasonError for repeats and *InputError
// for the rest.
func ValidateInput(entries []Entry) error {
	if len(entries) == 0 {
		return &InputError{Field: "schedules", Message: "at least one entry is required"}
	}
	if len(entries) > len(calendar.Seasons()) {
		return &InputError{Field: "schedules", Message: fmt.Sprintf("at most %d entries are allowed", len(calendar.Seasons()))}
	}

	seen := make(map[calendar.Season]int, len(entries))
	for _, e := range entries {
		if !calendar.IsValidSeason(e.Season) {
			return &InputError{Field: "season", Message: fmt.Sprintf("unknown season %q", e.Season)}
		}
		if e.WateringInterval < MinInterval || e.WateringInterval > MaxInterval {
			return &InputError{Field: "watering_interval", Message: fmt.Sprintf("must be between %d and %d, got %d", MinInterval, MaxInterval, e.WateringInterval)}
		}
		if e.FertilizingInterval < MinInterval || e.FertilizingInterval > MaxInterval {
			return &InputError{Field: "fertilizing_interval", Message: fmt.Sprintf("must be between %d and %d, got %d", MinInterval, MaxInterval, e.FertilizingInterval)}
		}
		seen[e.Season]++
	}

	var dup []calendar.Season
	for _, s := range calendar.Seasons() {
		if seen[s] > 1 {
			dup = append(dup, s)
		}
	}
	if len(dup) > 0 {
		return &DuplicateSeasonError{Seasons: dup}
	}
	return nil
}

// SortCanonical orders entries spring, summer, autumn, winter.
func SortCanonical(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return calendar.SeasonIndex(entries[i].Season) < calendar.SeasonIndex(entries[j].Season)
	})
}

// FindSeason returns the entry for the given season, or false if the
// set has none.
func FindSeason(entries []Entry, s calendar.Season) (Entry, bool) {
	for _, e := range entries {
		if e.Season == s {
			return e, true
		}
	}
	return Entry{}, false
}
