package app

import (
	"errors"
	"sort"

	"github.com/example/verdant/internal/core/calendar"
	"github.com/example/verdant/internal/core/priority"
	"github.com/example/verdant/internal/core/schedule"
	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/ports/secondary"
)

// mapScheduleInputError converts a schedule input rejection into the
// caller-facing validation shape. Duplicate seasons keep their typed
// conflict error.
func mapScheduleInputError(err error) error {
	var in *schedule.InputError
	if errors.As(err, &in) {
		return &primary.ValidationError{Field: in.Field, Message: in.Message}
	}
	return err
}

// parseStoredDate parses a date column value. Stored dates are written
// exclusively by this engine, so a malformed value is treated as unset
// rather than failing the whole read.
func parseStoredDate(s string) calendar.Date {
	if s == "" {
		return calendar.Date{}
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return calendar.Date{}
	}
	return d
}

// recordToPlant maps a stored plant to its port shape, computing the
// priority tier against today.
func recordToPlant(r *secondary.PlantRecord, today calendar.Date) primary.Plant {
	tier := priority.Classify(
		parseStoredDate(r.NextWateringAt),
		parseStoredDate(r.NextFertilizingAt),
		today,
	)
	return primary.Plant{
		ID:                r.ID,
		Name:              r.Name,
		IconKey:           r.IconKey,
		ColorHex:          r.ColorHex,
		Difficulty:        r.Difficulty,
		LastWateredAt:     r.LastWateredAt,
		LastFertilizedAt:  r.LastFertilizedAt,
		NextWateringAt:    r.NextWateringAt,
		NextFertilizingAt: r.NextFertilizingAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		Priority:          int(tier),
	}
}

// scheduleRecordToEntry maps a stored schedule row to a core entry.
func scheduleRecordToEntry(r *secondary.ScheduleRecord) schedule.Entry {
	return schedule.Entry{
		Season:              calendar.Season(r.Season),
		WateringInterval:    r.WateringInterval,
		FertilizingInterval: r.FertilizingInterval,
	}
}

func scheduleRecordsToEntries(records []*secondary.ScheduleRecord) []schedule.Entry {
	entries := make([]schedule.Entry, len(records))
	for i, r := range records {
		entries[i] = scheduleRecordToEntry(r)
	}
	return entries
}

// scheduleRecordToPort maps a stored schedule row to its port shape.
func scheduleRecordToPort(r *secondary.ScheduleRecord) primary.ScheduleEntry {
	return primary.ScheduleEntry{
		ID:                  r.ID,
		Season:              r.Season,
		WateringInterval:    r.WateringInterval,
		FertilizingInterval: r.FertilizingInterval,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// sortedPortSchedules maps schedule rows to the port shape in canonical
// season order.
func sortedPortSchedules(records []*secondary.ScheduleRecord) []primary.ScheduleEntry {
	sorted := make([]*secondary.ScheduleRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return calendar.SeasonIndex(calendar.Season(sorted[i].Season)) < calendar.SeasonIndex(calendar.Season(sorted[j].Season))
	})
	out := make([]primary.ScheduleEntry, len(sorted))
	for i, r := range sorted {
		out[i] = scheduleRecordToPort(r)
	}
	return out
}

// careLogRecordToPort maps a stored care log entry to its port shape.
func careLogRecordToPort(r *secondary.CareLogRecord) primary.CareLogEntry {
	return primary.CareLogEntry{
		ID:          r.ID,
		ActionType:  r.ActionType,
		PerformedAt: r.PerformedAt,
		CreatedAt:   r.CreatedAt,
	}
}
