package primary

import "context"

// ScheduleService defines the primary port for seasonal schedule
// operations.
type ScheduleService interface {
	// GetPlantSchedules returns the plant's four schedule entries in
	// season order. A stored set that is not exactly one entry per
	// season is a structural fault, surfaced as a
	// *schedule.IntegrityError, never repaired.
	GetPlantSchedules(ctx context.Context, userID, plantID string) ([]ScheduleEntry, error)

	// UpdatePlantSchedules upserts 1-4 entries keyed by season and
	// recomputes the plant's next-due dates from its existing
	// last-performed dates. Returns the full stored set afterwards.
	UpdatePlantSchedules(ctx context.Context, userID, plantID string, entries []ScheduleEntryInput) ([]ScheduleEntry, error)
}

// ScheduleEntry is a schedule row at the port boundary.
type ScheduleEntry struct {
	ID                  string
	Season              string
	WateringInterval    int
	FertilizingInterval int
	CreatedAt           string
	UpdatedAt           string
}

// ScheduleEntryInput is caller-supplied schedule data.
type ScheduleEntryInput struct {
	Season              string
	WateringInterval    int
	FertilizingInterval int
}
