// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives the record store.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a record does not exist
// in the caller's ownership scope. Repositories never distinguish
// "absent" from "owned by someone else".
var ErrNotFound = errors.New("record not found")

// PlantRepository defines the secondary port for plant persistence.
// Every method is scoped to a user id; a plant owned by another user
// behaves exactly like a missing plant.
type PlantRepository interface {
	// Create persists a new plant.
	Create(ctx context.Context, plant *PlantRecord) error

	// GetByID retrieves a plant by id within the user's scope.
	GetByID(ctx context.Context, userID, plantID string) (*PlantRecord, error)

	// UpdateDisplayFields updates the caller-editable fields of a plant.
	UpdateDisplayFields(ctx context.Context, plant *PlantRecord) error

	// UpdateNextDates overwrites the derived next-due fields.
	// Empty strings persist as NULL.
	UpdateNextDates(ctx context.Context, userID, plantID, nextWateringAt, nextFertilizingAt string) error

	// Delete removes a plant; schedules and care log entries cascade.
	// Returns ErrNotFound when nothing was deleted.
	Delete(ctx context.Context, userID, plantID string) error

	// List retrieves plants matching the options. A zero Limit means no
	// limit (full materialization for computed-priority sorting).
	List(ctx context.Context, userID string, opts PlantListOptions) ([]*PlantRecord, error)

	// Count returns the number of plants matching the search filter.
	Count(ctx context.Context, userID, search string) (int, error)
}

// PlantRecord represents a plant as stored in persistence. Date-only
// fields hold YYYY-MM-DD strings; empty string means NULL.
type PlantRecord struct {
	ID                      string
	UserID                  string
	Name                    string
	IconKey                 string
	ColorHex                string
	Difficulty              string
	Soil                    string
	Pot                     string
	Position                string
	WateringInstructions    string
	RepottingInstructions   string
	PropagationInstructions string
	Notes                   string
	LastWateredAt           string
	LastFertilizedAt        string
	NextWateringAt          string
	NextFertilizingAt       string
	CreatedAt               string
	UpdatedAt               string
}

// PlantListOptions contains filter, order and page options for listing
// plants. OrderBy may be "name" or "created_at"; when ordering by
// created_at, name is applied as a secondary ascending order so
// pagination stays deterministic.
type PlantListOptions struct {
	Search    string // case-insensitive substring match on name
	OrderBy   string
	Ascending bool
	Limit     int
	Offset    int
}

// ScheduleRepository defines the secondary port for seasonal schedule
// persistence. Rows are keyed (plant, season); ownership is enforced by
// the caller resolving the plant first.
type ScheduleRepository interface {
	// GetForPlant retrieves all schedule rows for a plant.
	GetForPlant(ctx context.Context, plantID string) ([]*ScheduleRecord, error)

	// GetForPlantSeason retrieves the row for one season, or ErrNotFound.
	GetForPlantSeason(ctx context.Context, plantID, season string) (*ScheduleRecord, error)

	// Upsert inserts or updates rows keyed (plant, season), leaving
	// seasons not mentioned untouched. Runs in one transaction.
	Upsert(ctx context.Context, plantID string, entries []*ScheduleRecord) error

	// ReplaceForPlant deletes all rows for the plant and inserts the
	// given set in one transaction. Used by full plant updates.
	ReplaceForPlant(ctx context.Context, plantID string, entries []*ScheduleRecord) error
}

// ScheduleRecord represents a seasonal schedule row.
type ScheduleRecord struct {
	ID                  string
	PlantID             string
	Season              string
	WateringInterval    int
	FertilizingInterval int
	CreatedAt           string
	UpdatedAt           string
}

// CareLogRepository defines the secondary port for the care log.
// Entries are immutable; they disappear only via plant deletion.
type CareLogRepository interface {
	// RecordAction appends a care log entry and applies the plant's
	// last/next update for the acted-on track in a single transaction.
	// If either write fails, neither is applied.
	RecordAction(ctx context.Context, entry *CareLogRecord, update PlantCareUpdate) error

	// ListForPlant retrieves entries ordered by performed date
	// descending, creation time descending as tiebreak.
	ListForPlant(ctx context.Context, plantID string, filters CareLogFilters) ([]*CareLogRecord, error)
}

// CareLogRecord represents one past care event.
type CareLogRecord struct {
	ID          string
	PlantID     string
	ActionType  string
	PerformedAt string // YYYY-MM-DD
	CreatedAt   string // RFC3339Nano, tiebreaker for same-day entries
}

// PlantCareUpdate carries the derived-field update committed together
// with a care log entry. NextAt empty persists as NULL.
type PlantCareUpdate struct {
	UserID     string
	PlantID    string
	ActionType string
	LastAt     string
	NextAt     string
}

// CareLogFilters contains filter options for listing care log entries.
type CareLogFilters struct {
	ActionType string // optional
	Limit      int
}
