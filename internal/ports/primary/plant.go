// Package primary defines the primary ports of the application: the
// service interfaces and boundary types exposed to transports (the CLI
// here, an HTTP layer in other deployments).
package primary

import "context"

// PlantService defines the primary port for plant operations.
type PlantService interface {
	// CreatePlant creates a plant, optionally with initial schedules.
	// Derived date fields start unset.
	CreatePlant(ctx context.Context, userID string, req CreatePlantRequest) (*PlantDetail, error)

	// GetPlant retrieves one plant with schedules and recent care log.
	GetPlant(ctx context.Context, userID, plantID string) (*PlantDetail, error)

	// UpdatePlant updates display fields and optionally replaces the
	// schedule set, recomputing next-due dates.
	UpdatePlant(ctx context.Context, userID, plantID string, req UpdatePlantRequest) (*PlantDetail, error)

	// DeletePlant removes a plant, cascading schedules and care log.
	DeletePlant(ctx context.Context, userID, plantID string) error

	// ListPlants searches, sorts and paginates the user's plants.
	ListPlants(ctx context.Context, userID string, q PlantListQuery) (*PlantListResult, error)
}

// Plant is a plant at the port boundary. Date-only fields use
// YYYY-MM-DD, empty when unset. Priority is computed per read and never
// stored.
type Plant struct {
	ID                string
	Name              string
	IconKey           string
	ColorHex          string
	Difficulty        string
	LastWateredAt     string
	LastFertilizedAt  string
	NextWateringAt    string
	NextFertilizingAt string
	CreatedAt         string
	UpdatedAt         string
	Priority          int
}

// PlantDetail is a plant with its related data.
type PlantDetail struct {
	Plant                   Plant
	Soil                    string
	Pot                     string
	Position                string
	WateringInstructions    string
	RepottingInstructions   string
	PropagationInstructions string
	Notes                   string
	Schedules               []ScheduleEntry
	RecentCareLog           []CareLogEntry
}

// CreatePlantRequest contains parameters for creating a plant.
type CreatePlantRequest struct {
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
	Schedules               []ScheduleEntryInput // optional
}

// UpdatePlantRequest contains parameters for updating a plant. Nil
// pointer fields are left untouched; a nil Schedules slice leaves the
// schedule set alone while an empty one clears it.
type UpdatePlantRequest struct {
	Name                    *string
	IconKey                 *string
	ColorHex                *string
	Difficulty              *string
	Soil                    *string
	Pot                     *string
	Position                *string
	WateringInstructions    *string
	RepottingInstructions   *string
	PropagationInstructions *string
	Notes                   *string
	Schedules               []ScheduleEntryInput
	ReplaceSchedules        bool // distinguishes "clear all" from "leave alone" when Schedules is empty
}

// PlantListQuery contains search, sort and page parameters.
type PlantListQuery struct {
	Search             string
	Sort               string // "priority" (default), "name", "created"
	Direction          string // "asc" (default), "desc"
	Page               int    // 1-based; defaults to 1
	Limit              int    // 1..20; defaults to 20
	NeedsAttentionOnly bool
}

// PlantListResult is one page of plants plus pagination metadata.
type PlantListResult struct {
	Items      []*Plant
	Pagination Pagination
}

// Pagination describes the page window of a list result.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}
