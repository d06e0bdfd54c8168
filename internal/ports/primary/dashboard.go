package primary

import "context"

// DashboardService defines the primary port for the dashboard view:
// the requires-attention set, the paginated full list and the urgency
// stats, all over the same filtered set of plants.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID string, q DashboardQuery) (*Dashboard, error)
}

// DashboardQuery contains search, sort and page parameters for the
// dashboard. Same shape as PlantListQuery minus the attention filter.
type DashboardQuery struct {
	Search    string
	Sort      string
	Direction string
	Page      int
	Limit     int
}

// Dashboard is the aggregated dashboard payload.
type Dashboard struct {
	// RequiresAttention holds plants whose nearest due date is today or
	// earlier, ordered by (priority, name), capped at min(20, limit).
	RequiresAttention []*DashboardPlant

	// AllPlants is the requested page of the full filtered set.
	AllPlants []*DashboardPlant

	Stats      DashboardStats
	Pagination Pagination
}

// DashboardPlant augments a plant with schedule-derived annotations.
type DashboardPlant struct {
	Plant

	// FertilizingDisabled reports whether fertilizing is switched off
	// for today's season (zero-interval sentinel).
	FertilizingDisabled bool
}

// DashboardStats are computed over the entire filtered set, not the
// current page.
type DashboardStats struct {
	Total   int
	Urgent  int
	Warning int
}
