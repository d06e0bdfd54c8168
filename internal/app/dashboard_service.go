package app

import (
	"context"
	"sort"

	"github.com/example/verdant/internal/core/calendar"
	"github.com/example/verdant/internal/core/priority"
	"github.com/example/verdant/internal/core/schedule"
	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/ports/secondary"
)

// attentionCap bounds the requires-attention set independently of the
// page limit.
const attentionCap = 20

// DashboardServiceImpl implements the DashboardService interface.
type DashboardServiceImpl struct {
	plantRepo secondary.PlantRepository
	cache     *ScheduleCache
	clock     secondary.Clock
}

// NewDashboardService creates a new DashboardService with injected dependencies.
func NewDashboardService(
	plantRepo secondary.PlantRepository,
	cache *ScheduleCache,
	clock secondary.Clock,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		plantRepo: plantRepo,
		cache:     cache,
		clock:     clock,
	}
}

// GetDashboard builds the attention set, the requested page of the
// filtered list and the urgency stats in one pass over the filtered
// set.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, userID string, q primary.DashboardQuery) (*primary.Dashboard, error) {
	page, limit, err := normalizePage(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	sortKey := q.Sort
	if sortKey == "" {
		sortKey = "priority"
	}
	ascending, err := parseDirection(q.Direction)
	if err != nil {
		return nil, err
	}

	// Stats and the attention set span the whole filtered set, so the
	// dashboard always materializes fully regardless of sort key.
	records, err := s.plantRepo.List(ctx, userID, secondary.PlantListOptions{
		Search:    q.Search,
		OrderBy:   "name",
		Ascending: true,
	})
	if err != nil {
		return nil, &primary.StorageError{Op: "list plants", Err: err}
	}

	today := calendar.FromTime(s.clock.Now())

	plants := make([]*primary.DashboardPlant, len(records))
	stats := primary.DashboardStats{Total: len(records)}
	var attention []*primary.DashboardPlant
	for i, r := range records {
		p := &primary.DashboardPlant{Plant: recordToPlant(r, today)}
		p.FertilizingDisabled = s.fertilizingDisabled(ctx, r.ID, today)
		plants[i] = p

		switch priority.Tier(p.Priority) {
		case priority.Urgent:
			stats.Urgent++
		case priority.Warning:
			stats.Warning++
		}
		if needsAttention(r, today) {
			attention = append(attention, p)
		}
	}

	// Attention set: most urgent first, names as tiebreak, capped.
	sort.SliceStable(attention, func(i, j int) bool {
		if attention[i].Priority != attention[j].Priority {
			return attention[i].Priority < attention[j].Priority
		}
		return priority.CompareNames(attention[i].Name, attention[j].Name) < 0
	})
	maxAttention := attentionCap
	if limit < maxAttention {
		maxAttention = limit
	}
	if len(attention) > maxAttention {
		attention = attention[:maxAttention]
	}

	switch sortKey {
	case "priority":
		sort.SliceStable(plants, func(i, j int) bool {
			if plants[i].Priority != plants[j].Priority {
				return plants[i].Priority < plants[j].Priority
			}
			return priority.CompareNames(plants[i].Name, plants[j].Name) < 0
		})
	case "name":
		sort.SliceStable(plants, func(i, j int) bool {
			return priority.CompareNames(plants[i].Name, plants[j].Name) < 0
		})
	case "created":
		sort.SliceStable(plants, func(i, j int) bool {
			return plants[i].CreatedAt < plants[j].CreatedAt
		})
	default:
		return nil, &primary.ValidationError{Field: "sort", Message: "must be priority, name or created"}
	}
	if !ascending {
		for i, j := 0, len(plants)-1; i < j; i, j = i+1, j-1 {
			plants[i], plants[j] = plants[j], plants[i]
		}
	}

	total := len(plants)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &primary.Dashboard{
		RequiresAttention: attention,
		AllPlants:         plants[start:end],
		Stats:             stats,
		Pagination:        makePagination(page, limit, total),
	}, nil
}

// fertilizingDisabled reports whether today's season has the
// zero-interval sentinel for the plant. Cache misses or broken sets
// degrade to "not disabled" rather than failing the dashboard.
func (s *DashboardServiceImpl) fertilizingDisabled(ctx context.Context, plantID string, today calendar.Date) bool {
	entries, state, err := s.cache.Get(ctx, plantID)
	if err != nil || state != ScheduleReady {
		return false
	}
	entry, ok := schedule.FindSeason(entries, calendar.SeasonOf(today))
	if !ok {
		return false
	}
	return entry.FertilizingInterval == 0
}

// Ensure DashboardServiceImpl implements the interface
var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
