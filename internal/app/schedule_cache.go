package app

import (
	"context"
	"sync"
	"time"

	"github.com/example/verdant/internal/core/calendar"
	"github.com/example/verdant/internal/core/schedule"
	"github.com/example/verdant/internal/eventbus"
	"github.com/example/verdant/internal/ports/secondary"
)

// scheduleCacheTTL bounds how long a cached schedule set may serve
// reads before being reloaded.
const scheduleCacheTTL = 5 * time.Minute

// ScheduleState describes what the cache knows about a plant's
// schedule set.
type ScheduleState int

const (
	// ScheduleReady means a complete, valid set is available.
	ScheduleReady ScheduleState = iota
	// ScheduleMissing means the plant has no schedule rows at all.
	ScheduleMissing
	// ScheduleIncomplete means rows exist but violate the
	// one-entry-per-season invariant.
	ScheduleIncomplete
)

type cachedSchedule struct {
	entries  []schedule.Entry
	state    ScheduleState
	loadedAt time.Time
}

// ScheduleCache memoizes per-plant schedule sets for read-heavy paths
// (dashboard annotations). Entries expire after a short TTL and are
// evicted eagerly when the bus reports a schedule update or plant
// deletion, so writes through this process are never served stale.
type ScheduleCache struct {
	repo  secondary.ScheduleRepository
	clock secondary.Clock

	mu      sync.Mutex
	entries map[string]cachedSchedule
}

// NewScheduleCache creates a schedule cache wired to the event bus for
// invalidation.
func NewScheduleCache(repo secondary.ScheduleRepository, clock secondary.Clock, bus *eventbus.Bus) *ScheduleCache {
	c := &ScheduleCache{
		repo:    repo,
		clock:   clock,
		entries: map[string]cachedSchedule{},
	}
	bus.Subscribe(func(e eventbus.Event) {
		switch e.Type {
		case eventbus.TypeScheduleUpdated, eventbus.TypePlantDeleted:
			c.Invalidate(e.PlantID)
		}
	})
	return c
}

// Get returns the plant's schedule entries and their state, loading
// from the repository when the cache is cold or expired.
func (c *ScheduleCache) Get(ctx context.Context, plantID string) ([]schedule.Entry, ScheduleState, error) {
	now := c.clock.Now()

	c.mu.Lock()
	cached, ok := c.entries[plantID]
	c.mu.Unlock()
	if ok && now.Sub(cached.loadedAt) < scheduleCacheTTL {
		return cached.entries, cached.state, nil
	}

	records, err := c.repo.GetForPlant(ctx, plantID)
	if err != nil {
		return nil, ScheduleMissing, err
	}

	entries := make([]schedule.Entry, len(records))
	for i, r := range records {
		entries[i] = schedule.Entry{
			Season:              calendar.Season(r.Season),
			WateringInterval:    r.WateringInterval,
			FertilizingInterval: r.FertilizingInterval,
		}
	}

	state := ScheduleReady
	if len(entries) == 0 {
		state = ScheduleMissing
	} else if schedule.ValidateIntegrity(entries) != nil {
		state = ScheduleIncomplete
	}

	c.mu.Lock()
	c.entries[plantID] = cachedSchedule{entries: entries, state: state, loadedAt: now}
	c.mu.Unlock()

	return entries, state, nil
}

// Invalidate drops the cached set for a plant.
func (c *ScheduleCache) Invalidate(plantID string) {
	c.mu.Lock()
	delete(c.entries, plantID)
	c.mu.Unlock()
}
