package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/example/verdant/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// fixedClock implements secondary.Clock with a pinned instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// mockPlantRepository implements secondary.PlantRepository for testing.
type mockPlantRepository struct {
	plants    map[string]*secondary.PlantRecord
	createErr error
	getErr    error
	listErr   error
}

func newMockPlantRepository() *mockPlantRepository {
	return &mockPlantRepository{plants: make(map[string]*secondary.PlantRecord)}
}

func (m *mockPlantRepository) Create(ctx context.Context, plant *secondary.PlantRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *plant
	if cp.CreatedAt == "" {
		cp.CreatedAt = "2025-06-01T00:00:00Z"
	}
	if cp.UpdatedAt == "" {
		cp.UpdatedAt = cp.CreatedAt
	}
	m.plants[plant.ID] = &cp
	return nil
}

func (m *mockPlantRepository) GetByID(ctx context.Context, userID, plantID string) (*secondary.PlantRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if p, ok := m.plants[plantID]; ok && p.UserID == userID {
		cp := *p
		return &cp, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockPlantRepository) UpdateDisplayFields(ctx context.Context, plant *secondary.PlantRecord) error {
	existing, ok := m.plants[plant.ID]
	if !ok || existing.UserID != plant.UserID {
		return secondary.ErrNotFound
	}
	existing.Name = plant.Name
	existing.IconKey = plant.IconKey
	existing.ColorHex = plant.ColorHex
	existing.Difficulty = plant.Difficulty
	existing.Soil = plant.Soil
	existing.Pot = plant.Pot
	existing.Position = plant.Position
	existing.WateringInstructions = plant.WateringInstructions
	existing.RepottingInstructions = plant.RepottingInstructions
	existing.PropagationInstructions = plant.PropagationInstructions
	existing.Notes = plant.Notes
	return nil
}

func (m *mockPlantRepository) UpdateNextDates(ctx context.Context, userID, plantID, nextWateringAt, nextFertilizingAt string) error {
	p, ok := m.plants[plantID]
	if !ok || p.UserID != userID {
		return secondary.ErrNotFound
	}
	p.NextWateringAt = nextWateringAt
	p.NextFertilizingAt = nextFertilizingAt
	return nil
}

func (m *mockPlantRepository) Delete(ctx context.Context, userID, plantID string) error {
	if p, ok := m.plants[plantID]; ok && p.UserID == userID {
		delete(m.plants, plantID)
		return nil
	}
	return secondary.ErrNotFound
}

func (m *mockPlantRepository) List(ctx context.Context, userID string, opts secondary.PlantListOptions) ([]*secondary.PlantRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.PlantRecord
	for _, p := range m.plants {
		if p.UserID != userID {
			continue
		}
		if opts.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(opts.Search)) {
			continue
		}
		cp := *p
		result = append(result, &cp)
	}

	sort.SliceStable(result, func(i, j int) bool {
		var less bool
		if opts.OrderBy == "created_at" {
			less = result[i].CreatedAt < result[j].CreatedAt
		} else {
			less = strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		}
		if !opts.Ascending {
			return !less
		}
		return less
	})

	if opts.Limit > 0 {
		start := opts.Offset
		if start > len(result) {
			start = len(result)
		}
		end := start + opts.Limit
		if end > len(result) {
			end = len(result)
		}
		result = result[start:end]
	}
	return result, nil
}

func (m *mockPlantRepository) Count(ctx context.Context, userID, search string) (int, error) {
	count := 0
	for _, p := range m.plants {
		if p.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		count++
	}
	return count, nil
}

// mockScheduleRepository implements secondary.ScheduleRepository for testing.
type mockScheduleRepository struct {
	schedules map[string]map[string]*secondary.ScheduleRecord // plantID -> season
	getErr    error
	writeErr  error
}

func newMockScheduleRepository() *mockScheduleRepository {
	return &mockScheduleRepository{schedules: make(map[string]map[string]*secondary.ScheduleRecord)}
}

func (m *mockScheduleRepository) set(plantID, season string, watering, fertilizing int) {
	if m.schedules[plantID] == nil {
		m.schedules[plantID] = make(map[string]*secondary.ScheduleRecord)
	}
	m.schedules[plantID][season] = &secondary.ScheduleRecord{
		ID:                  plantID + "-" + season,
		PlantID:             plantID,
		Season:              season,
		WateringInterval:    watering,
		FertilizingInterval: fertilizing,
	}
}

// setFullYear stores one entry per season with the same intervals.
func (m *mockScheduleRepository) setFullYear(plantID string, watering, fertilizing int) {
	for _, season := range []string{"spring", "summer", "autumn", "winter"} {
		m.set(plantID, season, watering, fertilizing)
	}
}

func (m *mockScheduleRepository) GetForPlant(ctx context.Context, plantID string) ([]*secondary.ScheduleRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*secondary.ScheduleRecord
	for _, r := range m.schedules[plantID] {
		cp := *r
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Season < result[j].Season })
	return result, nil
}

func (m *mockScheduleRepository) GetForPlantSeason(ctx context.Context, plantID, season string) (*secondary.ScheduleRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if r, ok := m.schedules[plantID][season]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockScheduleRepository) Upsert(ctx context.Context, plantID string, entries []*secondary.ScheduleRecord) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	for _, e := range entries {
		m.set(plantID, e.Season, e.WateringInterval, e.FertilizingInterval)
	}
	return nil
}

func (m *mockScheduleRepository) ReplaceForPlant(ctx context.Context, plantID string, entries []*secondary.ScheduleRecord) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	delete(m.schedules, plantID)
	for _, e := range entries {
		m.set(plantID, e.Season, e.WateringInterval, e.FertilizingInterval)
	}
	return nil
}

// mockCareLogRepository implements secondary.CareLogRepository for
// testing. It shares the plant map so RecordAction can apply the
// paired plant update the way the SQLite transaction does.
type mockCareLogRepository struct {
	entries   []*secondary.CareLogRecord
	plants    *mockPlantRepository
	recordErr error
}

func newMockCareLogRepository(plants *mockPlantRepository) *mockCareLogRepository {
	return &mockCareLogRepository{plants: plants}
}

func (m *mockCareLogRepository) RecordAction(ctx context.Context, entry *secondary.CareLogRecord, update secondary.PlantCareUpdate) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	p, ok := m.plants.plants[update.PlantID]
	if !ok || p.UserID != update.UserID {
		return secondary.ErrNotFound
	}
	switch update.ActionType {
	case "watering":
		p.LastWateredAt = update.LastAt
		p.NextWateringAt = update.NextAt
	case "fertilizing":
		p.LastFertilizedAt = update.LastAt
		p.NextFertilizingAt = update.NextAt
	}
	cp := *entry
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *mockCareLogRepository) ListForPlant(ctx context.Context, plantID string, filters secondary.CareLogFilters) ([]*secondary.CareLogRecord, error) {
	var result []*secondary.CareLogRecord
	for _, e := range m.entries {
		if e.PlantID != plantID {
			continue
		}
		if filters.ActionType != "" && e.ActionType != filters.ActionType {
			continue
		}
		cp := *e
		result = append(result, &cp)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].PerformedAt != result[j].PerformedAt {
			return result[i].PerformedAt > result[j].PerformedAt
		}
		return result[i].CreatedAt > result[j].CreatedAt
	})
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}
