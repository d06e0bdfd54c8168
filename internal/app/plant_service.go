package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/google/uuid"

	"github.com/example/verdant/internal/core/calendar"
	"github.com/example/verdant/internal/core/priority"
	"github.com/example/verdant/internal/core/schedule"
	"github.com/example/verdant/internal/eventbus"
	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/ports/secondary"
)

// Display field bounds, matching the public API contract.
const (
	maxNameLength = 100
	maxTextLength = 2000

	defaultPageLimit = 20
	maxPageLimit     = 20

	recentCareLogLimit = 5
)

var colorHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// PlantServiceImpl implements the PlantService interface.
type PlantServiceImpl struct {
	plantRepo    secondary.PlantRepository
	scheduleRepo secondary.ScheduleRepository
	careLogRepo  secondary.CareLogRepository
	clock        secondary.Clock
	bus          *eventbus.Bus
	locks        *PlantLocks
}

// NewPlantService creates a new PlantService with injected dependencies.
func NewPlantService(
	plantRepo secondary.PlantRepository,
	scheduleRepo secondary.ScheduleRepository,
	careLogRepo secondary.CareLogRepository,
	clock secondary.Clock,
	bus *eventbus.Bus,
	locks *PlantLocks,
) *PlantServiceImpl {
	return &PlantServiceImpl{
		plantRepo:    plantRepo,
		scheduleRepo: scheduleRepo,
		careLogRepo:  careLogRepo,
		clock:        clock,
		bus:          bus,
		locks:        locks,
	}
}

// CreatePlant creates a plant, optionally with initial schedules.
func (s *PlantServiceImpl) CreatePlant(ctx context.Context, userID string, req primary.CreatePlantRequest) (*primary.PlantDetail, error) {
	if err := validateDisplayFields(req.Name, req.ColorHex, req.Difficulty, req.Notes); err != nil {
		return nil, err
	}

	var entries []schedule.Entry
	if len(req.Schedules) > 0 {
		entries = inputToEntries(req.Schedules)
		if err := schedule.ValidateInput(entries); err != nil {
			return nil, mapScheduleInputError(err)
		}
	}

	record := &secondary.PlantRecord{
		ID:                      uuid.NewString(),
		UserID:                  userID,
		Name:                    req.Name,
		IconKey:                 req.IconKey,
		ColorHex:                req.ColorHex,
		Difficulty:              req.Difficulty,
		Soil:                    req.Soil,
		Pot:                     req.Pot,
		Position:                req.Position,
		WateringInstructions:    req.WateringInstructions,
		RepottingInstructions:   req.RepottingInstructions,
		PropagationInstructions: req.PropagationInstructions,
		Notes:                   req.Notes,
	}
	if err := s.plantRepo.Create(ctx, record); err != nil {
		return nil, &primary.StorageError{Op: "create plant", PlantID: record.ID, Err: err}
	}

	if len(entries) > 0 {
		if err := s.scheduleRepo.ReplaceForPlant(ctx, record.ID, entriesToRecords(record.ID, entries)); err != nil {
			return nil, &primary.StorageError{Op: "store schedules", PlantID: record.ID, Err: err}
		}
	}

	return s.GetPlant(ctx, userID, record.ID)
}

// GetPlant retrieves one plant with schedules and recent care log.
func (s *PlantServiceImpl) GetPlant(ctx context.Context, userID, plantID string) (*primary.PlantDetail, error) {
	record, err := s.plantRepo.GetByID(ctx, userID, plantID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, primary.ErrNotFound
	}
	if err != nil {
		return nil, &primary.StorageError{Op: "get plant", PlantID: plantID, Err: err}
	}

	schedules, err := s.scheduleRepo.GetForPlant(ctx, plantID)
	if err != nil {
		return nil, &primary.StorageError{Op: "load schedules", PlantID: plantID, Err: err}
	}

	logEntries, err := s.careLogRepo.ListForPlant(ctx, plantID, secondary.CareLogFilters{Limit: recentCareLogLimit})
	if err != nil {
		return nil, &primary.StorageError{Op: "load care log", PlantID: plantID, Err: err}
	}

	today := calendar.FromTime(s.clock.Now())
	detail := &primary.PlantDetail{
		Plant:                   recordToPlant(record, today),
		Soil:                    record.Soil,
		Pot:                     record.Pot,
		Position:                record.Position,
		WateringInstructions:    record.WateringInstructions,
		RepottingInstructions:   record.RepottingInstructions,
		PropagationInstructions: record.PropagationInstructions,
		Notes:                   record.Notes,
		Schedules:               sortedPortSchedules(schedules),
	}
	for _, e := range logEntries {
		detail.RecentCareLog = append(detail.RecentCareLog, careLogRecordToPort(e))
	}
	return detail, nil
}

// UpdatePlant updates display fields and optionally replaces the
// schedule set.
func (s *PlantServiceImpl) UpdatePlant(ctx context.Context, userID, plantID string, req primary.UpdatePlantRequest) (*primary.PlantDetail, error) {
	unlock := s.locks.Lock(plantID)
	defer unlock()

	record, err := s.plantRepo.GetByID(ctx, userID, plantID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, primary.ErrNotFound
	}
	if err != nil {
		return nil, &primary.StorageError{Op: "get plant", PlantID: plantID, Err: err}
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&record.Name, req.Name)
	applyString(&record.IconKey, req.IconKey)
	applyString(&record.ColorHex, req.ColorHex)
	applyString(&record.Difficulty, req.Difficulty)
	applyString(&record.Soil, req.Soil)
	applyString(&record.Pot, req.Pot)
	applyString(&record.Position, req.Position)
	applyString(&record.WateringInstructions, req.WateringInstructions)
	applyString(&record.RepottingInstructions, req.RepottingInstructions)
	applyString(&record.PropagationInstructions, req.PropagationInstructions)
	applyString(&record.Notes, req.Notes)

	if err := validateDisplayFields(record.Name, record.ColorHex, record.Difficulty, record.Notes); err != nil {
		return nil, err
	}

	var entries []schedule.Entry
	if req.ReplaceSchedules && len(req.Schedules) > 0 {
		entries = inputToEntries(req.Schedules)
		if err := schedule.ValidateInput(entries); err != nil {
			return nil, mapScheduleInputError(err)
		}
	}

	if err := s.plantRepo.UpdateDisplayFields(ctx, record); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrNotFound
		}
		return nil, &primary.StorageError{Op: "update plant", PlantID: plantID, Err: err}
	}

	if req.ReplaceSchedules {
		if err := s.scheduleRepo.ReplaceForPlant(ctx, plantID, entriesToRecords(plantID, entries)); err != nil {
			return nil, &primary.StorageError{Op: "replace schedules", PlantID: plantID, Err: err}
		}

		// A new schedule set shifts the cadence; rederive both next-due
		// dates from the existing last-performed dates.
		next := schedule.Recompute(
			parseStoredDate(record.LastWateredAt),
			parseStoredDate(record.LastFertilizedAt),
			entries,
		)
		if err := s.plantRepo.UpdateNextDates(ctx, userID, plantID, next.Watering.String(), next.Fertilizing.String()); err != nil {
			return nil, &primary.StorageError{Op: "update next dates", PlantID: plantID, Err: err}
		}

		s.bus.Publish(eventbus.Event{Type: eventbus.TypeScheduleUpdated, PlantID: plantID})
	}

	return s.GetPlant(ctx, userID, plantID)
}

// DeletePlant removes a plant, cascading schedules and care log.
func (s *PlantServiceImpl) DeletePlant(ctx context.Context, userID, plantID string) error {
	unlock := s.locks.Lock(plantID)
	defer unlock()

	err := s.plantRepo.Delete(ctx, userID, plantID)
	if errors.Is(err, secondary.ErrNotFound) {
		return primary.ErrNotFound
	}
	if err != nil {
		return &primary.StorageError{Op: "delete plant", PlantID: plantID, Err: err}
	}

	s.locks.Forget(plantID)
	s.bus.Publish(eventbus.Event{Type: eventbus.TypePlantDeleted, PlantID: plantID})
	return nil
}

// ListPlants searches, sorts and paginates the user's plants.
func (s *PlantServiceImpl) ListPlants(ctx context.Context, userID string, q primary.PlantListQuery) (*primary.PlantListResult, error) {
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

	today := calendar.FromTime(s.clock.Now())

	// Priority ordering and the attention filter depend on computed
	// state, so those paths materialize the whole filtered set and
	// page in memory. Stored-column sorts push down to SQL.
	if sortKey == "priority" || q.NeedsAttentionOnly {
		records, err := s.plantRepo.List(ctx, userID, secondary.PlantListOptions{
			Search:    q.Search,
			OrderBy:   "name",
			Ascending: true,
		})
		if err != nil {
			return nil, &primary.StorageError{Op: "list plants", Err: err}
		}

		plants := make([]*primary.Plant, 0, len(records))
		for _, r := range records {
			p := recordToPlant(r, today)
			if q.NeedsAttentionOnly && !needsAttention(r, today) {
				continue
			}
			plants = append(plants, &p)
		}

		if sortKey == "priority" {
			sort.SliceStable(plants, func(i, j int) bool {
				if plants[i].Priority != plants[j].Priority {
					return plants[i].Priority < plants[j].Priority
				}
				return priority.CompareNames(plants[i].Name, plants[j].Name) < 0
			})
		} else if err := sortPlants(plants, sortKey); err != nil {
			return nil, err
		}
		if !ascending {
			reversePlants(plants)
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

		return &primary.PlantListResult{
			Items:      plants[start:end],
			Pagination: makePagination(page, limit, total),
		}, nil
	}

	orderBy, err := sortColumn(sortKey)
	if err != nil {
		return nil, err
	}

	records, err := s.plantRepo.List(ctx, userID, secondary.PlantListOptions{
		Search:    q.Search,
		OrderBy:   orderBy,
		Ascending: ascending,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		return nil, &primary.StorageError{Op: "list plants", Err: err}
	}

	total, err := s.plantRepo.Count(ctx, userID, q.Search)
	if err != nil {
		return nil, &primary.StorageError{Op: "count plants", Err: err}
	}

	plants := make([]*primary.Plant, len(records))
	for i, r := range records {
		p := recordToPlant(r, today)
		plants[i] = &p
	}

	return &primary.PlantListResult{
		Items:      plants,
		Pagination: makePagination(page, limit, total),
	}, nil
}

// needsAttention reports whether the plant's nearest due date is today
// or earlier.
func needsAttention(r *secondary.PlantRecord, today calendar.Date) bool {
	nearest := calendar.MinDate(parseStoredDate(r.NextWateringAt), parseStoredDate(r.NextFertilizingAt))
	return !nearest.IsZero() && !nearest.After(today)
}

func validateDisplayFields(name, colorHex, difficulty, notes string) error {
	if name == "" {
		return &primary.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if len(name) > maxNameLength {
		return &primary.ValidationError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	}
	if colorHex != "" && !colorHexPattern.MatchString(colorHex) {
		return &primary.ValidationError{Field: "color_hex", Message: "must match #RRGGBB"}
	}
	switch difficulty {
	case "", "easy", "medium", "hard":
	default:
		return &primary.ValidationError{Field: "difficulty", Message: "must be easy, medium or hard"}
	}
	if len(notes) > maxTextLength {
		return &primary.ValidationError{Field: "notes", Message: fmt.Sprintf("must be at most %d characters", maxTextLength)}
	}
	return nil
}

func normalizePage(page, limit int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return 0, 0, &primary.ValidationError{Field: "page", Message: "must be at least 1"}
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit < 1 || limit > maxPageLimit {
		return 0, 0, &primary.ValidationError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxPageLimit)}
	}
	return page, limit, nil
}

func parseDirection(direction string) (ascending bool, err error) {
	switch direction {
	case "", "asc":
		return true, nil
	case "desc":
		return false, nil
	}
	return false, &primary.ValidationError{Field: "direction", Message: "must be asc or desc"}
}

func sortColumn(sortKey string) (string, error) {
	switch sortKey {
	case "name":
		return "name", nil
	case "created":
		return "created_at", nil
	}
	return "", &primary.ValidationError{Field: "sort", Message: "must be priority, name or created"}
}

// sortPlants orders an in-memory set by a stored-column key. Used when
// the attention filter forces full materialization for a non-priority
// sort.
func sortPlants(plants []*primary.Plant, sortKey string) error {
	switch sortKey {
	case "name":
		sort.SliceStable(plants, func(i, j int) bool {
			return priority.CompareNames(plants[i].Name, plants[j].Name) < 0
		})
	case "created":
		sort.SliceStable(plants, func(i, j int) bool {
			return plants[i].CreatedAt < plants[j].CreatedAt
		})
	default:
		return &primary.ValidationError{Field: "sort", Message: "must be priority, name or created"}
	}
	return nil
}

// reversePlants flips the whole ordered sequence. Descending direction
// reverses the complete ordering, tiebreaks included.
func reversePlants(plants []*primary.Plant) {
	for i, j := 0, len(plants)-1; i < j; i, j = i+1, j-1 {
		plants[i], plants[j] = plants[j], plants[i]
	}
}

func makePagination(page, limit, total int) primary.Pagination {
	totalPages := (total + limit - 1) / limit
	return primary.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func inputToEntries(inputs []primary.ScheduleEntryInput) []schedule.Entry {
	entries := make([]schedule.Entry, len(inputs))
	for i, in := range inputs {
		entries[i] = schedule.Entry{
			Season:              calendar.Season(in.Season),
			WateringInterval:    in.WateringInterval,
			FertilizingInterval: in.FertilizingInterval,
		}
	}
	return entries
}

func entriesToRecords(plantID string, entries []schedule.Entry) []*secondary.ScheduleRecord {
	records := make([]*secondary.ScheduleRecord, len(entries))
	for i, e := range entries {
		records[i] = &secondary.ScheduleRecord{
			PlantID:             plantID,
			Season:              string(e.Season),
			WateringInterval:    e.WateringInterval,
			FertilizingInterval: e.FertilizingInterval,
		}
	}
	return records
}

// Ensure PlantServiceImpl implements the interface
var _ primary.PlantService = (*PlantServiceImpl)(nil)
