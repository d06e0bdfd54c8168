package app

import (
	"context"
	"errors"

	"github.com/example/verdant/internal/core/schedule"
	"github.com/example/verdant/internal/eventbus"
	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/ports/secondary"
)

// ScheduleServiceImpl implements the ScheduleService interface.
type ScheduleServiceImpl struct {
	plantRepo    secondary.PlantRepository
	scheduleRepo secondary.ScheduleRepository
	bus          *eventbus.Bus
	locks        *PlantLocks
}

// NewScheduleService creates a new ScheduleService with injected dependencies.
func NewScheduleService(
	plantRepo secondary.PlantRepository,
	scheduleRepo secondary.ScheduleRepository,
	bus *eventbus.Bus,
	locks *PlantLocks,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		plantRepo:    plantRepo,
		scheduleRepo: scheduleRepo,
		bus:          bus,
		locks:        locks,
	}
}

// GetPlantSchedules returns the plant's schedule entries in season
// order, after checking set integrity.
func (s *ScheduleServiceImpl) GetPlantSchedules(ctx context.Context, userID, plantID string) ([]primary.ScheduleEntry, error) {
	if _, err := s.plantRepo.GetByID(ctx, userID, plantID); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrNotFound
		}
		return nil, &primary.StorageError{Op: "get plant", PlantID: plantID, Err: err}
	}

	records, err := s.scheduleRepo.GetForPlant(ctx, plantID)
	if err != nil {
		return nil, &primary.StorageError{Op: "load schedules", PlantID: plantID, Err: err}
	}

	// An empty or partial set is corruption, not an empty result; it is
	// reported, never repaired.
	if err := schedule.ValidateIntegrity(scheduleRecordsToEntries(records)); err != nil {
		return nil, err
	}

	return sortedPortSchedules(records), nil
}

// UpdatePlantSchedules upserts 1-4 entries keyed by season and
// recomputes the plant's next-due dates.
func (s *ScheduleServiceImpl) UpdatePlantSchedules(ctx context.Context, userID, plantID string, inputs []primary.ScheduleEntryInput) ([]primary.ScheduleEntry, error) {
	entries := inputToEntries(inputs)
	if err := schedule.ValidateInput(entries); err != nil {
		return nil, mapScheduleInputError(err)
	}

	unlock := s.locks.Lock(plantID)
	defer unlock()

	record, err := s.plantRepo.GetByID(ctx, userID, plantID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, primary.ErrNotFound
	}
	if err != nil {
		return nil, &primary.StorageError{Op: "get plant", PlantID: plantID, Err: err}
	}

	if err := s.scheduleRepo.Upsert(ctx, plantID, entriesToRecords(plantID, entries)); err != nil {
		return nil, &primary.StorageError{Op: "store schedules", PlantID: plantID, Err: err}
	}

	// Recompute against the full stored set: seasons not mentioned in
	// this update still drive due dates for actions performed in them.
	stored, err := s.scheduleRepo.GetForPlant(ctx, plantID)
	if err != nil {
		return nil, &primary.StorageError{Op: "reload schedules", PlantID: plantID, Err: err}
	}

	next := schedule.Recompute(
		parseStoredDate(record.LastWateredAt),
		parseStoredDate(record.LastFertilizedAt),
		scheduleRecordsToEntries(stored),
	)
	if err := s.plantRepo.UpdateNextDates(ctx, userID, plantID, next.Watering.String(), next.Fertilizing.String()); err != nil {
		return nil, &primary.StorageError{Op: "update next dates", PlantID: plantID, Err: err}
	}

	s.bus.Publish(eventbus.Event{Type: eventbus.TypeScheduleUpdated, PlantID: plantID})

	return sortedPortSchedules(stored), nil
}

// Ensure ScheduleServiceImpl implements the interface
var _ primary.ScheduleService = (*ScheduleServiceImpl)(nil)
