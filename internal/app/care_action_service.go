package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/verdant/internal/core/calendar"
	"github.com/example/verdant/internal/core/careaction"
	"github.com/example/verdant/internal/ports/primary"
	"github.com/example/verdant/internal/ports/secondary"
)

// Care log list limits.
const (
	defaultCareLogLimit = 50
	maxCareLogLimit     = 200
)

// CareActionServiceImpl implements the CareActionService interface.
type CareActionServiceImpl struct {
	plantRepo    secondary.PlantRepository
	scheduleRepo secondary.ScheduleRepository
	careLogRepo  secondary.CareLogRepository
	clock        secondary.Clock
	locks        *PlantLocks
}

// NewCareActionService creates a new CareActionService with injected dependencies.
func NewCareActionService(
	plantRepo secondary.PlantRepository,
	scheduleRepo secondary.ScheduleRepository,
	careLogRepo secondary.CareLogRepository,
	clock secondary.Clock,
	locks *PlantLocks,
) *CareActionServiceImpl {
	return &CareActionServiceImpl{
		plantRepo:    plantRepo,
		scheduleRepo: scheduleRepo,
		careLogRepo:  careLogRepo,
		clock:        clock,
		locks:        locks,
	}
}

// RecordCareAction validates and records one watering or fertilizing
// event. Guards run in a fixed order: action type, ownership, date
// shape, future date, schedule presence, fertilizing gate. Only when
// every guard passes are the log entry and the plant's derived fields
// committed, in one transaction.
func (s *CareActionServiceImpl) RecordCareAction(ctx context.Context, userID string, req primary.RecordCareActionRequest) (*primary.RecordCareActionResult, error) {
	actionType, err := careaction.ParseType(req.ActionType)
	if err != nil {
		return nil, &primary.ValidationError{Field: "action_type", Message: err.Error()}
	}

	unlock := s.locks.Lock(req.PlantID)
	defer unlock()

	if _, err := s.plantRepo.GetByID(ctx, userID, req.PlantID); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrNotFound
		}
		return nil, &primary.StorageError{Op: "get plant", PlantID: req.PlantID, Err: err}
	}

	today := calendar.FromTime(s.clock.Now())
	performedAt, err := careaction.ResolveDate(req.PerformedAt, today)
	if err != nil {
		return nil, &primary.ValidationError{Field: "performed_at", Message: err.Error()}
	}
	if err := careaction.CheckNotFuture(performedAt, today); err != nil {
		return nil, err
	}

	// The interval comes from the season the action was performed in.
	season := calendar.SeasonOf(performedAt)
	scheduleRecord, err := s.scheduleRepo.GetForPlantSeason(ctx, req.PlantID, string(season))
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, &careaction.ScheduleMissingError{Season: season}
	}
	if err != nil {
		return nil, &primary.StorageError{Op: "load schedule", PlantID: req.PlantID, Err: err}
	}

	interval, err := careaction.IntervalFor(actionType, scheduleRecordToEntry(scheduleRecord))
	if err != nil {
		return nil, err
	}
	nextAt := performedAt.AddDays(interval)

	entry := &secondary.CareLogRecord{
		ID:          uuid.NewString(),
		PlantID:     req.PlantID,
		ActionType:  string(actionType),
		PerformedAt: performedAt.String(),
		CreatedAt:   s.clock.Now().UTC().Format(time.RFC3339Nano),
	}
	update := secondary.PlantCareUpdate{
		UserID:     userID,
		PlantID:    req.PlantID,
		ActionType: string(actionType),
		LastAt:     performedAt.String(),
		NextAt:     nextAt.String(),
	}
	if err := s.careLogRepo.RecordAction(ctx, entry, update); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrNotFound
		}
		return nil, &primary.StorageError{Op: "record care action", PlantID: req.PlantID, Err: err}
	}

	updated, err := s.plantRepo.GetByID(ctx, userID, req.PlantID)
	if err != nil {
		return nil, &primary.StorageError{Op: "reload plant", PlantID: req.PlantID, Err: err}
	}

	return &primary.RecordCareActionResult{
		Entry: careLogRecordToPort(entry),
		Plant: recordToPlant(updated, today),
	}, nil
}

// ListCareActions returns the plant's care history, newest first.
func (s *CareActionServiceImpl) ListCareActions(ctx context.Context, userID string, q primary.CareActionsQuery) ([]primary.CareLogEntry, error) {
	if q.ActionType != "" {
		if _, err := careaction.ParseType(q.ActionType); err != nil {
			return nil, &primary.ValidationError{Field: "action_type", Message: err.Error()}
		}
	}

	limit := q.Limit
	if limit == 0 {
		limit = defaultCareLogLimit
	}
	if limit < 1 || limit > maxCareLogLimit {
		return nil, &primary.ValidationError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxCareLogLimit)}
	}

	if _, err := s.plantRepo.GetByID(ctx, userID, q.PlantID); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, primary.ErrNotFound
		}
		return nil, &primary.StorageError{Op: "get plant", PlantID: q.PlantID, Err: err}
	}

	records, err := s.careLogRepo.ListForPlant(ctx, q.PlantID, secondary.CareLogFilters{
		ActionType: q.ActionType,
		Limit:      limit,
	})
	if err != nil {
		return nil, &primary.StorageError{Op: "list care log", PlantID: q.PlantID, Err: err}
	}

	entries := make([]primary.CareLogEntry, len(records))
	for i, r := range records {
		entries[i] = careLogRecordToPort(r)
	}
	return entries, nil
}

// Ensure CareActionServiceImpl implements the interface
var _ primary.CareActionService = (*CareActionServiceImpl)(nil)
