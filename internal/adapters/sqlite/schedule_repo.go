package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/verdant/internal/ports/secondary"
)

// ScheduleRepository implements secondary.ScheduleRepository with SQLite.
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new SQLite schedule repository.
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `id, plant_id, season, watering_interval, fertilizing_interval, created_at, updated_at`

func scanSchedule(scan func(dest ...any) error) (*secondary.ScheduleRecord, error) {
	var createdAt, updatedAt time.Time

	record := &secondary.ScheduleRecord{}
	err := scan(&record.ID, &record.PlantID, &record.Season,
		&record.WateringInterval, &record.FertilizingInterval, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// GetForPlant retrieves all schedule rows for a plant.
func (r *ScheduleRepository) GetForPlant(ctx context.Context, plantID string) ([]*secondary.ScheduleRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+scheduleColumns+" FROM seasonal_schedules WHERE plant_id = ?",
		plantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*secondary.ScheduleRecord
	for rows.Next() {
		record, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedules: %w", err)
	}

	return schedules, nil
}

// GetForPlantSeason retrieves the row for one season.
func (r *ScheduleRepository) GetForPlantSeason(ctx context.Context, plantID, season string) (*secondary.ScheduleRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+scheduleColumns+" FROM seasonal_schedules WHERE plant_id = ? AND season = ?",
		plantID, season,
	)

	record, err := scanSchedule(row.Scan)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	return record, nil
}

// Upsert inserts or updates rows keyed (plant, season) in one transaction.
func (r *ScheduleRepository) Upsert(ctx context.Context, plantID string, entries []*secondary.ScheduleRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO seasonal_schedules (id, plant_id, season, watering_interval, fertilizing_interval)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(plant_id, season) DO UPDATE SET
				watering_interval = excluded.watering_interval,
				fertilizing_interval = excluded.fertilizing_interval,
				updated_at = CURRENT_TIMESTAMP`,
			uuid.NewString(), plantID, entry.Season, entry.WateringInterval, entry.FertilizingInterval,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert %s schedule: %w", entry.Season, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schedules: %w", err)
	}

	return nil
}

// ReplaceForPlant deletes all rows for the plant and inserts the given
// set in one transaction.
func (r *ScheduleRepository) ReplaceForPlant(ctx context.Context, plantID string, entries []*secondary.ScheduleRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM seasonal_schedules WHERE plant_id = ?", plantID); err != nil {
		return fmt.Errorf("failed to clear schedules: %w", err)
	}

	for _, entry := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO seasonal_schedules (id, plant_id, season, watering_interval, fertilizing_interval)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), plantID, entry.Season, entry.WateringInterval, entry.FertilizingInterval,
		)
		if err != nil {
			return fmt.Errorf("failed to insert %s schedule: %w", entry.Season, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schedules: %w", err)
	}

	return nil
}

// Ensure ScheduleRepository implements the interface
var _ secondary.ScheduleRepository = (*ScheduleRepository)(nil)
