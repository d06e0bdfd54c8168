package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/verdant/internal/ports/secondary"
)

// CareLogRepository implements secondary.CareLogRepository with SQLite.
type CareLogRepository struct {
	db *sql.DB
}

// NewCareLogRepository creates a new SQLite care log repository.
func NewCareLogRepository(db *sql.DB) *CareLogRepository {
	return &CareLogRepository{db: db}
}

// RecordAction appends a care log entry and applies the plant's
// last/next update for the acted-on track in a single transaction.
func (r *CareLogRepository) RecordAction(ctx context.Context, entry *secondary.CareLogRecord, update secondary.PlantCareUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO care_logs (id, plant_id, action_type, performed_at, created_at) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.PlantID, entry.ActionType, entry.PerformedAt, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert care log entry: %w", err)
	}

	// Column pair picked by action type; both writes commit or neither.
	var query string
	switch update.ActionType {
	case "watering":
		query = `UPDATE plants SET last_watered_at = ?, next_watering_at = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND user_id = ?`
	case "fertilizing":
		query = `UPDATE plants SET last_fertilized_at = ?, next_fertilizing_at = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND user_id = ?`
	default:
		return fmt.Errorf("unknown action type %q", update.ActionType)
	}

	result, err := tx.ExecContext(ctx, query,
		update.LastAt, nullable(update.NextAt), update.PlantID, update.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plant care state: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit care action: %w", err)
	}

	return nil
}

// ListForPlant retrieves entries ordered by performed date descending,
// creation time descending as tiebreak.
func (r *CareLogRepository) ListForPlant(ctx context.Context, plantID string, filters secondary.CareLogFilters) ([]*secondary.CareLogRecord, error) {
	query := "SELECT id, plant_id, action_type, performed_at, created_at FROM care_logs WHERE plant_id = ?"
	args := []any{plantID}

	if filters.ActionType != "" {
		query += " AND action_type = ?"
		args = append(args, filters.ActionType)
	}

	query += " ORDER BY performed_at DESC, created_at DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list care log: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.CareLogRecord
	for rows.Next() {
		record := &secondary.CareLogRecord{}
		err := rows.Scan(&record.ID, &record.PlantID, &record.ActionType, &record.PerformedAt, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan care log entry: %w", err)
		}
		entries = append(entries, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read care log: %w", err)
	}

	return entries, nil
}

// Ensure CareLogRepository implements the interface
var _ secondary.CareLogRepository = (*CareLogRepository)(nil)
