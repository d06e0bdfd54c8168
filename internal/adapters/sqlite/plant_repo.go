// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/verdant/internal/ports/secondary"
)

// plantColumns is the column list shared by every plant SELECT so scans
// stay aligned with scanPlant.
const plantColumns = `id, user_id, name, icon_key, color_hex, difficulty, soil, pot, position,
	watering_instructions, repotting_instructions, propagation_instructions, notes,
	last_watered_at, last_fertilized_at, next_watering_at, next_fertilizing_at,
	created_at, updated_at`

// PlantRepository implements secondary.PlantRepository with SQLite.
type PlantRepository struct {
	db *sql.DB
}

// NewPlantRepository creates a new SQLite plant repository.
func NewPlantRepository(db *sql.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

// nullable converts an empty string to a NULL parameter.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// scanPlant scans one plant row from the plantColumns list.
func scanPlant(scan func(dest ...any) error) (*secondary.PlantRecord, error) {
	var (
		iconKey, colorHex, difficulty, soil, pot, position sql.NullString
		watering, repotting, propagation, notes            sql.NullString
		lastWatered, lastFertilized                        sql.NullString
		nextWatering, nextFertilizing                      sql.NullString
		createdAt, updatedAt                               time.Time
	)

	record := &secondary.PlantRecord{}
	err := scan(&record.ID, &record.UserID, &record.Name, &iconKey, &colorHex, &difficulty,
		&soil, &pot, &position, &watering, &repotting, &propagation, &notes,
		&lastWatered, &lastFertilized, &nextWatering, &nextFertilizing,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.IconKey = iconKey.String
	record.ColorHex = colorHex.String
	record.Difficulty = difficulty.String
	record.Soil = soil.String
	record.Pot = pot.String
	record.Position = position.String
	record.WateringInstructions = watering.String
	record.RepottingInstructions = repotting.String
	record.PropagationInstructions = propagation.String
	record.Notes = notes.String
	record.LastWateredAt = lastWatered.String
	record.LastFertilizedAt = lastFertilized.String
	record.NextWateringAt = nextWatering.String
	record.NextFertilizingAt = nextFertilizing.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a new plant.
func (r *PlantRepository) Create(ctx context.Context, plant *secondary.PlantRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plants (id, user_id, name, icon_key, color_hex, difficulty, soil, pot, position,
			watering_instructions, repotting_instructions, propagation_instructions, notes,
			last_watered_at, last_fertilized_at, next_watering_at, next_fertilizing_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plant.ID, plant.UserID, plant.Name, nullable(plant.IconKey), nullable(plant.ColorHex),
		nullable(plant.Difficulty), nullable(plant.Soil), nullable(plant.Pot), nullable(plant.Position),
		nullable(plant.WateringInstructions), nullable(plant.RepottingInstructions),
		nullable(plant.PropagationInstructions), nullable(plant.Notes),
		nullable(plant.LastWateredAt), nullable(plant.LastFertilizedAt),
		nullable(plant.NextWateringAt), nullable(plant.NextFertilizingAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create plant: %w", err)
	}

	return nil
}

// GetByID retrieves a plant by ID within the user's scope.
func (r *PlantRepository) GetByID(ctx context.Context, userID, plantID string) (*secondary.PlantRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+plantColumns+" FROM plants WHERE id = ? AND user_id = ?",
		plantID, userID,
	)

	record, err := scanPlant(row.Scan)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}

	return record, nil
}

// UpdateDisplayFields updates the caller-editable fields of a plant.
func (r *PlantRepository) UpdateDisplayFields(ctx context.Context, plant *secondary.PlantRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE plants SET name = ?, icon_key = ?, color_hex = ?, difficulty = ?, soil = ?, pot = ?,
			position = ?, watering_instructions = ?, repotting_instructions = ?,
			propagation_instructions = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`,
		plant.Name, nullable(plant.IconKey), nullable(plant.ColorHex), nullable(plant.Difficulty),
		nullable(plant.Soil), nullable(plant.Pot), nullable(plant.Position),
		nullable(plant.WateringInstructions), nullable(plant.RepottingInstructions),
		nullable(plant.PropagationInstructions), nullable(plant.Notes),
		plant.ID, plant.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrNotFound
	}

	return nil
}

// UpdateNextDates overwrites the derived next-due fields.
func (r *PlantRepository) UpdateNextDates(ctx context.Context, userID, plantID, nextWateringAt, nextFertilizingAt string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE plants SET next_watering_at = ?, next_fertilizing_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`,
		nullable(nextWateringAt), nullable(nextFertilizingAt), plantID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update next dates: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrNotFound
	}

	return nil
}

// Delete removes a plant; schedules and care log entries cascade.
func (r *PlantRepository) Delete(ctx context.Context, userID, plantID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM plants WHERE id = ? AND user_id = ?",
		plantID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrNotFound
	}

	return nil
}

// List retrieves plants matching the options.
func (r *PlantRepository) List(ctx context.Context, userID string, opts secondary.PlantListOptions) ([]*secondary.PlantRecord, error) {
	query := "SELECT " + plantColumns + " FROM plants WHERE user_id = ?"
	args := []any{userID}

	if opts.Search != "" {
		query += " AND name LIKE ? ESCAPE '\\' COLLATE NOCASE"
		args = append(args, "%"+escapeLike(opts.Search)+"%")
	}

	dir := "DESC"
	if opts.Ascending {
		dir = "ASC"
	}
	switch opts.OrderBy {
	case "created_at":
		// Secondary name order keeps pages deterministic when plants share
		// a creation timestamp.
		query += " ORDER BY created_at " + dir + ", name ASC"
	default:
		query += " ORDER BY name COLLATE NOCASE " + dir
	}

	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	defer rows.Close()

	var plants []*secondary.PlantRecord
	for rows.Next() {
		record, err := scanPlant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plants: %w", err)
	}

	return plants, nil
}

// Count returns the number of plants matching the search filter.
func (r *PlantRepository) Count(ctx context.Context, userID, search string) (int, error) {
	query := "SELECT COUNT(*) FROM plants WHERE user_id = ?"
	args := []any{userID}

	if search != "" {
		query += " AND name LIKE ? ESCAPE '\\' COLLATE NOCASE"
		args = append(args, "%"+escapeLike(search)+"%")
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count plants: %w", err)
	}

	return count, nil
}

// escapeLike escapes LIKE metacharacters so a search for "100%" does not
// match everything.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// Ensure PlantRepository implements the interface
var _ secondary.PlantRepository = (*PlantRepository)(nil)
