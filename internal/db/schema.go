package db

// SchemaSQL is the complete schema for fresh verdant installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests use
// it via GetSchemaSQL(); if repository code references a column that is
// not here, repository tests fail immediately with "no such column"
// instead of drifting silently.
//
// When changing tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
//
// Note there is deliberately NO stored priority column: urgency is
// computed from the next_* dates on every read. A persisted priority
// has no writer to keep it honest.
const SchemaSQL = `
-- Plants (one card per plant, owned by a single user)
CREATE TABLE IF NOT EXISTS plants (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT NOT NULL,
	icon_key TEXT,
	color_hex TEXT,
	difficulty TEXT CHECK(difficulty IN ('easy', 'medium', 'hard')),
	soil TEXT,
	pot TEXT,
	position TEXT,
	watering_instructions TEXT,
	repotting_instructions TEXT,
	propagation_instructions TEXT,
	notes TEXT,
	-- Derived care state, date-only (YYYY-MM-DD). Written exclusively by
	-- the care engine, never by callers.
	last_watered_at TEXT,
	last_fertilized_at TEXT,
	next_watering_at TEXT,
	next_fertilizing_at TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_plants_user ON plants(user_id);
CREATE INDEX IF NOT EXISTS idx_plants_user_name ON plants(user_id, name);
CREATE INDEX IF NOT EXISTS idx_plants_user_created ON plants(user_id, created_at);

-- Seasonal schedules (at most one row per plant and season)
CREATE TABLE IF NOT EXISTS seasonal_schedules (
	id TEXT PRIMARY KEY,
	plant_id TEXT NOT NULL,
	season TEXT NOT NULL CHECK(season IN ('spring', 'summer', 'autumn', 'winter')),
	watering_interval INTEGER NOT NULL CHECK(watering_interval BETWEEN 0 AND 365),
	fertilizing_interval INTEGER NOT NULL CHECK(fertilizing_interval BETWEEN 0 AND 365),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (plant_id) REFERENCES plants(id) ON DELETE CASCADE,
	UNIQUE(plant_id, season)
);

CREATE INDEX IF NOT EXISTS idx_schedules_plant ON seasonal_schedules(plant_id);

-- Care log (immutable history of performed actions)
CREATE TABLE IF NOT EXISTS care_logs (
	id TEXT PRIMARY KEY,
	plant_id TEXT NOT NULL,
	action_type TEXT NOT NULL CHECK(action_type IN ('watering', 'fertilizing')),
	performed_at TEXT NOT NULL,
	-- RFC3339Nano; only used to break ties between same-day entries.
	created_at TEXT NOT NULL,
	FOREIGN KEY (plant_id) REFERENCES plants(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_care_logs_plant ON care_logs(plant_id, performed_at DESC, created_at DESC);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to
// prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
