// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use
// setupTestDB() and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/verdant/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPlant inserts a test plant and returns its ID.
func seedPlant(t *testing.T, db *sql.DB, id, userID, name string) string {
	t.Helper()
	if id == "" {
		id = "plant-001"
	}
	if userID == "" {
		userID = "user-001"
	}
	if name == "" {
		name = "Test Plant"
	}
	_, err := db.Exec("INSERT INTO plants (id, user_id, name) VALUES (?, ?, ?)", id, userID, name)
	if err != nil {
		t.Fatalf("failed to seed plant: %v", err)
	}
	return id
}

// seedSchedule inserts a test schedule row and returns its ID.
func seedSchedule(t *testing.T, db *sql.DB, plantID, season string, watering, fertilizing int) string {
	t.Helper()
	id := plantID + "-" + season
	_, err := db.Exec(
		"INSERT INTO seasonal_schedules (id, plant_id, season, watering_interval, fertilizing_interval) VALUES (?, ?, ?, ?, ?)",
		id, plantID, season, watering, fertilizing,
	)
	if err != nil {
		t.Fatalf("failed to seed schedule: %v", err)
	}
	return id
}

// seedCareLog inserts a care log entry and returns its ID.
func seedCareLog(t *testing.T, db *sql.DB, id, plantID, actionType, performedAt string, createdAt time.Time) string {
	t.Helper()
	if actionType == "" {
		actionType = "watering"
	}
	_, err := db.Exec(
		"INSERT INTO care_logs (id, plant_id, action_type, performed_at, created_at) VALUES (?, ?, ?, ?, ?)",
		id, plantID, actionType, performedAt, createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("failed to seed care log entry: %v", err)
	}
	return id
}
