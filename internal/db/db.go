package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var (
	conn          *sql.DB
	dbInitialized bool
)

// DefaultPath returns the default database file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".verdant", "verdant.db"), nil
}

// GetDB returns the shared database connection at the default path,
// initializing the schema on first use.
func GetDB() (*sql.DB, error) {
	return GetDBAt("")
}

// GetDBAt returns the shared database connection, opening it at the
// given path (or the default when empty) on first call.
func GetDBAt(path string) (*sql.DB, error) {
	if conn != nil {
		return conn, nil
	}

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	c, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn = c

	// Cascade deletes from plants into schedules and care logs.
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if !dbInitialized {
		dbInitialized = true
		if err := RunMigrations(); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return conn, nil
}

// Close closes the shared database connection.
func Close() error {
	if conn != nil {
		return conn.Close()
	}
	return nil
}
