package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite cache schema.
func InitSchema(db *sql.DB) error {
	return initSchema(db, []string{
		`CREATE TABLE IF NOT EXISTS geocode_cache (
			address TEXT PRIMARY KEY,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			found INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS route_cache (
			leg_key TEXT PRIMARY KEY,
			distance_km REAL NOT NULL,
			path TEXT NOT NULL
		);`,
	})
}

// Initialize the Postgres cache schema.
func InitSchemaPostgres(db *sql.DB) error {
	return initSchema(db, []string{
		`CREATE TABLE IF NOT EXISTS geocode_cache (
			address TEXT PRIMARY KEY,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			found INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS route_cache (
			leg_key TEXT PRIMARY KEY,
			distance_km DOUBLE PRECISION NOT NULL,
			path TEXT NOT NULL
		);`,
	})
}

func initSchema(db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
