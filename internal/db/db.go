// Package db provides SQLite persistence for the cmdmock recording journal.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/opencode-ai/cmdmock/internal/logging"
)

// DB wraps a SQLite database handle.
type DB struct {
	*sql.DB
	logger zerolog.Logger
}

// Open opens (creating if necessary) the journal database at path.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	return open(path)
}

// OpenInMemory opens an in-memory database, used by tests.
func OpenInMemory() (*DB, error) {
	return open(":memory:")
}

func open(dsn string) (*DB, error) {
	handle, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dsn, err)
	}

	// the journal is single-writer; a second connection would only contend
	handle.SetMaxOpenConns(1)

	if _, err := handle.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		handle.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &DB{DB: handle, logger: logging.Component("db")}, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS recordings (
		id          TEXT PRIMARY KEY,
		family      TEXT NOT NULL,
		scenario    TEXT NOT NULL,
		document    TEXT NOT NULL,
		exit_code   INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recordings_family ON recordings(family, created_at)`,
}

// MigrateUp applies the schema migrations and returns how many statements
// were executed.
func (d *DB) MigrateUp(ctx context.Context) (int, error) {
	applied := 0
	for i, stmt := range migrations {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return applied, fmt.Errorf("apply migration %d: %w", i, err)
		}
		applied++
	}

	d.logger.Debug().Int("applied", applied).Msg("migrations applied")
	return applied, nil
}
