// Package database owns the SQLite files behind the student and product managers
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// busyTimeoutMillis is how long SQLite waits on a locked file before failing
const busyTimeoutMillis = 5000

// Open returns a handle to the database file at path.
//
// The file itself is opened lazily by the driver, so an unwritable location
// surfaces as an error from the first statement (normally schema bootstrap)
// rather than from Open. Only a driver registration problem fails here.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("failed to create database directory")
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", path, busyTimeoutMillis)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection at a time; every operation acquires it for the length
	// of its statement or transaction and hands it back afterwards.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	log.Debug().Str("path", path).Msg("database handle ready")

	return db, nil
}

// Close releases the handle and logs instead of returning the error,
// for use in deferred cleanup.
func Close(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("error closing db")
	}
}
