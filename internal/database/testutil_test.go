package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens a fresh database file in a per-test temp dir
func setupTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(context.Background(), dbPath)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { Close(db) })

	return db, dbPath
}

// setupStudentRepo returns a repository over a bootstrapped Students table
func setupStudentRepo(t *testing.T) (*StudentRepo, *sql.DB) {
	t.Helper()
	db, _ := setupTestDB(t)
	repo := NewStudentRepo(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo, db
}

// setupProductRepo returns a repository over a bootstrapped Product table
func setupProductRepo(t *testing.T) (*ProductRepo, *sql.DB) {
	t.Helper()
	db, _ := setupTestDB(t)
	repo := NewProductRepo(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo, db
}

// countRows returns the number of rows in table
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
	require.NoError(t, err)
	return count
}

// countTables returns how many tables named name exist in the schema
func countTables(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	var count int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	require.NoError(t, err)
	return count
}
