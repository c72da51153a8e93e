package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/ledger/internal/database"
)

// SetupTestDB opens a fresh database file under t.TempDir() with both
// tables created. The handle is closed when the test ends.
func SetupTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.EnsureStudentSchema(ctx, db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := database.EnsureProductSchema(ctx, db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestStudent inserts a student row and returns its ID
func CreateTestStudent(t *testing.T, db *sql.DB, name, department string, marks float64) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO Students (Name, Department, Marks) VALUES (?, ?, ?)`,
		name, department, marks)
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get student ID: %v", err)
	}
	return int(id)
}

// CreateTestProduct inserts a product row and returns its ID
func CreateTestProduct(t *testing.T, db *sql.DB, name string, price float64, quantity int) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO Product (ProductName, Price, Quantity) VALUES (?, ?, ?)`,
		name, price, quantity)
	if err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get product ID: %v", err)
	}
	return int(id)
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
