package database

import (
	"context"
	"database/sql"
	"fmt"
)

const studentSchema = `
	CREATE TABLE IF NOT EXISTS Students (
		StudentID INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL,
		Department TEXT NOT NULL,
		Marks REAL NOT NULL
	)
`

const productSchema = `
	CREATE TABLE IF NOT EXISTS Product (
		ProductID INTEGER PRIMARY KEY AUTOINCREMENT,
		ProductName TEXT NOT NULL,
		Price REAL NOT NULL,
		Quantity INTEGER NOT NULL
	)
`

// EnsureStudentSchema creates the Students table if it does not exist.
// Safe to call on every startup.
func EnsureStudentSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, studentSchema); err != nil {
		return fmt.Errorf("failed to create Students table: %w", err)
	}
	return nil
}

// EnsureProductSchema creates the Product table if it does not exist.
// Safe to call on every startup.
func EnsureProductSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, productSchema); err != nil {
		return fmt.Errorf("failed to create Product table: %w", err)
	}
	return nil
}
