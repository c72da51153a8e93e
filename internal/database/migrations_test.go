package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureStudentSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)

	require.NoError(t, EnsureStudentSchema(ctx, db))

	repo := NewStudentRepo(db)
	_, err := repo.CreateStudent(ctx, "Alice", "CS", 88.5)
	require.NoError(t, err)

	// Second bootstrap must not duplicate the table or drop rows
	require.NoError(t, EnsureStudentSchema(ctx, db))

	assert.Equal(t, 1, countTables(t, db, "Students"))
	assert.Equal(t, 1, countRows(t, db, "Students"))
}

func TestEnsureProductSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, _ := setupTestDB(t)

	require.NoError(t, EnsureProductSchema(ctx, db))

	repo := NewProductRepo(db)
	_, err := repo.CreateProduct(ctx, "Widget", 9.99, 10)
	require.NoError(t, err)

	require.NoError(t, EnsureProductSchema(ctx, db))

	assert.Equal(t, 1, countTables(t, db, "Product"))
	assert.Equal(t, 1, countRows(t, db, "Product"))
}

// TestSchemaPersistsAcrossReopen simulates an app restart against the same file
func TestSchemaPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	db, dbPath := setupTestDB(t)

	repo := NewStudentRepo(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	_, err := repo.CreateStudent(ctx, "Bob", "Math", 71)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := Open(ctx, dbPath)
	require.NoError(t, err)
	defer Close(reopened)

	again := NewStudentRepo(reopened)
	require.NoError(t, again.EnsureSchema(ctx))

	students, err := again.GetAllStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Bob", students[0].Name)
}

func TestEnsureSchema_UnwritableLocation(t *testing.T) {
	ctx := context.Background()

	// A regular file where a directory is expected cannot hold a database
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	db, err := Open(ctx, filepath.Join(blocker, "students.db"))
	require.NoError(t, err, "Open is lazy and should not fail")
	defer Close(db)

	err = EnsureStudentSchema(ctx, db)
	assert.Error(t, err)

	// Later operations fail too
	_, err = NewStudentRepo(db).GetAllStudents(ctx)
	assert.Error(t, err)
}
