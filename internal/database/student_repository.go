package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/ledger/internal/models"
)

// StudentRepo issues statements against the Students table
type StudentRepo struct {
	db *sql.DB
}

// NewStudentRepo wraps an open database handle
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

// EnsureSchema creates the Students table if needed
func (r *StudentRepo) EnsureSchema(ctx context.Context) error {
	return EnsureStudentSchema(ctx, r.db)
}

// CreateStudent inserts a student and returns it with the assigned ID
func (r *StudentRepo) CreateStudent(ctx context.Context, name, department string, marks float64) (*models.Student, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO Students (Name, Department, Marks) VALUES (?, ?, ?)`,
		name, department, marks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert student: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read student id: %w", err)
	}

	return &models.Student{
		ID:         int(id),
		Name:       name,
		Department: department,
		Marks:      marks,
	}, nil
}

// GetAllStudents returns every row in the order the engine yields them
func (r *StudentRepo) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT StudentID, Name, Department, Marks FROM Students`)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Department, &s.Marks); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

// UpdateStudent replaces every field of the row keyed by student.ID
func (r *StudentRepo) UpdateStudent(ctx context.Context, student *models.Student) error {
	err := execAffecting(ctx, r.db,
		`UPDATE Students SET Name = ?, Department = ?, Marks = ? WHERE StudentID = ?`,
		student.Name, student.Department, student.Marks, student.ID,
	)
	if err != nil {
		return wrapKeyed("update student", student.ID, err)
	}

	return nil
}

// DeleteStudent removes the row with the given ID
func (r *StudentRepo) DeleteStudent(ctx context.Context, id int) error {
	err := execAffecting(ctx, r.db, `DELETE FROM Students WHERE StudentID = ?`, id)
	if err != nil {
		return wrapKeyed("delete student", id, err)
	}

	return nil
}
