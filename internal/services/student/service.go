// Package student holds the student record operations used by the menu and CLI verbs
package student

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/thenoetrevino/ledger/internal/database"
	"github.com/thenoetrevino/ledger/internal/models"
)

// Repository is the storage the service needs
type Repository interface {
	database.StudentRepository
	EnsureSchema(ctx context.Context) error
}

// Service defines all student operations
type Service interface {
	EnsureSchema(ctx context.Context) error

	// Read operations
	ListStudents(ctx context.Context) ([]*models.Student, error)

	// Write operations
	CreateStudent(ctx context.Context, req CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, req UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, id int) error
}

// CreateStudentRequest encapsulates data for creating a student
type CreateStudentRequest struct {
	Name       string
	Department string
	Marks      float64
}

// UpdateStudentRequest is a full replacement of the row with ID
type UpdateStudentRequest struct {
	ID         int
	Name       string
	Department string
	Marks      float64
}

// service implements Service interface
type service struct {
	repo   Repository
	logger zerolog.Logger
}

// NewService creates a new student service
func NewService(repo Repository, logger zerolog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With().Str("component", "student").Logger(),
	}
}

// EnsureSchema bootstraps the Students table
func (s *service) EnsureSchema(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		s.logger.Error().Err(err).Msg("schema bootstrap failed")
		return err
	}
	return nil
}

// ListStudents returns all students in storage order
func (s *service) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.repo.GetAllStudents(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list students")
		return nil, err
	}
	return students, nil
}

// CreateStudent stores a new student
func (s *service) CreateStudent(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	created, err := s.repo.CreateStudent(ctx, req.Name, req.Department, req.Marks)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create student")
		return nil, err
	}

	s.logger.Info().Int("student_id", created.ID).Msg("student created")
	return created, nil
}

// UpdateStudent replaces a student's fields
func (s *service) UpdateStudent(ctx context.Context, req UpdateStudentRequest) error {
	err := s.repo.UpdateStudent(ctx, &models.Student{
		ID:         req.ID,
		Name:       req.Name,
		Department: req.Department,
		Marks:      req.Marks,
	})
	if err != nil {
		return s.keyedError("update", req.ID, err)
	}

	s.logger.Info().Int("student_id", req.ID).Msg("student updated")
	return nil
}

// DeleteStudent removes a student
func (s *service) DeleteStudent(ctx context.Context, id int) error {
	if err := s.repo.DeleteStudent(ctx, id); err != nil {
		return s.keyedError("delete", id, err)
	}

	s.logger.Info().Int("student_id", id).Msg("student deleted")
	return nil
}

// keyedError logs err and maps not-found to ErrStudentNotFound
func (s *service) keyedError(op string, id int, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		s.logger.Info().Int("student_id", id).Str("op", op).Msg("student not found")
		return ErrStudentNotFound
	}

	s.logger.Error().Err(err).Int("student_id", id).Str("op", op).Msg("student write failed")
	return err
}
