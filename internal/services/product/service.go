// Package product holds the product record operations used by the menu and CLI verbs
package product

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/thenoetrevino/ledger/internal/database"
	"github.com/thenoetrevino/ledger/internal/models"
)

// Repository is the storage the service needs
type Repository interface {
	database.ProductRepository
	EnsureSchema(ctx context.Context) error
}

// Service defines all product operations
type Service interface {
	EnsureSchema(ctx context.Context) error

	// Read operations
	ListProducts(ctx context.Context) ([]*models.Product, error)

	// Write operations, each committed or rolled back as a unit
	CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id int) error
}

// CreateProductRequest encapsulates data for creating a product
type CreateProductRequest struct {
	Name     string
	Price    float64
	Quantity int
}

// UpdateProductRequest is a full replacement of the row with ID
type UpdateProductRequest struct {
	ID       int
	Name     string
	Price    float64
	Quantity int
}

type service struct {
	repo   Repository
	logger zerolog.Logger
}

// NewService creates a new product service
func NewService(repo Repository, logger zerolog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With().Str("component", "product").Logger(),
	}
}

func (s *service) EnsureSchema(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		s.logger.Error().Err(err).Msg("schema bootstrap failed")
		return err
	}
	return nil
}

func (s *service) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.GetAllProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}
	return products, nil
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	created, err := s.repo.CreateProduct(ctx, req.Name, req.Price, req.Quantity)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Int("product_id", created.ID).Msg("product created")
	return created, nil
}

func (s *service) UpdateProduct(ctx context.Context, req UpdateProductRequest) error {
	err := s.repo.UpdateProduct(ctx, &models.Product{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return s.keyedError("update", req.ID, err)
	}

	s.logger.Info().Int("product_id", req.ID).Msg("product updated")
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return s.keyedError("delete", id, err)
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

// keyedError logs err; a zero-row write was rolled back and becomes ErrProductNotFound
func (s *service) keyedError(op string, id int, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		s.logger.Info().Int("product_id", id).Str("op", op).Msg("product not found, rolled back")
		return ErrProductNotFound
	}

	s.logger.Error().Err(err).Int("product_id", id).Str("op", op).Msg("product write failed")
	return err
}
