package database

import (
	"context"

	"github.com/thenoetrevino/ledger/internal/models"
)

// StudentReader defines read operations for students.
type StudentReader interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
}

// StudentWriter defines write operations for students.
// Update and delete return ErrNotFound when no row has the given ID.
type StudentWriter interface {
	CreateStudent(ctx context.Context, name, department string, marks float64) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int) error
}

// StudentRepository combines all student operations.
type StudentRepository interface {
	StudentReader
	StudentWriter
}

// ProductReader defines read operations for products.
type ProductReader interface {
	GetAllProducts(ctx context.Context) ([]*models.Product, error)
}

// ProductWriter defines write operations for products.
// Every write runs in its own transaction.
type ProductWriter interface {
	CreateProduct(ctx context.Context, name string, price float64, quantity int) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id int) error
}

// ProductRepository combines all product operations.
type ProductRepository interface {
	ProductReader
	ProductWriter
}
