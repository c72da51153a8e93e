package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/ledger/internal/config"
	"github.com/thenoetrevino/ledger/internal/database"
	productservice "github.com/thenoetrevino/ledger/internal/services/product"
	studentservice "github.com/thenoetrevino/ledger/internal/services/student"
)

// App holds all application services and provides dependency injection.
// Each manager has its own database file, so the App owns two handles.
type App struct {
	studentDB *sql.DB
	productDB *sql.DB

	StudentService studentservice.Service
	ProductService productservice.Service
}

// New creates an App over already opened database handles
func New(studentDB, productDB *sql.DB, opts ...Option) *App {
	cfg := newAppConfig(opts)

	return &App{
		studentDB:      studentDB,
		productDB:      productDB,
		StudentService: studentservice.NewService(database.NewStudentRepo(studentDB), cfg.logger),
		ProductService: productservice.NewService(database.NewProductRepo(productDB), cfg.logger),
	}
}

// Open opens both database files named by cfg and builds the App.
// The files are created lazily on first use.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	studentDB, err := database.Open(ctx, cfg.StudentDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open student database: %w", err)
	}

	productDB, err := database.Open(ctx, cfg.ProductDBPath())
	if err != nil {
		database.Close(studentDB)
		return nil, fmt.Errorf("failed to open product database: %w", err)
	}

	return New(studentDB, productDB, opts...), nil
}

// Close releases both database handles
func (a *App) Close() error {
	var errs []error
	for _, db := range []*sql.DB{a.studentDB, a.productDB} {
		if db == nil {
			continue
		}
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
