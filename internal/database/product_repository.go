package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/ledger/internal/models"
)

// ProductRepo issues statements against the Product table.
// Writes are wrapped in explicit transactions: committed on success,
// rolled back when the statement fails or touches no row.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo wraps an open database handle
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// EnsureSchema creates the Product table if needed
func (r *ProductRepo) EnsureSchema(ctx context.Context) error {
	return EnsureProductSchema(ctx, r.db)
}

// CreateProduct inserts a product and returns it with the assigned ID
func (r *ProductRepo) CreateProduct(ctx context.Context, name string, price float64, quantity int) (*models.Product, error) {
	var product *models.Product

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO Product (ProductName, Price, Quantity) VALUES (?, ?, ?)`,
			name, price, quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read product id: %w", err)
		}

		product = &models.Product{
			ID:       int(id),
			Name:     name,
			Price:    price,
			Quantity: quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetAllProducts returns every row in the order the engine yields them
func (r *ProductRepo) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT ProductID, ProductName, Price, Quantity FROM Product`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// UpdateProduct replaces every field of the row keyed by product.ID
func (r *ProductRepo) UpdateProduct(ctx context.Context, product *models.Product) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return execAffecting(ctx, tx,
			`UPDATE Product SET ProductName = ?, Price = ?, Quantity = ? WHERE ProductID = ?`,
			product.Name, product.Price, product.Quantity, product.ID,
		)
	})
	if err != nil {
		return wrapKeyed("update product", product.ID, err)
	}

	return nil
}

// DeleteProduct removes the row with the given ID
func (r *ProductRepo) DeleteProduct(ctx context.Context, id int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return execAffecting(ctx, tx, `DELETE FROM Product WHERE ProductID = ?`, id)
	})
	if err != nil {
		return wrapKeyed("delete product", id, err)
	}

	return nil
}
