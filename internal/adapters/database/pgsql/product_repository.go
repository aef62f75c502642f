package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new repository for product catalog data.
func NewProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &productRepository{pool: pool}
}

// SaveProduct upserts a product by ID.
func (r *productRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, unit_cost, factor, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id) DO UPDATE SET
			name = EXCLUDED.name,
			unit_cost = EXCLUDED.unit_cost,
			factor = EXCLUDED.factor,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.UnitCost,
		product.Factor,
		product.CreatedAt,
		product.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *productRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, name, unit_cost, factor, created_at, last_updated_at
		FROM products
		WHERE product_id = $1;
	`
	var p domain.Product
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&p.ProductID,
		&p.Name,
		&p.UnitCost,
		&p.Factor,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return &p, nil
}

// ListProducts retrieves the full product catalog.
func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, unit_cost, factor, created_at, last_updated_at
		FROM products
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.UnitCost, &p.Factor, &p.CreatedAt, &p.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}

// DeleteProduct removes a product by ID.
func (r *productRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}
	return nil
}
