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

type packageRepository struct {
	pool *pgxpool.Pool
}

// NewPackageRepository creates a new repository for product bundle data.
func NewPackageRepository(pool *pgxpool.Pool) portsrepo.PackageRepository {
	return &packageRepository{pool: pool}
}

// SavePackage upserts a package by ID. Product references are kept as
// an ordered array column.
func (r *packageRepository) SavePackage(ctx context.Context, pkg domain.Package) error {
	query := `
		INSERT INTO packages (package_id, name, product_ids, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (package_id) DO UPDATE SET
			name = EXCLUDED.name,
			product_ids = EXCLUDED.product_ids,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		pkg.PackageID,
		pkg.Name,
		pkg.ProductIDs,
		pkg.CreatedAt,
		pkg.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save package %s: %w", pkg.PackageID, err)
	}
	return nil
}

// FindPackageByID retrieves a package by its ID.
func (r *packageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	query := `
		SELECT package_id, name, product_ids, created_at, last_updated_at
		FROM packages
		WHERE package_id = $1;
	`
	var p domain.Package
	err := r.pool.QueryRow(ctx, query, packageID).Scan(
		&p.PackageID,
		&p.Name,
		&p.ProductIDs,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("package %s: %w", packageID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find package %s: %w", packageID, err)
	}
	return &p, nil
}

// ListPackages retrieves all packages.
func (r *packageRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	query := `
		SELECT package_id, name, product_ids, created_at, last_updated_at
		FROM packages
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	packages := []domain.Package{}
	for rows.Next() {
		var p domain.Package
		if err := rows.Scan(&p.PackageID, &p.Name, &p.ProductIDs, &p.CreatedAt, &p.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan package row: %w", err)
		}
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read package rows: %w", err)
	}
	return packages, nil
}

// DeletePackage removes a package by ID.
func (r *packageRepository) DeletePackage(ctx context.Context, packageID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE package_id = $1;`, packageID)
	if err != nil {
		return fmt.Errorf("failed to delete package %s: %w", packageID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("package %s: %w", packageID, apperrors.ErrNotFound)
	}
	return nil
}
