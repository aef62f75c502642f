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

type extraRepository struct {
	pool *pgxpool.Pool
}

// NewExtraRepository creates a new repository for extra-cost template data.
func NewExtraRepository(pool *pgxpool.Pool) portsrepo.ExtraRepository {
	return &extraRepository{pool: pool}
}

// SaveExtra upserts an extra-cost template by ID.
func (r *extraRepository) SaveExtra(ctx context.Context, extra domain.ExtraCost) error {
	query := `
		INSERT INTO extras (extra_id, name, cost, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (extra_id) DO UPDATE SET
			name = EXCLUDED.name,
			cost = EXCLUDED.cost,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		extra.ExtraID,
		extra.Name,
		extra.Cost,
		extra.CreatedAt,
		extra.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save extra %s: %w", extra.ExtraID, err)
	}
	return nil
}

// FindExtraByID retrieves an extra-cost template by its ID.
func (r *extraRepository) FindExtraByID(ctx context.Context, extraID string) (*domain.ExtraCost, error) {
	query := `
		SELECT extra_id, name, cost, created_at, last_updated_at
		FROM extras
		WHERE extra_id = $1;
	`
	var e domain.ExtraCost
	err := r.pool.QueryRow(ctx, query, extraID).Scan(
		&e.ExtraID,
		&e.Name,
		&e.Cost,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("extra %s: %w", extraID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find extra %s: %w", extraID, err)
	}
	return &e, nil
}

// ListExtras retrieves all extra-cost templates.
func (r *extraRepository) ListExtras(ctx context.Context) ([]domain.ExtraCost, error) {
	query := `
		SELECT extra_id, name, cost, created_at, last_updated_at
		FROM extras
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list extras: %w", err)
	}
	defer rows.Close()

	extras := []domain.ExtraCost{}
	for rows.Next() {
		var e domain.ExtraCost
		if err := rows.Scan(&e.ExtraID, &e.Name, &e.Cost, &e.CreatedAt, &e.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extra row: %w", err)
		}
		extras = append(extras, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read extra rows: %w", err)
	}
	return extras, nil
}

// DeleteExtra removes an extra-cost template by ID.
func (r *extraRepository) DeleteExtra(ctx context.Context, extraID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM extras WHERE extra_id = $1;`, extraID)
	if err != nil {
		return fmt.Errorf("failed to delete extra %s: %w", extraID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("extra %s: %w", extraID, apperrors.ErrNotFound)
	}
	return nil
}
