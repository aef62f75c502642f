package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new repository for event data. Line
// items and extra selections live inside the event row as JSONB: they
// are owned by exactly one event and never queried independently.
func NewEventRepository(pool *pgxpool.Pool) portsrepo.EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `event_id, client_name, client_doc, date, time, duration_hours, pax, items, extras_list, desired_margin, status, planned_cost, planned_price, real_cost, real_revenue, payment_terms, notes, created_at, last_updated_at`

// SaveEvent upserts an event by ID. An unset time-of-day is stored as
// NULL, never as an empty string.
func (r *eventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	itemsJSON, err := json.Marshal(event.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal items for event %s: %w", event.EventID, err)
	}
	extrasJSON, err := json.Marshal(event.Extras)
	if err != nil {
		return fmt.Errorf("failed to marshal extras for event %s: %w", event.EventID, err)
	}

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (event_id) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			client_doc = EXCLUDED.client_doc,
			date = EXCLUDED.date,
			time = EXCLUDED.time,
			duration_hours = EXCLUDED.duration_hours,
			pax = EXCLUDED.pax,
			items = EXCLUDED.items,
			extras_list = EXCLUDED.extras_list,
			desired_margin = EXCLUDED.desired_margin,
			status = EXCLUDED.status,
			planned_cost = EXCLUDED.planned_cost,
			planned_price = EXCLUDED.planned_price,
			real_cost = EXCLUDED.real_cost,
			real_revenue = EXCLUDED.real_revenue,
			payment_terms = EXCLUDED.payment_terms,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err = r.pool.Exec(ctx, query,
		event.EventID,
		event.ClientName,
		event.ClientDoc,
		event.Date,
		timeOfDayOrNil(event.Time),
		event.DurationHours,
		event.Pax,
		itemsJSON,
		extrasJSON,
		event.DesiredMargin,
		event.Status,
		event.PlannedCost,
		event.PlannedPrice,
		toNullDecimal(event.RealCost),
		toNullDecimal(event.RealRevenue),
		event.PaymentTerms,
		event.Notes,
		event.CreatedAt,
		event.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save event %s: %w", event.EventID, err)
	}
	return nil
}

// FindEventByID retrieves an event by its ID.
func (r *eventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	return event, nil
}

// ListEvents retrieves all events, most recent date first.
func (r *eventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date DESC;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event rows: %w", err)
	}
	return events, nil
}

// DeleteEvent removes an event by ID.
func (r *eventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
	}
	return nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var (
		e           domain.Event
		timeOfDay   *string
		itemsJSON   []byte
		extrasJSON  []byte
		realCost    decimal.NullDecimal
		realRevenue decimal.NullDecimal
	)

	err := row.Scan(
		&e.EventID,
		&e.ClientName,
		&e.ClientDoc,
		&e.Date,
		&timeOfDay,
		&e.DurationHours,
		&e.Pax,
		&itemsJSON,
		&extrasJSON,
		&e.DesiredMargin,
		&e.Status,
		&e.PlannedCost,
		&e.PlannedPrice,
		&realCost,
		&realRevenue,
		&e.PaymentTerms,
		&e.Notes,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &e.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items: %w", err)
	}
	if err := json.Unmarshal(extrasJSON, &e.Extras); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extras: %w", err)
	}

	e.Time = timeOfDay
	if realCost.Valid {
		e.RealCost = &realCost.Decimal
	}
	if realRevenue.Valid {
		e.RealRevenue = &realRevenue.Decimal
	}
	return &e, nil
}

func timeOfDayOrNil(t *string) *string {
	if t == nil || *t == "" {
		return nil
	}
	return t
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
