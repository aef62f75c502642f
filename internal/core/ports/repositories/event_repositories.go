package repositories

import (
	"context"

	"github.com/caterops/catering_backend/internal/core/domain"
)

// EventRepository is the event slice of the catalog/event store.
// SaveEvent is an upsert by ID; the engine layer never depends on
// which backend implements it.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
