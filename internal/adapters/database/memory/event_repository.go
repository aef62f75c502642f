package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository creates an in-memory event repository.
func NewEventRepository(store *Store) portsrepo.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) SaveEvent(_ context.Context, event domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[event.EventID] = copyEvent(event)
	return nil
}

func (r *eventRepository) FindEventByID(_ context.Context, eventID string) (*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	event, ok := r.store.events[eventID]
	if !ok {
		return nil, fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
	}
	cp := copyEvent(event)
	return &cp, nil
}

func (r *eventRepository) ListEvents(_ context.Context) ([]domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	events := make([]domain.Event, 0, len(r.store.events))
	for _, e := range r.store.events {
		events = append(events, copyEvent(e))
	}
	// Most recent date first, matching the relational backend.
	sort.Slice(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	return events, nil
}

func (r *eventRepository) DeleteEvent(_ context.Context, eventID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.events[eventID]; !ok {
		return fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
	}
	delete(r.store.events, eventID)
	return nil
}
