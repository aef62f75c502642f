package services

import (
	"context"

	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/caterops/catering_backend/internal/dto"
	"github.com/caterops/catering_backend/internal/utils/pricing"
)

// EventSvcFacade defines the event lifecycle operations: authoring,
// live pricing evaluation and the one-time closing transition.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error)
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	Quote(ctx context.Context, req dto.QuoteRequest) (*pricing.PricingResult, error)
	CloseEvent(ctx context.Context, eventID string, req dto.CloseEventRequest) (*domain.Event, error)
}
