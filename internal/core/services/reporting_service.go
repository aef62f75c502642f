package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/utils/pricing"
)

// reportingService implements the ReportingSvcFacade interface by
// folding over event collections; it never mutates anything.
type reportingService struct {
	BaseService
	eventRepo   portsrepo.EventRepository
	productRepo portsrepo.ProductRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(eventRepo portsrepo.EventRepository, productRepo portsrepo.ProductRepository) portssvc.ReportingSvcFacade {
	return &reportingService{eventRepo: eventRepo, productRepo: productRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) PortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events for summary")
		return nil, err
	}
	summary := pricing.Summarize(events, time.Now())
	return &summary, nil
}

func (s *reportingService) VarianceReport(ctx context.Context) ([]domain.EventVarianceRow, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events for variance report")
		return nil, err
	}
	return pricing.VarianceRows(events), nil
}

// ConsumptionReport compares realized against expected per-attendee
// consumption for one event's line items. Informational only; the
// catalog factor is never adjusted from here.
func (s *reportingService) ConsumptionReport(ctx context.Context, eventID string) ([]domain.ConsumptionRow, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find event for consumption report", slog.String("event_id", eventID))
		return nil, err
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load product catalog for consumption report")
		return nil, err
	}

	return pricing.ConsumptionRows(event, pricing.NewProductCatalog(products)), nil
}
