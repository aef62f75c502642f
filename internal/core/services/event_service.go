package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/dto"
	"github.com/caterops/catering_backend/internal/utils/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Editor defaults observed for new drafts.
var (
	defaultDesiredMargin = decimal.NewFromInt(30)
	maxDesiredMargin     = decimal.NewFromInt(100)
)

const (
	defaultDurationHours = 4
	defaultPaymentTerms  = "50% deposit, 50% on event day."
)

// eventService implements the EventSvcFacade interface. It owns the
// event lifecycle and is the only caller of the pricing and closing
// engines; all persistence goes through the injected store handles.
type eventService struct {
	BaseService
	eventRepo   portsrepo.EventRepository
	productRepo portsrepo.ProductRepository
	extraRepo   portsrepo.ExtraRepository
	packageRepo portsrepo.PackageRepository
	strictRefs  bool
}

// EventServiceOption is a functional option for configuring the event service.
type EventServiceOption func(*eventService)

// WithStrictCatalogRefs makes the service reject drafts and closings
// that reference missing catalog products instead of pricing them as
// zero. Off by default for compatibility with the fail-soft policy.
func WithStrictCatalogRefs(strict bool) EventServiceOption {
	return func(s *eventService) {
		s.strictRefs = strict
	}
}

// NewEventService creates a new event service with the provided options.
func NewEventService(eventRepo portsrepo.EventRepository, productRepo portsrepo.ProductRepository, extraRepo portsrepo.ExtraRepository, packageRepo portsrepo.PackageRepository, options ...EventServiceOption) portssvc.EventSvcFacade {
	svc := &eventService{
		eventRepo:   eventRepo,
		productRepo: productRepo,
		extraRepo:   extraRepo,
		packageRepo: packageRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*domain.Event, error) {
	if req.ClientName == "" || req.ClientDoc == "" {
		return nil, fmt.Errorf("client name and document are required: %w", apperrors.ErrValidation)
	}

	margin := defaultDesiredMargin
	if req.DesiredMargin != nil {
		margin = *req.DesiredMargin
	}
	if err := validateMargin(margin); err != nil {
		return nil, err
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, req.Items, req.PackageIDs, req.Pax, catalog)
	if err != nil {
		return nil, err
	}
	extras, err := s.buildExtras(ctx, req.Extras)
	if err != nil {
		return nil, err
	}
	if s.strictRefs {
		if err := pricing.ValidateCatalogRefs(items, catalog); err != nil {
			return nil, err
		}
	}

	duration := defaultDurationHours
	if req.DurationHours != nil {
		duration = *req.DurationHours
	}
	paymentTerms := defaultPaymentTerms
	if req.PaymentTerms != nil {
		paymentTerms = *req.PaymentTerms
	}
	status := domain.StatusProposal
	if req.Status != nil {
		status = *req.Status
	}

	result := pricing.ComputePricing(items, extras, catalog, req.Pax, margin)

	now := time.Now()
	event := domain.Event{
		EventID:       uuid.NewString(),
		ClientName:    req.ClientName,
		ClientDoc:     req.ClientDoc,
		Date:          date,
		Time:          dto.NormalizeTimeOfDay(req.Time),
		DurationHours: duration,
		Pax:           req.Pax,
		Items:         items,
		Extras:        extras,
		DesiredMargin: margin,
		Status:        status,
		PlannedCost:   result.TotalCost,
		PlannedPrice:  result.SuggestedPrice,
		PaymentTerms:  paymentTerms,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save event", slog.String("event_id", event.EventID))
		return nil, err
	}

	s.LogInfo(ctx, "Event created",
		slog.String("event_id", event.EventID),
		slog.String("client", event.ClientName),
		slog.String("planned_price", event.PlannedPrice.String()))
	return &event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find event", slog.String("event_id", eventID))
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, err
	}
	return events, nil
}

// UpdateEvent mutates an open event and re-evaluates the pricing
// engine against the current catalog. CLOSED events are frozen.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsClosed() {
		return nil, fmt.Errorf("event %s: %w", eventID, apperrors.ErrEventClosed)
	}

	if req.ClientName != nil {
		if *req.ClientName == "" {
			return nil, fmt.Errorf("client name is required: %w", apperrors.ErrValidation)
		}
		event.ClientName = *req.ClientName
	}
	if req.ClientDoc != nil {
		if *req.ClientDoc == "" {
			return nil, fmt.Errorf("client document is required: %w", apperrors.ErrValidation)
		}
		event.ClientDoc = *req.ClientDoc
	}
	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, apperrors.ErrValidation)
		}
		event.Date = date
	}
	if req.Time != nil {
		event.Time = dto.NormalizeTimeOfDay(req.Time)
	}
	if req.DurationHours != nil {
		event.DurationHours = *req.DurationHours
	}
	if req.Pax != nil {
		event.Pax = *req.Pax
	}
	if req.DesiredMargin != nil {
		if err := validateMargin(*req.DesiredMargin); err != nil {
			return nil, err
		}
		event.DesiredMargin = *req.DesiredMargin
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	if req.PaymentTerms != nil {
		event.PaymentTerms = *req.PaymentTerms
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	if req.Items != nil {
		items, err := s.buildItems(ctx, req.Items, nil, event.Pax, catalog)
		if err != nil {
			return nil, err
		}
		event.Items = items
	}
	if req.Extras != nil {
		extras, err := s.buildExtras(ctx, req.Extras)
		if err != nil {
			return nil, err
		}
		event.Extras = extras
	}
	if s.strictRefs {
		if err := pricing.ValidateCatalogRefs(event.Items, catalog); err != nil {
			return nil, err
		}
	}

	result := pricing.ComputePricing(event.Items, event.Extras, catalog, event.Pax, event.DesiredMargin)
	event.PlannedCost = result.TotalCost
	event.PlannedPrice = result.SuggestedPrice
	event.LastUpdatedAt = time.Now()

	if err := s.eventRepo.SaveEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, err
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		s.LogError(ctx, err, "Failed to delete event", slog.String("event_id", eventID))
		return err
	}
	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}

// Quote evaluates the pricing engine against a draft without
// persisting anything. The editor calls this on every change.
func (s *eventService) Quote(ctx context.Context, req dto.QuoteRequest) (*pricing.PricingResult, error) {
	if err := validateMargin(req.DesiredMargin); err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, req.Items, nil, req.Pax, catalog)
	if err != nil {
		return nil, err
	}
	extras, err := s.buildExtras(ctx, req.Extras)
	if err != nil {
		return nil, err
	}
	if s.strictRefs {
		if err := pricing.ValidateCatalogRefs(items, catalog); err != nil {
			return nil, err
		}
	}

	result := pricing.ComputePricing(items, extras, catalog, req.Pax, req.DesiredMargin)
	return &result, nil
}

// CloseEvent runs the one-time reconciliation transition. Items whose
// actual quantity was never supplied fall back to the planned quantity
// (the closing editor's one-time initialization); the planned figures
// stay untouched as the variance baseline. A second close attempt is
// rejected with ErrEventClosed.
func (s *eventService) CloseEvent(ctx context.Context, eventID string, req dto.CloseEventRequest) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsClosed() {
		return nil, fmt.Errorf("event %s: %w", eventID, apperrors.ErrEventClosed)
	}

	actuals := make(map[string]decimal.Decimal, len(req.Actuals))
	for _, actual := range req.Actuals {
		if actual.QtyReal.IsNegative() {
			return nil, fmt.Errorf("qtyReal must be non-negative for product %s: %w", actual.ProductID, apperrors.ErrValidation)
		}
		actuals[actual.ProductID] = actual.QtyReal
	}

	for i := range event.Items {
		if qty, ok := actuals[event.Items[i].ProductID]; ok {
			q := qty
			event.Items[i].QtyReal = &q
			continue
		}
		if event.Items[i].QtyReal == nil {
			q := event.Items[i].QtyPlanned
			event.Items[i].QtyReal = &q
		}
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if s.strictRefs {
		if err := pricing.ValidateCatalogRefs(event.Items, catalog); err != nil {
			return nil, err
		}
	}

	result := pricing.ComputeClosing(event, catalog)
	event.RealCost = &result.RealCost
	event.RealRevenue = &result.RealRevenue
	event.Status = domain.StatusClosed
	event.LastUpdatedAt = time.Now()

	if err := s.eventRepo.SaveEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to save closed event", slog.String("event_id", eventID))
		return nil, err
	}

	s.LogInfo(ctx, "Event closed",
		slog.String("event_id", eventID),
		slog.String("real_cost", result.RealCost.String()),
		slog.String("profit_variance", result.ProfitVariance.String()))
	return event, nil
}

func (s *eventService) loadCatalog(ctx context.Context) (pricing.ProductCatalog, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load product catalog")
		return nil, err
	}
	return pricing.NewProductCatalog(products), nil
}

// buildItems assembles line items from explicit selections and package
// expansions. A nil planned quantity is seeded with pax x factor; for
// products missing from the catalog the seed is zero, matching the
// fail-soft pricing policy.
func (s *eventService) buildItems(ctx context.Context, reqItems []dto.EventItemRequest, packageIDs []string, pax int, catalog pricing.ProductCatalog) ([]domain.EventItem, error) {
	items := make([]domain.EventItem, 0, len(reqItems))
	for _, reqItem := range reqItems {
		item := domain.EventItem{ProductID: reqItem.ProductID}
		switch {
		case reqItem.QtyPlanned != nil:
			if reqItem.QtyPlanned.IsNegative() {
				return nil, fmt.Errorf("qtyPlanned must be non-negative for product %s: %w", reqItem.ProductID, apperrors.ErrValidation)
			}
			item.QtyPlanned = *reqItem.QtyPlanned
		default:
			if product, ok := catalog[reqItem.ProductID]; ok {
				item.QtyPlanned = pricing.DefaultPlannedQty(pax, product.Factor)
			} else {
				item.QtyPlanned = decimal.Zero
			}
		}
		items = append(items, item)
	}

	// Expanding a package is equivalent to adding its products one by one.
	// A reference to an absent package is a bad selection in the request
	// body, not a not-found on the event, so it carries the catalog-ref
	// sentinel.
	for _, packageID := range packageIDs {
		pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
		if err != nil {
			return nil, fmt.Errorf("invalid package reference %s: %w", packageID, apperrors.ErrMissingCatalogRef)
		}
		for _, productID := range pkg.ProductIDs {
			item := domain.EventItem{ProductID: productID, QtyPlanned: decimal.Zero}
			if product, ok := catalog[productID]; ok {
				item.QtyPlanned = pricing.DefaultPlannedQty(pax, product.Factor)
			}
			items = append(items, item)
		}
	}

	return items, nil
}

// buildExtras assembles extra selections. A nil cost copies the
// template's current cost; once copied it never tracks the template
// again.
func (s *eventService) buildExtras(ctx context.Context, reqExtras []dto.EventExtraRequest) ([]domain.EventExtra, error) {
	extras := make([]domain.EventExtra, 0, len(reqExtras))
	for _, reqExtra := range reqExtras {
		extra := domain.EventExtra{ExtraID: reqExtra.ExtraID}
		if reqExtra.Cost != nil {
			if reqExtra.Cost.IsNegative() {
				return nil, fmt.Errorf("cost must be non-negative for extra %s: %w", reqExtra.ExtraID, apperrors.ErrValidation)
			}
			extra.Cost = *reqExtra.Cost
		} else {
			template, err := s.extraRepo.FindExtraByID(ctx, reqExtra.ExtraID)
			if err != nil {
				return nil, fmt.Errorf("invalid extra reference %s: %w", reqExtra.ExtraID, apperrors.ErrMissingCatalogRef)
			}
			extra.Cost = template.Cost
		}
		extras = append(extras, extra)
	}
	return extras, nil
}

func validateMargin(margin decimal.Decimal) error {
	if margin.IsNegative() || margin.GreaterThan(maxDesiredMargin) {
		return fmt.Errorf("desiredMargin must be within [0,100]: %w", apperrors.ErrValidation)
	}
	return nil
}
