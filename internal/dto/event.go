package dto

import (
	"time"

	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for event dates.
const DateLayout = "2006-01-02"

// EventItemRequest selects a product into an event draft. A nil
// QtyPlanned asks the server to seed the default pax x factor quantity.
type EventItemRequest struct {
	ProductID  string           `json:"productId" binding:"required"`
	QtyPlanned *decimal.Decimal `json:"qtyPlanned"`
}

// EventExtraRequest selects an extra cost into an event draft. A nil
// Cost asks the server to copy the template's current cost; a non-nil
// value keeps an editor-adjusted figure.
type EventExtraRequest struct {
	ExtraID string           `json:"extraId" binding:"required"`
	Cost    *decimal.Decimal `json:"cost"`
}

// CreateEventRequest defines the data needed to create an event draft.
// PackageIDs are expanded into their constituent products, each seeded
// with the default quantity.
type CreateEventRequest struct {
	ClientName    string              `json:"clientName" binding:"required"`
	ClientDoc     string              `json:"clientDoc" binding:"required"`
	Date          string              `json:"date" binding:"required,datetime=2006-01-02"`
	Time          *string             `json:"time" binding:"omitempty,hhmm"`
	DurationHours *int                `json:"durationHours" binding:"omitempty,min=0"`
	Pax           int                 `json:"pax" binding:"required,min=1"`
	Items         []EventItemRequest  `json:"items"`
	Extras        []EventExtraRequest `json:"extras"`
	PackageIDs    []string            `json:"packageIDs"`
	DesiredMargin *decimal.Decimal    `json:"desiredMargin"`
	Status        *domain.EventStatus `json:"status" binding:"omitempty,oneof=PROPOSAL CONFIRMED COMPLETED CANCELLED"`
	PaymentTerms  *string             `json:"paymentTerms"`
	Notes         string              `json:"notes"`
}

// UpdateEventRequest defines the data allowed for updating an open
// event. Items and Extras, when present, replace the existing
// selections wholesale; pricing is recomputed on every update.
type UpdateEventRequest struct {
	ClientName    *string             `json:"clientName"`
	ClientDoc     *string             `json:"clientDoc"`
	Date          *string             `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time          *string             `json:"time" binding:"omitempty,hhmm"`
	DurationHours *int                `json:"durationHours" binding:"omitempty,min=0"`
	Pax           *int                `json:"pax" binding:"omitempty,min=1"`
	Items         []EventItemRequest  `json:"items"`
	Extras        []EventExtraRequest `json:"extras"`
	DesiredMargin *decimal.Decimal    `json:"desiredMargin"`
	Status        *domain.EventStatus `json:"status" binding:"omitempty,oneof=PROPOSAL CONFIRMED COMPLETED CANCELLED"`
	PaymentTerms  *string             `json:"paymentTerms"`
	Notes         *string             `json:"notes"`
}

// QuoteRequest evaluates the pricing engine against a draft without
// persisting anything. It is the editor's live recalculation call.
type QuoteRequest struct {
	Pax           int                 `json:"pax" binding:"required,min=1"`
	Items         []EventItemRequest  `json:"items"`
	Extras        []EventExtraRequest `json:"extras"`
	DesiredMargin decimal.Decimal     `json:"desiredMargin"`
}

// ActualQuantity carries the observed consumption of one product at closing.
type ActualQuantity struct {
	ProductID string          `json:"productId" binding:"required"`
	QtyReal   decimal.Decimal `json:"qtyReal"`
}

// CloseEventRequest finalizes an event. Items without a matching
// actual keep their previously recorded qtyReal, defaulting to the
// planned quantity the first time.
type CloseEventRequest struct {
	Actuals []ActualQuantity `json:"actuals"`
}

// EventItemResponse mirrors domain.EventItem.
type EventItemResponse struct {
	ProductID  string           `json:"productId"`
	QtyPlanned decimal.Decimal  `json:"qtyPlanned"`
	QtyReal    *decimal.Decimal `json:"qtyReal,omitempty"`
}

// EventExtraResponse mirrors domain.EventExtra.
type EventExtraResponse struct {
	ExtraID string          `json:"extraId"`
	Cost    decimal.Decimal `json:"cost"`
}

// EventResponse defines the data returned for an event. Time is absent
// (not an empty string) when no time-of-day is set; real figures are
// absent until the event is CLOSED.
type EventResponse struct {
	EventID       string               `json:"eventID"`
	ClientName    string               `json:"clientName"`
	ClientDoc     string               `json:"clientDoc"`
	Date          string               `json:"date"`
	Time          *string              `json:"time,omitempty"`
	DurationHours int                  `json:"durationHours"`
	Pax           int                  `json:"pax"`
	Items         []EventItemResponse  `json:"items"`
	Extras        []EventExtraResponse `json:"extras"`
	DesiredMargin decimal.Decimal      `json:"desiredMargin"`
	Status        domain.EventStatus   `json:"status"`
	PlannedCost   decimal.Decimal      `json:"plannedCost"`
	PlannedPrice  decimal.Decimal      `json:"plannedPrice"`
	RealCost      *decimal.Decimal     `json:"realCost,omitempty"`
	RealRevenue   *decimal.Decimal     `json:"realRevenue,omitempty"`
	PaymentTerms  string               `json:"paymentTerms"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// QuoteResponse is the pricing engine output for a draft evaluation.
type QuoteResponse struct {
	TotalCost      decimal.Decimal `json:"totalCost"`
	SuggestedPrice decimal.Decimal `json:"suggestedPrice"`
	PerPersonPrice decimal.Decimal `json:"perPersonPrice"`
}

// ToEventResponse converts a domain.Event to EventResponse DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	items := make([]EventItemResponse, len(e.Items))
	for i, item := range e.Items {
		items[i] = EventItemResponse{
			ProductID:  item.ProductID,
			QtyPlanned: item.QtyPlanned,
			QtyReal:    item.QtyReal,
		}
	}
	extras := make([]EventExtraResponse, len(e.Extras))
	for i, extra := range e.Extras {
		extras[i] = EventExtraResponse{ExtraID: extra.ExtraID, Cost: extra.Cost}
	}

	return EventResponse{
		EventID:       e.EventID,
		ClientName:    e.ClientName,
		ClientDoc:     e.ClientDoc,
		Date:          e.Date.Format(DateLayout),
		Time:          NormalizeTimeOfDay(e.Time),
		DurationHours: e.DurationHours,
		Pax:           e.Pax,
		Items:         items,
		Extras:        extras,
		DesiredMargin: e.DesiredMargin,
		Status:        e.Status,
		PlannedCost:   e.PlannedCost,
		PlannedPrice:  e.PlannedPrice,
		RealCost:      e.RealCost,
		RealRevenue:   e.RealRevenue,
		PaymentTerms:  e.PaymentTerms,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEventResponse converts a slice of domain.Event to DTOs.
func ToListEventResponse(events []domain.Event) []EventResponse {
	res := make([]EventResponse, len(events))
	for i, e := range events {
		res[i] = ToEventResponse(&e)
	}
	return res
}

// NormalizeTimeOfDay maps an empty time-of-day string to nil so that
// "no value" always serializes as absent/null, never as "".
func NormalizeTimeOfDay(t *string) *string {
	if t == nil || *t == "" {
		return nil
	}
	return t
}
