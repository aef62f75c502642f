package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus indicates where an event sits in its lifecycle.
type EventStatus string

const (
	StatusProposal  EventStatus = "PROPOSAL"
	StatusConfirmed EventStatus = "CONFIRMED"
	StatusCompleted EventStatus = "COMPLETED"
	StatusCancelled EventStatus = "CANCELLED"
	StatusClosed    EventStatus = "CLOSED"
)

// EventItem is a product selection on an event. QtyPlanned is set at
// authoring time (defaulting to pax x product.Factor). QtyReal stays
// nil until closing and is never cleared once set.
type EventItem struct {
	ProductID  string           `json:"productId"`
	QtyPlanned decimal.Decimal  `json:"qtyPlanned"`
	QtyReal    *decimal.Decimal `json:"qtyReal,omitempty"`
}

// EventExtra is an extra-cost selection on an event. Cost is copied
// from the ExtraCost template at selection time.
type EventExtra struct {
	ExtraID string          `json:"extraId"`
	Cost    decimal.Decimal `json:"cost"`
}

// Event is the aggregate root being priced and reconciled. PlannedCost
// and PlannedPrice are derived by the pricing engine but persisted as
// a cache; RealCost and RealRevenue exist only once Status is CLOSED
// and serve, together with the planned figures, as the baseline for
// variance reporting. Closing is irreversible.
type Event struct {
	EventID       string           `json:"eventID"` // Primary Key (UUID)
	ClientName    string           `json:"clientName"`
	ClientDoc     string           `json:"clientDoc"` // tax document
	Date          time.Time        `json:"date"`
	Time          *string          `json:"time,omitempty"` // "HH:MM", nil when unset
	DurationHours int              `json:"durationHours"`
	Pax           int              `json:"pax"` // >= 1
	Items         []EventItem      `json:"items"`
	Extras        []EventExtra     `json:"extras"`
	DesiredMargin decimal.Decimal  `json:"desiredMargin"` // percentage [0,100]
	Status        EventStatus      `json:"status"`
	PlannedCost   decimal.Decimal  `json:"plannedCost"`
	PlannedPrice  decimal.Decimal  `json:"plannedPrice"`
	RealCost      *decimal.Decimal `json:"realCost,omitempty"`
	RealRevenue   *decimal.Decimal `json:"realRevenue,omitempty"`
	PaymentTerms  string           `json:"paymentTerms"`
	Notes         string           `json:"notes"`
	AuditFields
}

// IsClosed reports whether the event has gone through closing.
func (e *Event) IsClosed() bool {
	return e.Status == StatusClosed
}
