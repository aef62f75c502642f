package domain

import "github.com/shopspring/decimal"

// Product is a catalog item priced per unit. Factor is the expected
// consumption quantity per attendee (e.g. 0.85 units/person).
// Products are immutable reference data from the point of view of
// events: line items reference them by ID only.
type Product struct {
	ProductID string          `json:"productID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unitCost"` // >= 0
	Factor    decimal.Decimal `json:"factor"`   // >= 0, units per attendee
	AuditFields
}
