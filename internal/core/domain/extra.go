package domain

import "github.com/shopspring/decimal"

// ExtraCost is a flat, pax-independent cost template in the catalog
// (e.g. venue fee, third-party staff). When selected into an event its
// cost is copied, not referenced, so later template edits never change
// already-priced events.
type ExtraCost struct {
	ExtraID string          `json:"extraID"` // Primary Key (UUID)
	Name    string          `json:"name"`
	Cost    decimal.Decimal `json:"cost"` // >= 0
	AuditFields
}
