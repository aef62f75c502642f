package pricing

import (
	"fmt"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductCatalog is an immutable read snapshot of the product catalog,
// keyed by product ID. Both engines only ever read from it.
type ProductCatalog map[string]domain.Product

// NewProductCatalog builds a catalog snapshot from a product list.
func NewProductCatalog(products []domain.Product) ProductCatalog {
	catalog := make(ProductCatalog, len(products))
	for _, p := range products {
		catalog[p.ProductID] = p
	}
	return catalog
}

// PricingResult is the output of the pricing engine for one draft.
type PricingResult struct {
	TotalCost      decimal.Decimal
	SuggestedPrice decimal.Decimal
	PerPersonPrice decimal.Decimal
}

// ClosingResult is the output of the closing engine for one event.
type ClosingResult struct {
	RealCost       decimal.Decimal
	RealRevenue    decimal.Decimal
	ProfitVariance decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// ComputePricing maps an event draft and a catalog snapshot to its
// planned cost and suggested price. A line item whose product is
// missing from the catalog contributes zero (fail-soft; callers
// wanting strict behavior run ValidateCatalogRefs first). Extras use
// their copied cost and never re-read the catalog. Pure, deterministic
// and free of intermediate rounding, so it is safe to re-run on every
// draft edit.
func ComputePricing(items []domain.EventItem, extras []domain.EventExtra, catalog ProductCatalog, pax int, desiredMargin decimal.Decimal) PricingResult {
	itemsCost := decimal.Zero
	for _, item := range items {
		product, ok := catalog[item.ProductID]
		if !ok {
			continue
		}
		itemsCost = itemsCost.Add(item.QtyPlanned.Mul(product.UnitCost))
	}

	extrasCost := decimal.Zero
	for _, extra := range extras {
		extrasCost = extrasCost.Add(extra.Cost)
	}

	totalCost := itemsCost.Add(extrasCost)
	suggestedPrice := totalCost.Mul(decimal.NewFromInt(1).Add(desiredMargin.Div(oneHundred)))

	perPerson := decimal.Zero
	if pax > 0 {
		perPerson = suggestedPrice.Div(decimal.NewFromInt(int64(pax)))
	}

	return PricingResult{
		TotalCost:      totalCost,
		SuggestedPrice: suggestedPrice,
		PerPersonPrice: perPerson,
	}
}

// ComputeClosing reconciles an event against actual consumption.
// Missing qtyReal counts as zero, missing products follow the same
// fail-soft policy as ComputePricing, and extras are assumed unchanged
// at closing time. RealRevenue is the originally agreed planned price;
// ProfitVariance is realized profit minus planned profit (positive
// means the event over-performed its plan).
func ComputeClosing(event *domain.Event, catalog ProductCatalog) ClosingResult {
	realItemsCost := decimal.Zero
	for _, item := range event.Items {
		product, ok := catalog[item.ProductID]
		if !ok {
			continue
		}
		qtyReal := decimal.Zero
		if item.QtyReal != nil {
			qtyReal = *item.QtyReal
		}
		realItemsCost = realItemsCost.Add(qtyReal.Mul(product.UnitCost))
	}

	realCost := realItemsCost
	for _, extra := range event.Extras {
		realCost = realCost.Add(extra.Cost)
	}

	realRevenue := event.PlannedPrice
	realProfit := realRevenue.Sub(realCost)
	plannedProfit := event.PlannedPrice.Sub(event.PlannedCost)

	return ClosingResult{
		RealCost:       realCost,
		RealRevenue:    realRevenue,
		ProfitVariance: realProfit.Sub(plannedProfit),
	}
}

// DefaultPlannedQty seeds the planned quantity for a product added to
// a draft: pax x factor, kept exact without rounding (quantities are
// fractional by nature: kilograms, litres).
func DefaultPlannedQty(pax int, factor decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(pax)).Mul(factor)
}

// RealFactor derives the actual per-attendee consumption coefficient
// of one line item. Returns zero for pax <= 0.
func RealFactor(qtyReal decimal.Decimal, pax int) decimal.Decimal {
	if pax <= 0 {
		return decimal.Zero
	}
	return qtyReal.Div(decimal.NewFromInt(int64(pax)))
}

// ValidateCatalogRefs is the strict-mode counterpart of the fail-soft
// policy: it reports the first line item whose product is missing from
// the catalog.
func ValidateCatalogRefs(items []domain.EventItem, catalog ProductCatalog) error {
	for _, item := range items {
		if _, ok := catalog[item.ProductID]; !ok {
			return fmt.Errorf("product %s not in catalog: %w", item.ProductID, apperrors.ErrMissingCatalogRef)
		}
	}
	return nil
}
