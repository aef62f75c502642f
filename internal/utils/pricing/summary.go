package pricing

import (
	"time"

	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize folds a collection of events into portfolio-level totals.
// Planned revenue falls back to the planned price for events without a
// realized revenue. The aggregate margin is real profit over real
// revenue across CLOSED events only; events lacking real figures are
// excluded from that ratio entirely rather than treated as zero, and
// a zero real-revenue denominator yields a zero margin instead of a
// division error.
func Summarize(events []domain.Event, now time.Time) domain.PortfolioSummary {
	summary := domain.PortfolioSummary{
		TotalEvents:         len(events),
		AveragePax:          decimal.Zero,
		TotalPlannedRevenue: decimal.Zero,
		TotalRealRevenue:    decimal.Zero,
		TotalRealCost:       decimal.Zero,
		TotalRealProfit:     decimal.Zero,
		AggregateMarginPct:  decimal.Zero,
	}

	// Truncate would cut against the UTC epoch and shift the day
	// boundary on servers running in another zone, so build midnight
	// in now's own location.
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	for _, event := range events {
		summary.TotalPax += event.Pax
		if !event.Date.Before(today) {
			summary.UpcomingEvents++
		}

		revenue := event.PlannedPrice
		if event.RealRevenue != nil {
			revenue = *event.RealRevenue
		}
		summary.TotalPlannedRevenue = summary.TotalPlannedRevenue.Add(revenue)

		if !event.IsClosed() || event.RealRevenue == nil || event.RealCost == nil {
			continue
		}
		summary.ClosedEvents++
		summary.TotalRealRevenue = summary.TotalRealRevenue.Add(*event.RealRevenue)
		summary.TotalRealCost = summary.TotalRealCost.Add(*event.RealCost)
	}

	summary.TotalRealProfit = summary.TotalRealRevenue.Sub(summary.TotalRealCost)

	if len(events) > 0 {
		summary.AveragePax = decimal.NewFromInt(int64(summary.TotalPax)).Div(decimal.NewFromInt(int64(len(events))))
	}
	if !summary.TotalRealRevenue.IsZero() {
		summary.AggregateMarginPct = summary.TotalRealProfit.Div(summary.TotalRealRevenue).Mul(oneHundred)
	}

	return summary
}

// VarianceRows derives the planned-vs-real profit comparison for each
// event. Real profit and variance stay nil for events that have not
// been closed.
func VarianceRows(events []domain.Event) []domain.EventVarianceRow {
	rows := make([]domain.EventVarianceRow, len(events))
	for i, event := range events {
		row := domain.EventVarianceRow{
			EventID:       event.EventID,
			ClientName:    event.ClientName,
			Status:        event.Status,
			PlannedProfit: event.PlannedPrice.Sub(event.PlannedCost),
		}
		if event.IsClosed() && event.RealRevenue != nil && event.RealCost != nil {
			realProfit := event.RealRevenue.Sub(*event.RealCost)
			variance := realProfit.Sub(row.PlannedProfit)
			row.RealProfit = &realProfit
			row.Variance = &variance
		}
		rows[i] = row
	}
	return rows
}

// ConsumptionRows derives the real-vs-expected consumption comparison
// for each line item of an event. RealFactor stays nil for items whose
// actual quantity was never recorded; items referencing a product that
// is gone from the catalog are reported with an empty name so the
// stale reference stays visible.
func ConsumptionRows(event *domain.Event, catalog ProductCatalog) []domain.ConsumptionRow {
	rows := make([]domain.ConsumptionRow, len(event.Items))
	for i, item := range event.Items {
		row := domain.ConsumptionRow{
			ProductID:      item.ProductID,
			QtyPlanned:     item.QtyPlanned,
			QtyReal:        item.QtyReal,
			ExpectedFactor: decimal.Zero,
		}
		if product, ok := catalog[item.ProductID]; ok {
			row.ProductName = product.Name
			row.ExpectedFactor = product.Factor
		}
		if item.QtyReal != nil {
			realFactor := RealFactor(*item.QtyReal, event.Pax)
			row.RealFactor = &realFactor
		}
		rows[i] = row
	}
	return rows
}
