package domain

import (
	"github.com/shopspring/decimal"
)

// PortfolioSummary aggregates a collection of events. The real-money
// figures and the aggregate margin fold over CLOSED events only;
// events without real figures are excluded, never counted as zero.
type PortfolioSummary struct {
	TotalEvents         int             `json:"totalEvents"`
	UpcomingEvents      int             `json:"upcomingEvents"`
	ClosedEvents        int             `json:"closedEvents"`
	TotalPax            int             `json:"totalPax"`
	AveragePax          decimal.Decimal `json:"averagePax"`
	TotalPlannedRevenue decimal.Decimal `json:"totalPlannedRevenue"`
	TotalRealRevenue    decimal.Decimal `json:"totalRealRevenue"`
	TotalRealCost       decimal.Decimal `json:"totalRealCost"`
	TotalRealProfit     decimal.Decimal `json:"totalRealProfit"`
	AggregateMarginPct  decimal.Decimal `json:"aggregateMarginPct"`
}

// EventVarianceRow compares planned and realized profit for one event.
// Real figures are nil for events that have not been closed.
type EventVarianceRow struct {
	EventID       string           `json:"eventID"`
	ClientName    string           `json:"clientName"`
	Status        EventStatus      `json:"status"`
	PlannedProfit decimal.Decimal  `json:"plannedProfit"`
	RealProfit    *decimal.Decimal `json:"realProfit,omitempty"`
	Variance      *decimal.Decimal `json:"variance,omitempty"`
}

// ConsumptionRow compares the realized per-attendee consumption of one
// line item against the catalog's expected factor. Informational only;
// adjusting the catalog factor stays a manual action.
type ConsumptionRow struct {
	ProductID      string           `json:"productID"`
	ProductName    string           `json:"productName"`
	QtyPlanned     decimal.Decimal  `json:"qtyPlanned"`
	QtyReal        *decimal.Decimal `json:"qtyReal,omitempty"`
	ExpectedFactor decimal.Decimal  `json:"expectedFactor"`
	RealFactor     *decimal.Decimal `json:"realFactor,omitempty"`
}
