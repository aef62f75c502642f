package dto

import (
	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PortfolioSummaryResponse is the portfolio aggregation report.
type PortfolioSummaryResponse struct {
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

// EventVarianceRowResponse compares planned and realized profit for one event.
type EventVarianceRowResponse struct {
	EventID       string             `json:"eventID"`
	ClientName    string             `json:"clientName"`
	Status        domain.EventStatus `json:"status"`
	PlannedProfit decimal.Decimal    `json:"plannedProfit"`
	RealProfit    *decimal.Decimal   `json:"realProfit,omitempty"`
	Variance      *decimal.Decimal   `json:"variance,omitempty"`
}

// ConsumptionRowResponse compares realized and expected consumption
// factors for one line item of a closed event.
type ConsumptionRowResponse struct {
	ProductID      string           `json:"productID"`
	ProductName    string           `json:"productName"`
	QtyPlanned     decimal.Decimal  `json:"qtyPlanned"`
	QtyReal        *decimal.Decimal `json:"qtyReal,omitempty"`
	ExpectedFactor decimal.Decimal  `json:"expectedFactor"`
	RealFactor     *decimal.Decimal `json:"realFactor,omitempty"`
}

// ToPortfolioSummaryResponse converts the domain summary to a DTO.
func ToPortfolioSummaryResponse(s domain.PortfolioSummary) PortfolioSummaryResponse {
	return PortfolioSummaryResponse{
		TotalEvents:         s.TotalEvents,
		UpcomingEvents:      s.UpcomingEvents,
		ClosedEvents:        s.ClosedEvents,
		TotalPax:            s.TotalPax,
		AveragePax:          s.AveragePax,
		TotalPlannedRevenue: s.TotalPlannedRevenue,
		TotalRealRevenue:    s.TotalRealRevenue,
		TotalRealCost:       s.TotalRealCost,
		TotalRealProfit:     s.TotalRealProfit,
		AggregateMarginPct:  s.AggregateMarginPct,
	}
}

// ToVarianceRowsResponse converts domain variance rows to DTOs.
func ToVarianceRowsResponse(rows []domain.EventVarianceRow) []EventVarianceRowResponse {
	res := make([]EventVarianceRowResponse, len(rows))
	for i, row := range rows {
		res[i] = EventVarianceRowResponse{
			EventID:       row.EventID,
			ClientName:    row.ClientName,
			Status:        row.Status,
			PlannedProfit: row.PlannedProfit,
			RealProfit:    row.RealProfit,
			Variance:      row.Variance,
		}
	}
	return res
}

// ToConsumptionRowsResponse converts domain consumption rows to DTOs.
func ToConsumptionRowsResponse(rows []domain.ConsumptionRow) []ConsumptionRowResponse {
	res := make([]ConsumptionRowResponse, len(rows))
	for i, row := range rows {
		res[i] = ConsumptionRowResponse{
			ProductID:      row.ProductID,
			ProductName:    row.ProductName,
			QtyPlanned:     row.QtyPlanned,
			QtyReal:        row.QtyReal,
			ExpectedFactor: row.ExpectedFactor,
			RealFactor:     row.RealFactor,
		}
	}
	return res
}
