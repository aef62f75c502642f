package services

import (
	"context"

	"github.com/caterops/catering_backend/internal/core/domain"
)

// ReportingSvcFacade defines the portfolio-level reporting operations.
type ReportingSvcFacade interface {
	PortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error)
	VarianceReport(ctx context.Context) ([]domain.EventVarianceRow, error)
	ConsumptionReport(ctx context.Context, eventID string) ([]domain.ConsumptionRow, error)
}
