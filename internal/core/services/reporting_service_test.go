package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockEventRepo   *MockEventRepository
	mockProductRepo *MockProductRepository
	service         portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewReportingService(suite.mockEventRepo, suite.mockProductRepo)
}

// portfolioEvents is one closed and one open event. The closed one
// realized 500 revenue against 300 cost.
func portfolioEvents() []domain.Event {
	closed := domain.Event{
		EventID:      "evt-closed",
		ClientName:   "Acme Corp",
		Pax:          40,
		Status:       domain.StatusClosed,
		PlannedCost:  dec("320"),
		PlannedPrice: dec("480"),
		RealCost:     decPtr("300"),
		RealRevenue:  decPtr("500"),
		Date:         time.Now().AddDate(0, -1, 0),
	}
	open := domain.Event{
		EventID:      "evt-open",
		ClientName:   "Globex",
		Pax:          20,
		Status:       domain.StatusConfirmed,
		PlannedCost:  dec("100"),
		PlannedPrice: dec("130"),
		Date:         time.Now().AddDate(0, 1, 0),
	}
	return []domain.Event{closed, open}
}

func (suite *ReportingServiceTestSuite) TestPortfolioSummary() {
	ctx := context.Background()
	suite.mockEventRepo.On("ListEvents", ctx).Return(portfolioEvents(), nil).Once()

	summary, err := suite.service.PortfolioSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, summary.TotalEvents)
	suite.Equal(1, summary.UpcomingEvents)
	suite.Equal(1, summary.ClosedEvents)
	suite.Equal(60, summary.TotalPax)
	suite.True(summary.AveragePax.Equal(dec("30")))

	// closed event contributes its realized revenue, the open one its planned price.
	suite.True(summary.TotalPlannedRevenue.Equal(dec("630")), "got %s", summary.TotalPlannedRevenue)
	suite.True(summary.TotalRealRevenue.Equal(dec("500")))
	suite.True(summary.TotalRealCost.Equal(dec("300")))
	suite.True(summary.TotalRealProfit.Equal(dec("200")))
	// 200 / 500 = 40%.
	suite.True(summary.AggregateMarginPct.Equal(dec("40")), "got %s", summary.AggregateMarginPct)
}

func (suite *ReportingServiceTestSuite) TestPortfolioSummary_Empty() {
	ctx := context.Background()
	suite.mockEventRepo.On("ListEvents", ctx).Return([]domain.Event{}, nil).Once()

	summary, err := suite.service.PortfolioSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, summary.TotalEvents)
	suite.True(summary.AveragePax.IsZero())
	suite.True(summary.AggregateMarginPct.IsZero())
}

func (suite *ReportingServiceTestSuite) TestVarianceReport() {
	ctx := context.Background()
	suite.mockEventRepo.On("ListEvents", ctx).Return(portfolioEvents(), nil).Once()

	rows, err := suite.service.VarianceReport(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	// closed: planned profit 160, real profit 200, variance +40.
	suite.True(rows[0].PlannedProfit.Equal(dec("160")))
	suite.Require().NotNil(rows[0].RealProfit)
	suite.True(rows[0].RealProfit.Equal(dec("200")))
	suite.Require().NotNil(rows[0].Variance)
	suite.True(rows[0].Variance.Equal(dec("40")))

	// open: no real figures yet.
	suite.True(rows[1].PlannedProfit.Equal(dec("30")))
	suite.Nil(rows[1].RealProfit)
	suite.Nil(rows[1].Variance)
}

func (suite *ReportingServiceTestSuite) TestConsumptionReport() {
	ctx := context.Background()
	event := &domain.Event{
		EventID: "evt-closed",
		Pax:     40,
		Status:  domain.StatusClosed,
		Items: []domain.EventItem{
			{ProductID: "prod-1", QtyPlanned: dec("34"), QtyReal: decPtr("30")},
			{ProductID: "gone", QtyPlanned: dec("10")},
		},
	}
	suite.mockEventRepo.On("FindEventByID", ctx, "evt-closed").Return(event, nil).Once()
	suite.mockProductRepo.On("ListProducts", ctx).Return([]domain.Product{
		{ProductID: "prod-1", Name: "Beef", Factor: dec("0.85")},
	}, nil).Once()

	rows, err := suite.service.ConsumptionReport(ctx, "evt-closed")

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Equal("Beef", rows[0].ProductName)
	suite.True(rows[0].ExpectedFactor.Equal(dec("0.85")))
	suite.Require().NotNil(rows[0].RealFactor)
	// 30 / 40 = 0.75 per attendee.
	suite.True(rows[0].RealFactor.Equal(dec("0.75")), "got %s", rows[0].RealFactor)

	// stale reference stays visible, with no name and no expected factor.
	suite.Equal("", rows[1].ProductName)
	suite.True(rows[1].ExpectedFactor.IsZero())
	suite.Nil(rows[1].RealFactor)
}

func (suite *ReportingServiceTestSuite) TestConsumptionReport_EventNotFound() {
	ctx := context.Background()
	suite.mockEventRepo.On("FindEventByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	rows, err := suite.service.ConsumptionReport(ctx, "ghost")

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
