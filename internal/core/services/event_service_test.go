package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/caterops/catering_backend/internal/adapters/database/memory"
	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/core/services"
	"github.com/caterops/catering_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock ExtraRepository ---
type MockExtraRepository struct {
	mock.Mock
}

func (m *MockExtraRepository) SaveExtra(ctx context.Context, extra domain.ExtraCost) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}

func (m *MockExtraRepository) FindExtraByID(ctx context.Context, extraID string) (*domain.ExtraCost, error) {
	args := m.Called(ctx, extraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtraCost), args.Error(1)
}

func (m *MockExtraRepository) ListExtras(ctx context.Context) ([]domain.ExtraCost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtraCost), args.Error(1)
}

func (m *MockExtraRepository) DeleteExtra(ctx context.Context, extraID string) error {
	args := m.Called(ctx, extraID)
	return args.Error(0)
}

// --- Mock PackageRepository ---
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) SavePackage(ctx context.Context, pkg domain.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPackageRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockPackageRepository) DeletePackage(ctx context.Context, packageID string) error {
	args := m.Called(ctx, packageID)
	return args.Error(0)
}

// --- Test Suite ---
type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo   *MockEventRepository
	mockProductRepo *MockProductRepository
	mockExtraRepo   *MockExtraRepository
	mockPackageRepo *MockPackageRepository
	service         portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockExtraRepo = new(MockExtraRepository)
	suite.mockPackageRepo = new(MockPackageRepository)
	suite.service = services.NewEventService(suite.mockEventRepo, suite.mockProductRepo, suite.mockExtraRepo, suite.mockPackageRepo)
}

func (suite *EventServiceTestSuite) strictService() portssvc.EventSvcFacade {
	return services.NewEventService(suite.mockEventRepo, suite.mockProductRepo, suite.mockExtraRepo, suite.mockPackageRepo, services.WithStrictCatalogRefs(true))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// testCatalog is one product at 2.50 per unit with a 0.85 per-person
// factor, the running example across the service tests.
func (suite *EventServiceTestSuite) expectCatalog() {
	suite.mockProductRepo.On("ListProducts", mock.Anything).Return([]domain.Product{
		{ProductID: "prod-1", Name: "Beef", UnitCost: dec("2.5"), Factor: dec("0.85")},
	}, nil).Once()
}

// --- CreateEvent ---

func (suite *EventServiceTestSuite) TestCreateEvent_SeedsDefaultsAndPricing() {
	ctx := context.Background()
	suite.expectCatalog()
	suite.mockExtraRepo.On("FindExtraByID", ctx, "extra-1").Return(&domain.ExtraCost{
		ExtraID: "extra-1", Name: "Sound system", Cost: dec("150"),
	}, nil).Once()

	var saved domain.Event
	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		saved = e
		return e.ClientName == "Acme Corp"
	})).Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		ClientDoc:  "12345678",
		Date:       "2026-10-12",
		Pax:        30,
		Items:      []dto.EventItemRequest{{ProductID: "prod-1"}},
		Extras:     []dto.EventExtraRequest{{ExtraID: "extra-1"}},
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(event)

	// qtyPlanned seeded as pax x factor.
	suite.Require().Len(event.Items, 1)
	suite.True(event.Items[0].QtyPlanned.Equal(dec("25.5")), "got %s", event.Items[0].QtyPlanned)
	suite.Nil(event.Items[0].QtyReal)

	// extra cost copied from the template at selection time.
	suite.Require().Len(event.Extras, 1)
	suite.True(event.Extras[0].Cost.Equal(dec("150")))

	// defaults applied.
	suite.Equal(domain.StatusProposal, event.Status)
	suite.Equal(4, event.DurationHours)
	suite.Equal("50% deposit, 50% on event day.", event.PaymentTerms)
	suite.True(event.DesiredMargin.Equal(dec("30")))
	suite.Nil(event.Time)

	// pricing: 25.5 x 2.5 + 150 = 213.75; x 1.3 = 277.875.
	suite.True(event.PlannedCost.Equal(dec("213.75")), "got %s", event.PlannedCost)
	suite.True(event.PlannedPrice.Equal(dec("277.875")), "got %s", event.PlannedPrice)
	suite.Nil(event.RealCost)
	suite.Nil(event.RealRevenue)

	suite.Equal(event.EventID, saved.EventID)
	suite.mockEventRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockExtraRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_ExplicitQuantityAndCostKept() {
	ctx := context.Background()
	suite.expectCatalog()

	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		ClientDoc:  "12345678",
		Date:       "2026-10-12",
		Pax:        30,
		Items:      []dto.EventItemRequest{{ProductID: "prod-1", QtyPlanned: decPtr("40")}},
		Extras:     []dto.EventExtraRequest{{ExtraID: "extra-1", Cost: decPtr("99")}},
	})

	suite.Require().NoError(err)
	suite.True(event.Items[0].QtyPlanned.Equal(dec("40")))
	suite.True(event.Extras[0].Cost.Equal(dec("99")))
	// template never consulted when the cost is supplied.
	suite.mockExtraRepo.AssertNotCalled(suite.T(), "FindExtraByID", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_MissingClientIdentity() {
	ctx := context.Background()

	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		Date:       "2026-10-12",
		Pax:        30,
	})

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_InvalidMargin() {
	ctx := context.Background()

	_, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName:    "Acme Corp",
		ClientDoc:     "12345678",
		Date:          "2026-10-12",
		Pax:           30,
		DesiredMargin: decPtr("150"),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EventServiceTestSuite) TestCreateEvent_PackageExpansion() {
	ctx := context.Background()
	suite.expectCatalog()
	suite.mockPackageRepo.On("FindPackageByID", ctx, "pkg-1").Return(&domain.Package{
		PackageID:  "pkg-1",
		Name:       "Basic BBQ",
		ProductIDs: []string{"prod-1"},
	}, nil).Once()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		ClientDoc:  "12345678",
		Date:       "2026-10-12",
		Pax:        30,
		PackageIDs: []string{"pkg-1"},
	})

	suite.Require().NoError(err)
	suite.Require().Len(event.Items, 1)
	suite.Equal("prod-1", event.Items[0].ProductID)
	suite.True(event.Items[0].QtyPlanned.Equal(dec("25.5")))
	suite.mockPackageRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCreateEvent_FailSoftOnMissingProduct() {
	ctx := context.Background()
	suite.expectCatalog()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		ClientDoc:  "12345678",
		Date:       "2026-10-12",
		Pax:        30,
		Items:      []dto.EventItemRequest{{ProductID: "ghost"}},
	})

	// unknown product contributes nothing instead of failing the draft.
	suite.Require().NoError(err)
	suite.True(event.Items[0].QtyPlanned.IsZero())
	suite.True(event.PlannedCost.IsZero())
}

func (suite *EventServiceTestSuite) TestCreateEvent_UnknownExtraReference() {
	ctx := context.Background()
	suite.expectCatalog()
	suite.mockExtraRepo.On("FindExtraByID", ctx, "no-such-extra").Return(nil, apperrors.ErrNotFound).Once()

	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		ClientDoc:  "12345678",
		Date:       "2026-10-12",
		Pax:        30,
		Extras:     []dto.EventExtraRequest{{ExtraID: "no-such-extra"}},
	})

	// a bad selection in the request body is a catalog-ref failure,
	// never a bare not-found.
	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrMissingCatalogRef)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_UnknownPackageReference() {
	ctx := context.Background()
	suite.expectCatalog()
	suite.mockPackageRepo.On("FindPackageByID", ctx, "no-such-pkg").Return(nil, apperrors.ErrNotFound).Once()

	event, err := suite.service.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		ClientDoc:  "12345678",
		Date:       "2026-10-12",
		Pax:        30,
		PackageIDs: []string{"no-such-pkg"},
	})

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrMissingCatalogRef)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EventServiceTestSuite) TestUpdateEvent_UnknownExtraReference() {
	ctx := context.Background()
	event := suite.openEvent()
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.expectCatalog()
	suite.mockExtraRepo.On("FindExtraByID", ctx, "no-such-extra").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateEvent(ctx, event.EventID, dto.UpdateEventRequest{
		Extras: []dto.EventExtraRequest{{ExtraID: "no-such-extra"}},
	})

	// distinguishable from "event not found": only the catalog-ref
	// sentinel comes back when the event exists but the selection is bad.
	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrMissingCatalogRef)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EventServiceTestSuite) TestCreateEvent_StrictModeRejectsMissingProduct() {
	ctx := context.Background()
	suite.expectCatalog()
	strict := suite.strictService()

	event, err := strict.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		ClientDoc:  "12345678",
		Date:       "2026-10-12",
		Pax:        30,
		Items:      []dto.EventItemRequest{{ProductID: "ghost"}},
	})

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrMissingCatalogRef)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

// --- UpdateEvent ---

func (suite *EventServiceTestSuite) openEvent() *domain.Event {
	now := time.Now()
	return &domain.Event{
		EventID:       uuid.NewString(),
		ClientName:    "Acme Corp",
		ClientDoc:     "12345678",
		Date:          time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		DurationHours: 4,
		Pax:           30,
		Items:         []domain.EventItem{{ProductID: "prod-1", QtyPlanned: dec("25.5")}},
		Extras:        []domain.EventExtra{{ExtraID: "extra-1", Cost: dec("150")}},
		DesiredMargin: dec("30"),
		Status:        domain.StatusConfirmed,
		PlannedCost:   dec("213.75"),
		PlannedPrice:  dec("277.875"),
		PaymentTerms:  "50% deposit, 50% on event day.",
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
}

func (suite *EventServiceTestSuite) TestUpdateEvent_RecomputesPricing() {
	ctx := context.Background()
	event := suite.openEvent()
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.expectCatalog()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	newMargin := dec("50")
	updated, err := suite.service.UpdateEvent(ctx, event.EventID, dto.UpdateEventRequest{
		DesiredMargin: &newMargin,
	})

	suite.Require().NoError(err)
	// 213.75 x 1.5 = 320.625.
	suite.True(updated.PlannedPrice.Equal(dec("320.625")), "got %s", updated.PlannedPrice)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestUpdateEvent_ClosedEventIsFrozen() {
	ctx := context.Background()
	event := suite.openEvent()
	event.Status = domain.StatusClosed
	event.RealCost = decPtr("200")
	event.RealRevenue = decPtr("277.875")
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	newName := "Someone Else"
	updated, err := suite.service.UpdateEvent(ctx, event.EventID, dto.UpdateEventRequest{
		ClientName: &newName,
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrEventClosed)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEvent_NotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()
	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateEvent(ctx, eventID, dto.UpdateEventRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Quote ---

func (suite *EventServiceTestSuite) TestQuote_StatelessEvaluation() {
	ctx := context.Background()
	suite.expectCatalog()

	result, err := suite.service.Quote(ctx, dto.QuoteRequest{
		Pax:           30,
		Items:         []dto.EventItemRequest{{ProductID: "prod-1"}},
		Extras:        []dto.EventExtraRequest{{ExtraID: "extra-1", Cost: decPtr("150")}},
		DesiredMargin: dec("30"),
	})

	suite.Require().NoError(err)
	suite.True(result.TotalCost.Equal(dec("213.75")))
	suite.True(result.SuggestedPrice.Equal(dec("277.875")))
	suite.True(result.PerPersonPrice.Equal(dec("9.2625")), "got %s", result.PerPersonPrice)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

// --- CloseEvent ---

func (suite *EventServiceTestSuite) TestCloseEvent_RecordsActualsAndFreezes() {
	ctx := context.Background()
	event := suite.openEvent()
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.expectCatalog()

	var saved domain.Event
	suite.mockEventRepo.On("SaveEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
		saved = e
		return e.Status == domain.StatusClosed
	})).Return(nil).Once()

	closed, err := suite.service.CloseEvent(ctx, event.EventID, dto.CloseEventRequest{
		Actuals: []dto.ActualQuantity{{ProductID: "prod-1", QtyReal: dec("20")}},
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusClosed, closed.Status)
	suite.Require().NotNil(closed.Items[0].QtyReal)
	suite.True(closed.Items[0].QtyReal.Equal(dec("20")))

	// real cost 20 x 2.5 + 150 = 200; revenue is the locked planned price.
	suite.Require().NotNil(closed.RealCost)
	suite.True(closed.RealCost.Equal(dec("200")), "got %s", closed.RealCost)
	suite.Require().NotNil(closed.RealRevenue)
	suite.True(closed.RealRevenue.Equal(dec("277.875")))

	// planned figures survive as the variance baseline.
	suite.True(closed.PlannedCost.Equal(dec("213.75")))
	suite.True(closed.PlannedPrice.Equal(dec("277.875")))

	suite.Equal(domain.StatusClosed, saved.Status)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestCloseEvent_DefaultsMissingActualsToPlanned() {
	ctx := context.Background()
	event := suite.openEvent()
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.expectCatalog()
	suite.mockEventRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.Event")).Return(nil).Once()

	closed, err := suite.service.CloseEvent(ctx, event.EventID, dto.CloseEventRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(closed.Items[0].QtyReal)
	suite.True(closed.Items[0].QtyReal.Equal(dec("25.5")))
	// with actuals equal to plan, real cost equals planned cost.
	suite.True(closed.RealCost.Equal(dec("213.75")))
}

func (suite *EventServiceTestSuite) TestCloseEvent_AlreadyClosed() {
	ctx := context.Background()
	event := suite.openEvent()
	event.Status = domain.StatusClosed
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	closed, err := suite.service.CloseEvent(ctx, event.EventID, dto.CloseEventRequest{})

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, apperrors.ErrEventClosed)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCloseEvent_NegativeActualRejected() {
	ctx := context.Background()
	event := suite.openEvent()
	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()

	closed, err := suite.service.CloseEvent(ctx, event.EventID, dto.CloseEventRequest{
		Actuals: []dto.ActualQuantity{{ProductID: "prod-1", QtyReal: dec("-1")}},
	})

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Delete ---

func (suite *EventServiceTestSuite) TestDeleteEvent_NotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()
	suite.mockEventRepo.On("DeleteEvent", ctx, eventID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEvent(ctx, eventID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}

// Runs against the real memory backend rather than mocks: once an extra
// template's cost has been copied onto an event, later edits to the
// template must not bleed into the selection.
func TestEventService_ExtraCostCopiedNotLinked(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	require.NoError(t, repos.ProductRepo.SaveProduct(ctx, domain.Product{
		ProductID: "prod-1", Name: "Beef", UnitCost: dec("2.5"), Factor: dec("0.85"),
	}))
	template := domain.ExtraCost{ExtraID: "extra-1", Name: "Sound system", Cost: dec("150")}
	require.NoError(t, repos.ExtraRepo.SaveExtra(ctx, template))

	svc := services.NewEventService(repos.EventRepo, repos.ProductRepo, repos.ExtraRepo, repos.PackageRepo)

	event, err := svc.CreateEvent(ctx, dto.CreateEventRequest{
		ClientName: "Acme Corp",
		ClientDoc:  "12345678",
		Date:       "2026-10-12",
		Pax:        30,
		Items:      []dto.EventItemRequest{{ProductID: "prod-1"}},
		Extras:     []dto.EventExtraRequest{{ExtraID: "extra-1"}},
	})
	require.NoError(t, err)
	require.True(t, event.Extras[0].Cost.Equal(dec("150")))

	// Reprice the template after the selection was made.
	template.Cost = dec("999")
	require.NoError(t, repos.ExtraRepo.SaveExtra(ctx, template))

	reread, err := svc.GetEventByID(ctx, event.EventID)
	require.NoError(t, err)
	require.Len(t, reread.Extras, 1)
	assert.True(t, reread.Extras[0].Cost.Equal(dec("150")), "got %s", reread.Extras[0].Cost)
}
