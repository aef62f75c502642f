package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/caterops/catering_backend/internal/adapters/database/memory"
	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Beef",
		UnitCost:  dec("2.5"),
		Factor:    dec("0.85"),
	}
	require.NoError(t, repos.ProductRepo.SaveProduct(ctx, product))

	found, err := repos.ProductRepo.FindProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, found.Name)
	assert.True(t, found.UnitCost.Equal(product.UnitCost))

	// upsert by ID.
	product.UnitCost = dec("3")
	require.NoError(t, repos.ProductRepo.SaveProduct(ctx, product))
	found, err = repos.ProductRepo.FindProductByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.True(t, found.UnitCost.Equal(dec("3")))

	require.NoError(t, repos.ProductRepo.DeleteProduct(ctx, product.ProductID))
	_, err = repos.ProductRepo.FindProductByID(ctx, product.ProductID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repos.ProductRepo.DeleteProduct(ctx, product.ProductID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductRepository_ListSortedByName(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	for _, name := range []string{"Soda", "Beef", "Pork"} {
		require.NoError(t, repos.ProductRepo.SaveProduct(ctx, domain.Product{
			ProductID: uuid.NewString(),
			Name:      name,
		}))
	}

	products, err := repos.ProductRepo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Beef", products[0].Name)
	assert.Equal(t, "Pork", products[1].Name)
	assert.Equal(t, "Soda", products[2].Name)
}

func TestEventRepository_ListSortedByDateDesc(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	older := domain.Event{EventID: uuid.NewString(), Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	newer := domain.Event{EventID: uuid.NewString(), Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repos.EventRepo.SaveEvent(ctx, older))
	require.NoError(t, repos.EventRepo.SaveEvent(ctx, newer))

	events, err := repos.EventRepo.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, newer.EventID, events[0].EventID)
	assert.Equal(t, older.EventID, events[1].EventID)
}

func TestEventRepository_ReadsAreIsolatedCopies(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	qtyReal := dec("20")
	event := domain.Event{
		EventID: uuid.NewString(),
		Date:    time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		Items: []domain.EventItem{
			{ProductID: "prod-1", QtyPlanned: dec("25.5"), QtyReal: &qtyReal},
		},
		Extras: []domain.EventExtra{{ExtraID: "extra-1", Cost: dec("150")}},
	}
	require.NoError(t, repos.EventRepo.SaveEvent(ctx, event))

	// mutating what one read returned must not leak into a later read.
	first, err := repos.EventRepo.FindEventByID(ctx, event.EventID)
	require.NoError(t, err)
	first.Items[0].ProductID = "tampered"
	*first.Items[0].QtyReal = dec("999")

	second, err := repos.EventRepo.FindEventByID(ctx, event.EventID)
	require.NoError(t, err)
	assert.Equal(t, "prod-1", second.Items[0].ProductID)
	assert.True(t, second.Items[0].QtyReal.Equal(dec("20")))
}

func TestPackageRepository_CopySemantics(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	pkg := domain.Package{
		PackageID:  uuid.NewString(),
		Name:       "Basic BBQ",
		ProductIDs: []string{"prod-1", "prod-2"},
	}
	require.NoError(t, repos.PackageRepo.SavePackage(ctx, pkg))

	found, err := repos.PackageRepo.FindPackageByID(ctx, pkg.PackageID)
	require.NoError(t, err)
	found.ProductIDs[0] = "tampered"

	again, err := repos.PackageRepo.FindPackageByID(ctx, pkg.PackageID)
	require.NoError(t, err)
	assert.Equal(t, "prod-1", again.ProductIDs[0])
}

func TestExtraRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())

	_, err := repos.ExtraRepo.FindExtraByID(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repos.ExtraRepo.DeleteExtra(ctx, "ghost"), apperrors.ErrNotFound)
}
