package repositories

import (
	"context"

	"github.com/caterops/catering_backend/internal/core/domain"
)

// ProductRepository is the product slice of the catalog/event store
// capability. SaveProduct is an upsert by ID.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// ExtraRepository is the extra-cost slice of the catalog/event store.
type ExtraRepository interface {
	SaveExtra(ctx context.Context, extra domain.ExtraCost) error
	FindExtraByID(ctx context.Context, extraID string) (*domain.ExtraCost, error)
	ListExtras(ctx context.Context) ([]domain.ExtraCost, error)
	DeleteExtra(ctx context.Context, extraID string) error
}

// PackageRepository is the package slice of the catalog/event store.
type PackageRepository interface {
	SavePackage(ctx context.Context, pkg domain.Package) error
	FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error)
	ListPackages(ctx context.Context) ([]domain.Package, error)
	DeletePackage(ctx context.Context, packageID string) error
}
