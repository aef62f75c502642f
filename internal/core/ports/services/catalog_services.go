package services

import (
	"context"

	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/caterops/catering_backend/internal/dto"
)

// ProductSvcFacade defines the catalog product operations.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// ExtraSvcFacade defines the extra-cost template operations.
type ExtraSvcFacade interface {
	CreateExtra(ctx context.Context, req dto.CreateExtraRequest) (*domain.ExtraCost, error)
	GetExtraByID(ctx context.Context, extraID string) (*domain.ExtraCost, error)
	ListExtras(ctx context.Context) ([]domain.ExtraCost, error)
	UpdateExtra(ctx context.Context, extraID string, req dto.UpdateExtraRequest) (*domain.ExtraCost, error)
	DeleteExtra(ctx context.Context, extraID string) error
}

// PackageSvcFacade defines the product bundle operations.
type PackageSvcFacade interface {
	CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*domain.Package, error)
	GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error)
	ListPackages(ctx context.Context) ([]domain.Package, error)
	UpdatePackage(ctx context.Context, packageID string, req dto.UpdatePackageRequest) (*domain.Package, error)
	DeletePackage(ctx context.Context, packageID string) error
}
