package services

import (
	"fmt"
	"log/slog"
	"time"

	"context"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/dto"
	"github.com/google/uuid"
)

// productService implements the ProductSvcFacade interface.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new product catalog service.
func NewProductService(repo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{productRepo: repo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.UnitCost.IsNegative() || req.Factor.IsNegative() {
		return nil, fmt.Errorf("unitCost and factor must be non-negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      req.Name,
		UnitCost:  req.UnitCost,
		Factor:    req.Factor,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID), slog.String("name", product.Name))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.UnitCost != nil {
		if req.UnitCost.IsNegative() {
			return nil, fmt.Errorf("unitCost must be non-negative: %w", apperrors.ErrValidation)
		}
		product.UnitCost = *req.UnitCost
	}
	if req.Factor != nil {
		if req.Factor.IsNegative() {
			return nil, fmt.Errorf("factor must be non-negative: %w", apperrors.ErrValidation)
		}
		product.Factor = *req.Factor
	}
	product.LastUpdatedAt = time.Now()

	if err := s.productRepo.SaveProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog. Events referencing
// it keep their line items; those are priced as zero afterwards
// (fail-soft policy) unless strict mode is enabled.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		return err
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}
