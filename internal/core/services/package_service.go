package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/dto"
	"github.com/google/uuid"
)

// packageService implements the PackageSvcFacade interface.
type packageService struct {
	BaseService
	packageRepo portsrepo.PackageRepository
	productRepo portsrepo.ProductRepository
}

// NewPackageService creates a new product bundle service.
func NewPackageService(repo portsrepo.PackageRepository, productRepo portsrepo.ProductRepository) portssvc.PackageSvcFacade {
	return &packageService{packageRepo: repo, productRepo: productRepo}
}

var _ portssvc.PackageSvcFacade = (*packageService)(nil)

func (s *packageService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (*domain.Package, error) {
	// Bundles may only reference products that exist right now; stale
	// references can still appear later through product deletion.
	if err := s.validateProductRefs(ctx, req.ProductIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	pkg := domain.Package{
		PackageID:  uuid.NewString(),
		Name:       req.Name,
		ProductIDs: req.ProductIDs,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.packageRepo.SavePackage(ctx, pkg); err != nil {
		s.LogError(ctx, err, "Failed to save package", slog.String("package_id", pkg.PackageID))
		return nil, err
	}

	s.LogInfo(ctx, "Package created", slog.String("package_id", pkg.PackageID), slog.String("name", pkg.Name))
	return &pkg, nil
}

func (s *packageService) GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find package", slog.String("package_id", packageID))
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.packageRepo.ListPackages(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list packages")
		return nil, err
	}
	return packages, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, packageID string, req dto.UpdatePackageRequest) (*domain.Package, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.ProductIDs != nil {
		if err := s.validateProductRefs(ctx, req.ProductIDs); err != nil {
			return nil, err
		}
		pkg.ProductIDs = req.ProductIDs
	}
	pkg.LastUpdatedAt = time.Now()

	if err := s.packageRepo.SavePackage(ctx, *pkg); err != nil {
		s.LogError(ctx, err, "Failed to update package", slog.String("package_id", packageID))
		return nil, err
	}
	return pkg, nil
}

// validateProductRefs distinguishes a bad bundle member from a missing
// bundle: a reference to an absent product is a catalog-reference
// failure, not a not-found on the bundle itself.
func (s *packageService) validateProductRefs(ctx context.Context, productIDs []string) error {
	for _, productID := range productIDs {
		if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
			return fmt.Errorf("invalid product reference %s: %w", productID, apperrors.ErrMissingCatalogRef)
		}
	}
	return nil
}

func (s *packageService) DeletePackage(ctx context.Context, packageID string) error {
	if err := s.packageRepo.DeletePackage(ctx, packageID); err != nil {
		s.LogError(ctx, err, "Failed to delete package", slog.String("package_id", packageID))
		return err
	}
	s.LogInfo(ctx, "Package deleted", slog.String("package_id", packageID))
	return nil
}
