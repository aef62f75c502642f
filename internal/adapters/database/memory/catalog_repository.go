package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/caterops/catering_backend/internal/apperrors"
	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
)

type productRepository struct {
	store *Store
}

// NewProductRepository creates an in-memory product repository.
func NewProductRepository(store *Store) portsrepo.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) SaveProduct(_ context.Context, product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.products[product.ProductID] = product
	return nil
}

func (r *productRepository) FindProductByID(_ context.Context, productID string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	product, ok := r.store.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}
	return &product, nil
}

func (r *productRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	products := make([]domain.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (r *productRepository) DeleteProduct(_ context.Context, productID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[productID]; !ok {
		return fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}
	delete(r.store.products, productID)
	return nil
}

type extraRepository struct {
	store *Store
}

// NewExtraRepository creates an in-memory extra-cost repository.
func NewExtraRepository(store *Store) portsrepo.ExtraRepository {
	return &extraRepository{store: store}
}

func (r *extraRepository) SaveExtra(_ context.Context, extra domain.ExtraCost) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.extras[extra.ExtraID] = extra
	return nil
}

func (r *extraRepository) FindExtraByID(_ context.Context, extraID string) (*domain.ExtraCost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	extra, ok := r.store.extras[extraID]
	if !ok {
		return nil, fmt.Errorf("extra %s: %w", extraID, apperrors.ErrNotFound)
	}
	return &extra, nil
}

func (r *extraRepository) ListExtras(_ context.Context) ([]domain.ExtraCost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	extras := make([]domain.ExtraCost, 0, len(r.store.extras))
	for _, e := range r.store.extras {
		extras = append(extras, e)
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].Name < extras[j].Name })
	return extras, nil
}

func (r *extraRepository) DeleteExtra(_ context.Context, extraID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.extras[extraID]; !ok {
		return fmt.Errorf("extra %s: %w", extraID, apperrors.ErrNotFound)
	}
	delete(r.store.extras, extraID)
	return nil
}

type packageRepository struct {
	store *Store
}

// NewPackageRepository creates an in-memory package repository.
func NewPackageRepository(store *Store) portsrepo.PackageRepository {
	return &packageRepository{store: store}
}

func (r *packageRepository) SavePackage(_ context.Context, pkg domain.Package) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.packages[pkg.PackageID] = copyPackage(pkg)
	return nil
}

func (r *packageRepository) FindPackageByID(_ context.Context, packageID string) (*domain.Package, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	pkg, ok := r.store.packages[packageID]
	if !ok {
		return nil, fmt.Errorf("package %s: %w", packageID, apperrors.ErrNotFound)
	}
	cp := copyPackage(pkg)
	return &cp, nil
}

func (r *packageRepository) ListPackages(_ context.Context) ([]domain.Package, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	packages := make([]domain.Package, 0, len(r.store.packages))
	for _, p := range r.store.packages {
		packages = append(packages, copyPackage(p))
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })
	return packages, nil
}

func (r *packageRepository) DeletePackage(_ context.Context, packageID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.packages[packageID]; !ok {
		return fmt.Errorf("package %s: %w", packageID, apperrors.ErrNotFound)
	}
	delete(r.store.packages, packageID)
	return nil
}
