// Package memory provides a document-style in-process implementation
// of the catalog/event store facades. It is interchangeable with the
// pgsql backend and selected by configuration; useful for development,
// tests and single-node deployments without a database.
package memory

import (
	"sync"

	"github.com/caterops/catering_backend/internal/core/domain"
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
)

// Store holds all collections behind a single lock. Documents are
// deep-copied on every read and write so callers can never mutate
// stored state through shared slices or pointers (last write wins,
// like the remote stores this mirrors).
type Store struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	extras   map[string]domain.ExtraCost
	packages map[string]domain.Package
	events   map[string]domain.Event
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		products: make(map[string]domain.Product),
		extras:   make(map[string]domain.ExtraCost),
		packages: make(map[string]domain.Package),
		events:   make(map[string]domain.Event),
	}
}

// NewRepositoryProvider wires all repository facades onto one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo: NewProductRepository(store),
		ExtraRepo:   NewExtraRepository(store),
		PackageRepo: NewPackageRepository(store),
		EventRepo:   NewEventRepository(store),
	}
}

func copyPackage(p domain.Package) domain.Package {
	cp := p
	cp.ProductIDs = append([]string(nil), p.ProductIDs...)
	return cp
}

func copyEvent(e domain.Event) domain.Event {
	cp := e
	cp.Time = copyStringPtr(e.Time)
	cp.Items = make([]domain.EventItem, len(e.Items))
	for i, item := range e.Items {
		itemCopy := item
		if item.QtyReal != nil {
			qty := *item.QtyReal
			itemCopy.QtyReal = &qty
		}
		cp.Items[i] = itemCopy
	}
	cp.Extras = append([]domain.EventExtra(nil), e.Extras...)
	if e.RealCost != nil {
		v := *e.RealCost
		cp.RealCost = &v
	}
	if e.RealRevenue != nil {
		v := *e.RealRevenue
		cp.RealRevenue = &v
	}
	return cp
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
