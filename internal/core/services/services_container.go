package services

import (
	portsrepo "github.com/caterops/catering_backend/internal/core/ports/repositories"
	portssvc "github.com/caterops/catering_backend/internal/core/ports/services"
	"github.com/caterops/catering_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The repository provider decides which
// store backend is active; services never know.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo)
	container.Extra = NewExtraService(repos.ExtraRepo)
	container.Package = NewPackageService(repos.PackageRepo, repos.ProductRepo)
	container.Event = NewEventService(
		repos.EventRepo,
		repos.ProductRepo,
		repos.ExtraRepo,
		repos.PackageRepo,
		WithStrictCatalogRefs(cfg.StrictCatalogRefs),
	)
	container.Reporting = NewReportingService(repos.EventRepo, repos.ProductRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ProductSvcFacade   = (*productService)(nil)
	_ portssvc.EventSvcFacade     = (*eventService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
