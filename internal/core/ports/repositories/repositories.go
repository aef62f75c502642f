package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor
// cleaner, and is the single seam where the relational and document
// store backends are interchangeable.
type RepositoryProvider struct {
	ProductRepo ProductRepository
	ExtraRepo   ExtraRepository
	PackageRepo PackageRepository
	EventRepo   EventRepository
}
