package services

// ServiceContainer holds all service facades, wired once at startup
// and injected into the handlers.
type ServiceContainer struct {
	Product   ProductSvcFacade
	Extra     ExtraSvcFacade
	Package   PackageSvcFacade
	Event     EventSvcFacade
	Reporting ReportingSvcFacade
}
