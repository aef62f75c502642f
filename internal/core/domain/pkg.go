package domain

// Package is a named bundle of product references. It is a pure
// authoring convenience: expanding a package into an event draft is
// equivalent to adding its constituent products individually.
type Package struct {
	PackageID  string   `json:"packageID"` // Primary Key (UUID)
	Name       string   `json:"name"`
	ProductIDs []string `json:"productIDs"` // ordered
	AuditFields
}
