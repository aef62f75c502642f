package dto

import (
	"time"

	"github.com/caterops/catering_backend/internal/core/domain"
)

// CreatePackageRequest defines the data needed to create a product bundle.
type CreatePackageRequest struct {
	Name       string   `json:"name" binding:"required"`
	ProductIDs []string `json:"productIDs" binding:"required,min=1"`
}

// UpdatePackageRequest defines the data allowed for updating a bundle.
type UpdatePackageRequest struct {
	Name       *string  `json:"name"`
	ProductIDs []string `json:"productIDs"`
}

// PackageResponse defines the data returned for a bundle.
type PackageResponse struct {
	PackageID     string    `json:"packageID"`
	Name          string    `json:"name"`
	ProductIDs    []string  `json:"productIDs"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToPackageResponse converts a domain.Package to PackageResponse DTO.
func ToPackageResponse(p *domain.Package) PackageResponse {
	return PackageResponse{
		PackageID:     p.PackageID,
		Name:          p.Name,
		ProductIDs:    p.ProductIDs,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPackageResponse converts a slice of domain.Package to DTOs.
func ToListPackageResponse(packages []domain.Package) []PackageResponse {
	res := make([]PackageResponse, len(packages))
	for i, p := range packages {
		res[i] = ToPackageResponse(&p)
	}
	return res
}
