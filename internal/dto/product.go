package dto

import (
	"time"

	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a catalog product.
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	UnitCost decimal.Decimal `json:"unitCost"`
	Factor   decimal.Decimal `json:"factor"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	UnitCost *decimal.Decimal `json:"unitCost"`
	Factor   *decimal.Decimal `json:"factor"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	Factor        decimal.Decimal `json:"factor"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		UnitCost:      p.UnitCost,
		Factor:        p.Factor,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
