package dto

import (
	"time"

	"github.com/caterops/catering_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExtraRequest defines the data needed to create an extra-cost template.
type CreateExtraRequest struct {
	Name string          `json:"name" binding:"required"`
	Cost decimal.Decimal `json:"cost"`
}

// UpdateExtraRequest defines the data allowed for updating an extra-cost template.
type UpdateExtraRequest struct {
	Name *string          `json:"name"`
	Cost *decimal.Decimal `json:"cost"`
}

// ExtraResponse defines the data returned for an extra-cost template.
type ExtraResponse struct {
	ExtraID       string          `json:"extraID"`
	Name          string          `json:"name"`
	Cost          decimal.Decimal `json:"cost"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToExtraResponse converts a domain.ExtraCost to ExtraResponse DTO.
func ToExtraResponse(e *domain.ExtraCost) ExtraResponse {
	return ExtraResponse{
		ExtraID:       e.ExtraID,
		Name:          e.Name,
		Cost:          e.Cost,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListExtraResponse converts a slice of domain.ExtraCost to DTOs.
func ToListExtraResponse(extras []domain.ExtraCost) []ExtraResponse {
	res := make([]ExtraResponse, len(extras))
	for i, e := range extras {
		res[i] = ToExtraResponse(&e)
	}
	return res
}
