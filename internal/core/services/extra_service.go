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

// extraService implements the ExtraSvcFacade interface. Template edits
// never propagate to events: selections carry a copied cost.
type extraService struct {
	BaseService
	extraRepo portsrepo.ExtraRepository
}

// NewExtraService creates a new extra-cost template service.
func NewExtraService(repo portsrepo.ExtraRepository) portssvc.ExtraSvcFacade {
	return &extraService{extraRepo: repo}
}

var _ portssvc.ExtraSvcFacade = (*extraService)(nil)

func (s *extraService) CreateExtra(ctx context.Context, req dto.CreateExtraRequest) (*domain.ExtraCost, error) {
	if req.Cost.IsNegative() {
		return nil, fmt.Errorf("cost must be non-negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	extra := domain.ExtraCost{
		ExtraID: uuid.NewString(),
		Name:    req.Name,
		Cost:    req.Cost,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.extraRepo.SaveExtra(ctx, extra); err != nil {
		s.LogError(ctx, err, "Failed to save extra cost", slog.String("extra_id", extra.ExtraID))
		return nil, err
	}

	s.LogInfo(ctx, "Extra cost created", slog.String("extra_id", extra.ExtraID), slog.String("name", extra.Name))
	return &extra, nil
}

func (s *extraService) GetExtraByID(ctx context.Context, extraID string) (*domain.ExtraCost, error) {
	extra, err := s.extraRepo.FindExtraByID(ctx, extraID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find extra cost", slog.String("extra_id", extraID))
		return nil, err
	}
	return extra, nil
}

func (s *extraService) ListExtras(ctx context.Context) ([]domain.ExtraCost, error) {
	extras, err := s.extraRepo.ListExtras(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list extra costs")
		return nil, err
	}
	return extras, nil
}

func (s *extraService) UpdateExtra(ctx context.Context, extraID string, req dto.UpdateExtraRequest) (*domain.ExtraCost, error) {
	extra, err := s.extraRepo.FindExtraByID(ctx, extraID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		extra.Name = *req.Name
	}
	if req.Cost != nil {
		if req.Cost.IsNegative() {
			return nil, fmt.Errorf("cost must be non-negative: %w", apperrors.ErrValidation)
		}
		extra.Cost = *req.Cost
	}
	extra.LastUpdatedAt = time.Now()

	if err := s.extraRepo.SaveExtra(ctx, *extra); err != nil {
		s.LogError(ctx, err, "Failed to update extra cost", slog.String("extra_id", extraID))
		return nil, err
	}
	return extra, nil
}

func (s *extraService) DeleteExtra(ctx context.Context, extraID string) error {
	if err := s.extraRepo.DeleteExtra(ctx, extraID); err != nil {
		s.LogError(ctx, err, "Failed to delete extra cost", slog.String("extra_id", extraID))
		return err
	}
	s.LogInfo(ctx, "Extra cost deleted", slog.String("extra_id", extraID))
	return nil
}
