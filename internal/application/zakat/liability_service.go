package zakat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared/valueobject"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/cache"
)

// LiabilityService manages a user's liabilities
type LiabilityService struct {
	liabilityRepo zakat.LiabilityRepository
	resultCache   cache.ResultCache
	logger        *zap.Logger
}

// NewLiabilityService creates a new liability service
func NewLiabilityService(liabilityRepo zakat.LiabilityRepository, resultCache cache.ResultCache, logger *zap.Logger) *LiabilityService {
	return &LiabilityService{
		liabilityRepo: liabilityRepo,
		resultCache:   resultCache,
		logger:        logger,
	}
}

// CreateLiabilityInput contains input for creating a liability
type CreateLiabilityInput struct {
	Name     string
	Category string
	Amount   decimal.Decimal
	DueDate  *time.Time
	Notes    string
}

// UpdateLiabilityInput contains the updatable liability fields. Nil
// pointers leave the corresponding field unchanged.
type UpdateLiabilityInput struct {
	Name         *string
	Amount       *decimal.Decimal
	DueDate      *time.Time
	ClearDueDate bool
	Active       *bool
	Notes        *string
}

// Create adds a new liability for the user
func (s *LiabilityService) Create(ctx context.Context, userID uuid.UUID, input CreateLiabilityInput) (*zakat.Liability, error) {
	category, ok := zakat.ParseLiabilityCategory(input.Category)
	if !ok {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown liability category")
	}

	liability, err := zakat.NewLiability(userID, input.Name, category, valueobject.NewMoneyUSD(input.Amount), input.DueDate)
	if err != nil {
		return nil, err
	}
	liability.SetNotes(input.Notes)

	if err := s.liabilityRepo.Save(ctx, liability); err != nil {
		s.logger.Error("Failed to save liability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save liability")
	}

	s.invalidate(ctx, userID)
	return liability, nil
}

// Get returns a liability owned by the user
func (s *LiabilityService) Get(ctx context.Context, userID, liabilityID uuid.UUID) (*zakat.Liability, error) {
	return s.liabilityRepo.FindByIDForUser(ctx, userID, liabilityID)
}

// List returns the user's liabilities
func (s *LiabilityService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.Liability, int64, error) {
	liabilities, err := s.liabilityRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.liabilityRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return liabilities, total, nil
}

// Update modifies a liability owned by the user
func (s *LiabilityService) Update(ctx context.Context, userID, liabilityID uuid.UUID, input UpdateLiabilityInput) (*zakat.Liability, error) {
	liability, err := s.liabilityRepo.FindByIDForUser(ctx, userID, liabilityID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := liability.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Amount != nil {
		if err := liability.UpdateAmount(valueobject.NewMoneyUSD(*input.Amount)); err != nil {
			return nil, err
		}
	}
	if input.ClearDueDate {
		liability.SetDueDate(nil)
	} else if input.DueDate != nil {
		liability.SetDueDate(input.DueDate)
	}
	if input.Active != nil {
		if *input.Active {
			liability.Reactivate()
		} else {
			liability.Settle()
		}
	}
	if input.Notes != nil {
		liability.SetNotes(*input.Notes)
	}

	if err := s.liabilityRepo.Save(ctx, liability); err != nil {
		s.logger.Error("Failed to update liability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update liability")
	}

	s.invalidate(ctx, userID)
	return liability, nil
}

// Delete removes a liability owned by the user
func (s *LiabilityService) Delete(ctx context.Context, userID, liabilityID uuid.UUID) error {
	if _, err := s.liabilityRepo.FindByIDForUser(ctx, userID, liabilityID); err != nil {
		return err
	}

	if err := s.liabilityRepo.Delete(ctx, liabilityID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *LiabilityService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.resultCache == nil {
		return
	}
	if err := s.resultCache.InvalidateUser(ctx, userID.String()); err != nil {
		s.logger.Warn("Failed to invalidate result cache", zap.Error(err))
	}
}
