package zakat

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared/valueobject"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/cache"
)

// AssetService manages a user's asset portfolio
type AssetService struct {
	assetRepo   zakat.AssetRepository
	resultCache cache.ResultCache
	logger      *zap.Logger
}

// NewAssetService creates a new asset service
func NewAssetService(assetRepo zakat.AssetRepository, resultCache cache.ResultCache, logger *zap.Logger) *AssetService {
	return &AssetService{
		assetRepo:   assetRepo,
		resultCache: resultCache,
		logger:      logger,
	}
}

// CreateAssetInput contains input for creating an asset
type CreateAssetInput struct {
	Name                       string
	Category                   string
	Value                      decimal.Decimal
	Override                   string
	Modifier                   *decimal.Decimal
	PassiveInvestment          bool
	EarlyWithdrawalPenaltyRate *decimal.Decimal
	TaxRate                    *decimal.Decimal
	Notes                      string
}

// UpdateAssetInput contains the updatable asset fields. Nil pointers
// leave the corresponding field unchanged.
type UpdateAssetInput struct {
	Name                       *string
	Value                      *decimal.Decimal
	Override                   *string
	Modifier                   *decimal.Decimal
	ClearModifier              bool
	PassiveInvestment          *bool
	EarlyWithdrawalPenaltyRate *decimal.Decimal
	TaxRate                    *decimal.Decimal
	Notes                      *string
}

// Create adds a new asset to the user's portfolio
func (s *AssetService) Create(ctx context.Context, userID uuid.UUID, input CreateAssetInput) (*zakat.Asset, error) {
	category, ok := zakat.ParseAssetCategory(input.Category)
	if !ok {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown asset category")
	}

	asset, err := zakat.NewAsset(userID, input.Name, category, valueobject.NewMoneyUSD(input.Value))
	if err != nil {
		return nil, err
	}

	if input.Override != "" {
		if err := asset.SetOverride(zakat.EligibilityOverride(input.Override)); err != nil {
			return nil, err
		}
	}
	if input.Modifier != nil {
		if err := asset.SetModifier(input.Modifier); err != nil {
			return nil, err
		}
	}
	asset.SetPassiveInvestment(input.PassiveInvestment)
	if input.EarlyWithdrawalPenaltyRate != nil || input.TaxRate != nil {
		if err := asset.SetRetirementRates(input.EarlyWithdrawalPenaltyRate, input.TaxRate); err != nil {
			return nil, err
		}
	}
	asset.SetNotes(input.Notes)

	if err := s.assetRepo.Save(ctx, asset); err != nil {
		s.logger.Error("Failed to save asset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save asset")
	}

	s.invalidate(ctx, userID)
	return asset, nil
}

// Get returns an asset owned by the user
func (s *AssetService) Get(ctx context.Context, userID, assetID uuid.UUID) (*zakat.Asset, error) {
	return s.assetRepo.FindByIDForUser(ctx, userID, assetID)
}

// List returns the user's assets
func (s *AssetService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.Asset, int64, error) {
	assets, err := s.assetRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.assetRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

// Update modifies an asset owned by the user
func (s *AssetService) Update(ctx context.Context, userID, assetID uuid.UUID, input UpdateAssetInput) (*zakat.Asset, error) {
	asset, err := s.assetRepo.FindByIDForUser(ctx, userID, assetID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := asset.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Value != nil {
		if err := asset.UpdateValue(valueobject.NewMoneyUSD(*input.Value)); err != nil {
			return nil, err
		}
	}
	if input.Override != nil {
		if err := asset.SetOverride(zakat.EligibilityOverride(*input.Override)); err != nil {
			return nil, err
		}
	}
	if input.ClearModifier {
		if err := asset.SetModifier(nil); err != nil {
			return nil, err
		}
	} else if input.Modifier != nil {
		if err := asset.SetModifier(input.Modifier); err != nil {
			return nil, err
		}
	}
	if input.PassiveInvestment != nil {
		asset.SetPassiveInvestment(*input.PassiveInvestment)
	}
	if input.EarlyWithdrawalPenaltyRate != nil || input.TaxRate != nil {
		penalty := asset.EarlyWithdrawalPenaltyRate
		tax := asset.TaxRate
		if input.EarlyWithdrawalPenaltyRate != nil {
			penalty = input.EarlyWithdrawalPenaltyRate
		}
		if input.TaxRate != nil {
			tax = input.TaxRate
		}
		if err := asset.SetRetirementRates(penalty, tax); err != nil {
			return nil, err
		}
	}
	if input.Notes != nil {
		asset.SetNotes(*input.Notes)
	}

	if err := s.assetRepo.Save(ctx, asset); err != nil {
		s.logger.Error("Failed to update asset", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update asset")
	}

	s.invalidate(ctx, userID)
	return asset, nil
}

// Delete removes an asset owned by the user
func (s *AssetService) Delete(ctx context.Context, userID, assetID uuid.UUID) error {
	// Ownership check before delete
	if _, err := s.assetRepo.FindByIDForUser(ctx, userID, assetID); err != nil {
		return err
	}

	if err := s.assetRepo.Delete(ctx, assetID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// invalidate drops cached calculation results after a portfolio change
func (s *AssetService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.resultCache == nil {
		return
	}
	if err := s.resultCache.InvalidateUser(ctx, userID.String()); err != nil {
		s.logger.Warn("Failed to invalidate result cache", zap.Error(err))
	}
}
