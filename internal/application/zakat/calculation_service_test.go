package zakat

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared/valueobject"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/cache"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/pricefeed"
)

func newCalcService(
	assetRepo *MockAssetRepository,
	liabilityRepo *MockLiabilityRepository,
	snapshotRepo *MockSnapshotRepository,
	resultCache cache.ResultCache,
	priceErr error,
) *CalculationService {
	provider := &stubPriceProvider{prices: testPrices(), err: priceErr}
	return NewCalculationService(assetRepo, liabilityRepo, snapshotRepo, provider, resultCache, time.Hour, zap.NewNop())
}

func TestCalculationService_Calculate_ObligatoryAboveNisab(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	assetRepo := new(MockAssetRepository)
	liabilityRepo := new(MockLiabilityRepository)
	snapshotRepo := new(MockSnapshotRepository)

	asset, err := zakat.NewAsset(userID, "Savings", zakat.AssetCategoryCash, valueobject.NewMoneyUSD(decimal.NewFromInt(10000)))
	require.NoError(t, err)

	assetRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Asset{asset}, nil)
	liabilityRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Liability{}, nil)

	service := newCalcService(assetRepo, liabilityRepo, snapshotRepo, nil, nil)

	output, err := service.Calculate(ctx, userID, CalculateInput{
		Methodology:   "standard",
		ReferenceDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	result := output.Result
	assert.True(t, result.ZakatObligatory)
	assert.True(t, result.TotalZakatableAssets.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.ZakatDue.Equal(decimal.NewFromInt(250)), "got %s", result.ZakatDue)
	assert.Nil(t, output.SnapshotID)
	snapshotRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCalculationService_Calculate_DeductsEligibleLiability(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	assetRepo := new(MockAssetRepository)
	liabilityRepo := new(MockLiabilityRepository)

	referenceDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	due := referenceDate.AddDate(0, 2, 0)

	asset, err := zakat.NewAsset(userID, "Savings", zakat.AssetCategoryCash, valueobject.NewMoneyUSD(decimal.NewFromInt(10000)))
	require.NoError(t, err)
	loan, err := zakat.NewLiability(userID, "Car loan", zakat.LiabilityCategoryPersonalLoan, valueobject.NewMoneyUSD(decimal.NewFromInt(2000)), &due)
	require.NoError(t, err)

	assetRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Asset{asset}, nil)
	liabilityRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Liability{loan}, nil)

	service := newCalcService(assetRepo, liabilityRepo, new(MockSnapshotRepository), nil, nil)

	output, err := service.Calculate(ctx, userID, CalculateInput{
		Methodology:   "standard",
		ReferenceDate: referenceDate,
	})

	require.NoError(t, err)
	assert.True(t, output.Result.TotalDeductible.Equal(decimal.NewFromInt(2000)))
	assert.True(t, output.Result.NetZakatableWorth.Equal(decimal.NewFromInt(8000)))
}

func TestCalculationService_Calculate_SavesSnapshot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	assetRepo := new(MockAssetRepository)
	liabilityRepo := new(MockLiabilityRepository)
	snapshotRepo := new(MockSnapshotRepository)

	asset, err := zakat.NewAsset(userID, "Savings", zakat.AssetCategoryCash, valueobject.NewMoneyUSD(decimal.NewFromInt(10000)))
	require.NoError(t, err)

	assetRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Asset{asset}, nil)
	liabilityRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Liability{}, nil)
	snapshotRepo.On("Save", ctx, mock.AnythingOfType("*zakat.CalculationSnapshot")).Return(nil)

	service := newCalcService(assetRepo, liabilityRepo, snapshotRepo, nil, nil)

	output, err := service.Calculate(ctx, userID, CalculateInput{
		Methodology:   "standard",
		ReferenceDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SaveSnapshot:  true,
	})

	require.NoError(t, err)
	require.NotNil(t, output.SnapshotID)
	assert.NotEqual(t, uuid.Nil, *output.SnapshotID)
	snapshotRepo.AssertExpectations(t)
}

func TestCalculationService_Calculate_CacheHitSkipsRecomputation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	assetRepo := new(MockAssetRepository)
	liabilityRepo := new(MockLiabilityRepository)
	resultCache := new(MockResultCache)

	asset, err := zakat.NewAsset(userID, "Savings", zakat.AssetCategoryCash, valueobject.NewMoneyUSD(decimal.NewFromInt(10000)))
	require.NoError(t, err)

	cached := &zakat.CalculationResult{
		ZakatDue:        decimal.NewFromInt(250),
		ZakatObligatory: true,
		Methodology:     "standard",
	}

	assetRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Asset{asset}, nil)
	liabilityRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Liability{}, nil)
	resultCache.On("Get", ctx, userID.String(), mock.AnythingOfType("string")).Return(cached, nil)

	service := newCalcService(assetRepo, liabilityRepo, new(MockSnapshotRepository), resultCache, nil)

	output, err := service.Calculate(ctx, userID, CalculateInput{
		Methodology:   "standard",
		ReferenceDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Same(t, cached, output.Result)
	resultCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCalculationService_Calculate_CacheMissStoresResult(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	assetRepo := new(MockAssetRepository)
	liabilityRepo := new(MockLiabilityRepository)
	resultCache := new(MockResultCache)

	asset, err := zakat.NewAsset(userID, "Savings", zakat.AssetCategoryCash, valueobject.NewMoneyUSD(decimal.NewFromInt(10000)))
	require.NoError(t, err)

	assetRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Asset{asset}, nil)
	liabilityRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Liability{}, nil)
	resultCache.On("Get", ctx, userID.String(), mock.AnythingOfType("string")).Return(nil, nil)
	resultCache.On("Set", ctx, userID.String(), mock.AnythingOfType("string"), mock.AnythingOfType("*zakat.CalculationResult"), time.Hour).Return(nil)

	service := newCalcService(assetRepo, liabilityRepo, new(MockSnapshotRepository), resultCache, nil)

	_, err = service.Calculate(ctx, userID, CalculateInput{
		Methodology:   "standard",
		ReferenceDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	resultCache.AssertExpectations(t)
}

func TestCalculationService_Calculate_PriceFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	assetRepo := new(MockAssetRepository)
	liabilityRepo := new(MockLiabilityRepository)

	assetRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Asset{}, nil)
	liabilityRepo.On("FindAllForUser", ctx, userID, shared.Filter{}).Return([]*zakat.Liability{}, nil)

	service := newCalcService(assetRepo, liabilityRepo, new(MockSnapshotRepository), nil, assert.AnError)

	output, err := service.Calculate(ctx, userID, CalculateInput{Methodology: "standard"})
	require.Error(t, err)
	assert.Nil(t, output)
	assertServiceErrorCode(t, err, "PRICE_UNAVAILABLE")
}

func TestCalculationService_DeleteSnapshot_NotOwned(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	snapshotID := uuid.New()
	snapshotRepo := new(MockSnapshotRepository)

	snapshotRepo.On("FindByIDForUser", ctx, userID, snapshotID).Return(nil, shared.ErrNotFound)

	service := newCalcService(new(MockAssetRepository), new(MockLiabilityRepository), snapshotRepo, nil, nil)

	err := service.DeleteSnapshot(ctx, userID, snapshotID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	snapshotRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCalculationFingerprint_Deterministic(t *testing.T) {
	userID := uuid.New()
	asset, err := zakat.NewAsset(userID, "Savings", zakat.AssetCategoryCash, valueobject.NewMoneyUSD(decimal.NewFromInt(10000)))
	require.NoError(t, err)

	referenceDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	prices := testPrices()

	first := calculationFingerprint([]*zakat.Asset{asset}, nil, prices, "standard", referenceDate)
	second := calculationFingerprint([]*zakat.Asset{asset}, nil, prices, "standard", referenceDate)
	assert.Equal(t, first, second)

	otherMethodology := calculationFingerprint([]*zakat.Asset{asset}, nil, prices, "hanafi", referenceDate)
	assert.NotEqual(t, first, otherMethodology)

	otherPrices := pricefeed.MetalPrices{
		GoldPerGram:   decimal.RequireFromString("80.00"),
		SilverPerGram: prices.SilverPerGram,
	}
	assert.NotEqual(t, first, calculationFingerprint([]*zakat.Asset{asset}, nil, otherPrices, "standard", referenceDate))
}
