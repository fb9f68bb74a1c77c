package zakat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/pricefeed"
)

// MockAssetRepository is a mock implementation of zakat.AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Save(ctx context.Context, asset *zakat.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*zakat.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zakat.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*zakat.Asset, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zakat.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.Asset, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]*zakat.Asset), args.Error(1)
}

func (m *MockAssetRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLiabilityRepository is a mock implementation of zakat.LiabilityRepository
type MockLiabilityRepository struct {
	mock.Mock
}

func (m *MockLiabilityRepository) Save(ctx context.Context, liability *zakat.Liability) error {
	args := m.Called(ctx, liability)
	return args.Error(0)
}

func (m *MockLiabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*zakat.Liability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zakat.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*zakat.Liability, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zakat.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.Liability, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]*zakat.Liability), args.Error(1)
}

func (m *MockLiabilityRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLiabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSnapshotRepository is a mock implementation of zakat.SnapshotRepository
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snapshot *zakat.CalculationSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*zakat.CalculationSnapshot, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zakat.CalculationSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]*zakat.CalculationSnapshot, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]*zakat.CalculationSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResultCache is a mock implementation of cache.ResultCache
type MockResultCache struct {
	mock.Mock
}

func (m *MockResultCache) Get(ctx context.Context, userID, fingerprint string) (*zakat.CalculationResult, error) {
	args := m.Called(ctx, userID, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zakat.CalculationResult), args.Error(1)
}

func (m *MockResultCache) Set(ctx context.Context, userID, fingerprint string, result *zakat.CalculationResult, ttl time.Duration) error {
	args := m.Called(ctx, userID, fingerprint, result, ttl)
	return args.Error(0)
}

func (m *MockResultCache) InvalidateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockResultCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// stubPriceProvider returns fixed metal prices for tests
type stubPriceProvider struct {
	prices pricefeed.MetalPrices
	err    error
}

func (p *stubPriceProvider) Prices(ctx context.Context) (pricefeed.MetalPrices, error) {
	return p.prices, p.err
}

func testPrices() pricefeed.MetalPrices {
	return pricefeed.MetalPrices{
		GoldPerGram:   decimal.RequireFromString("75.00"),
		SilverPerGram: decimal.RequireFromString("0.95"),
	}
}
