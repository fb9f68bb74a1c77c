package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/slimatic/zakapp-sub007/internal/domain/identity"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/config"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/pricefeed"
	"github.com/slimatic/zakapp-sub007/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setAuthContext simulates an authenticated request without a real token
func setAuthContext(c *gin.Context, userID uuid.UUID) {
	c.Set(middleware.JWTUserIDKey, userID.String())
}

// authAs returns middleware that injects the user ID the JWT middleware
// would normally set.
func authAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		setAuthContext(c, userID)
		c.Next()
	}
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		RefreshSecret:          "test-refresh-key-32-characters-lng",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	}
}

func testPrices() pricefeed.MetalPrices {
	return pricefeed.MetalPrices{
		GoldPerGram:   decimal.RequireFromString("75.00"),
		SilverPerGram: decimal.RequireFromString("0.95"),
	}
}

type stubPriceProvider struct {
	prices pricefeed.MetalPrices
	err    error
}

func (p stubPriceProvider) Prices(ctx context.Context) (pricefeed.MetalPrices, error) {
	return p.prices, p.err
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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
