package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/slimatic/zakapp-sub007/internal/domain/identity"
	"github.com/slimatic/zakapp-sub007/internal/domain/shared"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/auth"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/config"
)

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

func createTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("user@example.com", "Password123", "Test User")
	require.NoError(t, err)
	return user
}

func createAuthService(userRepo *MockUserRepository) *AuthService {
	jwtCfg := config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		RefreshSecret:          "test-refresh-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	}
	return NewAuthService(userRepo, auth.NewJWTService(jwtCfg), zap.NewNop())
}

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, code, domainErr.Code)
}

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil)
	userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	service := createAuthService(userRepo)

	result, err := service.Register(ctx, RegisterInput{
		Email:       "new@example.com",
		Password:    "Password123",
		DisplayName: "New User",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", result.User.Email)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

	service := createAuthService(userRepo)

	result, err := service.Register(ctx, RegisterInput{
		Email:       "taken@example.com",
		Password:    "Password123",
		DisplayName: "Someone",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assertDomainErrorCode(t, err, "EMAIL_TAKEN")
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil)

	service := createAuthService(userRepo)

	_, err := service.Register(ctx, RegisterInput{
		Email:       "new@example.com",
		Password:    "short",
		DisplayName: "New User",
	})

	require.Error(t, err)
	assertDomainErrorCode(t, err, "INVALID_PASSWORD")
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t)

	userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	service := createAuthService(userRepo)

	result, err := service.Login(ctx, LoginInput{
		Email:    "user@example.com",
		Password: "Password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", result.User.Email)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotNil(t, result.User.LastLoginAt)

	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t)

	userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)

	service := createAuthService(userRepo)

	result, err := service.Login(ctx, LoginInput{
		Email:    "user@example.com",
		Password: "wrongpassword",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("FindByEmail", ctx, "missing@example.com").Return(nil, shared.ErrNotFound)

	service := createAuthService(userRepo)

	result, err := service.Login(ctx, LoginInput{
		Email:    "missing@example.com",
		Password: "Password123",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t)
	user.Deactivate()

	userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)

	service := createAuthService(userRepo)

	result, err := service.Login(ctx, LoginInput{
		Email:    "user@example.com",
		Password: "Password123",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assertDomainErrorCode(t, err, "ACCOUNT_DEACTIVATED")
}

func TestAuthService_Refresh_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t)

	service := createAuthService(userRepo)

	jwtCfg := config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		RefreshSecret:          "test-refresh-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	}
	pair, err := auth.NewJWTService(jwtCfg).GenerateTokenPair(user.ID, user.Email)
	require.NoError(t, err)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	tokens, err := service.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	userRepo.AssertExpectations(t)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	service := createAuthService(userRepo)

	tokens, err := service.Refresh(ctx, "not-a-token")
	require.Error(t, err)
	assert.Nil(t, tokens)
	assertDomainErrorCode(t, err, "INVALID_TOKEN")
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	user := createTestUser(t)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	service := createAuthService(userRepo)

	name := "Renamed"
	methodology := "hanafi"
	updated, err := service.UpdateProfile(ctx, user.ID, UpdateProfileInput{
		DisplayName:          &name,
		PreferredMethodology: &methodology,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.DisplayName)
	assert.Equal(t, "hanafi", updated.PreferredMethodology)

	userRepo.AssertExpectations(t)
}
