package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arvebo/backend/internal/domain/identity"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/auth"
	"github.com/arvebo/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
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

// MockProfileRepository is a mock implementation of identity.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *identity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *identity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}

func createTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("kari@example.no", "Passord123", "Kari Nordmann")
	require.NoError(t, err)
	return user
}

func createTestProfile(t *testing.T, userID uuid.UUID) *identity.Profile {
	t.Helper()
	profile, err := identity.NewDefaultProfile(userID)
	require.NoError(t, err)
	return profile
}

func createAuthService(userRepo *MockUserRepository, profileRepo *MockProfileRepository) *AuthService {
	jwtCfg := config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	}
	jwtService := auth.NewJWTService(jwtCfg)

	return NewAuthService(
		userRepo,
		profileRepo,
		jwtService,
		auth.NewInMemoryTokenBlacklist(),
		DefaultAuthServiceConfig(),
		zap.NewNop(),
	)
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
	profileRepo := new(MockProfileRepository)

	userRepo.On("ExistsByEmail", ctx, "kari@example.no").Return(false, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
	profileRepo.On("Create", ctx, mock.AnythingOfType("*identity.Profile")).Return(nil)

	authService := createAuthService(userRepo, profileRepo)

	result, err := authService.Register(ctx, RegisterInput{
		Email:       "kari@example.no",
		Password:    "Passord123",
		DisplayName: "Kari Nordmann",
	})

	require.NoError(t, err)
	assert.Equal(t, "kari@example.no", result.Email)
	assert.Equal(t, "Kari Nordmann", result.DisplayName)
	assert.Equal(t, "active", result.Status)

	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	userRepo.On("ExistsByEmail", ctx, "kari@example.no").Return(true, nil)

	authService := createAuthService(userRepo, profileRepo)

	result, err := authService.Register(ctx, RegisterInput{
		Email:       "kari@example.no",
		Password:    "Passord123",
		DisplayName: "Kari Nordmann",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assertDomainErrorCode(t, err, "EMAIL_TAKEN")
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)
	profile := createTestProfile(t, user.ID)

	userRepo.On("FindByEmail", ctx, "kari@example.no").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)
	profileRepo.On("FindByUserID", ctx, user.ID).Return(profile, nil)

	authService := createAuthService(userRepo, profileRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "kari@example.no",
		Password: "Passord123",
		IP:       "127.0.0.1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, "kari@example.no", result.User.Email)

	userRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)

	userRepo.On("FindByEmail", ctx, "kari@example.no").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo, profileRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "kari@example.no",
		Password: "feil-passord",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	userRepo.On("FindByEmail", ctx, "ukjent@example.no").Return(nil, shared.ErrNotFound)

	authService := createAuthService(userRepo, profileRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "ukjent@example.no",
		Password: "Passord123",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_AccountLocksAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)

	userRepo.On("FindByEmail", ctx, "kari@example.no").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo, profileRepo)

	for i := 0; i < 4; i++ {
		_, err := authService.Login(ctx, LoginInput{
			Email:    "kari@example.no",
			Password: "feil-passord",
			IP:       "127.0.0.1",
		})
		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
	}

	_, err := authService.Login(ctx, LoginInput{
		Email:    "kari@example.no",
		Password: "feil-passord",
		IP:       "127.0.0.1",
	})
	assertDomainErrorCode(t, err, "ACCOUNT_LOCKED")

	// Even the right password is rejected while locked
	_, err = authService.Login(ctx, LoginInput{
		Email:    "kari@example.no",
		Password: "Passord123",
		IP:       "127.0.0.1",
	})
	assertDomainErrorCode(t, err, "ACCOUNT_LOCKED")
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)
	require.NoError(t, user.Deactivate())

	userRepo.On("FindByEmail", ctx, "kari@example.no").Return(user, nil)

	authService := createAuthService(userRepo, profileRepo)

	_, err := authService.Login(ctx, LoginInput{
		Email:    "kari@example.no",
		Password: "Passord123",
		IP:       "127.0.0.1",
	})
	assertDomainErrorCode(t, err, "ACCOUNT_DISABLED")
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)
	profile := createTestProfile(t, user.ID)

	userRepo.On("FindByEmail", ctx, "kari@example.no").Return(user, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)
	profileRepo.On("FindByUserID", ctx, user.ID).Return(profile, nil)

	authService := createAuthService(userRepo, profileRepo)

	loginResult, err := authService.Login(ctx, LoginInput{
		Email:    "kari@example.no",
		Password: "Passord123",
		IP:       "127.0.0.1",
	})
	require.NoError(t, err)

	refreshed, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: loginResult.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	ctx := context.Background()
	authService := createAuthService(new(MockUserRepository), new(MockProfileRepository))

	result, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: "not-a-token",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assertDomainErrorCode(t, err, "INVALID_TOKEN")
}

func TestAuthService_RefreshToken_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)
	profile := createTestProfile(t, user.ID)

	userRepo.On("FindByEmail", ctx, "kari@example.no").Return(user, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(nil, shared.ErrNotFound)
	userRepo.On("Update", ctx, user).Return(nil)
	profileRepo.On("FindByUserID", ctx, user.ID).Return(profile, nil)

	authService := createAuthService(userRepo, profileRepo)

	loginResult, err := authService.Login(ctx, LoginInput{
		Email:    "kari@example.no",
		Password: "Passord123",
		IP:       "127.0.0.1",
	})
	require.NoError(t, err)

	_, err = authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: loginResult.RefreshToken,
	})
	assertDomainErrorCode(t, err, "INVALID_TOKEN")
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo, profileRepo)

	err := authService.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "Passord123",
		NewPassword: "NyttPassord456",
	})
	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("NyttPassord456"))
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	authService := createAuthService(userRepo, profileRepo)

	err := authService.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "feil-passord",
		NewPassword: "NyttPassord456",
	})
	require.Error(t, err)
	assert.True(t, user.VerifyPassword("Passord123"))
}

func TestAuthService_ChangePassword_InvalidatesRefreshTokens(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)
	profile := createTestProfile(t, user.ID)

	userRepo.On("FindByEmail", ctx, "kari@example.no").Return(user, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)
	profileRepo.On("FindByUserID", ctx, user.ID).Return(profile, nil)

	authService := createAuthService(userRepo, profileRepo)

	loginResult, err := authService.Login(ctx, LoginInput{
		Email:    "kari@example.no",
		Password: "Passord123",
		IP:       "127.0.0.1",
	})
	require.NoError(t, err)

	// JWT issued-at has second precision
	time.Sleep(1100 * time.Millisecond)

	err = authService.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "Passord123",
		NewPassword: "NyttPassord456",
	})
	require.NoError(t, err)

	_, err = authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: loginResult.RefreshToken,
	})
	assertDomainErrorCode(t, err, "INVALID_TOKEN")
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	ctx := context.Background()
	authService := createAuthService(new(MockUserRepository), new(MockProfileRepository))

	err := authService.Logout(ctx, LogoutInput{
		UserID:      uuid.New(),
		TokenID:     uuid.New().String(),
		TokenExpiry: time.Now().Add(10 * time.Minute),
	})
	require.NoError(t, err)
}

func TestAuthService_GetCurrentUser_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	user := createTestUser(t)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	authService := createAuthService(userRepo, profileRepo)

	result, err := authService.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.ID)
	assert.Equal(t, "kari@example.no", result.Email)
}
