package identity

import (
	"context"
	"testing"

	"github.com/arvebo/backend/internal/domain/identity"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileService_GetOrCreate_ExistingProfile(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(MockProfileRepository)

	userID := uuid.New()
	profile := createTestProfile(t, userID)
	require.NoError(t, profile.UpdateDetails("Ola Nordmann", "+47 912 34 567", ""))

	profileRepo.On("FindByUserID", ctx, userID).Return(profile, nil)

	service := NewProfileService(profileRepo, zap.NewNop())

	result, err := service.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ola Nordmann", result.FullName)
	assert.Equal(t, userID, result.UserID)

	profileRepo.AssertExpectations(t)
}

func TestProfileService_GetOrCreate_CreatesDefaultOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(MockProfileRepository)

	userID := uuid.New()
	profileRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)
	profileRepo.On("Create", ctx, mock.AnythingOfType("*identity.Profile")).Return(nil)

	service := NewProfileService(profileRepo, zap.NewNop())

	result, err := service.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, string(identity.DefaultProfileRole), result.Role)
	assert.Equal(t, string(identity.DefaultProfilePermission), result.Permission)

	profileRepo.AssertExpectations(t)
}

func TestProfileService_GetOrCreate_CreateRaceFallsBackToRead(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(MockProfileRepository)

	userID := uuid.New()
	existing := createTestProfile(t, userID)

	profileRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound).Once()
	profileRepo.On("Create", ctx, mock.AnythingOfType("*identity.Profile")).Return(shared.ErrAlreadyExists)
	profileRepo.On("FindByUserID", ctx, userID).Return(existing, nil).Once()

	service := NewProfileService(profileRepo, zap.NewNop())

	result, err := service.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.ID)

	profileRepo.AssertExpectations(t)
}

func TestProfileService_Update_Success(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(MockProfileRepository)

	userID := uuid.New()
	profile := createTestProfile(t, userID)

	profileRepo.On("FindByUserID", ctx, userID).Return(profile, nil)
	profileRepo.On("Update", ctx, profile).Return(nil)

	service := NewProfileService(profileRepo, zap.NewNop())

	result, err := service.Update(ctx, UpdateProfileInput{
		UserID:   userID,
		FullName: "Kari Nordmann",
		Phone:    "+47 987 65 432",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kari Nordmann", result.FullName)
	assert.Equal(t, "+47 987 65 432", result.Phone)

	profileRepo.AssertExpectations(t)
}

func TestProfileService_Update_ProfileNotFound(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(MockProfileRepository)

	userID := uuid.New()
	profileRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)

	service := NewProfileService(profileRepo, zap.NewNop())

	_, err := service.Update(ctx, UpdateProfileInput{UserID: userID, FullName: "Kari"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProfileService_ChangeRole_Success(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(MockProfileRepository)

	userID := uuid.New()
	profile := createTestProfile(t, userID)

	profileRepo.On("FindByUserID", ctx, userID).Return(profile, nil)
	profileRepo.On("Update", ctx, profile).Return(nil)

	service := NewProfileService(profileRepo, zap.NewNop())

	result, err := service.ChangeRole(ctx, ChangeProfileRoleInput{
		UserID:     userID,
		Role:       string(identity.RoleViewer),
		Permission: string(identity.PermissionViewOnly),
	})
	require.NoError(t, err)
	assert.Equal(t, "viewer", result.Role)
	assert.Equal(t, "view_only", result.Permission)
}

func TestProfileService_ChangeRole_RejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	profileRepo := new(MockProfileRepository)

	userID := uuid.New()
	profile := createTestProfile(t, userID)

	profileRepo.On("FindByUserID", ctx, userID).Return(profile, nil)

	service := NewProfileService(profileRepo, zap.NewNop())

	_, err := service.ChangeRole(ctx, ChangeProfileRoleInput{
		UserID: userID,
		Role:   "superuser",
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ROLE", domainErr.Code)
}
