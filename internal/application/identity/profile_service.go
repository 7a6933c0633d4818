package identity

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/identity"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService manages user profiles
type ProfileService struct {
	profileRepo identity.ProfileRepository
	logger      *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo identity.ProfileRepository, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetOrCreate returns the user's profile, creating it with defaults on first access.
// A concurrent create by another request is resolved by re-reading.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*ProfileInfo, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		info := profileInfoFromDomain(profile)
		return &info, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to load profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load profile")
	}

	profile, err = identity.NewDefaultProfile(userID)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			profile, err = s.profileRepo.FindByUserID(ctx, userID)
			if err != nil {
				s.logger.Error("Failed to reload profile after create race", zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load profile")
			}
			info := profileInfoFromDomain(profile)
			return &info, nil
		}
		s.logger.Error("Failed to create profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create profile")
	}

	s.logger.Info("Profile created on first access", zap.String("user_id", userID.String()))

	info := profileInfoFromDomain(profile)
	return &info, nil
}

// Update changes the profile's editable details
func (s *ProfileService) Update(ctx context.Context, input UpdateProfileInput) (*ProfileInfo, error) {
	profile, err := s.loadProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := profile.UpdateDetails(input.FullName, input.Phone, input.AvatarURL); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	info := profileInfoFromDomain(profile)
	return &info, nil
}

// ChangeRole changes the profile's role and permission.
// Takes effect in tokens on the next login or refresh.
func (s *ProfileService) ChangeRole(ctx context.Context, input ChangeProfileRoleInput) (*ProfileInfo, error) {
	profile, err := s.loadProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Role != "" {
		if err := profile.ChangeRole(identity.ProfileRole(input.Role)); err != nil {
			return nil, err
		}
	}
	if input.Permission != "" {
		if err := profile.ChangePermission(identity.ProfilePermission(input.Permission)); err != nil {
			return nil, err
		}
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		s.logger.Error("Failed to persist role change", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	s.logger.Info("Profile role changed",
		zap.String("user_id", input.UserID.String()),
		zap.String("role", string(profile.Role)),
		zap.String("permission", string(profile.Permission)))

	info := profileInfoFromDomain(profile)
	return &info, nil
}

func (s *ProfileService) loadProfile(ctx context.Context, userID uuid.UUID) (*identity.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load profile")
	}
	return profile, nil
}
