package identity

import (
	"time"

	"github.com/arvebo/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterInput contains input for user registration
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput contains input for user login
type LoginInput struct {
	Email    string
	Password string
	IP       string
}

// TokenResult contains an issued token pair
type TokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	TokenResult
	User UserInfo
}

// RefreshTokenInput contains input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput contains input for logout
type LogoutInput struct {
	UserID      uuid.UUID
	TokenID     string
	TokenExpiry time.Time
}

// ChangePasswordInput contains input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// UserInfo is the user representation returned to callers
type UserInfo struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Status      string
	LastLoginAt *time.Time
}

// ProfileInfo is the profile representation returned to callers
type ProfileInfo struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	FullName   string
	Phone      string
	AvatarURL  string
	Role       string
	Permission string
}

// UpdateProfileInput contains input for profile updates
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FullName  string
	Phone     string
	AvatarURL string
}

// ChangeProfileRoleInput contains input for changing a profile's role
type ChangeProfileRoleInput struct {
	UserID     uuid.UUID
	Role       string
	Permission string
}

func userInfoFromDomain(u *identity.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
	}
}

func profileInfoFromDomain(p *identity.Profile) ProfileInfo {
	return ProfileInfo{
		ID:         p.ID,
		UserID:     p.UserID,
		FullName:   p.FullName,
		Phone:      p.Phone,
		AvatarURL:  p.AvatarURL,
		Role:       string(p.Role),
		Permission: string(p.Permission),
	}
}
