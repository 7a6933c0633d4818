package identity

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProfileRole represents the role a user holds across the application
type ProfileRole string

const (
	RoleAdministrator   ProfileRole = "administrator"
	RoleResponsibleHeir ProfileRole = "responsible_heir"
	RoleHeir            ProfileRole = "heir"
	RoleViewer          ProfileRole = "viewer"
)

// IsValid checks if the role is a known value
func (r ProfileRole) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleResponsibleHeir, RoleHeir, RoleViewer:
		return true
	}
	return false
}

// ProfilePermission represents the edit capability of a profile
type ProfilePermission string

const (
	PermissionFullEdit ProfilePermission = "full_edit"
	PermissionViewOnly ProfilePermission = "view_only"
)

// IsValid checks if the permission is a known value
func (p ProfilePermission) IsValid() bool {
	switch p {
	case PermissionFullEdit, PermissionViewOnly:
		return true
	}
	return false
}

// Defaults applied when a profile is created on first read
const (
	DefaultProfileRole       = RoleResponsibleHeir
	DefaultProfilePermission = PermissionFullEdit
)

// Profile holds per-user application data. One profile exists per user;
// it is created lazily on first access with default role and permission.
type Profile struct {
	shared.BaseAggregateRoot
	UserID     uuid.UUID
	FullName   string
	Phone      string
	AvatarURL  string
	Role       ProfileRole
	Permission ProfilePermission
}

// NewDefaultProfile creates a profile with default role and permission
func NewDefaultProfile(userID uuid.UUID) (*Profile, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}

	return &Profile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Role:              DefaultProfileRole,
		Permission:        DefaultProfilePermission,
	}, nil
}

// UpdateDetails updates the profile's editable fields
func (p *Profile) UpdateDetails(fullName, phone, avatarURL string) error {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot exceed 200 characters")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if avatarURL != "" && len(avatarURL) > 500 {
		return shared.NewDomainError("INVALID_AVATAR", "Avatar URL cannot exceed 500 characters")
	}

	p.FullName = fullName
	p.Phone = strings.TrimSpace(phone)
	p.AvatarURL = avatarURL
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ChangeRole changes the profile's role
func (p *Profile) ChangeRole(role ProfileRole) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown profile role")
	}

	p.Role = role
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ChangePermission changes the profile's permission
func (p *Profile) ChangePermission(permission ProfilePermission) error {
	if !permission.IsValid() {
		return shared.NewDomainError("INVALID_PERMISSION", "Unknown profile permission")
	}

	p.Permission = permission
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// CanEdit returns true if the profile allows mutations
func (p *Profile) CanEdit() bool {
	return p.Permission == PermissionFullEdit
}
