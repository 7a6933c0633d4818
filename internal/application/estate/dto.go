package estate

import (
	"time"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/google/uuid"
)

// CreateEstateInput contains input for creating an estate
type CreateEstateInput struct {
	Name         string
	DeceasedName string
	DateOfDeath  *time.Time
	Description  string
	CreatedBy    uuid.UUID
}

// UpdateEstateInput contains input for updating an estate
type UpdateEstateInput struct {
	EstateID     uuid.UUID
	Name         string
	DeceasedName string
	Description  string
	DateOfDeath  *time.Time
}

// EstateInfo is the estate representation returned to callers
type EstateInfo struct {
	ID           uuid.UUID
	Name         string
	DeceasedName string
	DateOfDeath  *time.Time
	Description  string
	Status       string
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EstateListResult is a page of estates
type EstateListResult struct {
	Estates []EstateInfo
	Total   int64
}

// MemberInfo is the member representation returned to callers
type MemberInfo struct {
	ID       uuid.UUID
	EstateID uuid.UUID
	UserID   uuid.UUID
	Role     string
	JoinedAt time.Time
}

// ChangeMemberRoleInput contains input for changing a member's role
type ChangeMemberRoleInput struct {
	EstateID uuid.UUID
	MemberID uuid.UUID
	ActorID  uuid.UUID
	Role     string
}

// RemoveMemberInput contains input for removing a member
type RemoveMemberInput struct {
	EstateID uuid.UUID
	MemberID uuid.UUID
	ActorID  uuid.UUID
}

// InviteInput contains input for inviting someone to an estate
type InviteInput struct {
	EstateID  uuid.UUID
	Email     string
	Role      string
	InvitedBy uuid.UUID
}

// AcceptInvitationInput contains input for accepting an invitation by token
type AcceptInvitationInput struct {
	Token  string
	UserID uuid.UUID
}

// InvitationInfo is the invitation representation returned to callers
type InvitationInfo struct {
	ID        uuid.UUID
	EstateID  uuid.UUID
	Email     string
	Role      string
	Token     string
	Status    string
	ExpiresAt time.Time
	InvitedBy uuid.UUID
	CreatedAt time.Time
}

// InvitationListResult is a page of invitations
type InvitationListResult struct {
	Invitations []InvitationInfo
	Total       int64
}

// CreateProjectInput contains input for creating a project
type CreateProjectInput struct {
	EstateID    uuid.UUID
	Name        string
	Description string
	CreatedBy   uuid.UUID
}

// UpdateProjectInput contains input for updating a project
type UpdateProjectInput struct {
	EstateID    uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description string
}

// ProjectInfo is the project representation returned to callers
type ProjectInfo struct {
	ID          uuid.UUID
	EstateID    uuid.UUID
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectListResult is a page of projects
type ProjectListResult struct {
	Projects []ProjectInfo
	Total    int64
}

func estateInfoFromDomain(e *estate.Estate) EstateInfo {
	return EstateInfo{
		ID:           e.ID,
		Name:         e.Name,
		DeceasedName: e.DeceasedName,
		DateOfDeath:  e.DateOfDeath,
		Description:  e.Description,
		Status:       string(e.Status),
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func memberInfoFromDomain(m *estate.Member) MemberInfo {
	return MemberInfo{
		ID:       m.ID,
		EstateID: m.EstateID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

func invitationInfoFromDomain(inv *estate.Invitation) InvitationInfo {
	return InvitationInfo{
		ID:        inv.ID,
		EstateID:  inv.EstateID,
		Email:     inv.Email,
		Role:      string(inv.Role),
		Token:     inv.Token,
		Status:    string(inv.Status),
		ExpiresAt: inv.ExpiresAt,
		InvitedBy: inv.InvitedBy,
		CreatedAt: inv.CreatedAt,
	}
}

func projectInfoFromDomain(p *estate.Project) ProjectInfo {
	return ProjectInfo{
		ID:          p.ID,
		EstateID:    p.EstateID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
