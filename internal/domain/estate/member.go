package estate

import (
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MemberRole represents a user's role within an estate
type MemberRole string

const (
	MemberRoleAdministrator   MemberRole = "administrator"
	MemberRoleResponsibleHeir MemberRole = "responsible_heir"
	MemberRoleHeir            MemberRole = "heir"
	MemberRoleViewer          MemberRole = "viewer"
)

// IsValid checks if the role is a known value
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleAdministrator, MemberRoleResponsibleHeir, MemberRoleHeir, MemberRoleViewer:
		return true
	}
	return false
}

// CanManageMembers returns true if the role may add, remove or change members
func (r MemberRole) CanManageMembers() bool {
	return r == MemberRoleAdministrator || r == MemberRoleResponsibleHeir
}

// CanEdit returns true if the role may mutate estate records
func (r MemberRole) CanEdit() bool {
	return r != MemberRoleViewer
}

// Member links a user to an estate with a role
type Member struct {
	shared.BaseAggregateRoot
	EstateID uuid.UUID
	UserID   uuid.UUID
	Role     MemberRole
	JoinedAt time.Time
}

// NewMember creates a new estate member
func NewMember(estateID, userID uuid.UUID, role MemberRole) (*Member, error) {
	if estateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ESTATE_ID", "Estate ID cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown member role")
	}

	m := &Member{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EstateID:          estateID,
		UserID:            userID,
		Role:              role,
		JoinedAt:          time.Now(),
	}

	m.AddDomainEvent(NewMemberAddedEvent(m))

	return m, nil
}

// ChangeRole changes the member's role within the estate
func (m *Member) ChangeRole(role MemberRole) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown member role")
	}

	m.Role = role
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}
