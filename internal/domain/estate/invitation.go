package estate

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvitationStatus represents the lifecycle state of an invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// DefaultInvitationTTL is how long an invitation stays valid
const DefaultInvitationTTL = 14 * 24 * time.Hour

// Invitation invites an email address to join an estate with a role.
// The token is the secret the invitee presents to accept.
type Invitation struct {
	shared.BaseAggregateRoot
	EstateID  uuid.UUID
	Email     string
	Role      MemberRole
	Token     string
	Status    InvitationStatus
	ExpiresAt time.Time
	InvitedBy uuid.UUID
}

// NewInvitation creates a pending invitation with a fresh token
func NewInvitation(estateID uuid.UUID, email string, role MemberRole, invitedBy uuid.UUID) (*Invitation, error) {
	if estateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ESTATE_ID", "Estate ID cannot be empty")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown member role")
	}
	if invitedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Inviter cannot be empty")
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_GENERATION_ERROR", "Failed to generate invitation token")
	}

	inv := &Invitation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EstateID:          estateID,
		Email:             email,
		Role:              role,
		Token:             token,
		Status:            InvitationStatusPending,
		ExpiresAt:         time.Now().Add(DefaultInvitationTTL),
		InvitedBy:         invitedBy,
	}

	inv.AddDomainEvent(NewInvitationCreatedEvent(inv))

	return inv, nil
}

// IsExpired returns true if the invitation validity window has passed
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// Accept marks the invitation as accepted by the given user
func (i *Invitation) Accept(userID uuid.UUID) error {
	if i.Status != InvitationStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Invitation is not pending")
	}
	if i.IsExpired() {
		i.Status = InvitationStatusExpired
		return shared.ErrInvitationExpired
	}
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}

	i.Status = InvitationStatusAccepted
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewInvitationAcceptedEvent(i, userID))

	return nil
}

// Decline marks the invitation as declined
func (i *Invitation) Decline() error {
	if i.Status != InvitationStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Invitation is not pending")
	}

	i.Status = InvitationStatusDeclined
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

func generateInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
