package estate

import (
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeEstate     = "Estate"
	AggregateTypeMember     = "EstateMember"
	AggregateTypeInvitation = "EstateInvitation"
)

// Estate domain event types
const (
	EventTypeEstateCreated      = "EstateCreated"
	EventTypeEstateSettled      = "EstateSettled"
	EventTypeMemberAdded        = "EstateMemberAdded"
	EventTypeMemberRemoved      = "EstateMemberRemoved"
	EventTypeInvitationCreated  = "EstateInvitationCreated"
	EventTypeInvitationAccepted = "EstateInvitationAccepted"
)

// EstateCreatedEvent is published when an estate is created
type EstateCreatedEvent struct {
	shared.BaseDomainEvent
	Name      string    `json:"name"`
	CreatedBy uuid.UUID `json:"created_by"`
}

// NewEstateCreatedEvent creates a new EstateCreatedEvent
func NewEstateCreatedEvent(e *Estate) *EstateCreatedEvent {
	return &EstateCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEstateCreated, AggregateTypeEstate, e.ID, e.ID),
		Name:            e.Name,
		CreatedBy:       e.CreatedBy,
	}
}

// EstateSettledEvent is published when an estate is marked settled
type EstateSettledEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewEstateSettledEvent creates a new EstateSettledEvent
func NewEstateSettledEvent(e *Estate) *EstateSettledEvent {
	return &EstateSettledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEstateSettled, AggregateTypeEstate, e.ID, e.ID),
		Name:            e.Name,
	}
}

// MemberAddedEvent is published when a member joins an estate
type MemberAddedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID  `json:"user_id"`
	Role   MemberRole `json:"role"`
}

// NewMemberAddedEvent creates a new MemberAddedEvent
func NewMemberAddedEvent(m *Member) *MemberAddedEvent {
	return &MemberAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberAdded, AggregateTypeMember, m.ID, m.EstateID),
		UserID:          m.UserID,
		Role:            m.Role,
	}
}

// InvitationCreatedEvent is published when an invitation is issued
type InvitationCreatedEvent struct {
	shared.BaseDomainEvent
	Email string     `json:"email"`
	Role  MemberRole `json:"role"`
}

// NewInvitationCreatedEvent creates a new InvitationCreatedEvent
func NewInvitationCreatedEvent(inv *Invitation) *InvitationCreatedEvent {
	return &InvitationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvitationCreated, AggregateTypeInvitation, inv.ID, inv.EstateID),
		Email:           inv.Email,
		Role:            inv.Role,
	}
}

// InvitationAcceptedEvent is published when an invitation is accepted
type InvitationAcceptedEvent struct {
	shared.BaseDomainEvent
	Email  string    `json:"email"`
	UserID uuid.UUID `json:"user_id"`
}

// NewInvitationAcceptedEvent creates a new InvitationAcceptedEvent
func NewInvitationAcceptedEvent(inv *Invitation, userID uuid.UUID) *InvitationAcceptedEvent {
	return &InvitationAcceptedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvitationAccepted, AggregateTypeInvitation, inv.ID, inv.EstateID),
		Email:           inv.Email,
		UserID:          userID,
	}
}
