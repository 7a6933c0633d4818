package engagement

import (
	"strings"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ActivityLog is an append-only record of a mutation within an estate
type ActivityLog struct {
	shared.BaseEntity
	EstateID   uuid.UUID
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	Detail     string
}

// NewActivityLog creates a log entry
func NewActivityLog(estateID, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, detail string) (*ActivityLog, error) {
	if estateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ESTATE_ID", "Estate ID cannot be empty")
	}
	if actorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Actor cannot be empty")
	}
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, shared.NewDomainError("INVALID_ACTION", "Action cannot be empty")
	}

	return &ActivityLog{
		BaseEntity: shared.NewBaseEntity(),
		EstateID:   estateID,
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}, nil
}
