package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot adds optimistic-lock versioning and an in-memory
// domain event buffer on top of BaseEntity.
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{BaseEntity: NewBaseEntity(), Version: 1}
}

// IncrementVersion bumps the optimistic-lock version. State-changing
// entity methods call this so concurrent writers conflict on save.
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent buffers an event until the aggregate is persisted.
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns the buffered events without draining them.
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents drops the buffer after the events have been handled.
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// EstateAggregateRoot is the base for records owned by a single estate.
// EstateID partitions every query; CreatedBy is kept for the audit trail
// and is nil for system-generated records.
type EstateAggregateRoot struct {
	BaseAggregateRoot
	EstateID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

func NewEstateAggregateRoot(estateID uuid.UUID) EstateAggregateRoot {
	return EstateAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		EstateID:          estateID,
	}
}

func NewEstateAggregateRootWithCreator(estateID, createdBy uuid.UUID) EstateAggregateRoot {
	root := NewEstateAggregateRoot(estateID)
	root.CreatedBy = &createdBy
	return root
}
