package models

import (
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel provides common persistence fields for aggregate roots.
// It extends BaseModel with a version for optimistic locking.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// ToDomainAggregateRoot converts AggregateModel to domain BaseAggregateRoot
func (m *AggregateModel) ToDomainAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: m.BaseModel.ToDomain(),
		Version:    m.Version,
	}
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// EstateAggregateModel provides common persistence fields for estate-scoped
// aggregate roots. It extends AggregateModel with the estate ID and creator info.
type EstateAggregateModel struct {
	AggregateModel
	EstateID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

// ToDomainEstateAggregateRoot converts EstateAggregateModel to domain EstateAggregateRoot
func (m *EstateAggregateModel) ToDomainEstateAggregateRoot() shared.EstateAggregateRoot {
	return shared.EstateAggregateRoot{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		EstateID:          m.EstateID,
		CreatedBy:         m.CreatedBy,
	}
}

// FromDomainEstateAggregateRoot populates EstateAggregateModel from domain EstateAggregateRoot
func (m *EstateAggregateModel) FromDomainEstateAggregateRoot(e shared.EstateAggregateRoot) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.EstateID = e.EstateID
	m.CreatedBy = e.CreatedBy
}
