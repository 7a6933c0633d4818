package models

import (
	"time"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/google/uuid"
)

// EstateModel is the persistence model for the Estate aggregate.
type EstateModel struct {
	AggregateModel
	Name         string              `gorm:"type:varchar(200);not null"`
	DeceasedName string              `gorm:"type:varchar(200);not null"`
	DateOfDeath  *time.Time          `gorm:"type:date"`
	Description  string              `gorm:"type:text"`
	Status       estate.EstateStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedBy    uuid.UUID           `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (EstateModel) TableName() string {
	return "estates"
}

// ToDomain converts the persistence model to a domain Estate aggregate
func (m *EstateModel) ToDomain() *estate.Estate {
	return &estate.Estate{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		DeceasedName:      m.DeceasedName,
		DateOfDeath:       m.DateOfDeath,
		Description:       m.Description,
		Status:            m.Status,
		CreatedBy:         m.CreatedBy,
	}
}

// EstateModelFromDomain builds a persistence model from a domain Estate aggregate
func EstateModelFromDomain(e *estate.Estate) *EstateModel {
	m := &EstateModel{
		Name:         e.Name,
		DeceasedName: e.DeceasedName,
		DateOfDeath:  e.DateOfDeath,
		Description:  e.Description,
		Status:       e.Status,
		CreatedBy:    e.CreatedBy,
	}
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	return m
}

// MemberModel is the persistence model for estate membership rows.
type MemberModel struct {
	AggregateModel
	EstateID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_members_estate_user"`
	UserID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_members_estate_user"`
	Role     estate.MemberRole `gorm:"type:varchar(30);not null"`
	JoinedAt time.Time         `gorm:"not null"`
}

// TableName returns the table name for GORM
func (MemberModel) TableName() string {
	return "estate_members"
}

// ToDomain converts the persistence model to a domain Member
func (m *MemberModel) ToDomain() *estate.Member {
	return &estate.Member{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		EstateID:          m.EstateID,
		UserID:            m.UserID,
		Role:              m.Role,
		JoinedAt:          m.JoinedAt,
	}
}

// MemberModelFromDomain builds a persistence model from a domain Member
func MemberModelFromDomain(member *estate.Member) *MemberModel {
	m := &MemberModel{
		EstateID: member.EstateID,
		UserID:   member.UserID,
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
	m.FromDomainAggregateRoot(member.BaseAggregateRoot)
	return m
}

// InvitationModel is the persistence model for estate invitations.
type InvitationModel struct {
	AggregateModel
	EstateID  uuid.UUID               `gorm:"type:uuid;not null;index"`
	Email     string                  `gorm:"type:varchar(200);not null;index"`
	Role      estate.MemberRole       `gorm:"type:varchar(30);not null"`
	Token     string                  `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status    estate.InvitationStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	ExpiresAt time.Time               `gorm:"not null"`
	InvitedBy uuid.UUID               `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (InvitationModel) TableName() string {
	return "estate_invitations"
}

// ToDomain converts the persistence model to a domain Invitation
func (m *InvitationModel) ToDomain() *estate.Invitation {
	return &estate.Invitation{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		EstateID:          m.EstateID,
		Email:             m.Email,
		Role:              m.Role,
		Token:             m.Token,
		Status:            m.Status,
		ExpiresAt:         m.ExpiresAt,
		InvitedBy:         m.InvitedBy,
	}
}

// InvitationModelFromDomain builds a persistence model from a domain Invitation
func InvitationModelFromDomain(inv *estate.Invitation) *InvitationModel {
	m := &InvitationModel{
		EstateID:  inv.EstateID,
		Email:     inv.Email,
		Role:      inv.Role,
		Token:     inv.Token,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt,
		InvitedBy: inv.InvitedBy,
	}
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	return m
}

// ProjectModel is the persistence model for estate projects.
type ProjectModel struct {
	EstateAggregateModel
	Name        string               `gorm:"type:varchar(200);not null"`
	Description string               `gorm:"type:text"`
	Status      estate.ProjectStatus `gorm:"type:varchar(20);not null;default:'open'"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "estate_projects"
}

// ToDomain converts the persistence model to a domain Project
func (m *ProjectModel) ToDomain() *estate.Project {
	return &estate.Project{
		EstateAggregateRoot: m.ToDomainEstateAggregateRoot(),
		Name:                m.Name,
		Description:         m.Description,
		Status:              m.Status,
	}
}

// ProjectModelFromDomain builds a persistence model from a domain Project
func ProjectModelFromDomain(p *estate.Project) *ProjectModel {
	m := &ProjectModel{
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
	}
	m.FromDomainEstateAggregateRoot(p.EstateAggregateRoot)
	return m
}
