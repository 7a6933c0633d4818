package models

import (
	"time"

	"github.com/arvebo/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email             string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash      string              `gorm:"type:varchar(255);not null"`
	DisplayName       string              `gorm:"type:varchar(200);not null"`
	Status            identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt       *time.Time          `gorm:"index"`
	LastLoginIP       string              `gorm:"type:varchar(45)"`
	FailedAttempts    int                 `gorm:"not null;default:0"`
	LockedUntil       *time.Time
	PasswordChangedAt *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		DisplayName:       m.DisplayName,
		Status:            m.Status,
		LastLoginAt:       m.LastLoginAt,
		LastLoginIP:       m.LastLoginIP,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
		PasswordChangedAt: m.PasswordChangedAt,
	}
}

// UserModelFromDomain builds a persistence model from a domain User entity
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		DisplayName:       u.DisplayName,
		Status:            u.Status,
		LastLoginAt:       u.LastLoginAt,
		LastLoginIP:       u.LastLoginIP,
		FailedAttempts:    u.FailedAttempts,
		LockedUntil:       u.LockedUntil,
		PasswordChangedAt: u.PasswordChangedAt,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}

// ProfileModel is the persistence model for the Profile domain entity.
// Each user has at most one profile row.
type ProfileModel struct {
	AggregateModel
	UserID     uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex"`
	FullName   string                     `gorm:"type:varchar(200)"`
	Phone      string                     `gorm:"type:varchar(50)"`
	AvatarURL  string                     `gorm:"type:varchar(500)"`
	Role       identity.ProfileRole       `gorm:"type:varchar(30);not null"`
	Permission identity.ProfilePermission `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts the persistence model to a domain Profile entity
func (m *ProfileModel) ToDomain() *identity.Profile {
	return &identity.Profile{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		FullName:          m.FullName,
		Phone:             m.Phone,
		AvatarURL:         m.AvatarURL,
		Role:              m.Role,
		Permission:        m.Permission,
	}
}

// ProfileModelFromDomain builds a persistence model from a domain Profile entity
func ProfileModelFromDomain(p *identity.Profile) *ProfileModel {
	m := &ProfileModel{
		UserID:     p.UserID,
		FullName:   p.FullName,
		Phone:      p.Phone,
		AvatarURL:  p.AvatarURL,
		Role:       p.Role,
		Permission: p.Permission,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
