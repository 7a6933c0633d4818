package models

import (
	"time"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/google/uuid"
)

// MessageModel is the persistence model for estate messages.
type MessageModel struct {
	EstateAggregateModel
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body     string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts the persistence model to a domain Message
func (m *MessageModel) ToDomain() *engagement.Message {
	return &engagement.Message{
		EstateAggregateRoot: m.ToDomainEstateAggregateRoot(),
		AuthorID:            m.AuthorID,
		Body:                m.Body,
	}
}

// MessageModelFromDomain builds a persistence model from a domain Message
func MessageModelFromDomain(msg *engagement.Message) *MessageModel {
	m := &MessageModel{
		AuthorID: msg.AuthorID,
		Body:     msg.Body,
	}
	m.FromDomainEstateAggregateRoot(msg.EstateAggregateRoot)
	return m
}

// ActivityLogModel is the persistence model for activity log entries.
type ActivityLogModel struct {
	BaseModel
	EstateID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	Action     string    `gorm:"type:varchar(100);not null"`
	EntityType string    `gorm:"type:varchar(50)"`
	EntityID   uuid.UUID `gorm:"type:uuid"`
	Detail     string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

// ToDomain converts the persistence model to a domain ActivityLog
func (m *ActivityLogModel) ToDomain() *engagement.ActivityLog {
	return &engagement.ActivityLog{
		BaseEntity: m.BaseModel.ToDomain(),
		EstateID:   m.EstateID,
		ActorID:    m.ActorID,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Detail:     m.Detail,
	}
}

// ActivityLogModelFromDomain builds a persistence model from a domain ActivityLog
func ActivityLogModelFromDomain(e *engagement.ActivityLog) *ActivityLogModel {
	m := &ActivityLogModel{
		EstateID:   e.EstateID,
		ActorID:    e.ActorID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Detail:     e.Detail,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}

// NotificationModel is the persistence model for user notifications.
type NotificationModel struct {
	BaseModel
	UserID   uuid.UUID                   `gorm:"type:uuid;not null;index"`
	EstateID *uuid.UUID                  `gorm:"type:uuid;index"`
	Type     engagement.NotificationType `gorm:"type:varchar(30);not null"`
	Title    string                      `gorm:"type:varchar(200);not null"`
	Body     string                      `gorm:"type:text"`
	ReadAt   *time.Time                  `gorm:"index"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification
func (m *NotificationModel) ToDomain() *engagement.Notification {
	return &engagement.Notification{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		EstateID:   m.EstateID,
		Type:       m.Type,
		Title:      m.Title,
		Body:       m.Body,
		ReadAt:     m.ReadAt,
	}
}

// NotificationModelFromDomain builds a persistence model from a domain Notification
func NotificationModelFromDomain(n *engagement.Notification) *NotificationModel {
	m := &NotificationModel{
		UserID:   n.UserID,
		EstateID: n.EstateID,
		Type:     n.Type,
		Title:    n.Title,
		Body:     n.Body,
		ReadAt:   n.ReadAt,
	}
	m.FromDomainBaseEntity(n.BaseEntity)
	return m
}

// BlogPostModel is the persistence model for blog posts.
type BlogPostModel struct {
	AggregateModel
	AuthorID    uuid.UUID `gorm:"type:uuid;not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(220);not null;uniqueIndex"`
	Body        string    `gorm:"type:text;not null"`
	Published   bool      `gorm:"not null;default:false;index"`
	PublishedAt *time.Time
}

// TableName returns the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// ToDomain converts the persistence model to a domain BlogPost
func (m *BlogPostModel) ToDomain() *engagement.BlogPost {
	return &engagement.BlogPost{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		AuthorID:          m.AuthorID,
		Title:             m.Title,
		Slug:              m.Slug,
		Body:              m.Body,
		Published:         m.Published,
		PublishedAt:       m.PublishedAt,
	}
}

// BlogPostModelFromDomain builds a persistence model from a domain BlogPost
func BlogPostModelFromDomain(p *engagement.BlogPost) *BlogPostModel {
	m := &BlogPostModel{
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
