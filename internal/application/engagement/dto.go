package engagement

import (
	"time"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/google/uuid"
)

// PostMessageInput contains input for posting a message
type PostMessageInput struct {
	EstateID uuid.UUID
	AuthorID uuid.UUID
	Body     string
}

// EditMessageInput contains input for editing a message
type EditMessageInput struct {
	EstateID  uuid.UUID
	MessageID uuid.UUID
	EditorID  uuid.UUID
	Body      string
}

// DeleteMessageInput contains input for deleting a message
type DeleteMessageInput struct {
	EstateID  uuid.UUID
	MessageID uuid.UUID
	ActorID   uuid.UUID
}

// MessageInfo is the message representation returned to callers
type MessageInfo struct {
	ID        uuid.UUID
	EstateID  uuid.UUID
	AuthorID  uuid.UUID
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageListResult is a page of messages
type MessageListResult struct {
	Messages []MessageInfo
	Total    int64
}

// RecordActivityInput contains input for recording an activity entry
type RecordActivityInput struct {
	EstateID   uuid.UUID
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	Detail     string
}

// ActivityInfo is the activity log representation returned to callers
type ActivityInfo struct {
	ID         uuid.UUID
	EstateID   uuid.UUID
	ActorID    uuid.UUID
	Action     string
	EntityType string
	EntityID   uuid.UUID
	Detail     string
	CreatedAt  time.Time
}

// ActivityListResult is a page of activity entries
type ActivityListResult struct {
	Entries []ActivityInfo
	Total   int64
}

// NotificationInfo is the notification representation returned to callers
type NotificationInfo struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EstateID  *uuid.UUID
	Type      string
	Title     string
	Body      string
	Read      bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

// NotificationListResult is a page of notifications
type NotificationListResult struct {
	Notifications []NotificationInfo
	Total         int64
	UnreadCount   int64
}

// CreateBlogPostInput contains input for creating a blog post
type CreateBlogPostInput struct {
	AuthorID uuid.UUID
	Title    string
	Body     string
}

// UpdateBlogPostInput contains input for updating a blog post
type UpdateBlogPostInput struct {
	PostID uuid.UUID
	Title  string
	Body   string
}

// BlogPostInfo is the blog post representation returned to callers
type BlogPostInfo struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Slug        string
	Body        string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BlogPostListResult is a page of blog posts
type BlogPostListResult struct {
	Posts []BlogPostInfo
	Total int64
}

func messageInfoFromDomain(m *engagement.Message) MessageInfo {
	return MessageInfo{
		ID:        m.ID,
		EstateID:  m.EstateID,
		AuthorID:  m.AuthorID,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func activityInfoFromDomain(entry *engagement.ActivityLog) ActivityInfo {
	return ActivityInfo{
		ID:         entry.ID,
		EstateID:   entry.EstateID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Detail:     entry.Detail,
		CreatedAt:  entry.CreatedAt,
	}
}

func notificationInfoFromDomain(n *engagement.Notification) NotificationInfo {
	return NotificationInfo{
		ID:        n.ID,
		UserID:    n.UserID,
		EstateID:  n.EstateID,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func blogPostInfoFromDomain(p *engagement.BlogPost) BlogPostInfo {
	return BlogPostInfo{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
