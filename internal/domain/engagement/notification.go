package engagement

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationType classifies what triggered a notification
type NotificationType string

const (
	NotificationTypeInvitation          NotificationType = "invitation"
	NotificationTypeTaskAssigned        NotificationType = "task_assigned"
	NotificationTypeTransactionApproved NotificationType = "transaction_approved"
	NotificationTypeTransactionRejected NotificationType = "transaction_rejected"
	NotificationTypeMessage             NotificationType = "message"
)

// Notification is addressed to a single user
type Notification struct {
	shared.BaseEntity
	UserID   uuid.UUID
	EstateID *uuid.UUID
	Type     NotificationType
	Title    string
	Body     string
	ReadAt   *time.Time
}

// NewNotification creates an unread notification
func NewNotification(userID uuid.UUID, estateID *uuid.UUID, nType NotificationType, title, body string) (*Notification, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}

	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		EstateID:   estateID,
		Type:       nType,
		Title:      title,
		Body:       body,
	}, nil
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	if n.ReadAt != nil {
		return
	}
	now := time.Now()
	n.ReadAt = &now
	n.UpdatedAt = now
}

// IsRead returns true if the notification has been read
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
