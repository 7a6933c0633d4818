package engagement

import (
	"context"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MessageRepository defines the interface for message persistence
type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Message, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]Message, int64, error)
}

// ActivityLogRepository defines the interface for activity log persistence
type ActivityLogRepository interface {
	Save(ctx context.Context, entry *ActivityLog) error
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]ActivityLog, int64, error)
}

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	Save(ctx context.Context, notification *Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Notification, int64, error)
	CountUnreadForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAllReadForUser(ctx context.Context, userID uuid.UUID) error
}

// BlogPostRepository defines the interface for blog post persistence
type BlogPostRepository interface {
	Save(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]BlogPost, int64, error)
	FindPublished(ctx context.Context, filter shared.Filter) ([]BlogPost, int64, error)
}
