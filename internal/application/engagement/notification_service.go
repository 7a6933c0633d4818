package engagement

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService manages a user's notification inbox
type NotificationService struct {
	notificationRepo engagement.NotificationRepository
	logger           *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo engagement.NotificationRepository, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List returns a user's notifications together with the unread count
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*NotificationListResult, error) {
	notifications, total, err := s.notificationRepo.FindAllForUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list notifications", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list notifications")
	}

	unread, err := s.notificationRepo.CountUnreadForUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to count unread notifications", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list notifications")
	}

	infos := make([]NotificationInfo, 0, len(notifications))
	for i := range notifications {
		infos = append(infos, notificationInfoFromDomain(&notifications[i]))
	}
	return &NotificationListResult{Notifications: infos, Total: total, UnreadCount: unread}, nil
}

// CountUnread returns the number of unread notifications for a user
func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	unread, err := s.notificationRepo.CountUnreadForUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to count unread notifications", zap.Error(err))
		return 0, shared.NewDomainError("INTERNAL_ERROR", "Failed to count notifications")
	}
	return unread, nil
}

// MarkRead marks a single notification as read.
// Only the addressed user may mark it.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationInfo, error) {
	notification, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load notification", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load notification")
	}

	if notification.UserID != userID {
		return nil, shared.ErrNotFound
	}

	if !notification.IsRead() {
		notification.MarkRead()
		if err := s.notificationRepo.Save(ctx, notification); err != nil {
			s.logger.Error("Failed to save notification", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update notification")
		}
	}

	info := notificationInfoFromDomain(notification)
	return &info, nil
}

// MarkAllRead marks every unread notification of a user as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllReadForUser(ctx, userID); err != nil {
		s.logger.Error("Failed to mark notifications read", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update notifications")
	}
	return nil
}
