package handler

import (
	"time"

	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles the caller's notification endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *engagementapp.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *engagementapp.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// NotificationResponse is the notification representation returned by the API
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	EstateID  *uuid.UUID `json:"estate_id,omitempty"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// UnreadCountResponse carries the unread notification count
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

func notificationResponseFrom(info engagementapp.NotificationInfo) NotificationResponse {
	return NotificationResponse{
		ID:        info.ID,
		UserID:    info.UserID,
		EstateID:  info.EstateID,
		Type:      info.Type,
		Title:     info.Title,
		Body:      info.Body,
		Read:      info.Read,
		ReadAt:    info.ReadAt,
		CreatedAt: info.CreatedAt,
	}
}

// List returns the caller's notifications with the unread count
func (h *NotificationHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.notificationService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	notifications := make([]NotificationResponse, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		notifications = append(notifications, notificationResponseFrom(n))
	}

	h.SuccessWithMeta(c, gin.H{
		"notifications": notifications,
		"unread_count":  result.UnreadCount,
	}, result.Total, filter.Page, filter.PageSize)
}

// CountUnread returns the caller's unread notification count
func (h *NotificationHandler) CountUnread(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	count, err := h.notificationService.CountUnread(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, UnreadCountResponse{Unread: count})
}

// MarkRead marks a single notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	notificationID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.notificationService.MarkRead(c.Request.Context(), userID, notificationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, notificationResponseFrom(*info))
}

// MarkAllRead marks all the caller's notifications as read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
