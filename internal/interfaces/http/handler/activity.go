package handler

import (
	"time"

	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler exposes the estate's activity feed
type ActivityHandler struct {
	BaseHandler
	activityService *engagementapp.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *engagementapp.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ActivityResponse is the activity entry representation returned by the API
type ActivityResponse struct {
	ID         uuid.UUID `json:"id"`
	EstateID   uuid.UUID `json:"estate_id"`
	ActorID    uuid.UUID `json:"actor_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// List returns the estate's activity feed, newest first
func (h *ActivityHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.activityService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	entries := make([]ActivityResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, ActivityResponse{
			ID:         e.ID,
			EstateID:   e.EstateID,
			ActorID:    e.ActorID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt,
		})
	}
	h.SuccessWithMeta(c, entries, result.Total, filter.Page, filter.PageSize)
}
