package handler

import (
	"context"
	"time"

	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	estateapp "github.com/arvebo/backend/internal/application/estate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EstateHandler handles estate lifecycle and membership endpoints
type EstateHandler struct {
	BaseHandler
	estateService     *estateapp.EstateService
	membershipService *estateapp.MembershipService
	activityService   *engagementapp.ActivityService
}

// NewEstateHandler creates a new EstateHandler
func NewEstateHandler(
	estateService *estateapp.EstateService,
	membershipService *estateapp.MembershipService,
	activityService *engagementapp.ActivityService,
) *EstateHandler {
	return &EstateHandler{
		estateService:     estateService,
		membershipService: membershipService,
		activityService:   activityService,
	}
}

// CreateEstateRequest represents a request to open a new estate
type CreateEstateRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=200"`
	DeceasedName string     `json:"deceased_name" binding:"required,min=1,max=200"`
	DateOfDeath  *time.Time `json:"date_of_death"`
	Description  string     `json:"description" binding:"max=2000"`
}

// UpdateEstateRequest represents a request to update an estate
type UpdateEstateRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=200"`
	DeceasedName string     `json:"deceased_name" binding:"required,min=1,max=200"`
	DateOfDeath  *time.Time `json:"date_of_death"`
	Description  string     `json:"description" binding:"max=2000"`
}

// ChangeMemberRoleRequest represents a request to change a member's role
type ChangeMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=administrator responsible_heir heir viewer"`
}

// EstateResponse is the estate representation returned by the API
type EstateResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	DeceasedName string     `json:"deceased_name"`
	DateOfDeath  *time.Time `json:"date_of_death,omitempty"`
	Description  string     `json:"description,omitempty"`
	Status       string     `json:"status"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MemberResponse is the member representation returned by the API
type MemberResponse struct {
	ID       uuid.UUID `json:"id"`
	EstateID uuid.UUID `json:"estate_id"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

func estateResponseFrom(info estateapp.EstateInfo) EstateResponse {
	return EstateResponse{
		ID:           info.ID,
		Name:         info.Name,
		DeceasedName: info.DeceasedName,
		DateOfDeath:  info.DateOfDeath,
		Description:  info.Description,
		Status:       info.Status,
		CreatedBy:    info.CreatedBy,
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
	}
}

func memberResponseFrom(info estateapp.MemberInfo) MemberResponse {
	return MemberResponse{
		ID:       info.ID,
		EstateID: info.EstateID,
		UserID:   info.UserID,
		Role:     info.Role,
		JoinedAt: info.JoinedAt,
	}
}

// Create opens a new estate with the caller as administrator
func (h *EstateHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.estateService.Create(c.Request.Context(), estateapp.CreateEstateInput{
		Name:         req.Name,
		DeceasedName: req.DeceasedName,
		DateOfDeath:  req.DateOfDeath,
		Description:  req.Description,
		CreatedBy:    userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.recordActivity(c, info.ID, userID, "estate.created", "estate", info.ID, info.Name)
	h.Created(c, estateResponseFrom(*info))
}

// List returns the estates the caller is a member of
func (h *EstateHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.estateService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	estates := make([]EstateResponse, 0, len(result.Estates))
	for _, e := range result.Estates {
		estates = append(estates, estateResponseFrom(e))
	}
	h.SuccessWithMeta(c, estates, result.Total, filter.Page, filter.PageSize)
}

// Get returns a single estate
func (h *EstateHandler) Get(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	info, err := h.estateService.Get(c.Request.Context(), estateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, estateResponseFrom(*info))
}

// Update edits an estate's details
func (h *EstateHandler) Update(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	var req UpdateEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.estateService.Update(c.Request.Context(), estateapp.UpdateEstateInput{
		EstateID:     estateID,
		Name:         req.Name,
		DeceasedName: req.DeceasedName,
		DateOfDeath:  req.DateOfDeath,
		Description:  req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, estateResponseFrom(*info))
}

// MarkSettled marks the estate as settled
func (h *EstateHandler) MarkSettled(c *gin.Context) {
	h.transition(c, h.estateService.MarkSettled, "estate.settled")
}

// Archive archives a settled estate
func (h *EstateHandler) Archive(c *gin.Context) {
	h.transition(c, h.estateService.Archive, "estate.archived")
}

// Reopen returns a settled or archived estate to active
func (h *EstateHandler) Reopen(c *gin.Context) {
	h.transition(c, h.estateService.Reopen, "estate.reopened")
}

// Delete removes an estate and everything in it
func (h *EstateHandler) Delete(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	if !middlewareCanManage(c) {
		h.Forbidden(c, "Only administrators and responsible heirs can delete the estate")
		return
	}

	if err := h.estateService.Delete(c.Request.Context(), estateID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListMembers returns all members of the estate
func (h *EstateHandler) ListMembers(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	members, err := h.membershipService.List(c.Request.Context(), estateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, memberResponseFrom(m))
	}
	h.Success(c, responses)
}

// ChangeMemberRole changes another member's role
func (h *EstateHandler) ChangeMemberRole(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	memberID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req ChangeMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.membershipService.ChangeRole(c.Request.Context(), estateapp.ChangeMemberRoleInput{
		EstateID: estateID,
		MemberID: memberID,
		ActorID:  userID,
		Role:     req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.recordActivity(c, estateID, userID, "member.role_changed", "member", memberID, req.Role)
	h.Success(c, memberResponseFrom(*info))
}

// RemoveMember removes a member from the estate
func (h *EstateHandler) RemoveMember(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	memberID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	err = h.membershipService.Remove(c.Request.Context(), estateapp.RemoveMemberInput{
		EstateID: estateID,
		MemberID: memberID,
		ActorID:  userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.recordActivity(c, estateID, userID, "member.removed", "member", memberID, "")
	h.NoContent(c)
}

func (h *EstateHandler) transition(
	c *gin.Context,
	change func(ctx context.Context, estateID uuid.UUID) (*estateapp.EstateInfo, error),
	action string,
) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	info, err := change(c.Request.Context(), estateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if userID, err := getUserID(c); err == nil {
		h.recordActivity(c, estateID, userID, action, "estate", estateID, "")
	}
	h.Success(c, estateResponseFrom(*info))
}

func (h *EstateHandler) recordActivity(c *gin.Context, estateID, actorID uuid.UUID, action, entityType string, entityID uuid.UUID, detail string) {
	if h.activityService == nil {
		return
	}
	h.activityService.Record(c.Request.Context(), engagementapp.RecordActivityInput{
		EstateID:   estateID,
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	})
}
