package handler

import (
	"time"

	estateapp "github.com/arvebo/backend/internal/application/estate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvitationHandler handles estate invitation endpoints
type InvitationHandler struct {
	BaseHandler
	invitationService *estateapp.InvitationService
}

// NewInvitationHandler creates a new InvitationHandler
func NewInvitationHandler(invitationService *estateapp.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// InviteRequest represents a request to invite someone to an estate
type InviteRequest struct {
	Email string `json:"email" binding:"required,email,max=200"`
	Role  string `json:"role" binding:"required,oneof=administrator responsible_heir heir viewer"`
}

// AcceptInvitationRequest carries the invitation token
type AcceptInvitationRequest struct {
	Token string `json:"token" binding:"required"`
}

// InvitationResponse is the invitation representation returned by the API.
// The token is only included for the inviting side.
type InvitationResponse struct {
	ID        uuid.UUID `json:"id"`
	EstateID  uuid.UUID `json:"estate_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	InvitedBy uuid.UUID `json:"invited_by"`
	CreatedAt time.Time `json:"created_at"`
}

func invitationResponseFrom(info estateapp.InvitationInfo) InvitationResponse {
	return InvitationResponse{
		ID:        info.ID,
		EstateID:  info.EstateID,
		Email:     info.Email,
		Role:      info.Role,
		Token:     info.Token,
		Status:    info.Status,
		ExpiresAt: info.ExpiresAt,
		InvitedBy: info.InvitedBy,
		CreatedAt: info.CreatedAt,
	}
}

// Invite creates an invitation to join the estate
func (h *InvitationHandler) Invite(c *gin.Context) {
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

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.invitationService.Invite(c.Request.Context(), estateapp.InviteInput{
		EstateID:  estateID,
		Email:     req.Email,
		Role:      req.Role,
		InvitedBy: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invitationResponseFrom(*info))
}

// List returns the estate's invitations
func (h *InvitationHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.invitationService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	invitations := make([]InvitationResponse, 0, len(result.Invitations))
	for _, inv := range result.Invitations {
		invitations = append(invitations, invitationResponseFrom(inv))
	}
	h.SuccessWithMeta(c, invitations, result.Total, filter.Page, filter.PageSize)
}

// Revoke cancels a pending invitation
func (h *InvitationHandler) Revoke(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	invitationID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	if err := h.invitationService.Revoke(c.Request.Context(), estateID, invitationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Accept joins the caller to the estate named by the invitation token
func (h *InvitationHandler) Accept(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.invitationService.Accept(c.Request.Context(), estateapp.AcceptInvitationInput{
		Token:  req.Token,
		UserID: userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, memberResponseFrom(*info))
}

// Decline rejects an invitation by token
func (h *InvitationHandler) Decline(c *gin.Context) {
	var req AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.invitationService.Decline(c.Request.Context(), req.Token); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
