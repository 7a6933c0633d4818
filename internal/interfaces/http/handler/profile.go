package handler

import (
	identityapp "github.com/arvebo/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles user profile endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *identityapp.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *identityapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	FullName  string `json:"full_name" binding:"max=200"`
	Phone     string `json:"phone" binding:"max=50"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url,max=500"`
}

// ProfileResponse is the profile representation returned by the API
type ProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Role       string    `json:"role"`
	Permission string    `json:"permission"`
}

func profileResponseFrom(info identityapp.ProfileInfo) ProfileResponse {
	return ProfileResponse{
		ID:         info.ID,
		UserID:     info.UserID,
		FullName:   info.FullName,
		Phone:      info.Phone,
		AvatarURL:  info.AvatarURL,
		Role:       info.Role,
		Permission: info.Permission,
	}
}

// Get returns the authenticated user's profile, creating an empty one
// on first access
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.profileService.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profileResponseFrom(*info))
}

// Update updates the authenticated user's profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.profileService.Update(c.Request.Context(), identityapp.UpdateProfileInput{
		UserID:    userID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profileResponseFrom(*info))
}
