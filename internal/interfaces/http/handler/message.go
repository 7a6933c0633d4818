package handler

import (
	"time"

	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageHandler handles the estate message board endpoints
type MessageHandler struct {
	BaseHandler
	messageService *engagementapp.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *engagementapp.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// PostMessageRequest represents a request to post a message
type PostMessageRequest struct {
	Body string `json:"body" binding:"required,min=1,max=4000"`
}

// EditMessageRequest represents a request to edit a message
type EditMessageRequest struct {
	Body string `json:"body" binding:"required,min=1,max=4000"`
}

// MessageResponse is the message representation returned by the API
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	EstateID  uuid.UUID `json:"estate_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func messageResponseFrom(info engagementapp.MessageInfo) MessageResponse {
	return MessageResponse{
		ID:        info.ID,
		EstateID:  info.EstateID,
		AuthorID:  info.AuthorID,
		Body:      info.Body,
		CreatedAt: info.CreatedAt,
		UpdatedAt: info.UpdatedAt,
	}
}

// Post posts a message to the estate's board
func (h *MessageHandler) Post(c *gin.Context) {
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

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.messageService.Post(c.Request.Context(), engagementapp.PostMessageInput{
		EstateID: estateID,
		AuthorID: userID,
		Body:     req.Body,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, messageResponseFrom(*info))
}

// List returns the estate's messages
func (h *MessageHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.messageService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	messages := make([]MessageResponse, 0, len(result.Messages))
	for _, m := range result.Messages {
		messages = append(messages, messageResponseFrom(m))
	}
	h.SuccessWithMeta(c, messages, result.Total, filter.Page, filter.PageSize)
}

// Edit edits the caller's own message
func (h *MessageHandler) Edit(c *gin.Context) {
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

	messageID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.messageService.Edit(c.Request.Context(), engagementapp.EditMessageInput{
		EstateID:  estateID,
		MessageID: messageID,
		EditorID:  userID,
		Body:      req.Body,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, messageResponseFrom(*info))
}

// Delete removes the caller's own message
func (h *MessageHandler) Delete(c *gin.Context) {
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

	messageID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	err = h.messageService.Delete(c.Request.Context(), engagementapp.DeleteMessageInput{
		EstateID:  estateID,
		MessageID: messageID,
		ActorID:   userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
