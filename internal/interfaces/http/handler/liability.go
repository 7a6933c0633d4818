package handler

import (
	"time"

	financeapp "github.com/arvebo/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiabilityHandler handles estate liability endpoints
type LiabilityHandler struct {
	BaseHandler
	liabilityService *financeapp.LiabilityService
}

// NewLiabilityHandler creates a new LiabilityHandler
func NewLiabilityHandler(liabilityService *financeapp.LiabilityService) *LiabilityHandler {
	return &LiabilityHandler{liabilityService: liabilityService}
}

// CreateLiabilityRequest represents a request to register a liability
type CreateLiabilityRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Creditor    string     `json:"creditor" binding:"max=200"`
	Category    string     `json:"category" binding:"required,oneof=mortgage loan tax invoice other"`
	Description string     `json:"description" binding:"max=2000"`
	Value       string     `json:"value" binding:"required"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateLiabilityRequest represents a request to update a liability
type UpdateLiabilityRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Creditor    string     `json:"creditor" binding:"max=200"`
	Category    string     `json:"category" binding:"required,oneof=mortgage loan tax invoice other"`
	Description string     `json:"description" binding:"max=2000"`
	Value       string     `json:"value" binding:"required"`
	DueDate     *time.Time `json:"due_date"`
}

// LiabilityResponse is the liability representation returned by the API
type LiabilityResponse struct {
	ID          uuid.UUID       `json:"id"`
	EstateID    uuid.UUID       `json:"estate_id"`
	Name        string          `json:"name"`
	Creditor    string          `json:"creditor,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func liabilityResponseFrom(info financeapp.LiabilityInfo) LiabilityResponse {
	return LiabilityResponse{
		ID:          info.ID,
		EstateID:    info.EstateID,
		Name:        info.Name,
		Creditor:    info.Creditor,
		Category:    info.Category,
		Description: info.Description,
		Value:       info.Value,
		Currency:    info.Currency,
		DueDate:     info.DueDate,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// Create registers a new liability in the estate
func (h *LiabilityHandler) Create(c *gin.Context) {
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

	var req CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.liabilityService.Create(c.Request.Context(), financeapp.CreateLiabilityInput{
		EstateID:    estateID,
		Name:        req.Name,
		Creditor:    req.Creditor,
		Category:    req.Category,
		Description: req.Description,
		Value:       req.Value,
		DueDate:     req.DueDate,
		CreatedBy:   userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, liabilityResponseFrom(*info))
}

// Get returns a single liability
func (h *LiabilityHandler) Get(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	liabilityID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.liabilityService.Get(c.Request.Context(), estateID, liabilityID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, liabilityResponseFrom(*info))
}

// List returns the estate's liabilities
func (h *LiabilityHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.liabilityService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	liabilities := make([]LiabilityResponse, 0, len(result.Liabilities))
	for _, l := range result.Liabilities {
		liabilities = append(liabilities, liabilityResponseFrom(l))
	}
	h.SuccessWithMeta(c, liabilities, result.Total, filter.Page, filter.PageSize)
}

// Update edits a liability
func (h *LiabilityHandler) Update(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	liabilityID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.liabilityService.Update(c.Request.Context(), financeapp.UpdateLiabilityInput{
		EstateID:    estateID,
		LiabilityID: liabilityID,
		Name:        req.Name,
		Creditor:    req.Creditor,
		Category:    req.Category,
		Description: req.Description,
		Value:       req.Value,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, liabilityResponseFrom(*info))
}

// Delete removes a liability
func (h *LiabilityHandler) Delete(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	liabilityID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	if err := h.liabilityService.Delete(c.Request.Context(), estateID, liabilityID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
