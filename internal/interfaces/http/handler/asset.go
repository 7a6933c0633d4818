package handler

import (
	"time"

	financeapp "github.com/arvebo/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetHandler handles estate asset endpoints
type AssetHandler struct {
	BaseHandler
	assetService *financeapp.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *financeapp.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest represents a request to register an asset
type CreateAssetRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Category    string `json:"category" binding:"required,oneof=property vehicle bank_account security valuable other"`
	Description string `json:"description" binding:"max=2000"`
	Value       string `json:"value" binding:"required"`
}

// UpdateAssetRequest represents a request to update an asset
type UpdateAssetRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Category    string `json:"category" binding:"required,oneof=property vehicle bank_account security valuable other"`
	Description string `json:"description" binding:"max=2000"`
	Value       string `json:"value" binding:"required"`
}

// AssetResponse is the asset representation returned by the API
type AssetResponse struct {
	ID          uuid.UUID       `json:"id"`
	EstateID    uuid.UUID       `json:"estate_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NetWorthResponse aggregates estate asset and liability values
type NetWorthResponse struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`
}

func assetResponseFrom(info financeapp.AssetInfo) AssetResponse {
	return AssetResponse{
		ID:          info.ID,
		EstateID:    info.EstateID,
		Name:        info.Name,
		Category:    info.Category,
		Description: info.Description,
		Value:       info.Value,
		Currency:    info.Currency,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// Create registers a new asset in the estate
func (h *AssetHandler) Create(c *gin.Context) {
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

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.assetService.Create(c.Request.Context(), financeapp.CreateAssetInput{
		EstateID:    estateID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Value:       req.Value,
		CreatedBy:   userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, assetResponseFrom(*info))
}

// Get returns a single asset
func (h *AssetHandler) Get(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	assetID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.assetService.Get(c.Request.Context(), estateID, assetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, assetResponseFrom(*info))
}

// List returns the estate's assets
func (h *AssetHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.assetService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	assets := make([]AssetResponse, 0, len(result.Assets))
	for _, a := range result.Assets {
		assets = append(assets, assetResponseFrom(a))
	}
	h.SuccessWithMeta(c, assets, result.Total, filter.Page, filter.PageSize)
}

// Update edits an asset
func (h *AssetHandler) Update(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	assetID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.assetService.Update(c.Request.Context(), financeapp.UpdateAssetInput{
		EstateID:    estateID,
		AssetID:     assetID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Value:       req.Value,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, assetResponseFrom(*info))
}

// Delete removes an asset
func (h *AssetHandler) Delete(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	assetID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	if err := h.assetService.Delete(c.Request.Context(), estateID, assetID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// NetWorth returns total assets minus total liabilities
func (h *AssetHandler) NetWorth(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	result, err := h.assetService.NetWorth(c.Request.Context(), estateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, NetWorthResponse{
		TotalAssets:      result.TotalAssets,
		TotalLiabilities: result.TotalLiabilities,
		NetWorth:         result.NetWorth,
	})
}
