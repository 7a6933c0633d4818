package handler

import (
	"time"

	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	financeapp "github.com/arvebo/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles estate transaction endpoints
type TransactionHandler struct {
	BaseHandler
	transactionService *financeapp.TransactionService
	activityService    *engagementapp.ActivityService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(
	transactionService *financeapp.TransactionService,
	activityService *engagementapp.ActivityService,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		activityService:    activityService,
	}
}

// CreateTransactionRequest represents a request to record a transaction.
// Amounts travel as strings to avoid float rounding.
type CreateTransactionRequest struct {
	Direction   string    `json:"direction" binding:"required,oneof=income expense"`
	Category    string    `json:"category" binding:"required,min=1,max=100"`
	Description string    `json:"description" binding:"max=2000"`
	Amount      string    `json:"amount" binding:"required,decimal"`
	OccurredAt  time.Time `json:"occurred_at" binding:"required"`
}

// UpdateTransactionRequest represents a request to edit a pending transaction
type UpdateTransactionRequest struct {
	Direction   string    `json:"direction" binding:"required,oneof=income expense"`
	Category    string    `json:"category" binding:"required,min=1,max=100"`
	Description string    `json:"description" binding:"max=2000"`
	Amount      string    `json:"amount" binding:"required,decimal"`
	OccurredAt  time.Time `json:"occurred_at" binding:"required"`
}

// RejectTransactionRequest carries the rejection reason
type RejectTransactionRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=1000"`
}

// TransactionResponse is the transaction representation returned by the API
type TransactionResponse struct {
	ID             uuid.UUID       `json:"id"`
	EstateID       uuid.UUID       `json:"estate_id"`
	Direction      string          `json:"direction"`
	Category       string          `json:"category"`
	Description    string          `json:"description,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	OccurredAt     time.Time       `json:"occurred_at"`
	ApprovalStatus string          `json:"approval_status"`
	ApprovedBy     *uuid.UUID      `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	RejectedReason string          `json:"rejected_reason,omitempty"`
	CreatedBy      *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func transactionResponseFrom(info financeapp.TransactionInfo) TransactionResponse {
	return TransactionResponse{
		ID:             info.ID,
		EstateID:       info.EstateID,
		Direction:      info.Direction,
		Category:       info.Category,
		Description:    info.Description,
		Amount:         info.Amount,
		Currency:       info.Currency,
		OccurredAt:     info.OccurredAt,
		ApprovalStatus: info.ApprovalStatus,
		ApprovedBy:     info.ApprovedBy,
		ApprovedAt:     info.ApprovedAt,
		RejectedReason: info.RejectedReason,
		CreatedBy:      info.CreatedBy,
		CreatedAt:      info.CreatedAt,
		UpdatedAt:      info.UpdatedAt,
	}
}

// Create records a new transaction in the estate
func (h *TransactionHandler) Create(c *gin.Context) {
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

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.transactionService.Create(c.Request.Context(), financeapp.CreateTransactionInput{
		EstateID:    estateID,
		Direction:   req.Direction,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		OccurredAt:  req.OccurredAt,
		CreatedBy:   userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.recordActivity(c, estateID, userID, "transaction.created", info.ID, req.Category)
	h.Created(c, transactionResponseFrom(*info))
}

// Get returns a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	transactionID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.transactionService.Get(c.Request.Context(), estateID, transactionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, transactionResponseFrom(*info))
}

// List returns the estate's transactions
func (h *TransactionHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.transactionService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	transactions := make([]TransactionResponse, 0, len(result.Transactions))
	for _, t := range result.Transactions {
		transactions = append(transactions, transactionResponseFrom(t))
	}
	h.SuccessWithMeta(c, transactions, result.Total, filter.Page, filter.PageSize)
}

// Update edits a pending transaction
func (h *TransactionHandler) Update(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	transactionID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.transactionService.Update(c.Request.Context(), financeapp.UpdateTransactionInput{
		EstateID:      estateID,
		TransactionID: transactionID,
		Direction:     req.Direction,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		OccurredAt:    req.OccurredAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, transactionResponseFrom(*info))
}

// Approve approves a pending transaction
func (h *TransactionHandler) Approve(c *gin.Context) {
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

	if !middlewareCanManage(c) {
		h.Forbidden(c, "Only administrators and responsible heirs can approve transactions")
		return
	}

	transactionID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.transactionService.Approve(c.Request.Context(), financeapp.ApproveTransactionInput{
		EstateID:      estateID,
		TransactionID: transactionID,
		ApproverID:    userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.recordActivity(c, estateID, userID, "transaction.approved", transactionID, "")
	h.Success(c, transactionResponseFrom(*info))
}

// Reject rejects a pending transaction with a reason
func (h *TransactionHandler) Reject(c *gin.Context) {
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

	if !middlewareCanManage(c) {
		h.Forbidden(c, "Only administrators and responsible heirs can reject transactions")
		return
	}

	transactionID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req RejectTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.transactionService.Reject(c.Request.Context(), financeapp.RejectTransactionInput{
		EstateID:      estateID,
		TransactionID: transactionID,
		ApproverID:    userID,
		Reason:        req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.recordActivity(c, estateID, userID, "transaction.rejected", transactionID, req.Reason)
	h.Success(c, transactionResponseFrom(*info))
}

// Delete removes a pending transaction
func (h *TransactionHandler) Delete(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	transactionID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), estateID, transactionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Summary returns approved and pending totals for the estate along with
// the per-category expense breakdown
func (h *TransactionHandler) Summary(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	summary, err := h.transactionService.Summary(c.Request.Context(), estateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

func (h *TransactionHandler) recordActivity(c *gin.Context, estateID, actorID uuid.UUID, action string, entityID uuid.UUID, detail string) {
	if h.activityService == nil {
		return
	}
	h.activityService.Record(c.Request.Context(), engagementapp.RecordActivityInput{
		EstateID:   estateID,
		ActorID:    actorID,
		Action:     action,
		EntityType: "transaction",
		EntityID:   entityID,
		Detail:     detail,
	})
}
