package finance

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDirection classifies a transaction as money in or money out
type TransactionDirection string

const (
	DirectionIncome  TransactionDirection = "income"
	DirectionExpense TransactionDirection = "expense"
)

// IsValid checks if the direction is a known value
func (d TransactionDirection) IsValid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// ApprovalStatus represents the approval state of a transaction
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// IsValid checks if the status is a known value
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions are allowed
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// CanApprove returns true if the status allows approval
func (s ApprovalStatus) CanApprove() bool {
	return s == ApprovalStatusPending
}

// CanReject returns true if the status allows rejection
func (s ApprovalStatus) CanReject() bool {
	return s == ApprovalStatusPending
}

// Transaction represents a single income or expense entry of an estate.
// New transactions start pending; only approved transactions count toward
// the estate's financial summary.
type Transaction struct {
	shared.EstateAggregateRoot
	Direction      TransactionDirection
	Category       string
	Description    string
	Amount         decimal.Decimal
	Currency       valueobject.Currency
	OccurredAt     time.Time
	ApprovalStatus ApprovalStatus
	ApprovedBy     *uuid.UUID
	ApprovedAt     *time.Time
	RejectedReason string
}

// NewTransaction creates a pending transaction
func NewTransaction(
	estateID uuid.UUID,
	direction TransactionDirection,
	category string,
	description string,
	amount decimal.Decimal,
	occurredAt time.Time,
	createdBy uuid.UUID,
) (*Transaction, error) {
	if !direction.IsValid() {
		return nil, shared.NewDomainError("INVALID_DIRECTION", "Direction must be income or expense")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if len(category) > 100 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if occurredAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}

	return &Transaction{
		EstateAggregateRoot: shared.NewEstateAggregateRootWithCreator(estateID, createdBy),
		Direction:           direction,
		Category:            category,
		Description:         strings.TrimSpace(description),
		Amount:              amount,
		Currency:            valueobject.NOK,
		OccurredAt:          occurredAt,
		ApprovalStatus:      ApprovalStatusPending,
	}, nil
}

// Update updates a transaction's editable fields. Only pending
// transactions can be edited.
func (t *Transaction) Update(direction TransactionDirection, category, description string, amount decimal.Decimal, occurredAt time.Time) error {
	if t.ApprovalStatus.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit a transaction that has been approved or rejected")
	}
	if !direction.IsValid() {
		return shared.NewDomainError("INVALID_DIRECTION", "Direction must be income or expense")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	t.Direction = direction
	t.Category = category
	t.Description = strings.TrimSpace(description)
	t.Amount = amount
	t.OccurredAt = occurredAt
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Approve approves a pending transaction
func (t *Transaction) Approve(approverID uuid.UUID) error {
	if !t.ApprovalStatus.CanApprove() {
		return shared.NewDomainError("INVALID_STATE", "Only pending transactions can be approved")
	}
	if approverID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER_ID", "Approver cannot be empty")
	}

	now := time.Now()
	t.ApprovalStatus = ApprovalStatusApproved
	t.ApprovedBy = &approverID
	t.ApprovedAt = &now
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTransactionApprovedEvent(t))

	return nil
}

// Reject rejects a pending transaction with a reason
func (t *Transaction) Reject(approverID uuid.UUID, reason string) error {
	if !t.ApprovalStatus.CanReject() {
		return shared.NewDomainError("INVALID_STATE", "Only pending transactions can be rejected")
	}
	if approverID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER_ID", "Approver cannot be empty")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason cannot be empty")
	}

	now := time.Now()
	t.ApprovalStatus = ApprovalStatusRejected
	t.ApprovedBy = &approverID
	t.ApprovedAt = &now
	t.RejectedReason = reason
	t.UpdatedAt = now
	t.IncrementVersion()

	return nil
}

// IsApproved returns true if the transaction counts toward totals
func (t *Transaction) IsApproved() bool {
	return t.ApprovalStatus == ApprovalStatusApproved
}

// IsPending returns true if the transaction awaits approval
func (t *Transaction) IsPending() bool {
	return t.ApprovalStatus == ApprovalStatusPending
}
