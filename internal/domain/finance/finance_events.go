package finance

import (
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Transaction
const AggregateTypeTransaction = "Transaction"

// Finance domain event types
const (
	EventTypeTransactionApproved = "TransactionApproved"
)

// TransactionApprovedEvent is published when a transaction is approved
type TransactionApprovedEvent struct {
	shared.BaseDomainEvent
	Direction  TransactionDirection `json:"direction"`
	Amount     decimal.Decimal      `json:"amount"`
	ApprovedBy uuid.UUID            `json:"approved_by"`
	ApprovedAt time.Time            `json:"approved_at"`
}

// NewTransactionApprovedEvent creates a new TransactionApprovedEvent
func NewTransactionApprovedEvent(t *Transaction) *TransactionApprovedEvent {
	ev := &TransactionApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionApproved, AggregateTypeTransaction, t.ID, t.EstateID),
		Direction:       t.Direction,
		Amount:          t.Amount,
	}
	if t.ApprovedBy != nil {
		ev.ApprovedBy = *t.ApprovedBy
	}
	if t.ApprovedAt != nil {
		ev.ApprovedAt = *t.ApprovedAt
	}
	return ev
}
