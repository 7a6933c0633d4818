package finance

import (
	"time"

	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionInput contains input for recording a transaction.
// Amount is the raw string from the request, parsed and validated here.
type CreateTransactionInput struct {
	EstateID    uuid.UUID
	Direction   string
	Category    string
	Description string
	Amount      string
	OccurredAt  time.Time
	CreatedBy   uuid.UUID
}

// UpdateTransactionInput contains input for editing a pending transaction
type UpdateTransactionInput struct {
	EstateID      uuid.UUID
	TransactionID uuid.UUID
	Direction     string
	Category      string
	Description   string
	Amount        string
	OccurredAt    time.Time
}

// ApproveTransactionInput contains input for approving a transaction
type ApproveTransactionInput struct {
	EstateID      uuid.UUID
	TransactionID uuid.UUID
	ApproverID    uuid.UUID
}

// RejectTransactionInput contains input for rejecting a transaction
type RejectTransactionInput struct {
	EstateID      uuid.UUID
	TransactionID uuid.UUID
	ApproverID    uuid.UUID
	Reason        string
}

// TransactionInfo is the transaction representation returned to callers
type TransactionInfo struct {
	ID             uuid.UUID
	EstateID       uuid.UUID
	Direction      string
	Category       string
	Description    string
	Amount         decimal.Decimal
	Currency       string
	OccurredAt     time.Time
	ApprovalStatus string
	ApprovedBy     *uuid.UUID
	ApprovedAt     *time.Time
	RejectedReason string
	CreatedBy      *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TransactionListResult is a page of transactions
type TransactionListResult struct {
	Transactions []TransactionInfo
	Total        int64
}

// CreateAssetInput contains input for registering an asset
type CreateAssetInput struct {
	EstateID    uuid.UUID
	Name        string
	Category    string
	Description string
	Value       string
	CreatedBy   uuid.UUID
}

// UpdateAssetInput contains input for updating an asset
type UpdateAssetInput struct {
	EstateID    uuid.UUID
	AssetID     uuid.UUID
	Name        string
	Category    string
	Description string
	Value       string
}

// AssetInfo is the asset representation returned to callers
type AssetInfo struct {
	ID          uuid.UUID
	EstateID    uuid.UUID
	Name        string
	Category    string
	Description string
	Value       decimal.Decimal
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssetListResult is a page of assets
type AssetListResult struct {
	Assets []AssetInfo
	Total  int64
}

// CreateLiabilityInput contains input for registering a liability
type CreateLiabilityInput struct {
	EstateID    uuid.UUID
	Name        string
	Creditor    string
	Category    string
	Description string
	Value       string
	DueDate     *time.Time
	CreatedBy   uuid.UUID
}

// UpdateLiabilityInput contains input for updating a liability
type UpdateLiabilityInput struct {
	EstateID    uuid.UUID
	LiabilityID uuid.UUID
	Name        string
	Creditor    string
	Category    string
	Description string
	Value       string
	DueDate     *time.Time
}

// LiabilityInfo is the liability representation returned to callers
type LiabilityInfo struct {
	ID          uuid.UUID
	EstateID    uuid.UUID
	Name        string
	Creditor    string
	Category    string
	Description string
	Value       decimal.Decimal
	Currency    string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LiabilityListResult is a page of liabilities
type LiabilityListResult struct {
	Liabilities []LiabilityInfo
	Total       int64
}

// NetWorthResult aggregates asset and liability values for an estate
type NetWorthResult struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
}

// parseAmount parses and validates a decimal amount from its string form
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_AMOUNT", "Amount must be a valid decimal number")
	}
	return amount, nil
}

func transactionInfoFromDomain(t *finance.Transaction) TransactionInfo {
	return TransactionInfo{
		ID:             t.ID,
		EstateID:       t.EstateID,
		Direction:      string(t.Direction),
		Category:       t.Category,
		Description:    t.Description,
		Amount:         t.Amount,
		Currency:       string(t.Currency),
		OccurredAt:     t.OccurredAt,
		ApprovalStatus: string(t.ApprovalStatus),
		ApprovedBy:     t.ApprovedBy,
		ApprovedAt:     t.ApprovedAt,
		RejectedReason: t.RejectedReason,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func assetInfoFromDomain(a *finance.Asset) AssetInfo {
	return AssetInfo{
		ID:          a.ID,
		EstateID:    a.EstateID,
		Name:        a.Name,
		Category:    string(a.Category),
		Description: a.Description,
		Value:       a.Value,
		Currency:    string(a.Currency),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func liabilityInfoFromDomain(l *finance.Liability) LiabilityInfo {
	return LiabilityInfo{
		ID:          l.ID,
		EstateID:    l.EstateID,
		Name:        l.Name,
		Creditor:    l.Creditor,
		Category:    string(l.Category),
		Description: l.Description,
		Value:       l.Value,
		Currency:    string(l.Currency),
		DueDate:     l.DueDate,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
