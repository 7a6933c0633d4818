package models

import (
	"time"

	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionModel is the persistence model for financial transactions.
type TransactionModel struct {
	EstateAggregateModel
	Direction      finance.TransactionDirection `gorm:"type:varchar(20);not null;index"`
	Category       string                       `gorm:"type:varchar(100)"`
	Description    string                       `gorm:"type:text"`
	Amount         decimal.Decimal              `gorm:"type:decimal(18,2);not null"`
	Currency       string                       `gorm:"type:varchar(3);not null;default:'NOK'"`
	OccurredAt     time.Time                    `gorm:"not null;index"`
	ApprovalStatus finance.ApprovalStatus       `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApprovedBy     *uuid.UUID                   `gorm:"type:uuid"`
	ApprovedAt     *time.Time
	RejectedReason string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "finance_transactions"
}

// ToDomain converts the persistence model to a domain Transaction
func (m *TransactionModel) ToDomain() *finance.Transaction {
	return &finance.Transaction{
		EstateAggregateRoot: m.ToDomainEstateAggregateRoot(),
		Direction:           m.Direction,
		Category:            m.Category,
		Description:         m.Description,
		Amount:              m.Amount,
		Currency:            valueobject.Currency(m.Currency),
		OccurredAt:          m.OccurredAt,
		ApprovalStatus:      m.ApprovalStatus,
		ApprovedBy:          m.ApprovedBy,
		ApprovedAt:          m.ApprovedAt,
		RejectedReason:      m.RejectedReason,
	}
}

// TransactionModelFromDomain builds a persistence model from a domain Transaction
func TransactionModelFromDomain(t *finance.Transaction) *TransactionModel {
	m := &TransactionModel{
		Direction:      t.Direction,
		Category:       t.Category,
		Description:    t.Description,
		Amount:         t.Amount,
		Currency:       string(t.Currency),
		OccurredAt:     t.OccurredAt,
		ApprovalStatus: t.ApprovalStatus,
		ApprovedBy:     t.ApprovedBy,
		ApprovedAt:     t.ApprovedAt,
		RejectedReason: t.RejectedReason,
	}
	m.FromDomainEstateAggregateRoot(t.EstateAggregateRoot)
	return m
}

// AssetModel is the persistence model for estate assets.
type AssetModel struct {
	EstateAggregateModel
	Name        string                `gorm:"type:varchar(200);not null"`
	Category    finance.AssetCategory `gorm:"type:varchar(30);not null;index"`
	Description string                `gorm:"type:text"`
	Value       decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	Currency    string                `gorm:"type:varchar(3);not null;default:'NOK'"`
}

// TableName returns the table name for GORM
func (AssetModel) TableName() string {
	return "assets"
}

// ToDomain converts the persistence model to a domain Asset
func (m *AssetModel) ToDomain() *finance.Asset {
	return &finance.Asset{
		EstateAggregateRoot: m.ToDomainEstateAggregateRoot(),
		Name:                m.Name,
		Category:            m.Category,
		Description:         m.Description,
		Value:               m.Value,
		Currency:            valueobject.Currency(m.Currency),
	}
}

// AssetModelFromDomain builds a persistence model from a domain Asset
func AssetModelFromDomain(a *finance.Asset) *AssetModel {
	m := &AssetModel{
		Name:        a.Name,
		Category:    a.Category,
		Description: a.Description,
		Value:       a.Value,
		Currency:    string(a.Currency),
	}
	m.FromDomainEstateAggregateRoot(a.EstateAggregateRoot)
	return m
}

// LiabilityModel is the persistence model for estate liabilities.
type LiabilityModel struct {
	EstateAggregateModel
	Name        string                    `gorm:"type:varchar(200);not null"`
	Creditor    string                    `gorm:"type:varchar(200)"`
	Category    finance.LiabilityCategory `gorm:"type:varchar(30);not null;index"`
	Description string                    `gorm:"type:text"`
	Value       decimal.Decimal           `gorm:"type:decimal(18,2);not null"`
	Currency    string                    `gorm:"type:varchar(3);not null;default:'NOK'"`
	DueDate     *time.Time                `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (LiabilityModel) TableName() string {
	return "liabilities"
}

// ToDomain converts the persistence model to a domain Liability
func (m *LiabilityModel) ToDomain() *finance.Liability {
	return &finance.Liability{
		EstateAggregateRoot: m.ToDomainEstateAggregateRoot(),
		Name:                m.Name,
		Creditor:            m.Creditor,
		Category:            m.Category,
		Description:         m.Description,
		Value:               m.Value,
		Currency:            valueobject.Currency(m.Currency),
		DueDate:             m.DueDate,
	}
}

// LiabilityModelFromDomain builds a persistence model from a domain Liability
func LiabilityModelFromDomain(l *finance.Liability) *LiabilityModel {
	m := &LiabilityModel{
		Name:        l.Name,
		Creditor:    l.Creditor,
		Category:    l.Category,
		Description: l.Description,
		Value:       l.Value,
		Currency:    string(l.Currency),
		DueDate:     l.DueDate,
	}
	m.FromDomainEstateAggregateRoot(l.EstateAggregateRoot)
	return m
}
