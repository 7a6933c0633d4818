package finance

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiabilityCategory classifies an estate liability
type LiabilityCategory string

const (
	LiabilityCategoryMortgage LiabilityCategory = "mortgage"
	LiabilityCategoryLoan     LiabilityCategory = "loan"
	LiabilityCategoryTax      LiabilityCategory = "tax"
	LiabilityCategoryInvoice  LiabilityCategory = "invoice"
	LiabilityCategoryOther    LiabilityCategory = "other"
)

// IsValid checks if the category is a known value
func (c LiabilityCategory) IsValid() bool {
	switch c {
	case LiabilityCategoryMortgage, LiabilityCategoryLoan, LiabilityCategoryTax,
		LiabilityCategoryInvoice, LiabilityCategoryOther:
		return true
	}
	return false
}

// Liability represents a debt or obligation of the estate
type Liability struct {
	shared.EstateAggregateRoot
	Name        string
	Creditor    string
	Category    LiabilityCategory
	Description string
	Value       decimal.Decimal
	Currency    valueobject.Currency
	DueDate     *time.Time
}

// NewLiability creates a new liability. Value must be non-negative.
func NewLiability(estateID uuid.UUID, name, creditor string, category LiabilityCategory, description string, value decimal.Decimal, dueDate *time.Time, createdBy uuid.UUID) (*Liability, error) {
	if err := validateLiabilityFields(name, category, value); err != nil {
		return nil, err
	}

	return &Liability{
		EstateAggregateRoot: shared.NewEstateAggregateRootWithCreator(estateID, createdBy),
		Name:                strings.TrimSpace(name),
		Creditor:            strings.TrimSpace(creditor),
		Category:            category,
		Description:         strings.TrimSpace(description),
		Value:               value,
		Currency:            valueobject.NOK,
		DueDate:             dueDate,
	}, nil
}

// Update updates the liability's editable fields
func (l *Liability) Update(name, creditor string, category LiabilityCategory, description string, value decimal.Decimal, dueDate *time.Time) error {
	if err := validateLiabilityFields(name, category, value); err != nil {
		return err
	}

	l.Name = strings.TrimSpace(name)
	l.Creditor = strings.TrimSpace(creditor)
	l.Category = category
	l.Description = strings.TrimSpace(description)
	l.Value = value
	l.DueDate = dueDate
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

func validateLiabilityFields(name string, category LiabilityCategory, value decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Liability name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Liability name cannot exceed 200 characters")
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown liability category")
	}
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Liability value cannot be negative")
	}
	return nil
}
