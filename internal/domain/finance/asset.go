package finance

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetCategory classifies an estate asset
type AssetCategory string

const (
	AssetCategoryProperty AssetCategory = "property"
	AssetCategoryVehicle  AssetCategory = "vehicle"
	AssetCategoryBank     AssetCategory = "bank_account"
	AssetCategorySecurity AssetCategory = "security"
	AssetCategoryValuable AssetCategory = "valuable"
	AssetCategoryOther    AssetCategory = "other"
)

// IsValid checks if the category is a known value
func (c AssetCategory) IsValid() bool {
	switch c {
	case AssetCategoryProperty, AssetCategoryVehicle, AssetCategoryBank,
		AssetCategorySecurity, AssetCategoryValuable, AssetCategoryOther:
		return true
	}
	return false
}

// Asset represents something of value the estate owns
type Asset struct {
	shared.EstateAggregateRoot
	Name        string
	Category    AssetCategory
	Description string
	Value       decimal.Decimal
	Currency    valueobject.Currency
}

// NewAsset creates a new asset. Value must be non-negative.
func NewAsset(estateID uuid.UUID, name string, category AssetCategory, description string, value decimal.Decimal, createdBy uuid.UUID) (*Asset, error) {
	if err := validateAssetFields(name, category, value); err != nil {
		return nil, err
	}

	return &Asset{
		EstateAggregateRoot: shared.NewEstateAggregateRootWithCreator(estateID, createdBy),
		Name:                strings.TrimSpace(name),
		Category:            category,
		Description:         strings.TrimSpace(description),
		Value:               value,
		Currency:            valueobject.NOK,
	}, nil
}

// Update updates the asset's editable fields
func (a *Asset) Update(name string, category AssetCategory, description string, value decimal.Decimal) error {
	if err := validateAssetFields(name, category, value); err != nil {
		return err
	}

	a.Name = strings.TrimSpace(name)
	a.Category = category
	a.Description = strings.TrimSpace(description)
	a.Value = value
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

func validateAssetFields(name string, category AssetCategory, value decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Asset name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Asset name cannot exceed 200 characters")
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown asset category")
	}
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Asset value cannot be negative")
	}
	return nil
}
