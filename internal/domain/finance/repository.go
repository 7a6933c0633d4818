package finance

import (
	"context"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines the interface for transaction persistence
type TransactionRepository interface {
	Save(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Transaction, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]Transaction, int64, error)
	// SumByDirectionAndStatus sums amounts for a direction/status pair
	SumByDirectionAndStatus(ctx context.Context, estateID uuid.UUID, direction TransactionDirection, status ApprovalStatus) (decimal.Decimal, error)
	// SumByCategoryAndStatus sums amounts per category for a status,
	// optionally restricted to the given directions
	SumByCategoryAndStatus(ctx context.Context, estateID uuid.UUID, status ApprovalStatus, directions ...TransactionDirection) (map[string]decimal.Decimal, error)
	// CountUnknownDirection counts rows whose direction is not a known value
	CountUnknownDirection(ctx context.Context, estateID uuid.UUID) (int64, error)
}

// AssetRepository defines the interface for asset persistence
type AssetRepository interface {
	Save(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Asset, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]Asset, int64, error)
	SumValueForEstate(ctx context.Context, estateID uuid.UUID) (decimal.Decimal, error)
}

// LiabilityRepository defines the interface for liability persistence
type LiabilityRepository interface {
	Save(ctx context.Context, liability *Liability) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Liability, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]Liability, int64, error)
	SumValueForEstate(ctx context.Context, estateID uuid.UUID) (decimal.Decimal, error)
}
