package persistence

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/finance"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormAssetRepository implements AssetRepository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// Save creates or updates an asset
func (r *GormAssetRepository) Save(ctx context.Context, asset *finance.Asset) error {
	model := models.AssetModelFromDomain(asset)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an asset by ID
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AssetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds an asset by ID within an estate
func (r *GormAssetRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*finance.Asset, error) {
	var model models.AssetModel
	if err := r.db.WithContext(ctx).
		Where("estate_id = ? AND id = ?", estateID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForEstate returns assets for an estate
func (r *GormAssetRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]finance.Asset, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.AssetModel{}).
		Where("estate_id = ?", estateID)

	base = applySearch(base, filter.Search, "name", "description")
	if category, ok := filter.Filters["category"]; ok {
		base = base.Where("category = ?", category)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.AssetModel
	query := applyOrder(base, filter, AssetSortFields, "created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	assets := make([]finance.Asset, 0, len(rows))
	for i := range rows {
		assets = append(assets, *rows[i].ToDomain())
	}
	return assets, total, nil
}

// SumValueForEstate sums the recorded value of all assets in an estate
func (r *GormAssetRepository) SumValueForEstate(ctx context.Context, estateID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.AssetModel{}).
		Select("COALESCE(SUM(value), 0)").
		Where("estate_id = ?", estateID).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// Ensure GormAssetRepository implements AssetRepository
var _ finance.AssetRepository = (*GormAssetRepository)(nil)
