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

// GormLiabilityRepository implements LiabilityRepository using GORM
type GormLiabilityRepository struct {
	db *gorm.DB
}

// NewGormLiabilityRepository creates a new GormLiabilityRepository
func NewGormLiabilityRepository(db *gorm.DB) *GormLiabilityRepository {
	return &GormLiabilityRepository{db: db}
}

// Save creates or updates a liability
func (r *GormLiabilityRepository) Save(ctx context.Context, liability *finance.Liability) error {
	model := models.LiabilityModelFromDomain(liability)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a liability by ID
func (r *GormLiabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LiabilityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds a liability by ID within an estate
func (r *GormLiabilityRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*finance.Liability, error) {
	var model models.LiabilityModel
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

// FindAllForEstate returns liabilities for an estate
func (r *GormLiabilityRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]finance.Liability, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.LiabilityModel{}).
		Where("estate_id = ?", estateID)

	base = applySearch(base, filter.Search, "name", "creditor", "description")
	if category, ok := filter.Filters["category"]; ok {
		base = base.Where("category = ?", category)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.LiabilityModel
	query := applyOrder(base, filter, LiabilitySortFields, "created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	liabilities := make([]finance.Liability, 0, len(rows))
	for i := range rows {
		liabilities = append(liabilities, *rows[i].ToDomain())
	}
	return liabilities, total, nil
}

// SumValueForEstate sums the recorded value of all liabilities in an estate
func (r *GormLiabilityRepository) SumValueForEstate(ctx context.Context, estateID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.LiabilityModel{}).
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

// Ensure GormLiabilityRepository implements LiabilityRepository
var _ finance.LiabilityRepository = (*GormLiabilityRepository)(nil)
