package persistence

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEstateRepository implements EstateRepository using GORM
type GormEstateRepository struct {
	db *gorm.DB
}

// NewGormEstateRepository creates a new GormEstateRepository
func NewGormEstateRepository(db *gorm.DB) *GormEstateRepository {
	return &GormEstateRepository{db: db}
}

// Save creates or updates an estate
func (r *GormEstateRepository) Save(ctx context.Context, e *estate.Estate) error {
	model := models.EstateModelFromDomain(e)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an estate by ID
func (r *GormEstateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EstateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an estate by ID
func (r *GormEstateRepository) FindByID(ctx context.Context, id uuid.UUID) (*estate.Estate, error) {
	var model models.EstateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForUser returns estates the user is a member of
func (r *GormEstateRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]estate.Estate, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.EstateModel{}).
		Joins("JOIN estate_members ON estate_members.estate_id = estates.id").
		Where("estate_members.user_id = ?", userID)

	base = applySearch(base, filter.Search, "estates.name", "estates.deceased_name")
	if status, ok := filter.Filters["status"]; ok {
		base = base.Where("estates.status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.EstateModel
	query := applyOrder(base, filter, EstateSortFields, "estates.created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	estates := make([]estate.Estate, 0, len(rows))
	for i := range rows {
		estates = append(estates, *rows[i].ToDomain())
	}
	return estates, total, nil
}

// Ensure GormEstateRepository implements EstateRepository
var _ estate.EstateRepository = (*GormEstateRepository)(nil)
