package persistence

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMessageRepository implements MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Save creates or updates a message
func (r *GormMessageRepository) Save(ctx context.Context, message *engagement.Message) error {
	model := models.MessageModelFromDomain(message)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a message by ID
func (r *GormMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MessageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds a message by ID within an estate
func (r *GormMessageRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*engagement.Message, error) {
	var model models.MessageModel
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

// FindAllForEstate returns messages for an estate, newest first by default
func (r *GormMessageRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]engagement.Message, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.MessageModel{}).
		Where("estate_id = ?", estateID)

	base = applySearch(base, filter.Search, "body")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.MessageModel
	query := applyOrder(base, filter, CommonSortFields, "created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	messages := make([]engagement.Message, 0, len(rows))
	for i := range rows {
		messages = append(messages, *rows[i].ToDomain())
	}
	return messages, total, nil
}

// Ensure GormMessageRepository implements MessageRepository
var _ engagement.MessageRepository = (*GormMessageRepository)(nil)
