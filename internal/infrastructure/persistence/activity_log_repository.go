package persistence

import (
	"context"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormActivityLogRepository implements ActivityLogRepository using GORM.
// Activity logs are append-only; there is no update or delete.
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewGormActivityLogRepository creates a new GormActivityLogRepository
func NewGormActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// Save appends an activity log entry
func (r *GormActivityLogRepository) Save(ctx context.Context, entry *engagement.ActivityLog) error {
	model := models.ActivityLogModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindAllForEstate returns activity log entries for an estate, newest first
func (r *GormActivityLogRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]engagement.ActivityLog, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.ActivityLogModel{}).
		Where("estate_id = ?", estateID)

	for key, value := range filter.Filters {
		switch key {
		case "action":
			base = base.Where("action = ?", value)
		case "entity_type":
			base = base.Where("entity_type = ?", value)
		case "actor_id":
			base = base.Where("actor_id = ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ActivityLogModel
	query := base.Order("created_at DESC")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]engagement.ActivityLog, 0, len(rows))
	for i := range rows {
		entries = append(entries, *rows[i].ToDomain())
	}
	return entries, total, nil
}

// Ensure GormActivityLogRepository implements ActivityLogRepository
var _ engagement.ActivityLogRepository = (*GormActivityLogRepository)(nil)
