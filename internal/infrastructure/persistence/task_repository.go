package persistence

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/domain/task"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Save creates or updates a task
func (r *GormTaskRepository) Save(ctx context.Context, t *task.Task) error {
	model := models.TaskModelFromDomain(t)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a task by ID
func (r *GormTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds a task by ID within an estate
func (r *GormTaskRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*task.Task, error) {
	var model models.TaskModel
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

// FindAllForEstate returns tasks for an estate
func (r *GormTaskRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]task.Task, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("estate_id = ?", estateID)
	base = r.applyTaskFilters(base, filter)

	return r.findPage(base, filter)
}

// FindByAssignee returns tasks within an estate assigned to a user
func (r *GormTaskRepository) FindByAssignee(ctx context.Context, estateID, assigneeID uuid.UUID, filter shared.Filter) ([]task.Task, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("estate_id = ? AND assignee_id = ?", estateID, assigneeID)
	base = r.applyTaskFilters(base, filter)

	return r.findPage(base, filter)
}

func (r *GormTaskRepository) applyTaskFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "title", "description")
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		}
	}
	return query
}

func (r *GormTaskRepository) findPage(base *gorm.DB, filter shared.Filter) ([]task.Task, int64, error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.TaskModel
	query := applyOrder(base, filter, TaskSortFields, "created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	tasks := make([]task.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, *rows[i].ToDomain())
	}
	return tasks, total, nil
}

// Ensure GormTaskRepository implements TaskRepository
var _ task.TaskRepository = (*GormTaskRepository)(nil)
