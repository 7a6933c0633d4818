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

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, project *estate.Project) error {
	model := models.ProjectModelFromDomain(project)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a project by ID
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds a project by ID within an estate
func (r *GormProjectRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*estate.Project, error) {
	var model models.ProjectModel
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

// FindAllForEstate returns projects for an estate
func (r *GormProjectRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]estate.Project, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("estate_id = ?", estateID)

	base = applySearch(base, filter.Search, "name", "description")
	if status, ok := filter.Filters["status"]; ok {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ProjectModel
	query := applyOrder(base, filter, CommonSortFields, "created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]estate.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, *rows[i].ToDomain())
	}
	return projects, total, nil
}

// Ensure GormProjectRepository implements ProjectRepository
var _ estate.ProjectRepository = (*GormProjectRepository)(nil)
