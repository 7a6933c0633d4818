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

// GormBlogPostRepository implements BlogPostRepository using GORM
type GormBlogPostRepository struct {
	db *gorm.DB
}

// NewGormBlogPostRepository creates a new GormBlogPostRepository
func NewGormBlogPostRepository(db *gorm.DB) *GormBlogPostRepository {
	return &GormBlogPostRepository{db: db}
}

// Save creates or updates a blog post
func (r *GormBlogPostRepository) Save(ctx context.Context, post *engagement.BlogPost) error {
	model := models.BlogPostModelFromDomain(post)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a blog post by ID
func (r *GormBlogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BlogPostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a blog post by ID
func (r *GormBlogPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*engagement.BlogPost, error) {
	var model models.BlogPostModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a blog post by its URL slug
func (r *GormBlogPostRepository) FindBySlug(ctx context.Context, slug string) (*engagement.BlogPost, error) {
	var model models.BlogPostModel
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all blog posts
func (r *GormBlogPostRepository) FindAll(ctx context.Context, filter shared.Filter) ([]engagement.BlogPost, int64, error) {
	return r.findPage(r.db.WithContext(ctx).Model(&models.BlogPostModel{}), filter)
}

// FindPublished returns published blog posts only
func (r *GormBlogPostRepository) FindPublished(ctx context.Context, filter shared.Filter) ([]engagement.BlogPost, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.BlogPostModel{}).
		Where("published = ?", true)
	return r.findPage(base, filter)
}

func (r *GormBlogPostRepository) findPage(base *gorm.DB, filter shared.Filter) ([]engagement.BlogPost, int64, error) {
	base = applySearch(base, filter.Search, "title", "body")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.BlogPostModel
	query := applyOrder(base, filter, CommonSortFields, "created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]engagement.BlogPost, 0, len(rows))
	for i := range rows {
		posts = append(posts, *rows[i].ToDomain())
	}
	return posts, total, nil
}

// Ensure GormBlogPostRepository implements BlogPostRepository
var _ engagement.BlogPostRepository = (*GormBlogPostRepository)(nil)
