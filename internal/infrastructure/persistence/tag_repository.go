package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/arvebo/backend/internal/domain/document"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTagRepository implements TagRepository using GORM
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GormTagRepository
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// Save creates or updates a tag
func (r *GormTagRepository) Save(ctx context.Context, tag *document.Tag) error {
	model := models.TagModelFromDomain(tag)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a tag and its document links
func (r *GormTagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("tag_id = ?", id).
		Delete(&models.DocumentTagModel{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&models.TagModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds a tag by ID within an estate
func (r *GormTagRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*document.Tag, error) {
	var model models.TagModel
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

// FindByNameForEstate finds a tag by its normalized name within an estate
func (r *GormTagRepository) FindByNameForEstate(ctx context.Context, estateID uuid.UUID, name string) (*document.Tag, error) {
	var model models.TagModel
	if err := r.db.WithContext(ctx).
		Where("estate_id = ? AND name = ?", estateID, strings.ToLower(strings.TrimSpace(name))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForEstate returns all tags of an estate
func (r *GormTagRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID) ([]document.Tag, error) {
	var rows []models.TagModel
	if err := r.db.WithContext(ctx).
		Where("estate_id = ?", estateID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	tags := make([]document.Tag, 0, len(rows))
	for i := range rows {
		tags = append(tags, *rows[i].ToDomain())
	}
	return tags, nil
}

// AttachToDocument links a tag to a document. Attaching twice is a no-op.
func (r *GormTagRepository) AttachToDocument(ctx context.Context, documentID, tagID uuid.UUID) error {
	link := models.DocumentTagModel{DocumentID: documentID, TagID: tagID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

// DetachFromDocument removes the link between a tag and a document
func (r *GormTagRepository) DetachFromDocument(ctx context.Context, documentID, tagID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("document_id = ? AND tag_id = ?", documentID, tagID).
		Delete(&models.DocumentTagModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByDocument returns all tags attached to a document
func (r *GormTagRepository) FindByDocument(ctx context.Context, documentID uuid.UUID) ([]document.Tag, error) {
	var rows []models.TagModel
	if err := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Joins("JOIN document_tag_relations ON document_tag_relations.tag_id = document_tags.id").
		Where("document_tag_relations.document_id = ?", documentID).
		Order("document_tags.name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	tags := make([]document.Tag, 0, len(rows))
	for i := range rows {
		tags = append(tags, *rows[i].ToDomain())
	}
	return tags, nil
}

// Ensure GormTagRepository implements TagRepository
var _ document.TagRepository = (*GormTagRepository)(nil)
