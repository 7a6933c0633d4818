package persistence

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/document"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Save creates or updates a document metadata row
func (r *GormDocumentRepository) Save(ctx context.Context, doc *document.Document) error {
	model := models.DocumentModelFromDomain(doc)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a document row and its tag links
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", id).
		Delete(&models.DocumentTagModel{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&models.DocumentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForEstate finds a document by ID within an estate
func (r *GormDocumentRepository) FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*document.Document, error) {
	var model models.DocumentModel
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

// FindAllForEstate returns documents for an estate
func (r *GormDocumentRepository) FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]document.Document, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.DocumentModel{}).
		Where("estate_id = ?", estateID)

	base = applySearch(base, filter.Search, "title", "file_name")
	if status, ok := filter.Filters["status"]; ok {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.DocumentModel
	query := applyOrder(base, filter, DocumentSortFields, "created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	documents := make([]document.Document, 0, len(rows))
	for i := range rows {
		documents = append(documents, *rows[i].ToDomain())
	}
	return documents, total, nil
}

// FindByTagForEstate returns documents within an estate carrying the given tag
func (r *GormDocumentRepository) FindByTagForEstate(ctx context.Context, estateID, tagID uuid.UUID, filter shared.Filter) ([]document.Document, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.DocumentModel{}).
		Joins("JOIN document_tag_relations ON document_tag_relations.document_id = documents.id").
		Where("documents.estate_id = ? AND document_tag_relations.tag_id = ?", estateID, tagID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.DocumentModel
	query := applyOrder(base, filter, DocumentSortFields, "documents.created_at")
	query = applyPagination(query, filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	documents := make([]document.Document, 0, len(rows))
	for i := range rows {
		documents = append(documents, *rows[i].ToDomain())
	}
	return documents, total, nil
}

// Ensure GormDocumentRepository implements DocumentRepository
var _ document.DocumentRepository = (*GormDocumentRepository)(nil)
