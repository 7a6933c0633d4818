package models

import (
	"github.com/arvebo/backend/internal/domain/document"
	"github.com/google/uuid"
)

// DocumentModel is the persistence model for document metadata.
type DocumentModel struct {
	EstateAggregateModel
	Title       string                  `gorm:"type:varchar(200);not null"`
	FileName    string                  `gorm:"type:varchar(255);not null"`
	ContentType string                  `gorm:"type:varchar(100);not null"`
	SizeBytes   int64                   `gorm:"not null"`
	StorageKey  string                  `gorm:"type:varchar(500);not null"`
	Status      document.DocumentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	SortOrder   int                     `gorm:"not null;default:0"`
	UploadedBy  uuid.UUID               `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts the persistence model to a domain Document
func (m *DocumentModel) ToDomain() *document.Document {
	return &document.Document{
		EstateAggregateRoot: m.ToDomainEstateAggregateRoot(),
		Title:               m.Title,
		FileName:            m.FileName,
		ContentType:         m.ContentType,
		SizeBytes:           m.SizeBytes,
		StorageKey:          m.StorageKey,
		Status:              m.Status,
		SortOrder:           m.SortOrder,
		UploadedBy:          m.UploadedBy,
	}
}

// DocumentModelFromDomain builds a persistence model from a domain Document
func DocumentModelFromDomain(d *document.Document) *DocumentModel {
	m := &DocumentModel{
		Title:       d.Title,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		StorageKey:  d.StorageKey,
		Status:      d.Status,
		SortOrder:   d.SortOrder,
		UploadedBy:  d.UploadedBy,
	}
	m.FromDomainEstateAggregateRoot(d.EstateAggregateRoot)
	return m
}

// TagModel is the persistence model for document tags.
type TagModel struct {
	BaseModel
	EstateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_estate_name"`
	Name     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_tags_estate_name"`
}

// TableName returns the table name for GORM
func (TagModel) TableName() string {
	return "document_tags"
}

// ToDomain converts the persistence model to a domain Tag
func (m *TagModel) ToDomain() *document.Tag {
	return &document.Tag{
		BaseEntity: m.BaseModel.ToDomain(),
		EstateID:   m.EstateID,
		Name:       m.Name,
	}
}

// TagModelFromDomain builds a persistence model from a domain Tag
func TagModelFromDomain(t *document.Tag) *TagModel {
	m := &TagModel{
		EstateID: t.EstateID,
		Name:     t.Name,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// DocumentTagModel is the join table between documents and tags.
type DocumentTagModel struct {
	DocumentID uuid.UUID `gorm:"type:uuid;primary_key"`
	TagID      uuid.UUID `gorm:"type:uuid;primary_key"`
}

// TableName returns the table name for GORM
func (DocumentTagModel) TableName() string {
	return "document_tag_relations"
}
