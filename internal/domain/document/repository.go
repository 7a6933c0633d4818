package document

import (
	"context"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentRepository defines the interface for document metadata persistence
type DocumentRepository interface {
	Save(ctx context.Context, document *Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Document, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]Document, int64, error)
	FindByTagForEstate(ctx context.Context, estateID, tagID uuid.UUID, filter shared.Filter) ([]Document, int64, error)
}

// TagRepository defines the interface for tag persistence, including the
// relation rows that attach tags to documents
type TagRepository interface {
	Save(ctx context.Context, tag *Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Tag, error)
	FindByNameForEstate(ctx context.Context, estateID uuid.UUID, name string) (*Tag, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID) ([]Tag, error)
	AttachToDocument(ctx context.Context, documentID, tagID uuid.UUID) error
	DetachFromDocument(ctx context.Context, documentID, tagID uuid.UUID) error
	FindByDocument(ctx context.Context, documentID uuid.UUID) ([]Tag, error)
}
