package document

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Tag is a label that can be attached to documents within an estate
type Tag struct {
	shared.BaseEntity
	EstateID uuid.UUID
	Name     string
}

// NewTag creates a new document tag
func NewTag(estateID uuid.UUID, name string) (*Tag, error) {
	if estateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ESTATE_ID", "Estate ID cannot be empty")
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, shared.NewDomainError("INVALID_TAG", "Tag name cannot be empty")
	}
	if len(name) > 50 {
		return nil, shared.NewDomainError("INVALID_TAG", "Tag name cannot exceed 50 characters")
	}

	return &Tag{
		BaseEntity: shared.NewBaseEntity(),
		EstateID:   estateID,
		Name:       name,
	}, nil
}

// Rename changes the tag name
func (t *Tag) Rename(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return shared.NewDomainError("INVALID_TAG", "Tag name cannot be empty")
	}
	if len(name) > 50 {
		return shared.NewDomainError("INVALID_TAG", "Tag name cannot exceed 50 characters")
	}

	t.Name = name
	t.UpdatedAt = time.Now()

	return nil
}
