package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentStatus represents the upload state of a document
type DocumentStatus string

const (
	DocumentStatusPending   DocumentStatus = "pending"   // Upload URL issued, object not confirmed
	DocumentStatusAvailable DocumentStatus = "available" // Object confirmed present in storage
)

// MaxDocumentSize is the largest accepted upload (50 MB)
const MaxDocumentSize = 50 * 1024 * 1024

// Allowed content types for document uploads
var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/png":          true,
	"image/webp":         true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// IsAllowedContentType reports whether the content type may be uploaded
func IsAllowedContentType(contentType string) bool {
	return allowedContentTypes[contentType]
}

// Document represents an uploaded file's metadata. The file content lives
// in object storage under StorageKey.
type Document struct {
	shared.EstateAggregateRoot
	Title       string
	FileName    string
	ContentType string
	SizeBytes   int64
	StorageKey  string
	Status      DocumentStatus
	SortOrder   int
	UploadedBy  uuid.UUID
}

// NewDocument creates a pending document record and derives its storage key
func NewDocument(estateID uuid.UUID, title, fileName, contentType string, sizeBytes int64, uploadedBy uuid.UUID) (*Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Document title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Document title cannot exceed 200 characters")
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if !IsAllowedContentType(contentType) {
		return nil, shared.NewDomainError("INVALID_CONTENT_TYPE", "Content type is not allowed")
	}
	if sizeBytes <= 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "File size must be positive")
	}
	if sizeBytes > MaxDocumentSize {
		return nil, shared.NewDomainError("INVALID_SIZE", "File exceeds the maximum allowed size")
	}
	if uploadedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Uploader cannot be empty")
	}

	d := &Document{
		EstateAggregateRoot: shared.NewEstateAggregateRootWithCreator(estateID, uploadedBy),
		Title:               title,
		FileName:            fileName,
		ContentType:         contentType,
		SizeBytes:           sizeBytes,
		Status:              DocumentStatusPending,
		UploadedBy:          uploadedBy,
	}
	d.StorageKey = fmt.Sprintf("estates/%s/documents/%s/%s", estateID, d.ID, fileName)

	return d, nil
}

// Confirm marks the document as available after the object was verified in storage
func (d *Document) Confirm() error {
	if d.Status != DocumentStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Document is not pending confirmation")
	}

	d.Status = DocumentStatusAvailable
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return nil
}

// Rename updates the document title
func (d *Document) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Document title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Document title cannot exceed 200 characters")
	}

	d.Title = title
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return nil
}

// SetSortOrder updates the document's position in manual orderings
func (d *Document) SetSortOrder(order int) error {
	if order < 0 {
		return shared.NewDomainError("INVALID_SORT_ORDER", "Sort order cannot be negative")
	}

	d.SortOrder = order
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return nil
}

// IsAvailable returns true if the object is confirmed in storage
func (d *Document) IsAvailable() bool {
	return d.Status == DocumentStatusAvailable
}
