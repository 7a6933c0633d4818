package document

import (
	"time"

	"github.com/arvebo/backend/internal/domain/document"
	"github.com/google/uuid"
)

// InitiateUploadInput contains input for starting a document upload
type InitiateUploadInput struct {
	EstateID    uuid.UUID
	Title       string
	FileName    string
	ContentType string
	SizeBytes   int64
	UploadedBy  uuid.UUID
}

// InitiateUploadResult contains the pending document and its upload URL
type InitiateUploadResult struct {
	Document  DocumentInfo
	UploadURL string
	ExpiresAt time.Time
}

// DownloadResult contains a presigned download URL
type DownloadResult struct {
	DownloadURL string
	ExpiresAt   time.Time
	FileName    string
	ContentType string
}

// RenameInput contains input for renaming a document. SortOrder, when
// set, also moves the document in manual orderings.
type RenameInput struct {
	EstateID   uuid.UUID
	DocumentID uuid.UUID
	Title      string
	SortOrder  *int
}

// DocumentInfo is the document representation returned to callers
type DocumentInfo struct {
	ID          uuid.UUID
	EstateID    uuid.UUID
	Title       string
	FileName    string
	ContentType string
	SizeBytes   int64
	Status      string
	SortOrder   int
	UploadedBy  uuid.UUID
	Tags        []TagInfo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DocumentListResult is a page of documents
type DocumentListResult struct {
	Documents []DocumentInfo
	Total     int64
}

// TagInfo is the tag representation returned to callers
type TagInfo struct {
	ID   uuid.UUID
	Name string
}

// AttachTagInput contains input for tagging a document.
// The tag is created on first use within the estate.
type AttachTagInput struct {
	EstateID   uuid.UUID
	DocumentID uuid.UUID
	TagName    string
}

// DetachTagInput contains input for removing a tag from a document
type DetachTagInput struct {
	EstateID   uuid.UUID
	DocumentID uuid.UUID
	TagID      uuid.UUID
}

func documentInfoFromDomain(d *document.Document) DocumentInfo {
	return DocumentInfo{
		ID:          d.ID,
		EstateID:    d.EstateID,
		Title:       d.Title,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		Status:      string(d.Status),
		SortOrder:   d.SortOrder,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func tagInfoFromDomain(t *document.Tag) TagInfo {
	return TagInfo{
		ID:   t.ID,
		Name: t.Name,
	}
}
