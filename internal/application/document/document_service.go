// Package document provides application services for document metadata,
// presigned uploads and tagging.
package document

import (
	"context"
	"errors"
	"sort"

	"github.com/arvebo/backend/internal/domain/document"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DocumentService manages document metadata and coordinates object storage
type DocumentService struct {
	documentRepo document.DocumentRepository
	tagRepo      document.TagRepository
	storage      ObjectStorage
	logger       *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo document.DocumentRepository,
	tagRepo document.TagRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		documentRepo: documentRepo,
		tagRepo:      tagRepo,
		storage:      storage,
		logger:       logger,
	}
}

// InitiateUpload creates a pending document record and returns a presigned
// upload URL. The record is removed again if the URL cannot be generated.
func (s *DocumentService) InitiateUpload(ctx context.Context, input InitiateUploadInput) (*InitiateUploadResult, error) {
	doc, err := document.NewDocument(input.EstateID, input.Title, input.FileName, input.ContentType, input.SizeBytes, input.UploadedBy)
	if err != nil {
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save document record", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to initiate upload")
	}

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, doc.StorageKey, doc.ContentType, 0)
	if err != nil {
		s.logger.Error("Failed to generate upload URL", zap.Error(err))
		if delErr := s.documentRepo.Delete(ctx, doc.ID); delErr != nil {
			s.logger.Error("Failed to remove document record after presign failure", zap.Error(delErr))
		}
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to initiate upload")
	}

	s.logger.Info("Document upload initiated",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("document_id", doc.ID.String()),
		zap.String("file_name", doc.FileName))

	return &InitiateUploadResult{
		Document:  documentInfoFromDomain(doc),
		UploadURL: uploadURL,
		ExpiresAt: expiresAt,
	}, nil
}

// ConfirmUpload verifies the object exists in storage and marks the
// document available
func (s *DocumentService) ConfirmUpload(ctx context.Context, estateID, documentID uuid.UUID) (*DocumentInfo, error) {
	doc, err := s.loadDocument(ctx, estateID, documentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, doc.StorageKey)
	if err != nil {
		s.logger.Error("Failed to check object in storage", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to confirm upload")
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "File has not been uploaded yet")
	}

	if err := doc.Confirm(); err != nil {
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save confirmed document", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to confirm upload")
	}

	s.logger.Info("Document upload confirmed",
		zap.String("estate_id", estateID.String()),
		zap.String("document_id", doc.ID.String()))

	info := documentInfoFromDomain(doc)
	return &info, nil
}

// Download returns a presigned download URL for an available document
func (s *DocumentService) Download(ctx context.Context, estateID, documentID uuid.UUID) (*DownloadResult, error) {
	doc, err := s.loadDocument(ctx, estateID, documentID)
	if err != nil {
		return nil, err
	}

	if !doc.IsAvailable() {
		return nil, shared.NewDomainError("INVALID_STATE", "Document is not available for download")
	}

	downloadURL, expiresAt, err := s.storage.GenerateDownloadURL(ctx, doc.StorageKey, 0)
	if err != nil {
		s.logger.Error("Failed to generate download URL", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate download link")
	}

	return &DownloadResult{
		DownloadURL: downloadURL,
		ExpiresAt:   expiresAt,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
	}, nil
}

// Get returns a single document with its tags
func (s *DocumentService) Get(ctx context.Context, estateID, documentID uuid.UUID) (*DocumentInfo, error) {
	doc, err := s.loadDocument(ctx, estateID, documentID)
	if err != nil {
		return nil, err
	}

	info := documentInfoFromDomain(doc)
	info.Tags, err = s.tagsForDocument(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// List returns the documents of an estate. When TagID is set in
// filter.Filters the result is restricted to that tag.
func (s *DocumentService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*DocumentListResult, error) {
	var (
		docs  []document.Document
		total int64
		err   error
	)

	if tagID, ok := filter.Filters["tag_id"].(uuid.UUID); ok && tagID != uuid.Nil {
		docs, total, err = s.documentRepo.FindByTagForEstate(ctx, estateID, tagID, filter)
	} else {
		docs, total, err = s.documentRepo.FindAllForEstate(ctx, estateID, filter)
	}
	if err != nil {
		s.logger.Error("Failed to list documents", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list documents")
	}

	infos := make([]DocumentInfo, 0, len(docs))
	for i := range docs {
		info := documentInfoFromDomain(&docs[i])
		info.Tags, err = s.tagsForDocument(ctx, docs[i].ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return &DocumentListResult{Documents: infos, Total: total}, nil
}

// Rename changes a document's title and, when requested, its sort order
func (s *DocumentService) Rename(ctx context.Context, input RenameInput) (*DocumentInfo, error) {
	doc, err := s.loadDocument(ctx, input.EstateID, input.DocumentID)
	if err != nil {
		return nil, err
	}

	if err := doc.Rename(input.Title); err != nil {
		return nil, err
	}
	if input.SortOrder != nil {
		if err := doc.SetSortOrder(*input.SortOrder); err != nil {
			return nil, err
		}
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		s.logger.Error("Failed to save renamed document", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to rename document")
	}

	info := documentInfoFromDomain(doc)
	return &info, nil
}

// Delete removes the stored object and then the document record.
// If the record deletion fails the object is already gone; the record
// remains and deletion can be retried.
func (s *DocumentService) Delete(ctx context.Context, estateID, documentID uuid.UUID) error {
	doc, err := s.loadDocument(ctx, estateID, documentID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
		s.logger.Error("Failed to delete object from storage", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete document")
	}

	if err := s.documentRepo.Delete(ctx, doc.ID); err != nil {
		s.logger.Error("Failed to delete document record", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete document")
	}

	s.logger.Info("Document deleted",
		zap.String("estate_id", estateID.String()),
		zap.String("document_id", doc.ID.String()))

	return nil
}

// AttachTag tags a document, creating the tag on first use in the estate
func (s *DocumentService) AttachTag(ctx context.Context, input AttachTagInput) (*TagInfo, error) {
	doc, err := s.loadDocument(ctx, input.EstateID, input.DocumentID)
	if err != nil {
		return nil, err
	}

	tag, err := s.tagRepo.FindByNameForEstate(ctx, input.EstateID, input.TagName)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("Failed to look up tag", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to tag document")
		}

		tag, err = document.NewTag(input.EstateID, input.TagName)
		if err != nil {
			return nil, err
		}
		if err := s.tagRepo.Save(ctx, tag); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				// Created concurrently, re-read
				tag, err = s.tagRepo.FindByNameForEstate(ctx, input.EstateID, input.TagName)
				if err != nil {
					s.logger.Error("Failed to reload tag after create race", zap.Error(err))
					return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to tag document")
				}
			} else {
				s.logger.Error("Failed to save tag", zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to tag document")
			}
		}
	}

	if err := s.tagRepo.AttachToDocument(ctx, doc.ID, tag.ID); err != nil {
		s.logger.Error("Failed to attach tag", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to tag document")
	}

	info := tagInfoFromDomain(tag)
	return &info, nil
}

// DetachTag removes a tag from a document
func (s *DocumentService) DetachTag(ctx context.Context, input DetachTagInput) error {
	doc, err := s.loadDocument(ctx, input.EstateID, input.DocumentID)
	if err != nil {
		return err
	}

	if _, err := s.tagRepo.FindByIDForEstate(ctx, input.EstateID, input.TagID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		s.logger.Error("Failed to load tag", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove tag")
	}

	if err := s.tagRepo.DetachFromDocument(ctx, doc.ID, input.TagID); err != nil {
		s.logger.Error("Failed to detach tag", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove tag")
	}
	return nil
}

// ListTags returns all tags defined in an estate, ordered by name using
// Norwegian collation so æ, ø and å sort after z rather than by byte value
func (s *DocumentService) ListTags(ctx context.Context, estateID uuid.UUID) ([]TagInfo, error) {
	tags, err := s.tagRepo.FindAllForEstate(ctx, estateID)
	if err != nil {
		s.logger.Error("Failed to list tags", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list tags")
	}

	infos := make([]TagInfo, 0, len(tags))
	for i := range tags {
		infos = append(infos, tagInfoFromDomain(&tags[i]))
	}

	// Collators are not safe for concurrent use, build one per call
	c := collate.New(language.Norwegian)
	sort.Slice(infos, func(i, j int) bool {
		return c.CompareString(infos[i].Name, infos[j].Name) < 0
	})
	return infos, nil
}

func (s *DocumentService) tagsForDocument(ctx context.Context, documentID uuid.UUID) ([]TagInfo, error) {
	tags, err := s.tagRepo.FindByDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("Failed to load document tags", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load tags")
	}

	infos := make([]TagInfo, 0, len(tags))
	for i := range tags {
		infos = append(infos, tagInfoFromDomain(&tags[i]))
	}
	return infos, nil
}

func (s *DocumentService) loadDocument(ctx context.Context, estateID, documentID uuid.UUID) (*document.Document, error) {
	doc, err := s.documentRepo.FindByIDForEstate(ctx, estateID, documentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load document", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load document")
	}
	return doc, nil
}
