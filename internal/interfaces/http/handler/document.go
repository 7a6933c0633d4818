package handler

import (
	"time"

	documentapp "github.com/arvebo/backend/internal/application/document"
	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles estate document endpoints. Uploads go
// directly to object storage via presigned URLs; the API only tracks
// metadata.
type DocumentHandler struct {
	BaseHandler
	documentService *documentapp.DocumentService
	activityService *engagementapp.ActivityService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(
	documentService *documentapp.DocumentService,
	activityService *engagementapp.ActivityService,
) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		activityService: activityService,
	}
}

// InitiateUploadRequest represents a request to start a document upload
type InitiateUploadRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	FileName    string `json:"file_name" binding:"required,min=1,max=255"`
	ContentType string `json:"content_type" binding:"required,max=100"`
	SizeBytes   int64  `json:"size_bytes" binding:"required,gt=0"`
}

// RenameDocumentRequest represents a request to rename a document and
// optionally move it in manual orderings
type RenameDocumentRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=200"`
	SortOrder *int   `json:"sort_order" binding:"omitempty,gte=0"`
}

// AttachTagRequest represents a request to tag a document
type AttachTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// TagResponse is the tag representation returned by the API
type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DocumentResponse is the document representation returned by the API
type DocumentResponse struct {
	ID          uuid.UUID     `json:"id"`
	EstateID    uuid.UUID     `json:"estate_id"`
	Title       string        `json:"title"`
	FileName    string        `json:"file_name"`
	ContentType string        `json:"content_type"`
	SizeBytes   int64         `json:"size_bytes"`
	Status      string        `json:"status"`
	SortOrder   int           `json:"sort_order"`
	UploadedBy  uuid.UUID     `json:"uploaded_by"`
	Tags        []TagResponse `json:"tags"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// InitiateUploadResponse carries the pending document and its upload URL
type InitiateUploadResponse struct {
	Document  DocumentResponse `json:"document"`
	UploadURL string           `json:"upload_url"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// DownloadResponse carries a presigned download URL
type DownloadResponse struct {
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
}

func tagResponsesFrom(tags []documentapp.TagInfo) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, TagResponse{ID: t.ID, Name: t.Name})
	}
	return responses
}

func documentResponseFrom(info documentapp.DocumentInfo) DocumentResponse {
	return DocumentResponse{
		ID:          info.ID,
		EstateID:    info.EstateID,
		Title:       info.Title,
		FileName:    info.FileName,
		ContentType: info.ContentType,
		SizeBytes:   info.SizeBytes,
		Status:      info.Status,
		SortOrder:   info.SortOrder,
		UploadedBy:  info.UploadedBy,
		Tags:        tagResponsesFrom(info.Tags),
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// InitiateUpload registers a pending document and returns a presigned
// upload URL
func (h *DocumentHandler) InitiateUpload(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req InitiateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.documentService.InitiateUpload(c.Request.Context(), documentapp.InitiateUploadInput{
		EstateID:    estateID,
		Title:       req.Title,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		UploadedBy:  userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, InitiateUploadResponse{
		Document:  documentResponseFrom(result.Document),
		UploadURL: result.UploadURL,
		ExpiresAt: result.ExpiresAt,
	})
}

// ConfirmUpload marks a pending document as uploaded
func (h *DocumentHandler) ConfirmUpload(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	documentID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.documentService.ConfirmUpload(c.Request.Context(), estateID, documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if userID, err := getUserID(c); err == nil {
		h.recordActivity(c, estateID, userID, "document.uploaded", documentID, info.FileName)
	}
	h.Success(c, documentResponseFrom(*info))
}

// Download returns a presigned download URL for an uploaded document
func (h *DocumentHandler) Download(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	documentID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	result, err := h.documentService.Download(c.Request.Context(), estateID, documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DownloadResponse{
		DownloadURL: result.DownloadURL,
		ExpiresAt:   result.ExpiresAt,
		FileName:    result.FileName,
		ContentType: result.ContentType,
	})
}

// Get returns a single document with its tags
func (h *DocumentHandler) Get(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	documentID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.documentService.Get(c.Request.Context(), estateID, documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, documentResponseFrom(*info))
}

// List returns the estate's documents
func (h *DocumentHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.documentService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	documents := make([]DocumentResponse, 0, len(result.Documents))
	for _, d := range result.Documents {
		documents = append(documents, documentResponseFrom(d))
	}
	h.SuccessWithMeta(c, documents, result.Total, filter.Page, filter.PageSize)
}

// Rename changes a document's title and sort order
func (h *DocumentHandler) Rename(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	documentID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req RenameDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.documentService.Rename(c.Request.Context(), documentapp.RenameInput{
		EstateID:   estateID,
		DocumentID: documentID,
		Title:      req.Title,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, documentResponseFrom(*info))
}

// Delete removes a document and its stored object
func (h *DocumentHandler) Delete(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	documentID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), estateID, documentID); err != nil {
		h.HandleError(c, err)
		return
	}

	if userID, err := getUserID(c); err == nil {
		h.recordActivity(c, estateID, userID, "document.deleted", documentID, "")
	}
	h.NoContent(c)
}

// AttachTag tags a document, creating the tag on first use
func (h *DocumentHandler) AttachTag(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	documentID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req AttachTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.documentService.AttachTag(c.Request.Context(), documentapp.AttachTagInput{
		EstateID:   estateID,
		DocumentID: documentID,
		TagName:    req.Name,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, TagResponse{ID: info.ID, Name: info.Name})
}

// DetachTag removes a tag from a document
func (h *DocumentHandler) DetachTag(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	documentID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	tagID, err := uuid.Parse(c.Param("tag_id"))
	if err != nil {
		h.BadRequest(c, "Invalid tag ID")
		return
	}

	err = h.documentService.DetachTag(c.Request.Context(), documentapp.DetachTagInput{
		EstateID:   estateID,
		DocumentID: documentID,
		TagID:      tagID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListTags returns all tags used in the estate
func (h *DocumentHandler) ListTags(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	tags, err := h.documentService.ListTags(c.Request.Context(), estateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tagResponsesFrom(tags))
}

func (h *DocumentHandler) recordActivity(c *gin.Context, estateID, actorID uuid.UUID, action string, entityID uuid.UUID, detail string) {
	if h.activityService == nil {
		return
	}
	h.activityService.Record(c.Request.Context(), engagementapp.RecordActivityInput{
		EstateID:   estateID,
		ActorID:    actorID,
		Action:     action,
		EntityType: "document",
		EntityID:   entityID,
		Detail:     detail,
	})
}
