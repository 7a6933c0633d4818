package handler

import (
	"time"

	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BlogHandler handles blog post endpoints. Published posts are public;
// authoring requires the administrator role.
type BlogHandler struct {
	BaseHandler
	blogService *engagementapp.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService *engagementapp.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// CreateBlogPostRequest represents a request to create a blog post
type CreateBlogPostRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Body  string `json:"body" binding:"required,min=1"`
}

// UpdateBlogPostRequest represents a request to update a blog post
type UpdateBlogPostRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Body  string `json:"body" binding:"required,min=1"`
}

// BlogPostResponse is the blog post representation returned by the API
type BlogPostResponse struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func blogPostResponseFrom(info engagementapp.BlogPostInfo) BlogPostResponse {
	return BlogPostResponse{
		ID:          info.ID,
		AuthorID:    info.AuthorID,
		Title:       info.Title,
		Slug:        info.Slug,
		Body:        info.Body,
		Published:   info.Published,
		PublishedAt: info.PublishedAt,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// Create creates a new draft post
func (h *BlogHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.blogService.Create(c.Request.Context(), engagementapp.CreateBlogPostInput{
		AuthorID: userID,
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, blogPostResponseFrom(*info))
}

// Update edits a post. The slug is re-derived from the new title.
func (h *BlogHandler) Update(c *gin.Context) {
	postID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.blogService.Update(c.Request.Context(), engagementapp.UpdateBlogPostInput{
		PostID: postID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blogPostResponseFrom(*info))
}

// Publish makes a draft post publicly visible
func (h *BlogHandler) Publish(c *gin.Context) {
	postID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.blogService.Publish(c.Request.Context(), postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blogPostResponseFrom(*info))
}

// Unpublish takes a published post back to draft
func (h *BlogHandler) Unpublish(c *gin.Context) {
	postID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.blogService.Unpublish(c.Request.Context(), postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blogPostResponseFrom(*info))
}

// Get returns a post including drafts
func (h *BlogHandler) Get(c *gin.Context) {
	postID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.blogService.Get(c.Request.Context(), postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blogPostResponseFrom(*info))
}

// List returns all posts including drafts
func (h *BlogHandler) List(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.blogService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, blogPostResponsesFrom(result.Posts), result.Total, filter.Page, filter.PageSize)
}

// Delete removes a post
func (h *BlogHandler) Delete(c *gin.Context) {
	postID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), postID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListPublished returns published posts. No authentication required.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.blogService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, blogPostResponsesFrom(result.Posts), result.Total, filter.Page, filter.PageSize)
}

// GetPublishedBySlug returns a published post by slug. No
// authentication required; drafts are hidden.
func (h *BlogHandler) GetPublishedBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		h.BadRequest(c, "Missing slug")
		return
	}

	info, err := h.blogService.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blogPostResponseFrom(*info))
}

func blogPostResponsesFrom(posts []engagementapp.BlogPostInfo) []BlogPostResponse {
	responses := make([]BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, blogPostResponseFrom(p))
	}
	return responses
}
