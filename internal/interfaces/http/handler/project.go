package handler

import (
	"context"
	"time"

	estateapp "github.com/arvebo/backend/internal/application/estate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles estate project endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *estateapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *estateapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateProjectRequest represents a request to update a project
type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// ProjectResponse is the project representation returned by the API
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	EstateID    uuid.UUID `json:"estate_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func projectResponseFrom(info estateapp.ProjectInfo) ProjectResponse {
	return ProjectResponse{
		ID:          info.ID,
		EstateID:    info.EstateID,
		Name:        info.Name,
		Description: info.Description,
		Status:      info.Status,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// Create creates a new project in the estate
func (h *ProjectHandler) Create(c *gin.Context) {
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

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.projectService.Create(c.Request.Context(), estateapp.CreateProjectInput{
		EstateID:    estateID,
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, projectResponseFrom(*info))
}

// List returns the estate's projects
func (h *ProjectHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.projectService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	projects := make([]ProjectResponse, 0, len(result.Projects))
	for _, p := range result.Projects {
		projects = append(projects, projectResponseFrom(p))
	}
	h.SuccessWithMeta(c, projects, result.Total, filter.Page, filter.PageSize)
}

// Get returns a single project
func (h *ProjectHandler) Get(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	projectID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.projectService.Get(c.Request.Context(), estateID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, projectResponseFrom(*info))
}

// Update edits a project
func (h *ProjectHandler) Update(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	projectID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.projectService.Update(c.Request.Context(), estateapp.UpdateProjectInput{
		EstateID:    estateID,
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, projectResponseFrom(*info))
}

// Complete marks a project as completed
func (h *ProjectHandler) Complete(c *gin.Context) {
	h.transition(c, h.projectService.Complete)
}

// Reopen returns a completed project to active
func (h *ProjectHandler) Reopen(c *gin.Context) {
	h.transition(c, h.projectService.Reopen)
}

// Delete removes a project
func (h *ProjectHandler) Delete(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	projectID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), estateID, projectID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *ProjectHandler) transition(
	c *gin.Context,
	change func(ctx context.Context, estateID, projectID uuid.UUID) (*estateapp.ProjectInfo, error),
) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	projectID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := change(c.Request.Context(), estateID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, projectResponseFrom(*info))
}
