package handler

import (
	"time"

	engagementapp "github.com/arvebo/backend/internal/application/engagement"
	taskapp "github.com/arvebo/backend/internal/application/task"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles estate task endpoints
type TaskHandler struct {
	BaseHandler
	taskService     *taskapp.TaskService
	activityService *engagementapp.ActivityService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(
	taskService *taskapp.TaskService,
	activityService *engagementapp.ActivityService,
) *TaskHandler {
	return &TaskHandler{
		taskService:     taskService,
		activityService: activityService,
	}
}

// CreateTaskRequest represents a request to create a task
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Category    string     `json:"category" binding:"max=100"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest represents a request to update a task
type UpdateTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Category    string     `json:"category" binding:"max=100"`
	DueDate     *time.Time `json:"due_date"`
}

// ChangeTaskStatusRequest represents a status transition request
type ChangeTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed"`
}

// AssignTaskRequest represents an assignment request.
// A null assignee unassigns the task.
type AssignTaskRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"`
}

// TaskResponse is the task representation returned by the API
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	EstateID    uuid.UUID  `json:"estate_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Overdue     bool       `json:"overdue"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func taskResponseFrom(info taskapp.TaskInfo) TaskResponse {
	return TaskResponse{
		ID:          info.ID,
		EstateID:    info.EstateID,
		Title:       info.Title,
		Description: info.Description,
		Category:    info.Category,
		Status:      info.Status,
		DueDate:     info.DueDate,
		AssigneeID:  info.AssigneeID,
		CompletedAt: info.CompletedAt,
		Overdue:     info.Overdue,
		CreatedBy:   info.CreatedBy,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}

// Create creates a new task in the estate
func (h *TaskHandler) Create(c *gin.Context) {
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

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.taskService.Create(c.Request.Context(), taskapp.CreateTaskInput{
		EstateID:    estateID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		DueDate:     req.DueDate,
		CreatedBy:   userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.recordActivity(c, estateID, userID, "task.created", info.ID, req.Title)
	h.Created(c, taskResponseFrom(*info))
}

// Get returns a single task
func (h *TaskHandler) Get(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	taskID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	info, err := h.taskService.Get(c.Request.Context(), estateID, taskID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, taskResponseFrom(*info))
}

// List returns the estate's tasks
func (h *TaskHandler) List(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.taskService.List(c.Request.Context(), estateID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, taskResponsesFrom(result.Tasks), result.Total, filter.Page, filter.PageSize)
}

// ListMine returns the estate's tasks assigned to the caller
func (h *TaskHandler) ListMine(c *gin.Context) {
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

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	result, err := h.taskService.ListByAssignee(c.Request.Context(), estateID, userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, taskResponsesFrom(result.Tasks), result.Total, filter.Page, filter.PageSize)
}

// Update edits a task
func (h *TaskHandler) Update(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	taskID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.taskService.Update(c.Request.Context(), taskapp.UpdateTaskInput{
		EstateID:    estateID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, taskResponseFrom(*info))
}

// ChangeStatus moves a task between statuses
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	taskID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req ChangeTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.taskService.ChangeStatus(c.Request.Context(), taskapp.ChangeStatusInput{
		EstateID: estateID,
		TaskID:   taskID,
		Status:   req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if userID, err := getUserID(c); err == nil && req.Status == "completed" {
		h.recordActivity(c, estateID, userID, "task.completed", taskID, info.Title)
	}
	h.Success(c, taskResponseFrom(*info))
}

// Assign assigns or unassigns a task
func (h *TaskHandler) Assign(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	taskID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	info, err := h.taskService.Assign(c.Request.Context(), taskapp.AssignTaskInput{
		EstateID:   estateID,
		TaskID:     taskID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, taskResponseFrom(*info))
}

// Delete removes a task
func (h *TaskHandler) Delete(c *gin.Context) {
	estateID, err := getEstateID(c)
	if err != nil {
		h.BadRequest(c, "Invalid estate ID")
		return
	}

	taskID, ok := h.bindIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), estateID, taskID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func taskResponsesFrom(tasks []taskapp.TaskInfo) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, taskResponseFrom(t))
	}
	return responses
}

func (h *TaskHandler) recordActivity(c *gin.Context, estateID, actorID uuid.UUID, action string, entityID uuid.UUID, detail string) {
	if h.activityService == nil {
		return
	}
	h.activityService.Record(c.Request.Context(), engagementapp.RecordActivityInput{
		EstateID:   estateID,
		ActorID:    actorID,
		Action:     action,
		EntityType: "task",
		EntityID:   entityID,
		Detail:     detail,
	})
}
