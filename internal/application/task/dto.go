package task

import (
	"time"

	"github.com/arvebo/backend/internal/domain/task"
	"github.com/google/uuid"
)

// CreateTaskInput contains input for creating a task
type CreateTaskInput struct {
	EstateID    uuid.UUID
	Title       string
	Description string
	Category    string
	DueDate     *time.Time
	CreatedBy   uuid.UUID
}

// UpdateTaskInput contains input for updating a task
type UpdateTaskInput struct {
	EstateID    uuid.UUID
	TaskID      uuid.UUID
	Title       string
	Description string
	Category    string
	DueDate     *time.Time
}

// ChangeStatusInput contains input for moving a task between statuses
type ChangeStatusInput struct {
	EstateID uuid.UUID
	TaskID   uuid.UUID
	Status   string
}

// AssignTaskInput contains input for assigning a task.
// A nil AssigneeID unassigns the task.
type AssignTaskInput struct {
	EstateID   uuid.UUID
	TaskID     uuid.UUID
	AssigneeID *uuid.UUID
}

// TaskInfo is the task representation returned to callers
type TaskInfo struct {
	ID          uuid.UUID
	EstateID    uuid.UUID
	Title       string
	Description string
	Category    string
	Status      string
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
	CompletedAt *time.Time
	Overdue     bool
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskListResult is a page of tasks
type TaskListResult struct {
	Tasks []TaskInfo
	Total int64
}

func taskInfoFromDomain(t *task.Task) TaskInfo {
	return TaskInfo{
		ID:          t.ID,
		EstateID:    t.EstateID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		AssigneeID:  t.AssigneeID,
		CompletedAt: t.CompletedAt,
		Overdue:     t.IsOverdue(),
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
