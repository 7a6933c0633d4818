package task

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TaskStatus represents the state of a settlement task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid checks if the status is a known value
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may change to the target.
// Completed tasks can be reopened; everything else moves freely forward.
func (s TaskStatus) CanTransitionTo(target TaskStatus) bool {
	if !target.IsValid() {
		return false
	}
	return s != target
}

// Task represents a unit of settlement work within an estate
type Task struct {
	shared.EstateAggregateRoot
	Title       string
	Description string
	Category    string
	Status      TaskStatus
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
	CompletedAt *time.Time
}

// NewTask creates a pending task
func NewTask(estateID uuid.UUID, title, description, category string, dueDate *time.Time, createdBy uuid.UUID) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Task title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Task title cannot exceed 200 characters")
	}

	return &Task{
		EstateAggregateRoot: shared.NewEstateAggregateRootWithCreator(estateID, createdBy),
		Title:               title,
		Description:         strings.TrimSpace(description),
		Category:            strings.TrimSpace(category),
		Status:              TaskStatusPending,
		DueDate:             dueDate,
	}, nil
}

// Update updates the task's editable fields
func (t *Task) Update(title, description, category string, dueDate *time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Task title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Task title cannot exceed 200 characters")
	}

	t.Title = title
	t.Description = strings.TrimSpace(description)
	t.Category = strings.TrimSpace(category)
	t.DueDate = dueDate
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// ChangeStatus moves the task to a new status
func (t *Task) ChangeStatus(status TaskStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown task status")
	}
	if !t.Status.CanTransitionTo(status) {
		return shared.NewDomainError("INVALID_STATE", "Task is already in this status")
	}

	t.Status = status
	if status == TaskStatusCompleted {
		now := time.Now()
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Assign sets the task assignee. Pass uuid.Nil to unassign.
func (t *Task) Assign(userID uuid.UUID) {
	if userID == uuid.Nil {
		t.AssigneeID = nil
	} else {
		t.AssigneeID = &userID
	}
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// IsOverdue returns true if the task has a due date in the past and is not completed
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.Status == TaskStatusCompleted {
		return false
	}
	return time.Now().After(*t.DueDate)
}
