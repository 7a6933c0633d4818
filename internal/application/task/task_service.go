// Package task provides the application service for estate tasks.
package task

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/engagement"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/arvebo/backend/internal/domain/task"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskService manages estate tasks
type TaskService struct {
	taskRepo         task.TaskRepository
	notificationRepo engagement.NotificationRepository
	logger           *zap.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo task.TaskRepository,
	notificationRepo engagement.NotificationRepository,
	logger *zap.Logger,
) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		taskRepo:         taskRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Create creates a new pending task
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*TaskInfo, error) {
	t, err := task.NewTask(input.EstateID, input.Title, input.Description, input.Category, input.DueDate, input.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, t); err != nil {
		s.logger.Error("Failed to save task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create task")
	}

	s.logger.Info("Task created",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("task_id", t.ID.String()))

	info := taskInfoFromDomain(t)
	return &info, nil
}

// Get returns a single task
func (s *TaskService) Get(ctx context.Context, estateID, taskID uuid.UUID) (*TaskInfo, error) {
	t, err := s.loadTask(ctx, estateID, taskID)
	if err != nil {
		return nil, err
	}
	info := taskInfoFromDomain(t)
	return &info, nil
}

// List returns the tasks of an estate
func (s *TaskService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*TaskListResult, error) {
	tasks, total, err := s.taskRepo.FindAllForEstate(ctx, estateID, filter)
	if err != nil {
		s.logger.Error("Failed to list tasks", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list tasks")
	}
	return s.listResult(tasks, total), nil
}

// ListByAssignee returns the tasks assigned to a user within an estate
func (s *TaskService) ListByAssignee(ctx context.Context, estateID, assigneeID uuid.UUID, filter shared.Filter) (*TaskListResult, error) {
	tasks, total, err := s.taskRepo.FindByAssignee(ctx, estateID, assigneeID, filter)
	if err != nil {
		s.logger.Error("Failed to list assigned tasks", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list tasks")
	}
	return s.listResult(tasks, total), nil
}

// Update changes a task's editable fields
func (s *TaskService) Update(ctx context.Context, input UpdateTaskInput) (*TaskInfo, error) {
	t, err := s.loadTask(ctx, input.EstateID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if err := t.Update(input.Title, input.Description, input.Category, input.DueDate); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, t); err != nil {
		s.logger.Error("Failed to update task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update task")
	}

	info := taskInfoFromDomain(t)
	return &info, nil
}

// ChangeStatus moves a task to a new status
func (s *TaskService) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*TaskInfo, error) {
	t, err := s.loadTask(ctx, input.EstateID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if err := t.ChangeStatus(task.TaskStatus(input.Status)); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, t); err != nil {
		s.logger.Error("Failed to save task status change", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update task")
	}

	s.logger.Info("Task status changed",
		zap.String("estate_id", input.EstateID.String()),
		zap.String("task_id", t.ID.String()),
		zap.String("status", string(t.Status)))

	info := taskInfoFromDomain(t)
	return &info, nil
}

// Assign sets or clears the task assignee and notifies a new assignee
func (s *TaskService) Assign(ctx context.Context, input AssignTaskInput) (*TaskInfo, error) {
	t, err := s.loadTask(ctx, input.EstateID, input.TaskID)
	if err != nil {
		return nil, err
	}

	if input.AssigneeID != nil {
		t.Assign(*input.AssigneeID)
	} else {
		t.Assign(uuid.Nil)
	}

	if err := s.taskRepo.Save(ctx, t); err != nil {
		s.logger.Error("Failed to save task assignment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to assign task")
	}

	if t.AssigneeID != nil {
		s.notifyAssignee(ctx, t)
	}

	info := taskInfoFromDomain(t)
	return &info, nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, estateID, taskID uuid.UUID) error {
	t, err := s.loadTask(ctx, estateID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, t.ID); err != nil {
		s.logger.Error("Failed to delete task", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete task")
	}
	return nil
}

func (s *TaskService) listResult(tasks []task.Task, total int64) *TaskListResult {
	infos := make([]TaskInfo, 0, len(tasks))
	for i := range tasks {
		infos = append(infos, taskInfoFromDomain(&tasks[i]))
	}
	return &TaskListResult{Tasks: infos, Total: total}
}

// notifyAssignee notifies the user a task was assigned to.
// Failures only log, the assignment stands.
func (s *TaskService) notifyAssignee(ctx context.Context, t *task.Task) {
	notification, err := engagement.NewNotification(
		*t.AssigneeID,
		&t.EstateID,
		engagement.NotificationTypeTaskAssigned,
		"Du har fått en oppgave",
		"Oppgaven "+t.Title+" er tildelt deg.",
	)
	if err != nil {
		s.logger.Warn("Failed to build assignment notification", zap.Error(err))
		return
	}
	if err := s.notificationRepo.Save(ctx, notification); err != nil {
		s.logger.Warn("Failed to save assignment notification", zap.Error(err))
	}
}

func (s *TaskService) loadTask(ctx context.Context, estateID, taskID uuid.UUID) (*task.Task, error) {
	t, err := s.taskRepo.FindByIDForEstate(ctx, estateID, taskID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load task")
	}
	return t, nil
}
