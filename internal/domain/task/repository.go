package task

import (
	"context"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*Task, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter shared.Filter) ([]Task, int64, error)
	FindByAssignee(ctx context.Context, estateID, assigneeID uuid.UUID, filter shared.Filter) ([]Task, int64, error)
}
