package models

import (
	"time"

	"github.com/arvebo/backend/internal/domain/task"
	"github.com/google/uuid"
)

// TaskModel is the persistence model for estate tasks.
type TaskModel struct {
	EstateAggregateModel
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(100);index"`
	Status      task.TaskStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	DueDate     *time.Time      `gorm:"type:date"`
	AssigneeID  *uuid.UUID      `gorm:"type:uuid;index"`
	CompletedAt *time.Time
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task
func (m *TaskModel) ToDomain() *task.Task {
	return &task.Task{
		EstateAggregateRoot: m.ToDomainEstateAggregateRoot(),
		Title:               m.Title,
		Description:         m.Description,
		Category:            m.Category,
		Status:              m.Status,
		DueDate:             m.DueDate,
		AssigneeID:          m.AssigneeID,
		CompletedAt:         m.CompletedAt,
	}
}

// TaskModelFromDomain builds a persistence model from a domain Task
func TaskModelFromDomain(t *task.Task) *TaskModel {
	m := &TaskModel{
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Status:      t.Status,
		DueDate:     t.DueDate,
		AssigneeID:  t.AssigneeID,
		CompletedAt: t.CompletedAt,
	}
	m.FromDomainEstateAggregateRoot(t.EstateAggregateRoot)
	return m
}
