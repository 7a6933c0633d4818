package estate

import (
	"strings"
	"time"

	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectStatus represents the state of a project within an estate
type ProjectStatus string

const (
	ProjectStatusOpen      ProjectStatus = "open"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project groups related work within an estate, such as selling a
// property or closing bank accounts.
type Project struct {
	shared.EstateAggregateRoot
	Name        string
	Description string
	Status      ProjectStatus
}

// NewProject creates a new open project in an estate
func NewProject(estateID uuid.UUID, name, description string, createdBy uuid.UUID) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}

	return &Project{
		EstateAggregateRoot: shared.NewEstateAggregateRootWithCreator(estateID, createdBy),
		Name:                name,
		Description:         description,
		Status:              ProjectStatusOpen,
	}, nil
}

// Update updates the project's editable fields
func (p *Project) Update(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Complete marks the project as completed
func (p *Project) Complete() error {
	if p.Status == ProjectStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Project is already completed")
	}

	p.Status = ProjectStatusCompleted
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Reopen returns a completed project to open status
func (p *Project) Reopen() error {
	if p.Status == ProjectStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Project is already open")
	}

	p.Status = ProjectStatusOpen
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
