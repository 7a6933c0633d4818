package estate

import (
	"context"
	"errors"

	"github.com/arvebo/backend/internal/domain/estate"
	"github.com/arvebo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectService manages estate projects
type ProjectService struct {
	projectRepo estate.ProjectRepository
	logger      *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo estate.ProjectRepository, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create creates a new open project
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*ProjectInfo, error) {
	project, err := estate.NewProject(input.EstateID, input.Name, input.Description, input.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		s.logger.Error("Failed to create project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create project")
	}

	info := projectInfoFromDomain(project)
	return &info, nil
}

// Get returns a single project
func (s *ProjectService) Get(ctx context.Context, estateID, projectID uuid.UUID) (*ProjectInfo, error) {
	project, err := s.loadProject(ctx, estateID, projectID)
	if err != nil {
		return nil, err
	}
	info := projectInfoFromDomain(project)
	return &info, nil
}

// List returns the projects of an estate
func (s *ProjectService) List(ctx context.Context, estateID uuid.UUID, filter shared.Filter) (*ProjectListResult, error) {
	projects, total, err := s.projectRepo.FindAllForEstate(ctx, estateID, filter)
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list projects")
	}

	infos := make([]ProjectInfo, 0, len(projects))
	for i := range projects {
		infos = append(infos, projectInfoFromDomain(&projects[i]))
	}
	return &ProjectListResult{Projects: infos, Total: total}, nil
}

// Update changes a project's name and description
func (s *ProjectService) Update(ctx context.Context, input UpdateProjectInput) (*ProjectInfo, error) {
	project, err := s.loadProject(ctx, input.EstateID, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := project.Update(input.Name, input.Description); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		s.logger.Error("Failed to update project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update project")
	}

	info := projectInfoFromDomain(project)
	return &info, nil
}

// Complete marks a project as completed
func (s *ProjectService) Complete(ctx context.Context, estateID, projectID uuid.UUID) (*ProjectInfo, error) {
	return s.transition(ctx, estateID, projectID, (*estate.Project).Complete)
}

// Reopen returns a completed project to open status
func (s *ProjectService) Reopen(ctx context.Context, estateID, projectID uuid.UUID) (*ProjectInfo, error) {
	return s.transition(ctx, estateID, projectID, (*estate.Project).Reopen)
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, estateID, projectID uuid.UUID) error {
	project, err := s.loadProject(ctx, estateID, projectID)
	if err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, project.ID); err != nil {
		s.logger.Error("Failed to delete project", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete project")
	}
	return nil
}

func (s *ProjectService) transition(ctx context.Context, estateID, projectID uuid.UUID, change func(*estate.Project) error) (*ProjectInfo, error) {
	project, err := s.loadProject(ctx, estateID, projectID)
	if err != nil {
		return nil, err
	}

	if err := change(project); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		s.logger.Error("Failed to save project status change", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update project")
	}

	info := projectInfoFromDomain(project)
	return &info, nil
}

func (s *ProjectService) loadProject(ctx context.Context, estateID, projectID uuid.UUID) (*estate.Project, error) {
	project, err := s.projectRepo.FindByIDForEstate(ctx, estateID, projectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		s.logger.Error("Failed to load project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load project")
	}
	return project, nil
}
