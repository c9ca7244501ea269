package planning

import (
	"context"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/planning"
	"github.com/planora/backend/internal/domain/shared"
	"github.com/planora/backend/internal/infrastructure/validation"
	"go.uber.org/zap"
)

// ProjectService handles project lifecycle operations. Update and delete
// are restricted to the project owner.
type ProjectService struct {
	projectRepo planning.ProjectRepository
	uow         planning.UnitOfWork
	validator   *validation.Validator
	logger      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo planning.ProjectRepository,
	uow planning.UnitOfWork,
	validator *validation.Validator,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		uow:         uow,
		validator:   validator,
		logger:      logger,
	}
}

// Create creates a project owned by the caller
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*ProjectInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	project, err := planning.NewProject(input.OwnerID, input.Name)
	if err != nil {
		return nil, err
	}
	project.SetDescription(input.Description)

	if input.Status != "" {
		status, err := planning.ParseProjectStatus(input.Status)
		if err != nil {
			return nil, err
		}
		project.SetStatus(status)
	}
	if input.Priority != "" {
		priority, err := planning.ParsePriority(input.Priority)
		if err != nil {
			return nil, err
		}
		project.SetPriority(priority)
	}
	project.SetDueDate(input.DueDate)
	if len(input.MemberIDs) > 0 {
		project.SetMembers(input.MemberIDs)
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		s.logger.Error("Failed to create project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create project")
	}

	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("owner_id", project.OwnerID.String()))

	info := toProjectInfo(project)
	return &info, nil
}

// List returns the projects where the user is owner or member, newest first
func (s *ProjectService) List(ctx context.Context, userID uuid.UUID) ([]ProjectInfo, error) {
	projects, err := s.projectRepo.FindForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]ProjectInfo, len(projects))
	for i, project := range projects {
		infos[i] = toProjectInfo(project)
	}
	return infos, nil
}

// Get returns a single project by ID
func (s *ProjectService) Get(ctx context.Context, projectID uuid.UUID) (*ProjectInfo, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	info := toProjectInfo(project)
	return &info, nil
}

// Update applies a partial update. Only the owner may update a project;
// anyone else gets FORBIDDEN even when they are a member.
func (s *ProjectService) Update(ctx context.Context, input UpdateProjectInput) (*ProjectInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if !project.IsOwner(input.ActorID) {
		s.logger.Warn("Project update denied",
			zap.String("project_id", project.ID.String()),
			zap.String("actor_id", input.ActorID.String()))
		return nil, shared.ErrForbidden
	}

	if input.Name != nil {
		if err := project.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		project.SetDescription(*input.Description)
	}
	if input.Status != nil {
		status, err := planning.ParseProjectStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		project.SetStatus(status)
	}
	if input.Priority != nil {
		priority, err := planning.ParsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		project.SetPriority(priority)
	}
	switch {
	case input.ClearDueDate:
		project.SetDueDate(nil)
	case input.DueDate != nil:
		project.SetDueDate(input.DueDate)
	}
	if input.MemberIDs != nil {
		project.SetMembers(input.MemberIDs)
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		s.logger.Error("Failed to update project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update project")
	}

	s.logger.Info("Project updated", zap.String("project_id", project.ID.String()))

	info := toProjectInfo(project)
	return &info, nil
}

// Delete removes a project and all of its tasks in one atomic unit. Only
// the owner may delete a project.
func (s *ProjectService) Delete(ctx context.Context, projectID, actorID uuid.UUID) error {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !project.IsOwner(actorID) {
		s.logger.Warn("Project delete denied",
			zap.String("project_id", project.ID.String()),
			zap.String("actor_id", actorID.String()))
		return shared.ErrForbidden
	}

	err = s.uow.WithinTx(ctx, func(projects planning.ProjectRepository, tasks planning.TaskRepository) error {
		if err := tasks.DeleteByProject(ctx, project.ID); err != nil {
			return err
		}
		return projects.Delete(ctx, project.ID)
	})
	if err != nil {
		s.logger.Error("Failed to delete project", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete project")
	}

	s.logger.Info("Project deleted", zap.String("project_id", project.ID.String()))
	return nil
}

func toProjectInfo(project *planning.Project) ProjectInfo {
	return ProjectInfo{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		Priority:    string(project.Priority),
		DueDate:     project.DueDate,
		OwnerID:     project.OwnerID,
		MemberIDs:   project.MemberIDs,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
