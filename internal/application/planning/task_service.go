package planning

import (
	"context"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/planning"
	"github.com/planora/backend/internal/domain/shared"
	"github.com/planora/backend/internal/infrastructure/validation"
	"go.uber.org/zap"
)

// TaskService handles task lifecycle operations. Update and delete are
// restricted to the task creator.
type TaskService struct {
	taskRepo    planning.TaskRepository
	projectRepo planning.ProjectRepository
	validator   *validation.Validator
	logger      *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo planning.TaskRepository,
	projectRepo planning.ProjectRepository,
	validator *validation.Validator,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		validator:   validator,
		logger:      logger,
	}
}

// Create creates a task under an existing project. The creator is recorded
// and never changes afterwards.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*TaskInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	// The project reference must resolve at creation time
	if _, err := s.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	task, err := planning.NewTask(input.ProjectID, input.Title, input.CreatorID)
	if err != nil {
		return nil, err
	}
	task.SetDescription(input.Description)

	if input.Status != "" {
		status, err := planning.ParseTaskStatus(input.Status)
		if err != nil {
			return nil, err
		}
		task.SetStatus(status)
	}
	if input.Priority != "" {
		priority, err := planning.ParsePriority(input.Priority)
		if err != nil {
			return nil, err
		}
		task.SetPriority(priority)
	}
	task.SetDueDate(input.DueDate)
	task.Assign(input.AssignedTo)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.Error("Failed to create task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create task")
	}

	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("project_id", task.ProjectID.String()))

	info := toTaskInfo(task)
	return &info, nil
}

// List returns the caller's tasks matching the filter, newest first
func (s *TaskService) List(ctx context.Context, input ListTasksInput) ([]TaskInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	filter := planning.TaskFilter{
		CreatorID: input.CreatorID,
		ProjectID: input.ProjectID,
	}
	if input.Status != nil {
		status, err := planning.ParseTaskStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if input.Priority != nil {
		priority, err := planning.ParsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = &priority
	}

	tasks, err := s.taskRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]TaskInfo, len(tasks))
	for i, task := range tasks {
		infos[i] = toTaskInfo(task)
	}
	return infos, nil
}

// Get returns a single task by ID
func (s *TaskService) Get(ctx context.Context, taskID uuid.UUID) (*TaskInfo, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	info := toTaskInfo(task)
	return &info, nil
}

// Update applies a partial update. Only the creator may change a task.
func (s *TaskService) Update(ctx context.Context, input UpdateTaskInput) (*TaskInfo, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}
	if !task.IsCreator(input.ActorID) {
		s.logger.Warn("Task update denied",
			zap.String("task_id", task.ID.String()),
			zap.String("actor_id", input.ActorID.String()))
		return nil, shared.ErrForbidden
	}

	if input.Title != nil {
		if err := task.SetTitle(*input.Title); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		task.SetDescription(*input.Description)
	}
	if input.Status != nil {
		status, err := planning.ParseTaskStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		task.SetStatus(status)
	}
	if input.Priority != nil {
		priority, err := planning.ParsePriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		task.SetPriority(priority)
	}
	switch {
	case input.ClearDueDate:
		task.SetDueDate(nil)
	case input.DueDate != nil:
		task.SetDueDate(input.DueDate)
	}
	switch {
	case input.Unassign:
		task.Assign(nil)
	case input.AssignedTo != nil:
		task.Assign(input.AssignedTo)
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.logger.Error("Failed to update task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update task")
	}

	s.logger.Info("Task updated", zap.String("task_id", task.ID.String()))

	info := toTaskInfo(task)
	return &info, nil
}

// Delete removes a task. Only the creator may delete it.
func (s *TaskService) Delete(ctx context.Context, taskID, actorID uuid.UUID) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if !task.IsCreator(actorID) {
		s.logger.Warn("Task delete denied",
			zap.String("task_id", task.ID.String()),
			zap.String("actor_id", actorID.String()))
		return shared.ErrForbidden
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		s.logger.Error("Failed to delete task", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete task")
	}

	s.logger.Info("Task deleted", zap.String("task_id", task.ID.String()))
	return nil
}

func toTaskInfo(task *planning.Task) TaskInfo {
	return TaskInfo{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		ProjectID:   task.ProjectID,
		AssignedTo:  task.AssignedTo,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
