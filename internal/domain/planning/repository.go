package planning

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *Project) error

	// Update updates an existing project
	Update(ctx context.Context, project *Project) error

	// Delete deletes a project by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a project by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindForUser returns projects where the user is owner or member,
	// newest created first
	FindForUser(ctx context.Context, userID uuid.UUID) ([]*Project, error)
}

// TaskFilter narrows task queries. CreatorID is always applied; the
// remaining fields are optional.
type TaskFilter struct {
	CreatorID uuid.UUID
	ProjectID *uuid.UUID
	Status    *TaskStatus
	Priority  *Priority
}

// TaskTally is the completed/total task count for one project
type TaskTally struct {
	Total     int
	Completed int
}

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *Task) error

	// Update updates an existing task
	Update(ctx context.Context, task *Task) error

	// Delete deletes a task by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindAll returns tasks matching the filter, newest created first
	FindAll(ctx context.Context, filter TaskFilter) ([]*Task, error)

	// DeleteByProject removes every task under a project
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error

	// CountByProject tallies total and completed tasks for a project
	CountByProject(ctx context.Context, projectID uuid.UUID) (TaskTally, error)
}

// UnitOfWork runs a function against the planning repositories inside a
// single atomic unit, so the project-delete cascade cannot leave orphaned
// tasks behind.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(projects ProjectRepository, tasks TaskRepository) error) error
}
