package planning

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/shared"
)

// Task is the smallest schedulable unit. It is bound to exactly one project
// at creation and keeps its creator for the lifetime of the record.
type Task struct {
	shared.BaseAggregateRoot
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	DueDate     *time.Time
	ProjectID   uuid.UUID
	AssignedTo  *uuid.UUID
	CreatedBy   uuid.UUID
}

// NewTask creates a task under a project
func NewTask(projectID uuid.UUID, title string, createdBy uuid.UUID) (*Task, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Project is required")
	}
	if createdBy == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Creator is required")
	}
	if err := validateTaskTitle(title); err != nil {
		return nil, err
	}

	return &Task{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Status:            TaskStatusTodo,
		Priority:          PriorityMedium,
		ProjectID:         projectID,
		CreatedBy:         createdBy,
	}, nil
}

// IsCreator reports whether the user created this task
func (t *Task) IsCreator(userID uuid.UUID) bool {
	return t.CreatedBy == userID
}

// IsCompleted reports whether the task has reached its terminal status
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// SetTitle sets the task title
func (t *Task) SetTitle(title string) error {
	if err := validateTaskTitle(title); err != nil {
		return err
	}
	t.Title = strings.TrimSpace(title)
	t.Touch()
	return nil
}

// SetDescription sets the task description
func (t *Task) SetDescription(description string) {
	t.Description = description
	t.Touch()
}

// SetStatus sets the task status
func (t *Task) SetStatus(status TaskStatus) {
	t.Status = status
	t.Touch()
}

// SetPriority sets the task priority
func (t *Task) SetPriority(priority Priority) {
	t.Priority = priority
	t.Touch()
}

// SetDueDate sets or clears the task due date
func (t *Task) SetDueDate(dueDate *time.Time) {
	t.DueDate = dueDate
	t.Touch()
}

// Assign assigns the task to a user; nil clears the assignment
func (t *Task) Assign(userID *uuid.UUID) {
	t.AssignedTo = userID
	t.Touch()
}

func validateTaskTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Task title is required")
	}
	if len(title) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Task title cannot exceed 200 characters")
	}
	return nil
}
