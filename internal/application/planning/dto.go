package planning

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectInput contains the input for creating a project
type CreateProjectInput struct {
	OwnerID     uuid.UUID   `json:"owner_id" validate:"required"`
	Name        string      `json:"name" validate:"required,max=200"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	DueDate     *time.Time  `json:"due_date"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
}

// UpdateProjectInput contains the input for a partial project update.
// Nil fields are left unchanged; ClearDueDate removes the due date and
// wins over DueDate when both are set.
type UpdateProjectInput struct {
	ProjectID    uuid.UUID   `json:"project_id" validate:"required"`
	ActorID      uuid.UUID   `json:"actor_id" validate:"required"`
	Name         *string     `json:"name" validate:"omitempty,max=200"`
	Description  *string     `json:"description"`
	Status       *string     `json:"status"`
	Priority     *string     `json:"priority"`
	DueDate      *time.Time  `json:"due_date"`
	ClearDueDate bool        `json:"clear_due_date"`
	MemberIDs    []uuid.UUID `json:"member_ids"`
}

// ProjectInfo contains a project as returned to callers
type ProjectInfo struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateTaskInput contains the input for creating a task
type CreateTaskInput struct {
	ProjectID   uuid.UUID  `json:"project_id" validate:"required"`
	CreatorID   uuid.UUID  `json:"creator_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
}

// UpdateTaskInput contains the input for a partial task update.
// Nil fields are left unchanged; ClearDueDate and Unassign remove the due
// date and assignee and win over their pointer counterparts.
type UpdateTaskInput struct {
	TaskID       uuid.UUID  `json:"task_id" validate:"required"`
	ActorID      uuid.UUID  `json:"actor_id" validate:"required"`
	Title        *string    `json:"title" validate:"omitempty,max=200"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	AssignedTo   *uuid.UUID `json:"assigned_to"`
	Unassign     bool       `json:"unassign"`
}

// ListTasksInput narrows a task listing. CreatorID is required; the rest
// is optional.
type ListTasksInput struct {
	CreatorID uuid.UUID  `json:"creator_id" validate:"required"`
	ProjectID *uuid.UUID `json:"project_id"`
	Status    *string    `json:"status"`
	Priority  *string    `json:"priority"`
}

// TaskInfo contains a task as returned to callers
type TaskInfo struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ProjectID   uuid.UUID  `json:"project_id"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
