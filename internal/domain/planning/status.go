package planning

import (
	"strings"

	"github.com/planora/backend/internal/domain/shared"
)

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

// ParseProjectStatus resolves a status value case-insensitively to its
// canonical form. Hyphenated spellings from older clients are accepted.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), "-", " ")
	for _, st := range []ProjectStatus{ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusOnHold, ProjectStatusCompleted} {
		if strings.EqualFold(normalized, string(st)) {
			return st, nil
		}
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown project status: "+s)
}

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusInReview   TaskStatus = "In Review"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// legacyTaskStatus maps the retired lowercase vocabulary onto the canonical
// one. Accepted only here, at the parse boundary; stores never hold these
// spellings.
var legacyTaskStatus = map[string]TaskStatus{
	"todo":        TaskStatusTodo,
	"in-progress": TaskStatusInProgress,
	"review":      TaskStatusInReview,
	"done":        TaskStatusCompleted,
}

// ParseTaskStatus resolves a status value to the canonical enum, translating
// legacy spellings.
func ParseTaskStatus(s string) (TaskStatus, error) {
	trimmed := strings.TrimSpace(s)
	if st, ok := legacyTaskStatus[strings.ToLower(trimmed)]; ok {
		return st, nil
	}
	for _, st := range []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusInReview, TaskStatusCompleted} {
		if strings.EqualFold(trimmed, string(st)) {
			return st, nil
		}
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown task status: "+s)
}

// Priority applies to both projects and tasks
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority resolves a priority value case-insensitively. Lowercase
// spellings existed in legacy data; writes always store the canonical casing.
func ParsePriority(s string) (Priority, error) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", shared.NewDomainError("VALIDATION_ERROR", "Unknown priority: "+s)
}
