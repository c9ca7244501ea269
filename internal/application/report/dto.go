package report

import (
	"time"

	"github.com/google/uuid"
)

// ProjectProgressInfo carries the derived completion figures for one project
type ProjectProgressInfo struct {
	ProjectID      uuid.UUID `json:"project_id"`
	TotalTasks     int       `json:"total_tasks"`
	CompletedTasks int       `json:"completed_tasks"`
	Progress       int       `json:"progress"`
}

// DashboardStats aggregates the caller's projects and tasks into the
// figures the dashboard displays. Everything here is derived on read.
type DashboardStats struct {
	TotalProjects     int `json:"total_projects"`
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
	TotalTasks        int `json:"total_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
	OverallProgress   int `json:"overall_progress"`
}

// DeadlineInfo is one upcoming project deadline with its display label
type DeadlineInfo struct {
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	DueDate   time.Time `json:"due_date"`
	DaysLeft  int       `json:"days_left"`
	Label     string    `json:"label"`
}
