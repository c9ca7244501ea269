package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/planning"
	"go.uber.org/zap"
)

// MetricsService derives progress and deadline figures from project and
// task state. It holds no state of its own; every call recomputes from
// the repositories.
type MetricsService struct {
	projectRepo planning.ProjectRepository
	taskRepo    planning.TaskRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewMetricsService creates a new metrics service
func NewMetricsService(
	projectRepo planning.ProjectRepository,
	taskRepo planning.TaskRepository,
	logger *zap.Logger,
) *MetricsService {
	return &MetricsService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// ProjectProgress returns the completion percentage for one project
func (s *MetricsService) ProjectProgress(ctx context.Context, projectID uuid.UUID) (*ProjectProgressInfo, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tally, err := s.taskRepo.CountByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	return &ProjectProgressInfo{
		ProjectID:      project.ID,
		TotalTasks:     tally.Total,
		CompletedTasks: tally.Completed,
		Progress:       planning.Progress(tally),
	}, nil
}

// Dashboard aggregates the user's projects into dashboard figures. The
// overall percentage is weighted by task count across projects.
func (s *MetricsService) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	projects, err := s.projectRepo.FindForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalProjects: len(projects)}
	tallies := make([]planning.TaskTally, 0, len(projects))
	for _, project := range projects {
		switch project.Status {
		case planning.ProjectStatusCompleted:
			stats.CompletedProjects++
		case planning.ProjectStatusInProgress:
			stats.ActiveProjects++
		}

		tally, err := s.taskRepo.CountByProject(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		tallies = append(tallies, tally)
		stats.TotalTasks += tally.Total
		stats.CompletedTasks += tally.Completed
	}
	stats.OverallProgress = planning.OverallProgress(tallies)

	return stats, nil
}

// UpcomingDeadlines returns the user's projects with a future due date,
// soonest first, truncated to limit
func (s *MetricsService) UpcomingDeadlines(ctx context.Context, userID uuid.UUID, limit int) ([]DeadlineInfo, error) {
	projects, err := s.projectRepo.FindForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	upcoming := planning.UpcomingDeadlines(now, projects, limit)

	infos := make([]DeadlineInfo, len(upcoming))
	for i, project := range upcoming {
		c := planning.ClassifyDue(now, *project.DueDate)
		infos[i] = DeadlineInfo{
			ProjectID: project.ID,
			Name:      project.Name,
			DueDate:   *project.DueDate,
			DaysLeft:  c.Days,
			Label:     c.Label(),
		}
	}
	return infos, nil
}
