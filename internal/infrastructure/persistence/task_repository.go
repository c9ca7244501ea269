package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/planning"
	"github.com/planora/backend/internal/domain/shared"
	"github.com/planora/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *planning.Task) error {
	model := models.TaskModelFromDomain(task)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing task
func (r *GormTaskRepository) Update(ctx context.Context, task *planning.Task) error {
	model := models.TaskModelFromDomain(task)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a task by ID
func (r *GormTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns tasks matching the filter, newest created first
func (r *GormTaskRepository) FindAll(ctx context.Context, filter planning.TaskFilter) ([]*planning.Task, error) {
	query := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("created_by = ?", filter.CreatorID)

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	var taskModels []models.TaskModel
	if err := query.Order("created_at DESC").Find(&taskModels).Error; err != nil {
		return nil, err
	}

	tasks := make([]*planning.Task, len(taskModels))
	for i := range taskModels {
		tasks[i] = taskModels[i].ToDomain()
	}
	return tasks, nil
}

// DeleteByProject removes every task under a project
func (r *GormTaskRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.TaskModel{}, "project_id = ?", projectID).Error
}

// CountByProject tallies total and completed tasks for a project
func (r *GormTaskRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (planning.TaskTally, error) {
	var tally planning.TaskTally

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("project_id = ?", projectID).
		Count(&total).Error; err != nil {
		return tally, err
	}

	var completed int64
	if err := r.db.WithContext(ctx).
		Model(&models.TaskModel{}).
		Where("project_id = ? AND status = ?", projectID, planning.TaskStatusCompleted).
		Count(&completed).Error; err != nil {
		return tally, err
	}

	tally.Total = int(total)
	tally.Completed = int(completed)
	return tally, nil
}

// Ensure GormTaskRepository implements TaskRepository
var _ planning.TaskRepository = (*GormTaskRepository)(nil)
