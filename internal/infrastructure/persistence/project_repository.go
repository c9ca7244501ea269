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

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *planning.Project) error {
	model := models.ProjectModelFromDomain(project)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing project
func (r *GormProjectRepository) Update(ctx context.Context, project *planning.Project) error {
	model := models.ProjectModelFromDomain(project)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a project by ID
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindForUser returns projects where the user is owner or member, newest
// created first. Membership lives in the JSON member_ids column, so the
// match is a substring check on the serialized UUID.
func (r *GormProjectRepository) FindForUser(ctx context.Context, userID uuid.UUID) ([]*planning.Project, error) {
	var projectModels []models.ProjectModel
	memberPattern := "%" + userID.String() + "%"
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? OR member_ids LIKE ?", userID, memberPattern).
		Order("created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]*planning.Project, len(projectModels))
	for i := range projectModels {
		projects[i] = projectModels[i].ToDomain()
	}
	return projects, nil
}

// Ensure GormProjectRepository implements ProjectRepository
var _ planning.ProjectRepository = (*GormProjectRepository)(nil)
