package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/identity"
	"github.com/planora/backend/internal/domain/shared"
	"github.com/planora/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTeamMemberRepository implements TeamMemberRepository using GORM
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewGormTeamMemberRepository creates a new GormTeamMemberRepository
func NewGormTeamMemberRepository(db *gorm.DB) *GormTeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

// Create creates a new team member profile
func (r *GormTeamMemberRepository) Create(ctx context.Context, member *identity.TeamMember) error {
	model := models.TeamMemberModelFromDomain(member)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing team member
func (r *GormTeamMemberRepository) Update(ctx context.Context, member *identity.TeamMember) error {
	model := models.TeamMemberModelFromDomain(member)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a team member by ID
func (r *GormTeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMemberModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a team member by ID
func (r *GormTeamMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.TeamMember, error) {
	var model models.TeamMemberModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID finds the profile linked to a user
func (r *GormTeamMemberRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.TeamMember, error) {
	var model models.TeamMemberModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all team members, newest first
func (r *GormTeamMemberRepository) FindAll(ctx context.Context) ([]*identity.TeamMember, error) {
	var memberModels []models.TeamMemberModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&memberModels).Error; err != nil {
		return nil, err
	}

	members := make([]*identity.TeamMember, len(memberModels))
	for i := range memberModels {
		members[i] = memberModels[i].ToDomain()
	}
	return members, nil
}

// Ensure GormTeamMemberRepository implements TeamMemberRepository
var _ identity.TeamMemberRepository = (*GormTeamMemberRepository)(nil)
