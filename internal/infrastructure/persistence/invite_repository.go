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

// GormInviteRepository implements InviteRepository using GORM
type GormInviteRepository struct {
	db *gorm.DB
}

// NewGormInviteRepository creates a new GormInviteRepository
func NewGormInviteRepository(db *gorm.DB) *GormInviteRepository {
	return &GormInviteRepository{db: db}
}

// Create creates a new invite
func (r *GormInviteRepository) Create(ctx context.Context, invite *identity.Invite) error {
	model := models.InviteModelFromDomain(invite)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing invite
func (r *GormInviteRepository) Update(ctx context.Context, invite *identity.Invite) error {
	model := models.InviteModelFromDomain(invite)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an invite by ID
func (r *GormInviteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InviteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an invite by ID
func (r *GormInviteRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Invite, error) {
	var model models.InviteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPending returns all pending invites, newest first
func (r *GormInviteRepository) FindPending(ctx context.Context) ([]*identity.Invite, error) {
	var inviteModels []models.InviteModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", identity.InviteStatusPending).
		Order("created_at DESC").
		Find(&inviteModels).Error; err != nil {
		return nil, err
	}

	invites := make([]*identity.Invite, len(inviteModels))
	for i := range inviteModels {
		invites[i] = inviteModels[i].ToDomain()
	}
	return invites, nil
}

// ExistsPendingByEmail checks if a pending invite holds the normalized email
func (r *GormInviteRepository) ExistsPendingByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InviteModel{}).
		Where("email = ? AND status = ?", identity.NormalizeEmail(email), identity.InviteStatusPending).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormInviteRepository implements InviteRepository
var _ identity.InviteRepository = (*GormInviteRepository)(nil)
