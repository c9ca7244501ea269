package persistence

import (
	"context"

	"github.com/planora/backend/internal/domain/identity"
	"github.com/planora/backend/internal/domain/planning"
	"gorm.io/gorm"
)

// GormIdentityUnitOfWork implements identity.UnitOfWork using a GORM transaction.
// The repositories handed to the callback share one transaction, so a failure
// partway through rolls back every write.
type GormIdentityUnitOfWork struct {
	db *gorm.DB
}

// NewGormIdentityUnitOfWork creates a new GormIdentityUnitOfWork
func NewGormIdentityUnitOfWork(db *gorm.DB) *GormIdentityUnitOfWork {
	return &GormIdentityUnitOfWork{db: db}
}

// WithinTx runs fn against transaction-scoped identity repositories
func (u *GormIdentityUnitOfWork) WithinTx(ctx context.Context, fn func(users identity.UserRepository, members identity.TeamMemberRepository, invites identity.InviteRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(
			NewGormUserRepository(tx),
			NewGormTeamMemberRepository(tx),
			NewGormInviteRepository(tx),
		)
	})
}

// GormPlanningUnitOfWork implements planning.UnitOfWork using a GORM transaction
type GormPlanningUnitOfWork struct {
	db *gorm.DB
}

// NewGormPlanningUnitOfWork creates a new GormPlanningUnitOfWork
func NewGormPlanningUnitOfWork(db *gorm.DB) *GormPlanningUnitOfWork {
	return &GormPlanningUnitOfWork{db: db}
}

// WithinTx runs fn against transaction-scoped planning repositories
func (u *GormPlanningUnitOfWork) WithinTx(ctx context.Context, fn func(projects planning.ProjectRepository, tasks planning.TaskRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(
			NewGormProjectRepository(tx),
			NewGormTaskRepository(tx),
		)
	})
}

// Ensure the unit of work implementations satisfy their interfaces
var (
	_ identity.UnitOfWork = (*GormIdentityUnitOfWork)(nil)
	_ planning.UnitOfWork = (*GormPlanningUnitOfWork)(nil)
)
