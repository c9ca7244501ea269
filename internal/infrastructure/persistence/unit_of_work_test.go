package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/identity"
	"github.com/planora/backend/internal/domain/planning"
	"github.com/planora/backend/internal/domain/shared"
	"github.com/planora/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUnitOfWorkTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.TeamMemberModel{},
		&models.InviteModel{},
		&models.ProjectModel{},
		&models.TaskModel{},
	)
	require.NoError(t, err)

	return db
}

func TestGormIdentityUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := setupUnitOfWorkTestDB(t)
	uow := NewGormIdentityUnitOfWork(db)
	ctx := context.Background()

	user, err := identity.NewUser("Jane Doe", "jane@example.com", "hashed", identity.RoleDeveloper)
	require.NoError(t, err)

	err = uow.WithinTx(ctx, func(users identity.UserRepository, members identity.TeamMemberRepository, invites identity.InviteRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		member, err := identity.NewTeamMember(user.ID, user.Role)
		if err != nil {
			return err
		}
		return members.Create(ctx, member)
	})
	require.NoError(t, err)

	found, err := NewGormUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	member, err := NewGormTeamMemberRepository(db).FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Role, member.Role)
}

func TestGormIdentityUnitOfWork_RollsBackOnError(t *testing.T) {
	db := setupUnitOfWorkTestDB(t)
	uow := NewGormIdentityUnitOfWork(db)
	ctx := context.Background()

	user, err := identity.NewUser("Jane Doe", "jane@example.com", "hashed", identity.RoleDeveloper)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = uow.WithinTx(ctx, func(users identity.UserRepository, members identity.TeamMemberRepository, invites identity.InviteRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The user write must have been rolled back
	_, err = NewGormUserRepository(db).FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPlanningUnitOfWork_CascadeDelete(t *testing.T) {
	db := setupUnitOfWorkTestDB(t)
	uow := NewGormPlanningUnitOfWork(db)
	ctx := context.Background()

	owner := uuid.New()
	project, err := planning.NewProject(owner, "Doomed")
	require.NoError(t, err)
	require.NoError(t, NewGormProjectRepository(db).Create(ctx, project))

	taskRepo := NewGormTaskRepository(db)
	task, err := planning.NewTask(project.ID, "Orphan candidate", owner)
	require.NoError(t, err)
	require.NoError(t, taskRepo.Create(ctx, task))

	err = uow.WithinTx(ctx, func(projects planning.ProjectRepository, tasks planning.TaskRepository) error {
		if err := tasks.DeleteByProject(ctx, project.ID); err != nil {
			return err
		}
		return projects.Delete(ctx, project.ID)
	})
	require.NoError(t, err)

	_, err = NewGormProjectRepository(db).FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = taskRepo.FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPlanningUnitOfWork_RollsBackOnError(t *testing.T) {
	db := setupUnitOfWorkTestDB(t)
	uow := NewGormPlanningUnitOfWork(db)
	ctx := context.Background()

	owner := uuid.New()
	project, err := planning.NewProject(owner, "Survivor")
	require.NoError(t, err)
	require.NoError(t, NewGormProjectRepository(db).Create(ctx, project))

	task, err := planning.NewTask(project.ID, "Still here", owner)
	require.NoError(t, err)
	require.NoError(t, NewGormTaskRepository(db).Create(ctx, task))

	boom := errors.New("boom")
	err = uow.WithinTx(ctx, func(projects planning.ProjectRepository, tasks planning.TaskRepository) error {
		if err := tasks.DeleteByProject(ctx, project.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The task delete must have been rolled back
	_, err = NewGormTaskRepository(db).FindByID(ctx, task.ID)
	assert.NoError(t, err)
}
