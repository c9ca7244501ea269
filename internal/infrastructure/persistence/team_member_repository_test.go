package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/identity"
	"github.com/planora/backend/internal/domain/shared"
	"github.com/planora/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTeamMemberTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.TeamMemberModel{})
	require.NoError(t, err)

	return db
}

func createTestMember(t *testing.T, repo *GormTeamMemberRepository, role identity.Role) *identity.TeamMember {
	t.Helper()
	member, err := identity.NewTeamMember(uuid.New(), role)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), member))
	return member
}

func TestGormTeamMemberRepository_CreateAndFind(t *testing.T) {
	db := setupTeamMemberTestDB(t)
	repo := NewGormTeamMemberRepository(db)
	ctx := context.Background()

	member := createTestMember(t, repo, identity.RoleDesigner)

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, member.ID, found.ID)
		assert.Equal(t, identity.RoleDesigner, found.Role)
		assert.Equal(t, identity.AvailabilityAvailable, found.Availability)
		assert.NotNil(t, found.Skills)
	})

	t.Run("finds by user id", func(t *testing.T) {
		found, err := repo.FindByUserID(ctx, member.UserID)
		require.NoError(t, err)
		assert.Equal(t, member.ID, found.ID)
	})

	t.Run("not found for unknown ids", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByUserID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTeamMemberRepository_UpdateProfile(t *testing.T) {
	db := setupTeamMemberTestDB(t)
	repo := NewGormTeamMemberRepository(db)
	ctx := context.Background()

	member := createTestMember(t, repo, identity.RoleDeveloper)

	require.NoError(t, member.SetDepartment("Engineering"))
	require.NoError(t, member.SetPhone("+1 555 0100"))
	member.SetSkills([]string{"Go", "PostgreSQL"})
	require.NoError(t, repo.Update(ctx, member))

	found, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", found.Department)
	assert.Equal(t, "+1 555 0100", found.Phone)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, found.Skills)
}

func TestGormTeamMemberRepository_FindAll(t *testing.T) {
	db := setupTeamMemberTestDB(t)
	repo := NewGormTeamMemberRepository(db)
	ctx := context.Background()

	first, err := identity.NewTeamMember(uuid.New(), identity.RoleDeveloper)
	require.NoError(t, err)
	first.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, repo.Create(ctx, first))

	second, err := identity.NewTeamMember(uuid.New(), identity.RoleDesigner)
	require.NoError(t, err)
	second.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, second))

	members, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// Newest first
	assert.Equal(t, second.ID, members[0].ID)
	assert.Equal(t, first.ID, members[1].ID)
}

func TestGormTeamMemberRepository_Delete(t *testing.T) {
	db := setupTeamMemberTestDB(t)
	repo := NewGormTeamMemberRepository(db)
	ctx := context.Background()

	member := createTestMember(t, repo, identity.RoleDeveloper)

	require.NoError(t, repo.Delete(ctx, member.ID))

	_, err := repo.FindByID(ctx, member.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, member.ID), shared.ErrNotFound)
}
