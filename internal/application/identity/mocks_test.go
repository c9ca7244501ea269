package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/identity"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockTeamMemberRepository is a mock implementation of identity.TeamMemberRepository
type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *identity.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) Update(ctx context.Context, member *identity.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.TeamMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) FindAll(ctx context.Context) ([]*identity.TeamMember, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*identity.TeamMember), args.Error(1)
}

// MockInviteRepository is a mock implementation of identity.InviteRepository
type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) Create(ctx context.Context, invite *identity.Invite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

func (m *MockInviteRepository) Update(ctx context.Context, invite *identity.Invite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

func (m *MockInviteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInviteRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Invite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Invite), args.Error(1)
}

func (m *MockInviteRepository) FindPending(ctx context.Context) ([]*identity.Invite, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*identity.Invite), args.Error(1)
}

func (m *MockInviteRepository) ExistsPendingByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// fakeUnitOfWork hands the backing mocks straight to the callback, so tests
// can assert on the writes made inside the unit
type fakeUnitOfWork struct {
	users   identity.UserRepository
	members identity.TeamMemberRepository
	invites identity.InviteRepository
	err     error
}

func (u *fakeUnitOfWork) WithinTx(ctx context.Context, fn func(users identity.UserRepository, members identity.TeamMemberRepository, invites identity.InviteRepository) error) error {
	if u.err != nil {
		return u.err
	}
	return fn(u.users, u.members, u.invites)
}

// MockPasswordHasher is a mock implementation of identity.PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

// MockTokenIssuer is a mock implementation of identity.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user *identity.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
