package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/domain/planning"
	"github.com/stretchr/testify/mock"
)

// MockProjectRepository is a mock implementation of planning.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *planning.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *planning.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.Project), args.Error(1)
}

func (m *MockProjectRepository) FindForUser(ctx context.Context, userID uuid.UUID) ([]*planning.Project, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*planning.Project), args.Error(1)
}

// MockTaskRepository is a mock implementation of planning.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *planning.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *planning.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.Task), args.Error(1)
}

func (m *MockTaskRepository) FindAll(ctx context.Context, filter planning.TaskFilter) ([]*planning.Task, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*planning.Task), args.Error(1)
}

func (m *MockTaskRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockTaskRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (planning.TaskTally, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(planning.TaskTally), args.Error(1)
}
