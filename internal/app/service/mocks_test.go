package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jongwon/todo-app/internal/core/domain"
)

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) CreateProject(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *projectRepositoryMock) FindProject(ctx context.Context, ownerID, id string) (domain.Project, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) ListActiveProjects(ctx context.Context, ownerID string) ([]domain.Project, error) {
	args := m.Called(ctx, ownerID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) UpdateProject(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) FindTask(ctx context.Context, ownerID, id string) (domain.Task, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context, filter domain.TaskFilter, order domain.TaskOrder) ([]domain.Task, error) {
	args := m.Called(ctx, filter, order)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepositoryMock) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type sessionRepositoryMock struct {
	mock.Mock
}

func (m *sessionRepositoryMock) CreateSession(ctx context.Context, session domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *sessionRepositoryMock) FindSession(ctx context.Context, id string) (domain.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *sessionRepositoryMock) DeleteSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *sessionRepositoryMock) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
