package ports

import (
	"context"
	"time"

	"github.com/jongwon/todo-app/internal/core/domain"
)

type ProjectRepository interface {
	CreateProject(ctx context.Context, project domain.Project) error
	// FindProject returns the owner's project whether active or not.
	FindProject(ctx context.Context, ownerID, id string) (domain.Project, error)
	ListActiveProjects(ctx context.Context, ownerID string) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task domain.Task) error
	// FindTask returns the owner's task with its project joined.
	FindTask(ctx context.Context, ownerID, id string) (domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter, order domain.TaskOrder) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, ownerID, id string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, id string) (domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	FindSession(ctx context.Context, id string) (domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
