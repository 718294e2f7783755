package ports

import (
	"context"
	"time"

	"github.com/jongwon/todo-app/internal/core/domain"
)

type ProjectService interface {
	CreateProject(ctx context.Context, caller domain.CallerIdentity, in domain.CreateProjectInput) (domain.Project, error)
	ListProjects(ctx context.Context, caller domain.CallerIdentity) ([]domain.Project, error)
	GetProject(ctx context.Context, caller domain.CallerIdentity, id string) (domain.ProjectWithTasks, error)
	UpdateProject(ctx context.Context, caller domain.CallerIdentity, id string, in domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, caller domain.CallerIdentity, id string) error
}

type TaskService interface {
	CreateTask(ctx context.Context, caller domain.CallerIdentity, in domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, caller domain.CallerIdentity, id string) (domain.Task, error)
	ListTasks(ctx context.Context, caller domain.CallerIdentity, filter domain.TaskFilter) ([]domain.Task, error)
	UpdateTask(ctx context.Context, caller domain.CallerIdentity, id string, in domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, caller domain.CallerIdentity, id string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, domain.Session, domain.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (domain.CallerIdentity, error)
	CurrentUser(ctx context.Context, caller domain.CallerIdentity) (domain.User, error)
	RegisterUser(ctx context.Context, in domain.RegisterUserInput) (domain.User, error)
	PruneSessions(ctx context.Context, now time.Time) (int64, error)
}
