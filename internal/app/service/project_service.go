package service

import (
	"context"

	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/internal/core/ports"
)

type ProjectService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	opts     options
}

func NewProjectService(projects ports.ProjectRepository, tasks ports.TaskRepository, opts ...Option) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, opts: buildOptions(opts)}
}

func (s *ProjectService) CreateProject(ctx context.Context, caller domain.CallerIdentity, in domain.CreateProjectInput) (domain.Project, error) {
	if err := caller.Require(); err != nil {
		return domain.Project{}, err
	}

	project, err := domain.NewProject(s.opts.newID(), caller.UserID, in, s.opts.now())
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.projects.CreateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, caller domain.CallerIdentity) ([]domain.Project, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	return s.projects.ListActiveProjects(ctx, caller.UserID)
}

// GetProject also serves soft-deleted projects; only ListProjects hides them.
func (s *ProjectService) GetProject(ctx context.Context, caller domain.CallerIdentity, id string) (domain.ProjectWithTasks, error) {
	if err := caller.Require(); err != nil {
		return domain.ProjectWithTasks{}, err
	}

	project, err := s.projects.FindProject(ctx, caller.UserID, id)
	if err != nil {
		return domain.ProjectWithTasks{}, err
	}

	projectID := project.ID
	tasks, err := s.tasks.ListTasks(ctx, domain.TaskFilter{
		OwnerID:   caller.UserID,
		ProjectID: &projectID,
	}, domain.TaskOrderCreatedDesc)
	if err != nil {
		return domain.ProjectWithTasks{}, err
	}

	return domain.ProjectWithTasks{Project: project, Tasks: tasks}, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, caller domain.CallerIdentity, id string, in domain.UpdateProjectInput) (domain.Project, error) {
	if err := caller.Require(); err != nil {
		return domain.Project{}, err
	}

	project, err := s.projects.FindProject(ctx, caller.UserID, id)
	if err != nil {
		return domain.Project{}, err
	}

	if err := project.Apply(in, s.opts.now()); err != nil {
		return domain.Project{}, err
	}

	if err := s.projects.UpdateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// DeleteProject is a soft delete. Tasks of the project are left untouched.
func (s *ProjectService) DeleteProject(ctx context.Context, caller domain.CallerIdentity, id string) error {
	inactive := false
	_, err := s.UpdateProject(ctx, caller, id, domain.UpdateProjectInput{IsActive: &inactive})
	return err
}

var _ ports.ProjectService = (*ProjectService)(nil)
