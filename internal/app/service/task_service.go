package service

import (
	"context"

	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/internal/core/ports"
)

type TaskService struct {
	tasks      ports.TaskRepository
	projects   ports.ProjectRepository
	sortPolicy domain.TaskSortPolicy
	opts       options
}

func NewTaskService(
	tasks ports.TaskRepository,
	projects ports.ProjectRepository,
	sortPolicy domain.TaskSortPolicy,
	opts ...Option,
) *TaskService {
	if sortPolicy == "" {
		sortPolicy = domain.TaskSortAuto
	}
	return &TaskService{tasks: tasks, projects: projects, sortPolicy: sortPolicy, opts: buildOptions(opts)}
}

func (s *TaskService) CreateTask(ctx context.Context, caller domain.CallerIdentity, in domain.CreateTaskInput) (domain.Task, error) {
	if err := caller.Require(); err != nil {
		return domain.Task{}, err
	}

	task, err := domain.NewTask(s.opts.newID(), caller.UserID, in, s.opts.now())
	if err != nil {
		return domain.Task{}, err
	}

	// Missing and foreign projects are reported the same way.
	project, err := s.projects.FindProject(ctx, caller.UserID, task.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}
	if !project.IsActive {
		return domain.Task{}, domain.ErrProjectNotFound
	}

	if err := s.tasks.CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	task.Project = &project
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, caller domain.CallerIdentity, id string) (domain.Task, error) {
	if err := caller.Require(); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.FindTask(ctx, caller.UserID, id)
}

func (s *TaskService) ListTasks(ctx context.Context, caller domain.CallerIdentity, filter domain.TaskFilter) ([]domain.Task, error) {
	if err := caller.Require(); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	filter.OwnerID = caller.UserID
	return s.tasks.ListTasks(ctx, filter, s.sortPolicy.OrderFor(filter))
}

func (s *TaskService) UpdateTask(ctx context.Context, caller domain.CallerIdentity, id string, in domain.UpdateTaskInput) (domain.Task, error) {
	if err := caller.Require(); err != nil {
		return domain.Task{}, err
	}

	task, err := s.tasks.FindTask(ctx, caller.UserID, id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := task.Apply(in, s.opts.now()); err != nil {
		return domain.Task{}, err
	}

	if err := s.tasks.UpdateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, caller domain.CallerIdentity, id string) error {
	if err := caller.Require(); err != nil {
		return err
	}

	if _, err := s.tasks.FindTask(ctx, caller.UserID, id); err != nil {
		return err
	}

	return s.tasks.DeleteTask(ctx, caller.UserID, id)
}

var _ ports.TaskService = (*TaskService)(nil)
