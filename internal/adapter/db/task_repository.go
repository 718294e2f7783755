package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id,
  t.title,
  t.description,
  t.project_id,
  t.owner_id,
  t.status,
  t.priority,
  t.due_date,
  t.created_at,
  t.updated_at,
  p.title AS project_title,
  p.description AS project_description,
  p.color AS project_color,
  p.is_active AS project_is_active,
  p.created_at AS project_created_at,
  p.updated_at AS project_updated_at
FROM tasks t
JOIN projects p ON p.id = t.project_id
`

const (
	orderByCreatedDesc = ` ORDER BY t.created_at DESC, t.id`
	orderByDueAsc      = ` ORDER BY CASE WHEN t.due_date IS NULL THEN 1 ELSE 0 END, t.due_date ASC, t.created_at DESC, t.id`
)

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, project_id, owner_id, status, priority, due_date, created_at, updated_at)
VALUES (:id, :title, :description, :project_id, :owner_id, :status, :priority, :due_date, :created_at, :updated_at);
`

const updateTaskQuery = `
UPDATE tasks
SET title = :title, description = :description, status = :status, priority = :priority,
  due_date = :due_date, updated_at = :updated_at
WHERE id = :id AND owner_id = :owner_id;
`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ? AND owner_id = ?;`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                 string         `db:"id"`
	Title              string         `db:"title"`
	Description        sql.NullString `db:"description"`
	ProjectID          string         `db:"project_id"`
	OwnerID            string         `db:"owner_id"`
	Status             string         `db:"status"`
	Priority           string         `db:"priority"`
	DueDate            sql.NullTime   `db:"due_date"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	ProjectTitle       string         `db:"project_title"`
	ProjectDescription sql.NullString `db:"project_description"`
	ProjectColor       string         `db:"project_color"`
	ProjectIsActive    bool           `db:"project_is_active"`
	ProjectCreatedAt   time.Time      `db:"project_created_at"`
	ProjectUpdatedAt   time.Time      `db:"project_updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, toTaskRow(task)); err != nil {
		return domain.NewStorageError("create task", err)
	}
	return nil
}

func (r *TaskRepository) FindTask(ctx context.Context, ownerID, id string) (domain.Task, error) {
	var row taskRow
	query := selectTasksQuery + `WHERE t.id = ? AND t.owner_id = ?`
	if err := r.db.GetContext(ctx, &row, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, domain.NewStorageError("find task", err)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter, order domain.TaskOrder) ([]domain.Task, error) {
	query, args := buildListTasksQuery(filter, order)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, domain.NewStorageError("list tasks", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	result, err := r.db.NamedExecContext(ctx, updateTaskQuery, toTaskRow(task))
	if err != nil {
		return domain.NewStorageError("update task", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.NewStorageError("update task", err)
	}
	if affected == 0 {
		if _, err := r.FindTask(ctx, task.OwnerID, task.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id, ownerID)
	if err != nil {
		return domain.NewStorageError("delete task", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.NewStorageError("delete task", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func buildListTasksQuery(filter domain.TaskFilter, order domain.TaskOrder) (string, []any) {
	conditions := []string{"t.owner_id = ?"}
	args := []any{filter.OwnerID}

	if filter.ProjectID != nil {
		conditions = append(conditions, "t.project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "t.due_date >= ?")
		args = append(args, filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "t.due_date <= ?")
		args = append(args, filter.EndDate.UTC())
	}
	if filter.HasDueDate {
		conditions = append(conditions, "t.due_date IS NOT NULL")
	}

	var b strings.Builder
	b.WriteString(selectTasksQuery)
	b.WriteString("WHERE ")
	b.WriteString(strings.Join(conditions, " AND "))
	switch order {
	case domain.TaskOrderDueAsc:
		b.WriteString(orderByDueAsc)
	default:
		b.WriteString(orderByCreatedDesc)
	}

	return b.String(), args
}

func toTaskRow(task domain.Task) taskRow {
	row := taskRow{
		ID:        task.ID,
		Title:     task.Title,
		ProjectID: task.ProjectID,
		OwnerID:   task.OwnerID,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt.UTC(),
		UpdatedAt: task.UpdatedAt.UTC(),
	}
	if task.Description != nil {
		row.Description = sql.NullString{String: *task.Description, Valid: true}
	}
	if task.DueDate != nil {
		row.DueDate = sql.NullTime{Time: task.DueDate.UTC(), Valid: true}
	}
	return row
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		ProjectID: row.ProjectID,
		OwnerID:   row.OwnerID,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
		Project: &domain.Project{
			ID:        row.ProjectID,
			Title:     row.ProjectTitle,
			Color:     row.ProjectColor,
			OwnerID:   row.OwnerID,
			IsActive:  row.ProjectIsActive,
			CreatedAt: row.ProjectCreatedAt.UTC(),
			UpdatedAt: row.ProjectUpdatedAt.UTC(),
		},
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time.UTC()
		task.DueDate = &value
	}

	if row.ProjectDescription.Valid {
		value := row.ProjectDescription.String
		task.Project.Description = &value
	}

	return task
}
