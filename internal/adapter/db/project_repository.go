package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/internal/core/ports"
)

const projectColumns = `
  p.id,
  p.title,
  p.description,
  p.color,
  p.owner_id,
  p.is_active,
  p.created_at,
  p.updated_at,
  (SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id) AS task_count
`

const findProjectQuery = `SELECT` + projectColumns + `
FROM projects p
WHERE p.id = ? AND p.owner_id = ?;
`

const listActiveProjectsQuery = `SELECT` + projectColumns + `
FROM projects p
WHERE p.owner_id = ? AND p.is_active = ?
ORDER BY p.created_at DESC, p.id;
`

const insertProjectQuery = `
INSERT INTO projects (id, title, description, color, owner_id, is_active, created_at, updated_at)
VALUES (:id, :title, :description, :color, :owner_id, :is_active, :created_at, :updated_at);
`

const updateProjectQuery = `
UPDATE projects
SET title = :title, description = :description, color = :color, is_active = :is_active, updated_at = :updated_at
WHERE id = :id AND owner_id = :owner_id;
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Color       string         `db:"color"`
	OwnerID     string         `db:"owner_id"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	TaskCount   int            `db:"task_count"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project domain.Project) error {
	if _, err := r.db.NamedExecContext(ctx, insertProjectQuery, toProjectRow(project)); err != nil {
		return domain.NewStorageError("create project", err)
	}
	return nil
}

func (r *ProjectRepository) FindProject(ctx context.Context, ownerID, id string) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, findProjectQuery, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, domain.NewStorageError("find project", err)
	}
	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) ListActiveProjects(ctx context.Context, ownerID string) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, listActiveProjectsQuery, ownerID, true); err != nil {
		return nil, domain.NewStorageError("list projects", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}
	return projects, nil
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	result, err := r.db.NamedExecContext(ctx, updateProjectQuery, toProjectRow(project))
	if err != nil {
		return domain.NewStorageError("update project", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.NewStorageError("update project", err)
	}
	if affected == 0 {
		// MySQL reports 0 for unchanged rows, so confirm the row is really gone.
		if _, err := r.FindProject(ctx, project.OwnerID, project.ID); err != nil {
			return err
		}
	}
	return nil
}

func toProjectRow(project domain.Project) projectRow {
	row := projectRow{
		ID:        project.ID,
		Title:     project.Title,
		Color:     project.Color,
		OwnerID:   project.OwnerID,
		IsActive:  project.IsActive,
		CreatedAt: project.CreatedAt.UTC(),
		UpdatedAt: project.UpdatedAt.UTC(),
		TaskCount: project.TaskCount,
	}
	if project.Description != nil {
		row.Description = sql.NullString{String: *project.Description, Valid: true}
	}
	return row
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:        row.ID,
		Title:     row.Title,
		Color:     row.Color,
		OwnerID:   row.OwnerID,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
		TaskCount: row.TaskCount,
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	return project
}
