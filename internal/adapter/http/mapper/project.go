package mapper

import (
	"github.com/jongwon/todo-app/internal/adapter/http/dto"
	"github.com/jongwon/todo-app/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	return dto.ProjectItem{
		ID:          project.ID,
		Title:       project.Title,
		Description: copyString(project.Description),
		Color:       project.Color,
		OwnerID:     project.OwnerID,
		IsActive:    project.IsActive,
		CreatedAt:   formatTime(project.CreatedAt),
		UpdatedAt:   formatTime(project.UpdatedAt),
		TaskCount:   project.TaskCount,
	}
}

func ToProjectDetail(project domain.ProjectWithTasks) dto.ProjectDetail {
	return dto.ProjectDetail{
		ProjectItem: ToProjectItem(project.Project),
		Tasks:       ToTaskItems(project.Tasks),
	}
}
