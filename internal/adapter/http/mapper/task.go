package mapper

import (
	"time"

	"github.com/jongwon/todo-app/internal/adapter/http/dto"
	"github.com/jongwon/todo-app/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: copyString(task.Description),
		ProjectID:   task.ProjectID,
		OwnerID:     task.OwnerID,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   formatTime(task.CreatedAt),
		UpdatedAt:   formatTime(task.UpdatedAt),
	}

	if task.DueDate != nil {
		value := formatTime(*task.DueDate)
		item.DueDate = &value
	}

	if task.Project != nil {
		item.Project = &dto.ProjectRef{
			ID:          task.Project.ID,
			Title:       task.Project.Title,
			Description: copyString(task.Project.Description),
			Color:       task.Project.Color,
			IsActive:    task.Project.IsActive,
			CreatedAt:   formatTime(task.Project.CreatedAt),
			UpdatedAt:   formatTime(task.Project.UpdatedAt),
		}
	}

	return item
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
