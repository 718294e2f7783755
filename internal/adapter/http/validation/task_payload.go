package validation

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/jongwon/todo-app/internal/adapter/http/dto"
	"github.com/jongwon/todo-app/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidTaskQuery   = errors.New("invalid task query")
)

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if isExplicitNull(raw, "status") || isExplicitNull(raw, "priority") {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	in := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
	}

	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		in.Status = &status
	}

	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		in.Priority = &priority
	}

	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		dueDate, err := domain.ParseDueDate("dueDate", *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		in.DueDate = &dueDate
	}

	return in, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasAnyJSONField(raw, "title", "description", "status", "priority", "dueDate") {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	for _, field := range []string{"title", "status", "priority"} {
		if isExplicitNull(raw, field) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	in := domain.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
	}

	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		in.Status = &status
	}

	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		in.Priority = &priority
	}

	if hasJSONField(raw, "dueDate") {
		in.DueDateSet = true
		if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
			dueDate, err := domain.ParseDueDate("dueDate", *req.DueDate)
			if err != nil {
				return domain.UpdateTaskInput{}, err
			}
			in.DueDate = &dueDate
		}
	}

	return in, nil
}

func BuildTaskFilter(query dto.ListTasksQuery) (domain.TaskFilter, error) {
	var filter domain.TaskFilter

	if projectID := strings.TrimSpace(query.ProjectID); projectID != "" {
		filter.ProjectID = &projectID
	}

	if value := strings.TrimSpace(query.StartDate); value != "" {
		start, err := domain.ParseDueDate("startDate", value)
		if err != nil {
			return domain.TaskFilter{}, err
		}
		filter.StartDate = &start
	}

	if value := strings.TrimSpace(query.EndDate); value != "" {
		end, err := domain.ParseRangeEnd("endDate", value)
		if err != nil {
			return domain.TaskFilter{}, err
		}
		filter.EndDate = &end
	}

	if value := strings.TrimSpace(query.HasDueDate); value != "" {
		hasDueDate, err := strconv.ParseBool(value)
		if err != nil {
			return domain.TaskFilter{}, ErrInvalidTaskQuery
		}
		filter.HasDueDate = hasDueDate
	}

	return filter, nil
}
