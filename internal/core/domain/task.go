package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string
	Title       string
	Description *string
	ProjectID   string
	OwnerID     string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Project     *Project
}

type CreateTaskInput struct {
	Title       string
	Description *string
	ProjectID   string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *time.Time
}

type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	DueDate        *time.Time
	DueDateSet     bool
}

func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil && !in.DescriptionSet && in.Status == nil && in.Priority == nil && !in.DueDateSet
}

// NewTask validates in and fills the status, priority and due date defaults.
// Project existence and ownership are checked by the caller.
func NewTask(id, ownerID string, in CreateTaskInput, now time.Time) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, NewValidationError("title", MsgTitleRequired)
	}

	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return Task{}, NewValidationError("projectId", MsgProjectRequired)
	}

	status := TaskStatusTodo
	if in.Status != nil {
		if !in.Status.Valid() {
			return Task{}, NewValidationError("status", MsgInvalidStatus)
		}
		status = *in.Status
	}

	priority := TaskPriorityMedium
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return Task{}, NewValidationError("priority", MsgInvalidPriority)
		}
		priority = *in.Priority
	}

	now = now.UTC()
	return Task{
		ID:          id,
		Title:       title,
		Description: copyString(in.Description),
		ProjectID:   projectID,
		OwnerID:     ownerID,
		Status:      status,
		Priority:    priority,
		DueDate:     copyTime(in.DueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply merges a partial update into t. Any status may move to any other.
func (t *Task) Apply(in UpdateTaskInput, now time.Time) error {
	next := *t

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return NewValidationError("title", MsgTitleRequired)
		}
		next.Title = title
	}

	if in.DescriptionSet {
		next.Description = copyString(in.Description)
	}

	if in.Status != nil {
		if !in.Status.Valid() {
			return NewValidationError("status", MsgInvalidStatus)
		}
		next.Status = *in.Status
	}

	if in.Priority != nil {
		if !in.Priority.Valid() {
			return NewValidationError("priority", MsgInvalidPriority)
		}
		next.Priority = *in.Priority
	}

	if in.DueDateSet {
		next.DueDate = copyTime(in.DueDate)
	}

	next.UpdatedAt = now.UTC()
	*t = next
	return nil
}

const dateOnlyLayout = "2006-01-02"

// ParseDueDate accepts RFC 3339 timestamps and date-only values. Date-only
// values are normalized to midnight UTC.
func ParseDueDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, NewValidationError(field, MsgInvalidDueDate)
}

// ParseRangeEnd parses an inclusive upper bound: a date-only value covers
// the whole day.
func ParseRangeEnd(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond), nil
	}
	return ParseDueDate(field, value)
}

func copyTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	v := value.UTC()
	return &v
}
