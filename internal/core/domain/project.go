package domain

import (
	"strings"
	"time"
)

const DefaultProjectColor = "#3B82F6"

type Project struct {
	ID          string
	Title       string
	Description *string
	Color       string
	OwnerID     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	TaskCount   int
}

// ProjectWithTasks is a project together with its tasks, newest first.
type ProjectWithTasks struct {
	Project
	Tasks []Task
}

type CreateProjectInput struct {
	Title       string
	Description *string
	Color       *string
}

type UpdateProjectInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Color          *string
	IsActive       *bool
}

func (in UpdateProjectInput) Empty() bool {
	return in.Title == nil && !in.DescriptionSet && in.Color == nil && in.IsActive == nil
}

// NewProject builds an active project owned by ownerID.
func NewProject(id, ownerID string, in CreateProjectInput, now time.Time) (Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Project{}, NewValidationError("title", MsgTitleRequired)
	}

	color := DefaultProjectColor
	if in.Color != nil && strings.TrimSpace(*in.Color) != "" {
		color = strings.TrimSpace(*in.Color)
	}

	now = now.UTC()
	return Project{
		ID:          id,
		Title:       title,
		Description: copyString(in.Description),
		Color:       color,
		OwnerID:     ownerID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply merges a partial update into p. The active -> inactive transition is
// one-way: reactivating a deleted project is rejected.
func (p *Project) Apply(in UpdateProjectInput, now time.Time) error {
	next := *p

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

	if in.Color != nil {
		color := strings.TrimSpace(*in.Color)
		if color == "" {
			return NewValidationError("color", MsgColorRequired)
		}
		next.Color = color
	}

	if in.IsActive != nil {
		if *in.IsActive && !p.IsActive {
			return NewValidationError("isActive", MsgProjectReactivation)
		}
		next.IsActive = *in.IsActive
	}

	next.UpdatedAt = now.UTC()
	*p = next
	return nil
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
