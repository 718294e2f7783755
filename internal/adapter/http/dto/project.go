package dto

type ProjectItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	OwnerID     string  `json:"ownerId"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	TaskCount   int     `json:"taskCount"`
}

type ProjectDetail struct {
	ProjectItem
	Tasks []TaskItem `json:"tasks"`
}

// ProjectRef is the project embedded in task responses.
type ProjectRef struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Color       *string `json:"color" binding:"omitempty,max=32"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Color       *string `json:"color" binding:"omitempty,max=32"`
	IsActive    *bool   `json:"isActive"`
}
