package dto

type TaskItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	ProjectID   string      `json:"projectId"`
	OwnerID     string      `json:"ownerId"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	DueDate     *string     `json:"dueDate"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
	Project     *ProjectRef `json:"project,omitempty"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	ProjectID   string  `json:"projectId"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// ListTasksQuery mirrors the query string of GET /tasks.
type ListTasksQuery struct {
	ProjectID  string `form:"projectId"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	HasDueDate string `form:"hasDueDate"`
}
