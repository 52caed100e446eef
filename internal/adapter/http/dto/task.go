package dto

type TaskItem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	DueDate     *string          `json:"dueDate"`
	IsCompleted bool             `json:"isCompleted"`
	UserID      string           `json:"userId"`
	CategoryID  *string          `json:"categoryId"`
	Category    *CategorySummary `json:"category,omitempty"`
	Notes       []NoteItem       `json:"notes"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate" binding:"omitempty,duedate"`
	CategoryID  *string `json:"categoryId" binding:"omitempty,uuid"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate" binding:"omitempty,duedate"`
	CategoryID  *string `json:"categoryId" binding:"omitempty,uuid"`
}

type TaskListQuery struct {
	Status     string `form:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority   string `form:"priority" binding:"omitempty,oneof=low medium high"`
	CategoryID string `form:"categoryId" binding:"omitempty,uuid"`
	Search     string `form:"search" binding:"omitempty,max=255"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type TaskListResponse struct {
	Tasks      []TaskItem `json:"tasks"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

type TaskStatsResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

type BulkUpdateTasksRequest struct {
	TaskIDs    []string `json:"taskIds" binding:"required,min=1,dive,uuid"`
	Status     *string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority   *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	CategoryID *string  `json:"categoryId" binding:"omitempty,uuid"`
}

type BulkDeleteTasksRequest struct {
	TaskIDs []string `json:"taskIds" binding:"required,min=1,dive,uuid"`
}

type BulkUpdateTasksResponse struct {
	UpdatedCount int      `json:"updatedCount"`
	FailedIDs    []string `json:"failedIds"`
}

type BulkDeleteTasksResponse struct {
	DeletedCount int      `json:"deletedCount"`
	FailedIDs    []string `json:"failedIds"`
}

type AddNoteRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type NoteItem struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
