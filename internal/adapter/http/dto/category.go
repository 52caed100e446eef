package dto

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Color       *string `json:"color" binding:"omitempty,categorycolor"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Color       *string `json:"color" binding:"omitempty,categorycolor"`
}

type CategoryListQuery struct {
	Search    string `form:"search" binding:"omitempty,max=100"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=name createdAt updatedAt"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=ASC DESC"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type CategoryItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	UserID      string  `json:"userId"`
	TaskCount   int     `json:"taskCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CategorySummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type CategoryListResponse struct {
	Data []CategoryItem `json:"data"`
	Meta PageMeta       `json:"meta"`
}

type CategoryStatsResponse struct {
	TotalCategories         int     `json:"totalCategories"`
	CategoriesWithTasks     int     `json:"categoriesWithTasks"`
	AverageTasksPerCategory float64 `json:"averageTasksPerCategory"`
}

type DeleteCategoryResponse struct {
	Message    string `json:"message"`
	CategoryID string `json:"categoryId"`
}
