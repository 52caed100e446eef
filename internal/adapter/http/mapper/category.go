package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	return dto.CategoryItem{
		ID:          category.ID,
		Name:        category.Name,
		Description: copyString(category.Description),
		Color:       copyString(category.Color),
		UserID:      category.UserID,
		TaskCount:   category.TaskCount,
		CreatedAt:   category.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   category.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCategoryListResponse(list domain.CategoryList) dto.CategoryListResponse {
	return dto.CategoryListResponse{
		Data: ToCategoryItems(list.Categories),
		Meta: ToPageMeta(list.Meta),
	}
}

func ToCategoryStatsResponse(stats domain.CategoryStats) dto.CategoryStatsResponse {
	return dto.CategoryStatsResponse{
		TotalCategories:         stats.TotalCategories,
		CategoriesWithTasks:     stats.CategoriesWithTasks,
		AverageTasksPerCategory: stats.AverageTasksPerCategory,
	}
}

func ToPageMeta(meta domain.PageMeta) dto.PageMeta {
	return dto.PageMeta{
		Total:      meta.Total,
		Page:       meta.Page,
		Limit:      meta.Limit,
		TotalPages: meta.TotalPages,
	}
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
