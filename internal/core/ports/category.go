package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) error
	FindByID(ctx context.Context, id, userID string) (*domain.Category, error)
	// FindByName matches name case-insensitively within userID's categories.
	FindByName(ctx context.Context, userID, name string) (*domain.Category, error)
	List(ctx context.Context, userID string, filter domain.CategoryFilter) ([]domain.Category, int, error)
	Update(ctx context.Context, category domain.Category) error
	// Delete removes the category and unsets category_id on its tasks.
	Delete(ctx context.Context, id, userID string) error
	TaskCounts(ctx context.Context, userID string) (domain.CategoryTaskCounts, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, userID string, input domain.CreateCategoryInput) (domain.Category, error)
	ListCategories(ctx context.Context, userID string, filter domain.CategoryFilter) (domain.CategoryList, error)
	GetCategory(ctx context.Context, id, userID string) (domain.Category, error)
	UpdateCategory(ctx context.Context, id, userID string, input domain.UpdateCategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, id, userID string) error
	GetCategoryStats(ctx context.Context, userID string) (domain.CategoryStats, error)
}
