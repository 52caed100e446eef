package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
	rt                 runtime
}

func NewCategoryService(categoryRepository ports.CategoryRepository, opts ...Option) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository, rt: newRuntime(opts)}
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID string, input domain.CreateCategoryInput) (domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Category{}, domain.ErrInvalidInput
	}
	if err := s.ensureNameAvailable(ctx, userID, name, ""); err != nil {
		return domain.Category{}, err
	}

	color := domain.DefaultCategoryColor
	if input.Color != nil {
		color = *input.Color
	}
	if !domain.IsValidCategoryColor(color) {
		return domain.Category{}, domain.ErrInvalidInput
	}

	now := s.rt.now()
	category := domain.Category{
		ID:          s.rt.newID(),
		UserID:      userID,
		Name:        name,
		Description: input.Description,
		Color:       &color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categoryRepository.Create(ctx, category); err != nil {
		return domain.Category{}, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, userID string, filter domain.CategoryFilter) (domain.CategoryList, error) {
	filter = filter.Normalize()
	categories, total, err := s.categoryRepository.List(ctx, userID, filter)
	if err != nil {
		return domain.CategoryList{}, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return domain.CategoryList{
		Categories: categories,
		Meta:       domain.NewPageMeta(total, filter.Page),
	}, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id, userID string) (domain.Category, error) {
	category, err := s.categoryRepository.FindByID(ctx, id, userID)
	if err != nil {
		return domain.Category{}, err
	}
	return *category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, userID string, input domain.UpdateCategoryInput) (domain.Category, error) {
	category, err := s.categoryRepository.FindByID(ctx, id, userID)
	if err != nil {
		return domain.Category{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domain.Category{}, domain.ErrInvalidInput
		}
		if name != category.Name {
			if err := s.ensureNameAvailable(ctx, userID, name, category.ID); err != nil {
				return domain.Category{}, err
			}
		}
		category.Name = name
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	if input.Color != nil {
		if !domain.IsValidCategoryColor(*input.Color) {
			return domain.Category{}, domain.ErrInvalidInput
		}
		category.Color = input.Color
	}
	category.UpdatedAt = s.rt.now()

	if err := s.categoryRepository.Update(ctx, *category); err != nil {
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	return *category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id, userID string) error {
	if _, err := s.categoryRepository.FindByID(ctx, id, userID); err != nil {
		return err
	}
	return s.categoryRepository.Delete(ctx, id, userID)
}

func (s *CategoryService) GetCategoryStats(ctx context.Context, userID string) (domain.CategoryStats, error) {
	counts, err := s.categoryRepository.TaskCounts(ctx, userID)
	if err != nil {
		return domain.CategoryStats{}, fmt.Errorf("count category tasks: %w", err)
	}

	average := 0.0
	if counts.TotalCategories > 0 {
		average = float64(counts.TotalTasks) / float64(counts.TotalCategories)
	}

	return domain.CategoryStats{
		TotalCategories:         counts.TotalCategories,
		CategoriesWithTasks:     counts.CategoriesWithTasks,
		AverageTasksPerCategory: math.Round(average*100) / 100,
	}, nil
}

// ensureNameAvailable fails with ErrCategoryAlreadyExists when another category
// of userID (other than selfID) already uses name, ignoring case.
func (s *CategoryService) ensureNameAvailable(ctx context.Context, userID, name, selfID string) error {
	existing, err := s.categoryRepository.FindByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil
		}
		return fmt.Errorf("find category by name: %w", err)
	}
	if existing.ID == selfID {
		return nil
	}
	return domain.ErrCategoryAlreadyExists
}

var _ ports.CategoryService = (*CategoryService)(nil)
