package memory

import (
	"context"
	"sort"
	"strings"

	"taskhub/internal/core/domain"
)

type CategoryStore struct {
	store *Store
}

func (c *CategoryStore) Create(_ context.Context, category domain.Category) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.nameTakenLocked(category.UserID, category.Name, category.ID) {
		return domain.ErrCategoryAlreadyExists
	}
	category.TaskCount = 0
	c.store.categories[category.ID] = cloneCategory(category)
	return nil
}

func (c *CategoryStore) FindByID(_ context.Context, id, userID string) (*domain.Category, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	category, ok := c.store.categories[id]
	if !ok || category.UserID != userID {
		return nil, domain.ErrCategoryNotFound
	}
	found := c.withTaskCountLocked(category)
	return &found, nil
}

func (c *CategoryStore) FindByName(_ context.Context, userID, name string) (*domain.Category, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	for _, category := range c.store.categories {
		if category.UserID == userID && strings.EqualFold(category.Name, name) {
			found := c.withTaskCountLocked(category)
			return &found, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (c *CategoryStore) List(_ context.Context, userID string, filter domain.CategoryFilter) ([]domain.Category, int, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	matched := make([]domain.Category, 0)
	for _, category := range c.store.categories {
		if category.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(category.Name), search) {
			continue
		}
		matched = append(matched, c.withTaskCountLocked(category))
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	sort.SliceStable(matched, func(i, j int) bool {
		less := categoryLess(matched[i], matched[j], filter.SortBy)
		if filter.SortOrder == domain.SortAsc {
			return less
		}
		return categoryLess(matched[j], matched[i], filter.SortBy)
	})

	return paginate(matched, filter.Page), len(matched), nil
}

func (c *CategoryStore) Update(_ context.Context, category domain.Category) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	existing, ok := c.store.categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return domain.ErrCategoryNotFound
	}
	if c.nameTakenLocked(category.UserID, category.Name, category.ID) {
		return domain.ErrCategoryAlreadyExists
	}
	c.store.categories[category.ID] = cloneCategory(category)
	return nil
}

func (c *CategoryStore) Delete(_ context.Context, id, userID string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	category, ok := c.store.categories[id]
	if !ok || category.UserID != userID {
		return domain.ErrCategoryNotFound
	}
	for taskID, task := range c.store.tasks {
		if task.CategoryID != nil && *task.CategoryID == id {
			task.CategoryID = nil
			c.store.tasks[taskID] = task
		}
	}
	delete(c.store.categories, id)
	return nil
}

func (c *CategoryStore) TaskCounts(_ context.Context, userID string) (domain.CategoryTaskCounts, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	var counts domain.CategoryTaskCounts
	for _, category := range c.store.categories {
		if category.UserID != userID {
			continue
		}
		counts.TotalCategories++
		n := c.taskCountLocked(category.ID)
		if n > 0 {
			counts.CategoriesWithTasks++
		}
		counts.TotalTasks += n
	}
	return counts, nil
}

func (c *CategoryStore) nameTakenLocked(userID, name, selfID string) bool {
	for _, category := range c.store.categories {
		if category.ID != selfID && category.UserID == userID && strings.EqualFold(category.Name, name) {
			return true
		}
	}
	return false
}

func (c *CategoryStore) taskCountLocked(categoryID string) int {
	n := 0
	for _, task := range c.store.tasks {
		if task.CategoryID != nil && *task.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func (c *CategoryStore) withTaskCountLocked(category domain.Category) domain.Category {
	category = cloneCategory(category)
	category.TaskCount = c.taskCountLocked(category.ID)
	return category
}

func categoryLess(a, b domain.Category, sortBy domain.CategorySortField) bool {
	switch sortBy {
	case domain.CategorySortByName:
		return a.Name < b.Name
	case domain.CategorySortByUpdatedAt:
		return a.UpdatedAt.Before(b.UpdatedAt)
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func cloneCategory(category domain.Category) domain.Category {
	category.Description = cloneString(category.Description)
	category.Color = cloneString(category.Color)
	return category
}

func paginate[T any](items []T, page domain.PageQuery) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
