package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"taskhub/internal/core/domain"
)

type TaskStore struct {
	store *Store
}

func (t *TaskStore) Create(_ context.Context, task domain.Task) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	task.Category = nil
	t.store.tasks[task.ID] = cloneTask(task)
	return nil
}

func (t *TaskStore) FindByID(_ context.Context, id, userID string) (*domain.Task, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	task, ok := t.store.tasks[id]
	if !ok || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	found := t.withCategoryLocked(task)
	return &found, nil
}

func (t *TaskStore) List(_ context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, int, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	matched := make([]domain.Task, 0)
	for _, task := range t.store.tasks {
		if task.UserID != userID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		if filter.CategoryID != nil && (task.CategoryID == nil || *task.CategoryID != *filter.CategoryID) {
			continue
		}
		if search != "" && !taskMatches(task, search) {
			continue
		}
		matched = append(matched, t.withCategoryLocked(task))
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return paginate(matched, filter.Page), len(matched), nil
}

func (t *TaskStore) Update(_ context.Context, task domain.Task) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	existing, ok := t.store.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return domain.ErrTaskNotFound
	}
	task.Category = nil
	t.store.tasks[task.ID] = cloneTask(task)
	return nil
}

func (t *TaskStore) Delete(_ context.Context, id, userID string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	task, ok := t.store.tasks[id]
	if !ok || task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	delete(t.store.tasks, id)
	return nil
}

func (t *TaskStore) Stats(_ context.Context, userID string, now time.Time) (domain.TaskStats, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	var stats domain.TaskStats
	for _, task := range t.store.tasks {
		if task.UserID != userID {
			continue
		}
		stats.Total++
		switch task.Status {
		case domain.TaskStatusPending:
			stats.Pending++
		case domain.TaskStatusInProgress:
			stats.InProgress++
		case domain.TaskStatusCompleted:
			stats.Completed++
		}
		if task.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

func (t *TaskStore) FindOwnedIDs(_ context.Context, userID string, ids []string) ([]string, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	owned := make([]string, 0, len(ids))
	for _, id := range ids {
		if task, ok := t.store.tasks[id]; ok && task.UserID == userID {
			owned = append(owned, id)
		}
	}
	return owned, nil
}

func (t *TaskStore) BulkUpdate(_ context.Context, userID string, ids []string, patch domain.BulkTaskPatch, updatedAt time.Time) (int, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	updated := 0
	for _, id := range ids {
		task, ok := t.store.tasks[id]
		if !ok || task.UserID != userID {
			continue
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}
		if patch.IsCompleted != nil {
			task.IsCompleted = *patch.IsCompleted
		}
		if patch.Priority != nil {
			task.Priority = *patch.Priority
		}
		if patch.CategoryID != nil {
			task.CategoryID = cloneString(patch.CategoryID)
		}
		task.UpdatedAt = updatedAt
		t.store.tasks[id] = task
		updated++
	}
	return updated, nil
}

func (t *TaskStore) BulkDelete(_ context.Context, userID string, ids []string) (int, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		task, ok := t.store.tasks[id]
		if !ok || task.UserID != userID {
			continue
		}
		delete(t.store.tasks, id)
		deleted++
	}
	return deleted, nil
}

func (t *TaskStore) withCategoryLocked(task domain.Task) domain.Task {
	task = cloneTask(task)
	if task.CategoryID == nil {
		return task
	}
	if category, ok := t.store.categories[*task.CategoryID]; ok {
		summary := domain.Category{
			ID:    category.ID,
			Name:  category.Name,
			Color: cloneString(category.Color),
		}
		task.Category = &summary
	}
	return task
}

func taskMatches(task domain.Task, search string) bool {
	if strings.Contains(strings.ToLower(task.Title), search) {
		return true
	}
	return task.Description != nil && strings.Contains(strings.ToLower(*task.Description), search)
}

func cloneTask(task domain.Task) domain.Task {
	task.Description = cloneString(task.Description)
	task.CategoryID = cloneString(task.CategoryID)
	if task.DueDate != nil {
		due := *task.DueDate
		task.DueDate = &due
	}
	notes := make([]domain.Note, len(task.Notes))
	copy(notes, task.Notes)
	task.Notes = notes
	return task
}
