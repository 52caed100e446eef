package service

import (
	"context"
	"fmt"
	"strings"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type TaskService struct {
	taskRepository     ports.TaskRepository
	categoryRepository ports.CategoryRepository
	rt                 runtime
}

func NewTaskService(taskRepository ports.TaskRepository, categoryRepository ports.CategoryRepository, opts ...Option) *TaskService {
	return &TaskService{
		taskRepository:     taskRepository,
		categoryRepository: categoryRepository,
		rt:                 newRuntime(opts),
	}
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrInvalidInput
	}

	priority := domain.TaskPriorityMedium
	if input.Priority != "" {
		if !input.Priority.IsValid() {
			return domain.Task{}, domain.ErrInvalidInput
		}
		priority = input.Priority
	}

	now := s.rt.now()
	task := domain.Task{
		ID:          s.rt.newID(),
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		Status:      domain.TaskStatusPending,
		Priority:    priority,
		DueDate:     input.DueDate,
		IsCompleted: false,
		Notes:       []domain.Note{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.CategoryID != nil {
		category, err := s.ownedCategory(ctx, *input.CategoryID, userID)
		if err != nil {
			return domain.Task{}, err
		}
		task.CategoryID = &category.ID
		task.Category = category
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) (domain.TaskList, error) {
	filter.Page = filter.Page.Normalize()
	filter.Search = strings.TrimSpace(filter.Search)

	tasks, total, err := s.taskRepository.List(ctx, userID, filter)
	if err != nil {
		return domain.TaskList{}, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return domain.TaskList{
		Tasks: tasks,
		Meta:  domain.NewPageMeta(total, filter.Page),
	}, nil
}

func (s *TaskService) GetTask(ctx context.Context, id, userID string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id, userID)
	if err != nil {
		return domain.Task{}, err
	}
	return *task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id, userID string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id, userID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return domain.Task{}, domain.ErrInvalidInput
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return domain.Task{}, domain.ErrInvalidInput
		}
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.CategoryID != nil {
		category, err := s.ownedCategory(ctx, *input.CategoryID, userID)
		if err != nil {
			return domain.Task{}, err
		}
		task.CategoryID = &category.ID
		task.Category = category
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return domain.Task{}, domain.ErrInvalidInput
		}
		task.ApplyStatus(*input.Status)
	}
	task.UpdatedAt = s.rt.now()

	if err := s.taskRepository.Update(ctx, *task); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	return *task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id, userID string) error {
	if _, err := s.taskRepository.FindByID(ctx, id, userID); err != nil {
		return err
	}
	return s.taskRepository.Delete(ctx, id, userID)
}

func (s *TaskService) GetTaskStats(ctx context.Context, userID string) (domain.TaskStats, error) {
	stats, err := s.taskRepository.Stats(ctx, userID, s.rt.now())
	if err != nil {
		return domain.TaskStats{}, fmt.Errorf("task stats: %w", err)
	}
	return stats, nil
}

// BulkUpdateTasks partitions ids into owned and failed, then applies patch to
// the owned ones in a single write. The partition and the write are separate
// store calls.
func (s *TaskService) BulkUpdateTasks(ctx context.Context, userID string, ids []string, patch domain.BulkTaskPatch) (domain.BulkUpdateResult, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return domain.BulkUpdateResult{}, domain.ErrInvalidInput
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return domain.BulkUpdateResult{}, domain.ErrInvalidInput
	}
	if patch.CategoryID != nil {
		if _, err := s.ownedCategory(ctx, *patch.CategoryID, userID); err != nil {
			return domain.BulkUpdateResult{}, err
		}
	}
	patch.IsCompleted = nil
	if patch.Status != nil {
		if completed, ok := domain.CompletionForStatus(*patch.Status); ok {
			patch.IsCompleted = &completed
		}
	}

	owned, failed, err := s.partition(ctx, userID, ids)
	if err != nil {
		return domain.BulkUpdateResult{}, err
	}

	result := domain.BulkUpdateResult{FailedIDs: failed}
	if len(owned) == 0 {
		return result, nil
	}

	updated, err := s.taskRepository.BulkUpdate(ctx, userID, owned, patch, s.rt.now())
	if err != nil {
		return domain.BulkUpdateResult{}, fmt.Errorf("bulk update tasks: %w", err)
	}
	result.UpdatedCount = updated
	return result, nil
}

func (s *TaskService) BulkDeleteTasks(ctx context.Context, userID string, ids []string) (domain.BulkDeleteResult, error) {
	owned, failed, err := s.partition(ctx, userID, ids)
	if err != nil {
		return domain.BulkDeleteResult{}, err
	}

	result := domain.BulkDeleteResult{FailedIDs: failed}
	if len(owned) == 0 {
		return result, nil
	}

	deleted, err := s.taskRepository.BulkDelete(ctx, userID, owned)
	if err != nil {
		return domain.BulkDeleteResult{}, fmt.Errorf("bulk delete tasks: %w", err)
	}
	result.DeletedCount = deleted
	return result, nil
}

func (s *TaskService) AddNote(ctx context.Context, taskID, userID, content string) (domain.Task, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Task{}, domain.ErrInvalidInput
	}

	task, err := s.taskRepository.FindByID(ctx, taskID, userID)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.rt.now()
	task.Notes = append(task.Notes, domain.Note{
		ID:        s.rt.newID(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	task.UpdatedAt = now

	if err := s.taskRepository.Update(ctx, *task); err != nil {
		return domain.Task{}, fmt.Errorf("add note: %w", err)
	}
	return *task, nil
}

// RemoveNote drops noteID from the task's notes. An unknown noteID leaves the
// notes untouched and still returns the task.
func (s *TaskService) RemoveNote(ctx context.Context, taskID, noteID, userID string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID, userID)
	if err != nil {
		return domain.Task{}, err
	}

	notes := make([]domain.Note, 0, len(task.Notes))
	for _, note := range task.Notes {
		if note.ID != noteID {
			notes = append(notes, note)
		}
	}
	if len(notes) == len(task.Notes) {
		return *task, nil
	}

	task.Notes = notes
	task.UpdatedAt = s.rt.now()
	if err := s.taskRepository.Update(ctx, *task); err != nil {
		return domain.Task{}, fmt.Errorf("remove note: %w", err)
	}
	return *task, nil
}

func (s *TaskService) ownedCategory(ctx context.Context, categoryID, userID string) (*domain.Category, error) {
	category, err := s.categoryRepository.FindByID(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// partition splits ids (deduplicated, order kept) into those owned by userID
// and those that are missing or belong to someone else.
func (s *TaskService) partition(ctx context.Context, userID string, ids []string) ([]string, []string, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil, []string{}, nil
	}

	ownedIDs, err := s.taskRepository.FindOwnedIDs(ctx, userID, unique)
	if err != nil {
		return nil, nil, fmt.Errorf("find owned tasks: %w", err)
	}
	ownedSet := make(map[string]struct{}, len(ownedIDs))
	for _, id := range ownedIDs {
		ownedSet[id] = struct{}{}
	}

	owned := make([]string, 0, len(ownedIDs))
	failed := []string{}
	for _, id := range unique {
		if _, ok := ownedSet[id]; ok {
			owned = append(owned, id)
			continue
		}
		failed = append(failed, id)
	}
	return owned, failed, nil
}

var _ ports.TaskService = (*TaskService)(nil)
