package ports

import (
	"context"
	"time"

	"taskhub/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) error
	FindByID(ctx context.Context, id, userID string) (*domain.Task, error)
	List(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, int, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id, userID string) error
	Stats(ctx context.Context, userID string, now time.Time) (domain.TaskStats, error)
	// FindOwnedIDs returns the subset of ids that exist and belong to userID.
	FindOwnedIDs(ctx context.Context, userID string, ids []string) ([]string, error)
	BulkUpdate(ctx context.Context, userID string, ids []string, patch domain.BulkTaskPatch, updatedAt time.Time) (int, error)
	BulkDelete(ctx context.Context, userID string, ids []string) (int, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) (domain.TaskList, error)
	GetTask(ctx context.Context, id, userID string) (domain.Task, error)
	UpdateTask(ctx context.Context, id, userID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id, userID string) error
	GetTaskStats(ctx context.Context, userID string) (domain.TaskStats, error)
	BulkUpdateTasks(ctx context.Context, userID string, ids []string, patch domain.BulkTaskPatch) (domain.BulkUpdateResult, error)
	BulkDeleteTasks(ctx context.Context, userID string, ids []string) (domain.BulkDeleteResult, error)
	AddNote(ctx context.Context, taskID, userID, content string) (domain.Task, error)
	RemoveNote(ctx context.Context, taskID, noteID, userID string) (domain.Task, error)
}
