package mapper

import (
	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
	"time"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: copyString(task.Description),
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		IsCompleted: task.IsCompleted,
		UserID:      task.UserID,
		CategoryID:  copyString(task.CategoryID),
		Notes:       toNoteItems(task.Notes),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.DueDate != nil {
		value := task.DueDate.UTC().Format(time.RFC3339)
		item.DueDate = &value
	}

	if task.Category != nil {
		item.Category = &dto.CategorySummary{
			ID:    task.Category.ID,
			Name:  task.Category.Name,
			Color: copyString(task.Category.Color),
		}
	}

	return item
}

func ToTaskListResponse(list domain.TaskList) dto.TaskListResponse {
	return dto.TaskListResponse{
		Tasks:      ToTaskItems(list.Tasks),
		Total:      list.Meta.Total,
		Page:       list.Meta.Page,
		Limit:      list.Meta.Limit,
		TotalPages: list.Meta.TotalPages,
	}
}

func ToTaskStatsResponse(stats domain.TaskStats) dto.TaskStatsResponse {
	return dto.TaskStatsResponse{
		Total:      stats.Total,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		Overdue:    stats.Overdue,
	}
}

func ToBulkUpdateTasksResponse(result domain.BulkUpdateResult) dto.BulkUpdateTasksResponse {
	return dto.BulkUpdateTasksResponse{
		UpdatedCount: result.UpdatedCount,
		FailedIDs:    nonNil(result.FailedIDs),
	}
}

func ToBulkDeleteTasksResponse(result domain.BulkDeleteResult) dto.BulkDeleteTasksResponse {
	return dto.BulkDeleteTasksResponse{
		DeletedCount: result.DeletedCount,
		FailedIDs:    nonNil(result.FailedIDs),
	}
}

func toNoteItems(notes []domain.Note) []dto.NoteItem {
	items := make([]dto.NoteItem, 0, len(notes))
	for _, note := range notes {
		items = append(items, dto.NoteItem{
			ID:        note.ID,
			Content:   note.Content,
			CreatedAt: note.CreatedAt.Format(time.RFC3339),
			UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
		})
	}
	return items
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
