package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// CompletionForStatus returns the isCompleted value implied by status.
// ok is false for statuses that must leave isCompleted untouched.
func CompletionForStatus(status TaskStatus) (completed bool, ok bool) {
	switch status {
	case TaskStatusCompleted:
		return true, true
	case TaskStatusPending, TaskStatusInProgress:
		return false, true
	}
	return false, false
}

type Note struct {
	ID        string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	IsCompleted bool
	CategoryID  *string
	Category    *Category
	Notes       []Note
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplyStatus sets the status and re-derives IsCompleted.
func (t *Task) ApplyStatus(status TaskStatus) {
	t.Status = status
	if completed, ok := CompletionForStatus(status); ok {
		t.IsCompleted = completed
	}
}

// IsOverdue reports whether the task is past due and not completed at now.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != TaskStatusCompleted
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    TaskPriority
	DueDate     *time.Time
	CategoryID  *string
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *time.Time
	CategoryID  *string
}

type TaskFilter struct {
	Status     *TaskStatus
	Priority   *TaskPriority
	CategoryID *string
	Search     string
	Page       PageQuery
}

type TaskList struct {
	Tasks []Task
	Meta  PageMeta
}

type TaskStats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Overdue    int
}

// BulkTaskPatch is applied to every task of a bulk update. IsCompleted is
// derived from Status by the service before it reaches a store.
type BulkTaskPatch struct {
	Status      *TaskStatus
	Priority    *TaskPriority
	CategoryID  *string
	IsCompleted *bool
}

func (p BulkTaskPatch) IsEmpty() bool {
	return p.Status == nil && p.Priority == nil && p.CategoryID == nil && p.IsCompleted == nil
}

type BulkUpdateResult struct {
	UpdatedCount int
	FailedIDs    []string
}

type BulkDeleteResult struct {
	DeletedCount int
	FailedIDs    []string
}
