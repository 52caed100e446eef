package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

var taskColumns = []string{
	"t.id",
	"t.user_id",
	"t.category_id",
	"t.title",
	"t.description",
	"t.status",
	"t.priority",
	"t.due_date",
	"t.is_completed",
	"t.notes",
	"t.created_at",
	"t.updated_at",
	"c.name AS category_name",
	"c.color AS category_color",
}

type TaskRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

type taskRow struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	CategoryID    sql.NullString `db:"category_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	Status        string         `db:"status"`
	Priority      string         `db:"priority"`
	DueDate       sql.NullTime   `db:"due_date"`
	IsCompleted   bool           `db:"is_completed"`
	Notes         noteList       `db:"notes"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	CategoryName  sql.NullString `db:"category_name"`
	CategoryColor sql.NullString `db:"category_color"`
}

type taskStatsRow struct {
	Total      int `db:"total"`
	Pending    int `db:"pending"`
	InProgress int `db:"in_progress"`
	Completed  int `db:"completed"`
	Overdue    int `db:"overdue"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, sb: statementBuilder(db)}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	query, args, err := r.sb.Insert("tasks").
		Columns(
			"id", "user_id", "category_id", "title", "description", "status", "priority",
			"due_date", "is_completed", "notes", "created_at", "updated_at",
		).
		Values(
			task.ID,
			task.UserID,
			nullString(task.CategoryID),
			task.Title,
			nullString(task.Description),
			string(task.Status),
			string(task.Priority),
			nullTime(task.DueDate),
			task.IsCompleted,
			toNoteList(task.Notes),
			task.CreatedAt.UTC(),
			task.UpdatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id, userID string) (*domain.Task, error) {
	query, args, err := r.selectTasks().
		Where(sq.Eq{"t.id": id}).
		Where(sq.Eq{"t.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("selecting task: %w", err)
	}

	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, int, error) {
	where := sq.And{sq.Eq{"t.user_id": userID}}
	if filter.Status != nil {
		where = append(where, sq.Eq{"t.status": string(*filter.Status)})
	}
	if filter.Priority != nil {
		where = append(where, sq.Eq{"t.priority": string(*filter.Priority)})
	}
	if filter.CategoryID != nil {
		where = append(where, sq.Eq{"t.category_id": *filter.CategoryID})
	}
	if filter.Search != "" {
		where = append(where, sq.Or{
			likeExpr("LOWER(t.title)", filter.Search),
			likeExpr("LOWER(t.description)", filter.Search),
		})
	}

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From("tasks t").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("counting tasks: %w", err)
	}

	query, args, err := r.selectTasks().
		Where(where).
		OrderBy("t.created_at DESC", "t.id DESC").
		Limit(uint64(filter.Page.Limit)).
		Offset(uint64(filter.Page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("selecting tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, total, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	query, args, err := r.sb.Update("tasks").
		Set("category_id", nullString(task.CategoryID)).
		Set("title", task.Title).
		Set("description", nullString(task.Description)).
		Set("status", string(task.Status)).
		Set("priority", string(task.Priority)).
		Set("due_date", nullTime(task.DueDate)).
		Set("is_completed", task.IsCompleted).
		Set("notes", toNoteList(task.Notes)).
		Set("updated_at", task.UpdatedAt.UTC()).
		Where(sq.Eq{"id": task.ID}).
		Where(sq.Eq{"user_id": task.UserID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID string) error {
	query, args, err := r.sb.Delete("tasks").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Stats(ctx context.Context, userID string, now time.Time) (domain.TaskStats, error) {
	query, args, err := r.sb.Select(
		"COUNT(*) AS total",
		"COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending",
		"COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress",
		"COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed",
	).
		Column(sq.Expr(
			"COALESCE(SUM(CASE WHEN due_date IS NOT NULL AND due_date < ? AND status <> 'completed' THEN 1 ELSE 0 END), 0) AS overdue",
			now.UTC(),
		)).
		From("tasks").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.TaskStats{}, err
	}

	var row taskStatsRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return domain.TaskStats{}, fmt.Errorf("computing task stats: %w", err)
	}
	return domain.TaskStats{
		Total:      row.Total,
		Pending:    row.Pending,
		InProgress: row.InProgress,
		Completed:  row.Completed,
		Overdue:    row.Overdue,
	}, nil
}

func (r *TaskRepository) FindOwnedIDs(ctx context.Context, userID string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	query, args, err := r.sb.Select("id").
		From("tasks").
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	owned := []string{}
	if err := r.db.SelectContext(ctx, &owned, query, args...); err != nil {
		return nil, fmt.Errorf("selecting owned task ids: %w", err)
	}
	return owned, nil
}

func (r *TaskRepository) BulkUpdate(ctx context.Context, userID string, ids []string, patch domain.BulkTaskPatch, updatedAt time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	builder := r.sb.Update("tasks")
	if patch.Status != nil {
		builder = builder.Set("status", string(*patch.Status))
	}
	if patch.IsCompleted != nil {
		builder = builder.Set("is_completed", *patch.IsCompleted)
	}
	if patch.Priority != nil {
		builder = builder.Set("priority", string(*patch.Priority))
	}
	if patch.CategoryID != nil {
		builder = builder.Set("category_id", *patch.CategoryID)
	}
	query, args, err := builder.
		Set("updated_at", updatedAt.UTC()).
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk updating tasks: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("bulk updating tasks: %w", err)
	}
	return int(rows), nil
}

func (r *TaskRepository) BulkDelete(ctx context.Context, userID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := r.sb.Delete("tasks").
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk deleting tasks: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("bulk deleting tasks: %w", err)
	}
	return int(rows), nil
}

func (r *TaskRepository) selectTasks() sq.SelectBuilder {
	return r.sb.Select(taskColumns...).
		From("tasks t").
		LeftJoin("categories c ON c.id = t.category_id")
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		IsCompleted: row.IsCompleted,
		Notes:       row.Notes.toDomain(),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CategoryID.Valid {
		value := row.CategoryID.String
		task.CategoryID = &value
		if row.CategoryName.Valid {
			category := &domain.Category{ID: value, Name: row.CategoryName.String}
			if row.CategoryColor.Valid {
				color := row.CategoryColor.String
				category.Color = &color
			}
			task.Category = category
		}
	}

	return task
}
