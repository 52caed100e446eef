package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const categoryTaskCountColumn = "(SELECT COUNT(*) FROM tasks t WHERE t.category_id = c.id) AS task_count"

const categoryTaskCountsQuery = `
SELECT
  COUNT(*) AS total_categories,
  COALESCE(SUM(CASE WHEN counts.task_count > 0 THEN 1 ELSE 0 END), 0) AS categories_with_tasks,
  COALESCE(SUM(counts.task_count), 0) AS total_tasks
FROM (
  SELECT c.id, COUNT(t.id) AS task_count
  FROM categories c
  LEFT JOIN tasks t ON t.category_id = c.id
  WHERE c.user_id = ?
  GROUP BY c.id
) counts`

var categoryColumns = []string{
	"c.id", "c.user_id", "c.name", "c.description", "c.color", "c.created_at", "c.updated_at",
}

var categorySortColumns = map[domain.CategorySortField]string{
	domain.CategorySortByName:      "c.name",
	domain.CategorySortByCreatedAt: "c.created_at",
	domain.CategorySortByUpdatedAt: "c.updated_at",
}

type CategoryRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

type categoryRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Color       sql.NullString `db:"color"`
	TaskCount   int            `db:"task_count"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type categoryTaskCountsRow struct {
	TotalCategories     int `db:"total_categories"`
	CategoriesWithTasks int `db:"categories_with_tasks"`
	TotalTasks          int `db:"total_tasks"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db, sb: statementBuilder(db)}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) error {
	query, args, err := r.sb.Insert("categories").
		Columns("id", "user_id", "name", "name_key", "description", "color", "created_at", "updated_at").
		Values(
			category.ID,
			category.UserID,
			category.Name,
			strings.ToLower(category.Name),
			nullString(category.Description),
			nullString(category.Color),
			category.CreatedAt.UTC(),
			category.UpdatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id, userID string) (*domain.Category, error) {
	return r.findOne(ctx, r.selectCategories().
		Where(sq.Eq{"c.id": id}).
		Where(sq.Eq{"c.user_id": userID}))
}

func (r *CategoryRepository) FindByName(ctx context.Context, userID, name string) (*domain.Category, error) {
	return r.findOne(ctx, r.selectCategories().
		Where(sq.Eq{"c.user_id": userID}).
		Where(sq.Eq{"c.name_key": strings.ToLower(strings.TrimSpace(name))}))
}

func (r *CategoryRepository) List(ctx context.Context, userID string, filter domain.CategoryFilter) ([]domain.Category, int, error) {
	where := sq.And{sq.Eq{"c.user_id": userID}}
	if filter.Search != "" {
		// name_key is lowercased in Go, so non-ASCII letters fold on every driver.
		where = append(where, likeExpr("c.name_key", filter.Search))
	}

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From("categories c").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("counting categories: %w", err)
	}

	sortColumn, ok := categorySortColumns[filter.SortBy]
	if !ok {
		sortColumn = "c.created_at"
	}
	direction := "DESC"
	if filter.SortOrder == domain.SortAsc {
		direction = "ASC"
	}

	query, args, err := r.selectCategories().
		Where(where).
		OrderBy(sortColumn+" "+direction, "c.id "+direction).
		Limit(uint64(filter.Page.Limit)).
		Offset(uint64(filter.Page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("selecting categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}
	return categories, total, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) error {
	query, args, err := r.sb.Update("categories").
		Set("name", category.Name).
		Set("name_key", strings.ToLower(category.Name)).
		Set("description", nullString(category.Description)).
		Set("color", nullString(category.Color)).
		Set("updated_at", category.UpdatedAt.UTC()).
		Where(sq.Eq{"id": category.ID}).
		Where(sq.Eq{"user_id": category.UserID}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("updating category: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete unsets category_id on the owner's tasks before removing the
// category, so engines without ON DELETE SET NULL behave the same.
func (r *CategoryRepository) Delete(ctx context.Context, id, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	detachQuery, detachArgs, err := r.sb.Update("tasks").
		Set("category_id", nil).
		Where(sq.Eq{"category_id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, detachQuery, detachArgs...); err != nil {
		return fmt.Errorf("detaching tasks from category: %w", err)
	}

	deleteQuery, deleteArgs, err := r.sb.Delete("categories").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrCategoryNotFound
	}

	return tx.Commit()
}

func (r *CategoryRepository) TaskCounts(ctx context.Context, userID string) (domain.CategoryTaskCounts, error) {
	var row categoryTaskCountsRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(categoryTaskCountsQuery), userID); err != nil {
		return domain.CategoryTaskCounts{}, fmt.Errorf("counting category tasks: %w", err)
	}
	return domain.CategoryTaskCounts{
		TotalCategories:     row.TotalCategories,
		CategoriesWithTasks: row.CategoriesWithTasks,
		TotalTasks:          row.TotalTasks,
	}, nil
}

func (r *CategoryRepository) selectCategories() sq.SelectBuilder {
	return r.sb.Select(categoryColumns...).Column(categoryTaskCountColumn).From("categories c")
}

func (r *CategoryRepository) findOne(ctx context.Context, builder sq.SelectBuilder) (*domain.Category, error) {
	query, args, err := builder.Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var row categoryRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("selecting category: %w", err)
	}

	category := mapCategoryRowToDomainCategory(row)
	return &category, nil
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	category := domain.Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		TaskCount: row.TaskCount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		category.Description = &value
	}

	if row.Color.Valid {
		value := row.Color.String
		category.Color = &value
	}

	return category
}
