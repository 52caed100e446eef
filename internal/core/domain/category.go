package domain

import (
	"regexp"
	"strings"
	"time"
)

const DefaultCategoryColor = "#6366F1"

var categoryColorPattern = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)

// IsValidCategoryColor reports whether color is a #RRGGBB hex string.
func IsValidCategoryColor(color string) bool {
	return categoryColorPattern.MatchString(color)
}

type Category struct {
	ID          string
	UserID      string
	Name        string
	Description *string
	Color       *string
	TaskCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateCategoryInput struct {
	Name        string
	Description *string
	Color       *string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Color       *string
}

type CategorySortField string

const (
	CategorySortByName      CategorySortField = "name"
	CategorySortByCreatedAt CategorySortField = "createdAt"
	CategorySortByUpdatedAt CategorySortField = "updatedAt"
)

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

type CategoryFilter struct {
	Search    string
	SortBy    CategorySortField
	SortOrder SortOrder
	Page      PageQuery
}

// Normalize fills defaults and drops unknown sort options.
func (f CategoryFilter) Normalize() CategoryFilter {
	switch f.SortBy {
	case CategorySortByName, CategorySortByCreatedAt, CategorySortByUpdatedAt:
	default:
		f.SortBy = CategorySortByCreatedAt
	}
	if f.SortOrder != SortAsc {
		f.SortOrder = SortDesc
	}
	f.Search = strings.TrimSpace(f.Search)
	f.Page = f.Page.Normalize()
	return f
}

type CategoryList struct {
	Categories []Category
	Meta       PageMeta
}

// CategoryTaskCounts is the raw aggregate behind CategoryStats.
type CategoryTaskCounts struct {
	TotalCategories     int
	CategoriesWithTasks int
	TotalTasks          int
}

type CategoryStats struct {
	TotalCategories         int
	CategoriesWithTasks     int
	AverageTasksPerCategory float64
}
