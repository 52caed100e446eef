package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	dbadapter "taskhub/internal/adapter/db"
	"taskhub/internal/core/domain"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

type RepositorySuite struct {
	suite.Suite

	DB         *sqlx.DB
	users      *dbadapter.UserRepository
	categories *dbadapter.CategoryRepository
	tasks      *dbadapter.TaskRepository
	now        time.Time
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	path := filepath.Join(s.T().TempDir(), "taskhub.db")
	db, err := sqlx.Connect(dbadapter.DriverSQLite, dbadapter.SQLiteDSN(path))
	s.Require().NoError(err)
	db.SetMaxOpenConns(1)
	s.Require().NoError(dbadapter.Migrate(context.Background(), db))

	s.DB = db
	s.users = dbadapter.NewUserRepository(db)
	s.categories = dbadapter.NewCategoryRepository(db)
	s.tasks = dbadapter.NewTaskRepository(db)
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	s.insertUser("u1", "ada@example.com")
	s.insertUser("u2", "grace@example.com")
}

func (s *RepositorySuite) TearDownTest() {
	s.Require().NoError(s.DB.Close())
}

func (s *RepositorySuite) insertUser(id, email string) {
	s.Require().NoError(s.users.Create(context.Background(), domain.User{
		ID:           id,
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    s.now,
		UpdatedAt:    s.now,
	}))
}

func (s *RepositorySuite) insertCategory(id, userID, name string) {
	color := domain.DefaultCategoryColor
	s.Require().NoError(s.categories.Create(context.Background(), domain.Category{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Color:     &color,
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}))
}

func (s *RepositorySuite) insertTask(id, userID string, categoryID *string, offset time.Duration) domain.Task {
	task := domain.Task{
		ID:         id,
		UserID:     userID,
		Title:      "Task " + id,
		Status:     domain.TaskStatusPending,
		Priority:   domain.TaskPriorityMedium,
		CategoryID: categoryID,
		Notes:      []domain.Note{},
		CreatedAt:  s.now.Add(offset),
		UpdatedAt:  s.now.Add(offset),
	}
	s.Require().NoError(s.tasks.Create(context.Background(), task))
	return task
}

func (s *RepositorySuite) TestUsers_EmailIsUnique() {
	err := s.users.Create(context.Background(), domain.User{
		ID: "u3", Email: "ada@example.com", PasswordHash: "x", CreatedAt: s.now, UpdatedAt: s.now,
	})
	s.Require().ErrorIs(err, domain.ErrEmailAlreadyExists)

	user, err := s.users.FindByEmail(context.Background(), "ada@example.com")
	s.Require().NoError(err)
	s.Require().Equal("u1", user.ID)
	s.Require().True(user.IsActive)

	_, err = s.users.FindByID(context.Background(), "missing")
	s.Require().ErrorIs(err, domain.ErrUserNotFound)
}

func (s *RepositorySuite) TestCategories_NameUniqueIgnoringCasePerOwner() {
	ctx := context.Background()
	s.insertCategory("c1", "u1", "Work")

	err := s.categories.Create(ctx, domain.Category{
		ID: "c2", UserID: "u1", Name: "WORK", CreatedAt: s.now, UpdatedAt: s.now,
	})
	s.Require().ErrorIs(err, domain.ErrCategoryAlreadyExists)

	s.insertCategory("c3", "u2", "work")

	found, err := s.categories.FindByName(ctx, "u1", "wOrK")
	s.Require().NoError(err)
	s.Require().Equal("c1", found.ID)

	_, err = s.categories.FindByID(ctx, "c1", "u2")
	s.Require().ErrorIs(err, domain.ErrCategoryNotFound)
}

func (s *RepositorySuite) TestCategories_ListSearchSortAndTaskCount() {
	ctx := context.Background()
	s.insertCategory("c1", "u1", "Work")
	s.insertCategory("c2", "u1", "Home")
	s.insertCategory("c3", "u1", "Homework")
	categoryID := "c2"
	s.insertTask("t1", "u1", &categoryID, 0)

	categories, total, err := s.categories.List(ctx, "u1", domain.CategoryFilter{
		Search:    "HOME",
		SortBy:    domain.CategorySortByName,
		SortOrder: domain.SortAsc,
		Page:      domain.PageQuery{Page: 1, Limit: 10},
	})
	s.Require().NoError(err)
	s.Require().Equal(2, total)
	s.Require().Len(categories, 2)
	s.Require().Equal("Home", categories[0].Name)
	s.Require().Equal(1, categories[0].TaskCount)
	s.Require().Equal("Homework", categories[1].Name)
	s.Require().Equal(0, categories[1].TaskCount)

	counts, err := s.categories.TaskCounts(ctx, "u1")
	s.Require().NoError(err)
	s.Require().Equal(domain.CategoryTaskCounts{TotalCategories: 3, CategoriesWithTasks: 1, TotalTasks: 1}, counts)
}

func (s *RepositorySuite) TestCategories_SearchMatchesWildcardsLiterally() {
	ctx := context.Background()
	for id, name := range map[string]string{"c1": "Work", "c2": "Home", "c3": "Été", "c4": "100% done", "c5": "snake_case", "c6": "Hi!"} {
		s.insertCategory(id, "u1", name)
	}

	cases := map[string][]string{
		"%":  {"100% done"},
		"_":  {"snake_case"},
		"!":  {"Hi!"},
		"ÉT": {"Été"},
		"o":  {"100% done", "Home", "Work"},
	}
	for search, want := range cases {
		categories, total, err := s.categories.List(ctx, "u1", domain.CategoryFilter{
			Search:    search,
			SortBy:    domain.CategorySortByName,
			SortOrder: domain.SortAsc,
			Page:      domain.PageQuery{Page: 1, Limit: 10},
		})
		s.Require().NoError(err)
		s.Require().Equal(len(want), total, search)
		names := make([]string, 0, len(categories))
		for _, category := range categories {
			names = append(names, category.Name)
		}
		s.Require().Equal(want, names, search)
	}
}

func (s *RepositorySuite) TestTasks_SearchMatchesWildcardsLiterally() {
	ctx := context.Background()
	description := "discount_code inside"
	for _, task := range []domain.Task{
		{ID: "t1", Title: "Raise price 50%"},
		{ID: "t2", Title: "Send invoice", Description: &description},
		{ID: "t3", Title: "Plain title"},
	} {
		task.UserID = "u1"
		task.Status = domain.TaskStatusPending
		task.Priority = domain.TaskPriorityMedium
		task.Notes = []domain.Note{}
		task.CreatedAt = s.now
		task.UpdatedAt = s.now
		s.Require().NoError(s.tasks.Create(ctx, task))
	}

	for search, want := range map[string]string{"50%": "t1", "%": "t1", "_": "t2"} {
		tasks, total, err := s.tasks.List(ctx, "u1", domain.TaskFilter{Search: search, Page: domain.PageQuery{Page: 1, Limit: 10}})
		s.Require().NoError(err)
		s.Require().Equal(1, total, search)
		s.Require().Equal(want, tasks[0].ID, search)
	}
}

func (s *RepositorySuite) TestCategories_DeleteDetachesTasks() {
	ctx := context.Background()
	s.insertCategory("c1", "u1", "Work")
	categoryID := "c1"
	s.insertTask("t1", "u1", &categoryID, 0)

	s.Require().NoError(s.categories.Delete(ctx, "c1", "u1"))
	s.Require().ErrorIs(s.categories.Delete(ctx, "c1", "u1"), domain.ErrCategoryNotFound)

	task, err := s.tasks.FindByID(ctx, "t1", "u1")
	s.Require().NoError(err)
	s.Require().Nil(task.CategoryID)
	s.Require().Nil(task.Category)
}

func (s *RepositorySuite) TestTasks_RoundTripWithNotesAndCategory() {
	ctx := context.Background()
	s.insertCategory("c1", "u1", "Work")
	categoryID := "c1"
	description := "write the report"
	due := s.now.Add(48 * time.Hour)

	task := domain.Task{
		ID:          "t1",
		UserID:      "u1",
		Title:       "Report",
		Description: &description,
		Status:      domain.TaskStatusInProgress,
		Priority:    domain.TaskPriorityHigh,
		DueDate:     &due,
		CategoryID:  &categoryID,
		Notes: []domain.Note{
			{ID: "n1", Content: "first", CreatedAt: s.now, UpdatedAt: s.now},
		},
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}
	s.Require().NoError(s.tasks.Create(ctx, task))

	got, err := s.tasks.FindByID(ctx, "t1", "u1")
	s.Require().NoError(err)
	s.Require().Equal("Report", got.Title)
	s.Require().Equal(description, *got.Description)
	s.Require().Equal(domain.TaskStatusInProgress, got.Status)
	s.Require().True(due.Equal(*got.DueDate))
	s.Require().NotNil(got.Category)
	s.Require().Equal("Work", got.Category.Name)
	s.Require().Len(got.Notes, 1)
	s.Require().Equal("first", got.Notes[0].Content)

	_, err = s.tasks.FindByID(ctx, "t1", "u2")
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)

	got.ApplyStatus(domain.TaskStatusCompleted)
	got.Notes = nil
	s.Require().NoError(s.tasks.Update(ctx, *got))

	updated, err := s.tasks.FindByID(ctx, "t1", "u1")
	s.Require().NoError(err)
	s.Require().True(updated.IsCompleted)
	s.Require().Empty(updated.Notes)

	got.UserID = "u2"
	s.Require().ErrorIs(s.tasks.Update(ctx, *got), domain.ErrTaskNotFound)
}

func (s *RepositorySuite) TestTasks_ListFiltersAndPaginates() {
	ctx := context.Background()
	for i, id := range []string{"t1", "t2", "t3", "t4", "t5"} {
		s.insertTask(id, "u1", nil, time.Duration(i)*time.Minute)
	}
	s.insertTask("other", "u2", nil, 0)

	tasks, total, err := s.tasks.List(ctx, "u1", domain.TaskFilter{Page: domain.PageQuery{Page: 2, Limit: 2}})
	s.Require().NoError(err)
	s.Require().Equal(5, total)
	s.Require().Len(tasks, 2)
	s.Require().Equal("t3", tasks[0].ID)
	s.Require().Equal("t2", tasks[1].ID)

	tasks, total, err = s.tasks.List(ctx, "u1", domain.TaskFilter{Page: domain.PageQuery{Page: 9, Limit: 2}})
	s.Require().NoError(err)
	s.Require().Equal(5, total)
	s.Require().Empty(tasks)

	status := domain.TaskStatusCompleted
	tasks, total, err = s.tasks.List(ctx, "u1", domain.TaskFilter{Status: &status, Page: domain.PageQuery{Page: 1, Limit: 10}})
	s.Require().NoError(err)
	s.Require().Zero(total)
	s.Require().Empty(tasks)

	tasks, total, err = s.tasks.List(ctx, "u1", domain.TaskFilter{Search: "TASK T4", Page: domain.PageQuery{Page: 1, Limit: 10}})
	s.Require().NoError(err)
	s.Require().Equal(1, total)
	s.Require().Equal("t4", tasks[0].ID)
}

func (s *RepositorySuite) TestTasks_StatsCountsOverdue() {
	ctx := context.Background()
	past := s.now.Add(-time.Hour)
	s.insertTask("t1", "u1", nil, 0)
	overdue := s.insertTask("t2", "u1", nil, time.Minute)
	overdue.DueDate = &past
	s.Require().NoError(s.tasks.Update(ctx, overdue))
	done := s.insertTask("t3", "u1", nil, 2*time.Minute)
	done.DueDate = &past
	done.ApplyStatus(domain.TaskStatusCompleted)
	s.Require().NoError(s.tasks.Update(ctx, done))

	stats, err := s.tasks.Stats(ctx, "u1", s.now)
	s.Require().NoError(err)
	s.Require().Equal(domain.TaskStats{Total: 3, Pending: 2, Completed: 1, Overdue: 1}, stats)

	stats, err = s.tasks.Stats(ctx, "u2", s.now)
	s.Require().NoError(err)
	s.Require().Equal(domain.TaskStats{}, stats)
}

func (s *RepositorySuite) TestTasks_BulkOperationsStayWithinOwner() {
	ctx := context.Background()
	s.insertTask("t1", "u1", nil, 0)
	s.insertTask("t2", "u1", nil, time.Minute)
	s.insertTask("t3", "u2", nil, 0)

	owned, err := s.tasks.FindOwnedIDs(ctx, "u1", []string{"t1", "t2", "t3", "missing"})
	s.Require().NoError(err)
	s.Require().ElementsMatch([]string{"t1", "t2"}, owned)

	status := domain.TaskStatusCompleted
	completed := true
	updated, err := s.tasks.BulkUpdate(ctx, "u1", []string{"t1", "t2", "t3"},
		domain.BulkTaskPatch{Status: &status, IsCompleted: &completed}, s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().Equal(2, updated)

	task, err := s.tasks.FindByID(ctx, "t1", "u1")
	s.Require().NoError(err)
	s.Require().True(task.IsCompleted)
	s.Require().Equal(domain.TaskStatusCompleted, task.Status)

	foreign, err := s.tasks.FindByID(ctx, "t3", "u2")
	s.Require().NoError(err)
	s.Require().Equal(domain.TaskStatusPending, foreign.Status)

	deleted, err := s.tasks.BulkDelete(ctx, "u1", []string{"t1", "t3"})
	s.Require().NoError(err)
	s.Require().Equal(1, deleted)

	s.Require().ErrorIs(s.tasks.Delete(ctx, "t1", "u1"), domain.ErrTaskNotFound)
}
