package service_test

import (
	"context"
	"testing"
	"time"

	"taskhub/internal/adapter/memory"
	"taskhub/internal/app/service"
	"taskhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateDefaults(t *testing.T) {
	f := newFixture()

	task, err := f.tasks.CreateTask(context.Background(), "u1", domain.CreateTaskInput{Title: "Write report"})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
	assert.False(t, task.IsCompleted)
	assert.NotNil(t, task.Notes)
	assert.Empty(t, task.Notes)

	_, err = f.tasks.CreateTask(context.Background(), "u1", domain.CreateTaskInput{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.tasks.CreateTask(context.Background(), "u1", domain.CreateTaskInput{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_CategoryMustBelongToCaller(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	foreign, err := f.categories.CreateCategory(ctx, "u2", domain.CreateCategoryInput{Name: "Theirs"})
	require.NoError(t, err)

	_, err = f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "Sneaky", CategoryID: &foreign.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	own, err := f.categories.CreateCategory(ctx, "u1", domain.CreateCategoryInput{Name: "Mine"})
	require.NoError(t, err)
	task, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "Fine", CategoryID: &own.ID})
	require.NoError(t, err)
	require.NotNil(t, task.Category)
	assert.Equal(t, "Mine", task.Category.Name)
}

func TestTaskService_UpdateDerivesCompletion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	task, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "Ship"})
	require.NoError(t, err)

	updated, err := f.tasks.UpdateTask(ctx, task.ID, "u1", domain.UpdateTaskInput{Status: ptr(domain.TaskStatusCompleted)})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "Ship", updated.Title)

	updated, err = f.tasks.UpdateTask(ctx, task.ID, "u1", domain.UpdateTaskInput{Title: ptr("Ship it")})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted, "updates without status keep completion")

	updated, err = f.tasks.UpdateTask(ctx, task.ID, "u1", domain.UpdateTaskInput{Status: ptr(domain.TaskStatusInProgress)})
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)

	_, err = f.tasks.UpdateTask(ctx, task.ID, "u1", domain.UpdateTaskInput{Status: ptr(domain.TaskStatus("archived"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskService_CrossUserAccessIsNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	task, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "Private"})
	require.NoError(t, err)

	_, err = f.tasks.GetTask(ctx, task.ID, "u2")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = f.tasks.UpdateTask(ctx, task.ID, "u2", domain.UpdateTaskInput{Title: ptr("Mine now")})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.ErrorIs(t, f.tasks.DeleteTask(ctx, task.ID, "u2"), domain.ErrTaskNotFound)
	_, err = f.tasks.AddNote(ctx, task.ID, "u2", "hello")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	list, err := f.tasks.ListTasks(ctx, "u2", domain.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, list.Tasks)

	stats, err := f.tasks.GetTaskStats(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStats{}, stats)
}

func TestTaskService_ListFiltersAndPaginates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, title := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		_, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: title, Priority: domain.TaskPriorityLow})
		require.NoError(t, err)
		f.clock.Advance(time.Second)
	}
	_, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{
		Title:       "urgent",
		Description: ptr("contains ALPHA in the body"),
		Priority:    domain.TaskPriorityHigh,
	})
	require.NoError(t, err)

	list, err := f.tasks.ListTasks(ctx, "u1", domain.TaskFilter{Page: domain.PageQuery{Page: 1, Limit: 4}})
	require.NoError(t, err)
	assert.Equal(t, domain.PageMeta{Total: 6, Page: 1, Limit: 4, TotalPages: 2}, list.Meta)
	assert.Equal(t, "urgent", list.Tasks[0].Title)

	list, err = f.tasks.ListTasks(ctx, "u1", domain.TaskFilter{Search: " alpha "})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Meta.Total)

	list, err = f.tasks.ListTasks(ctx, "u1", domain.TaskFilter{Search: "alpha", Priority: ptr(domain.TaskPriorityLow)})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, "alpha", list.Tasks[0].Title)

	list, err = f.tasks.ListTasks(ctx, "u1", domain.TaskFilter{Page: domain.PageQuery{Page: 5, Limit: 4}})
	require.NoError(t, err)
	assert.Empty(t, list.Tasks)
	assert.Equal(t, 6, list.Meta.Total)
}

func TestTaskService_StatsCountsOverdueAgainstClock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	due := f.clock.Now().Add(time.Hour)

	_, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "later", DueDate: &due})
	require.NoError(t, err)
	done, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "done", DueDate: &due})
	require.NoError(t, err)
	_, err = f.tasks.UpdateTask(ctx, done.ID, "u1", domain.UpdateTaskInput{Status: ptr(domain.TaskStatusCompleted)})
	require.NoError(t, err)

	stats, err := f.tasks.GetTaskStats(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, stats.Overdue)

	f.clock.Advance(2 * time.Hour)
	stats, err = f.tasks.GetTaskStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStats{Total: 2, Pending: 1, Completed: 1, Overdue: 1}, stats)
}

func TestTaskService_BulkUpdatePartitionsIDs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	mine1, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "one"})
	require.NoError(t, err)
	mine2, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "two"})
	require.NoError(t, err)
	theirs, err := f.tasks.CreateTask(ctx, "u2", domain.CreateTaskInput{Title: "three"})
	require.NoError(t, err)

	result, err := f.tasks.BulkUpdateTasks(ctx, "u1",
		[]string{mine1.ID, theirs.ID, "missing", mine2.ID, mine1.ID},
		domain.BulkTaskPatch{Status: ptr(domain.TaskStatusCompleted)},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, result.UpdatedCount)
	assert.Equal(t, []string{theirs.ID, "missing"}, result.FailedIDs)

	got, err := f.tasks.GetTask(ctx, mine2.ID, "u1")
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)

	untouched, err := f.tasks.GetTask(ctx, theirs.ID, "u2")
	require.NoError(t, err)
	assert.False(t, untouched.IsCompleted)
	assert.Equal(t, domain.TaskStatusPending, untouched.Status)
}

func TestTaskService_BulkUpdateRejectsForeignCategory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	foreign, err := f.categories.CreateCategory(ctx, "u2", domain.CreateCategoryInput{Name: "Theirs"})
	require.NoError(t, err)
	task, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "one"})
	require.NoError(t, err)

	_, err = f.tasks.BulkUpdateTasks(ctx, "u1", []string{task.ID}, domain.BulkTaskPatch{CategoryID: &foreign.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestTaskService_BulkDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	mine, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "one"})
	require.NoError(t, err)
	theirs, err := f.tasks.CreateTask(ctx, "u2", domain.CreateTaskInput{Title: "two"})
	require.NoError(t, err)

	result, err := f.tasks.BulkDeleteTasks(ctx, "u1", []string{mine.ID, theirs.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.BulkDeleteResult{DeletedCount: 1, FailedIDs: []string{theirs.ID}}, result)

	_, err = f.tasks.GetTask(ctx, theirs.ID, "u2")
	assert.NoError(t, err)
	_, err = f.tasks.GetTask(ctx, mine.ID, "u1")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_Notes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	task, err := f.tasks.CreateTask(ctx, "u1", domain.CreateTaskInput{Title: "Notes"})
	require.NoError(t, err)

	withNote, err := f.tasks.AddNote(ctx, task.ID, "u1", " remember the milk ")
	require.NoError(t, err)
	require.Len(t, withNote.Notes, 1)
	assert.Equal(t, "remember the milk", withNote.Notes[0].Content)

	withTwo, err := f.tasks.AddNote(ctx, task.ID, "u1", "and eggs")
	require.NoError(t, err)
	require.Len(t, withTwo.Notes, 2)
	assert.Equal(t, "and eggs", withTwo.Notes[1].Content)

	_, err = f.tasks.AddNote(ctx, task.ID, "u1", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	unchanged, err := f.tasks.RemoveNote(ctx, task.ID, "no-such-note", "u1")
	require.NoError(t, err)
	assert.Len(t, unchanged.Notes, 2)

	removed, err := f.tasks.RemoveNote(ctx, task.ID, withTwo.Notes[0].ID, "u1")
	require.NoError(t, err)
	require.Len(t, removed.Notes, 1)
	assert.Equal(t, "and eggs", removed.Notes[0].Content)
}

type taskRepositoryMock struct {
	mock.Mock
	*memory.TaskStore
}

func (m *taskRepositoryMock) FindOwnedIDs(ctx context.Context, userID string, ids []string) ([]string, error) {
	args := m.Called(ctx, userID, ids)
	return args.Get(0).([]string), args.Error(1)
}

func (m *taskRepositoryMock) BulkUpdate(ctx context.Context, userID string, ids []string, patch domain.BulkTaskPatch, updatedAt time.Time) (int, error) {
	args := m.Called(ctx, userID, ids, patch, updatedAt)
	return args.Int(0), args.Error(1)
}

func TestTaskService_BulkUpdate_OneReadOneWrite(t *testing.T) {
	store := memory.NewStore()
	clock := newTestClock()
	completed := true
	status := domain.TaskStatusCompleted

	repo := &taskRepositoryMock{TaskStore: store.Tasks()}
	repo.On("FindOwnedIDs", mock.Anything, "u1", []string{"a", "b", "c"}).Return([]string{"c", "a"}, nil).Once()
	repo.On("BulkUpdate", mock.Anything, "u1", []string{"a", "c"},
		domain.BulkTaskPatch{Status: &status, IsCompleted: &completed}, clock.Now()).Return(2, nil).Once()

	svc := service.NewTaskService(repo, store.Categories(), service.WithClock(clock.Now))
	result, err := svc.BulkUpdateTasks(context.Background(), "u1", []string{"a", "b", "c"}, domain.BulkTaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.BulkUpdateResult{UpdatedCount: 2, FailedIDs: []string{"b"}}, result)
	repo.AssertExpectations(t)
}

func TestTaskService_BulkUpdate_NothingOwnedSkipsWrite(t *testing.T) {
	store := memory.NewStore()
	repo := &taskRepositoryMock{TaskStore: store.Tasks()}
	repo.On("FindOwnedIDs", mock.Anything, "u1", []string{"x"}).Return([]string{}, nil).Once()

	svc := service.NewTaskService(repo, store.Categories())
	result, err := svc.BulkUpdateTasks(context.Background(), "u1", []string{"x"}, domain.BulkTaskPatch{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.Equal(t, []string{"x"}, result.FailedIDs)
	repo.AssertNotCalled(t, "BulkUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
