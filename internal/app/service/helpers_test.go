package service_test

import (
	"fmt"
	"sync"
	"time"

	"taskhub/internal/adapter/memory"
	"taskhub/internal/app/service"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	next := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return fmt.Sprintf("%s-%03d", prefix, next)
	}
}

type fixture struct {
	store      *memory.Store
	clock      *testClock
	categories *service.CategoryService
	tasks      *service.TaskService
}

func newFixture() *fixture {
	store := memory.NewStore()
	clock := newTestClock()
	opts := []service.Option{service.WithClock(clock.Now), service.WithIDGenerator(sequentialIDs("id"))}
	return &fixture{
		store:      store,
		clock:      clock,
		categories: service.NewCategoryService(store.Categories(), opts...),
		tasks:      service.NewTaskService(store.Tasks(), store.Categories(), opts...),
	}
}

func ptr[T any](v T) *T {
	return &v
}
