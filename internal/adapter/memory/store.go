// Package memory holds the fixture stores used when the service runs without
// a database. All three stores share one Store so that category deletion and
// task reads see a consistent view.
package memory

import (
	"sync"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type Store struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	categories map[string]domain.Category
	tasks      map[string]domain.Task
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		categories: make(map[string]domain.Category),
		tasks:      make(map[string]domain.Task),
	}
}

func (s *Store) Users() *UserStore {
	return &UserStore{store: s}
}

func (s *Store) Categories() *CategoryStore {
	return &CategoryStore{store: s}
}

func (s *Store) Tasks() *TaskStore {
	return &TaskStore{store: s}
}

var (
	_ ports.UserRepository     = (*UserStore)(nil)
	_ ports.CategoryRepository = (*CategoryStore)(nil)
	_ ports.TaskRepository     = (*TaskStore)(nil)
)

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
