package memory

import (
	"context"

	"taskhub/internal/core/domain"
)

type UserStore struct {
	store *Store
}

func (u *UserStore) Create(_ context.Context, user domain.User) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	for _, existing := range u.store.users {
		if existing.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.store.users[user.ID] = user
	return nil
}

func (u *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	for _, user := range u.store.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (u *UserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	user, ok := u.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// SetActive toggles a user's active flag. Used by fixtures and tests.
func (u *UserStore) SetActive(id string, active bool) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	user, ok := u.store.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.IsActive = active
	u.store.users[id] = user
	return nil
}
