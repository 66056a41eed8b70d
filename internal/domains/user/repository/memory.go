package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"pptgenie-backend/internal/domains/user"
)

// memoryRepository is an in-memory user.Repository used by tests.
type memoryRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]user.User
}

func NewMemoryRepository() user.Repository {
	return &memoryRepository{users: make(map[uuid.UUID]user.User)}
}

func (r *memoryRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	found := u
	return &found, nil
}

func (r *memoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}
