package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/domain"
	"github.com/inkwell-press/inkwell/internal/repository"
)

// UserRepo is an in-memory implementation of repository.UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user
	r.users[u.ID] = &u
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	u := *user
	u.PostCount = existing.PostCount
	r.users[u.ID] = &u
	return nil
}

func (r *UserRepo) AdjustPostCount(ctx context.Context, id uuid.UUID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PostCount += delta
	if u.PostCount < 0 {
		u.PostCount = 0
	}
	return nil
}
