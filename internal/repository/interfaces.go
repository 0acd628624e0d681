package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inkwell-press/inkwell/internal/domain"
)

// ErrNotFound is returned by mutations whose target record no longer exists.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// AdjustPostCount atomically adds delta to the user's post counter,
	// clamped at zero. Single-statement update in the store, no
	// read-modify-write.
	AdjustPostCount(ctx context.Context, id uuid.UUID, delta int) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListAll(ctx context.Context) ([]domain.Post, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Post, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}
