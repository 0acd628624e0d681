package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/domain"
	"github.com/inkwell-press/inkwell/internal/repository"
)

// PostRepo is an in-memory implementation of repository.PostRepository.
type PostRepo struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]*domain.Post
}

func NewPostRepo() *PostRepo {
	return &PostRepo{posts: make(map[uuid.UUID]*domain.Post)}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *post
	r.posts[p.ID] = &p
	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *PostRepo) ListAll(ctx context.Context) ([]domain.Post, error) {
	posts := r.snapshot(func(p *domain.Post) bool { return true })
	sort.Slice(posts, func(i, j int) bool { return posts[i].UpdatedAt.After(posts[j].UpdatedAt) })
	return posts, nil
}

func (r *PostRepo) ListByCategory(ctx context.Context, category string) ([]domain.Post, error) {
	posts := r.snapshot(func(p *domain.Post) bool { return p.Category == category })
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *PostRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Post, error) {
	posts := r.snapshot(func(p *domain.Post) bool { return p.CreatorID == creatorID })
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return repository.ErrNotFound
	}
	p := *post
	r.posts[p.ID] = &p
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *PostRepo) snapshot(keep func(*domain.Post) bool) []domain.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []domain.Post
	for _, p := range r.posts {
		if keep(p) {
			posts = append(posts, *p)
		}
	}
	return posts
}
