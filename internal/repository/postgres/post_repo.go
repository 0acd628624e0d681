package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-press/inkwell/internal/domain"
	"github.com/inkwell-press/inkwell/internal/repository"
)

const postColumns = "id, title, category, description, thumbnail, creator_id, created_at, updated_at"

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, title, category, description, thumbnail, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Category, post.Description,
		post.Thumbnail, post.CreatorID, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var p domain.Post
	err := r.pool.QueryRow(ctx, "SELECT "+postColumns+" FROM posts WHERE id = $1", id).Scan(
		&p.ID, &p.Title, &p.Category, &p.Description,
		&p.Thumbnail, &p.CreatorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) ListAll(ctx context.Context) ([]domain.Post, error) {
	return r.listPosts(ctx, "SELECT "+postColumns+" FROM posts ORDER BY updated_at DESC")
}

func (r *PostRepo) ListByCategory(ctx context.Context, category string) ([]domain.Post, error) {
	return r.listPosts(ctx, "SELECT "+postColumns+" FROM posts WHERE category = $1 ORDER BY created_at DESC", category)
}

func (r *PostRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Post, error) {
	return r.listPosts(ctx, "SELECT "+postColumns+" FROM posts WHERE creator_id = $1 ORDER BY created_at DESC", creatorID)
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET title = $1, category = $2, description = $3, thumbnail = $4, updated_at = $5
		WHERE id = $6`

	tag, err := r.pool.Exec(ctx, query,
		post.Title, post.Category, post.Description, post.Thumbnail, post.UpdatedAt, post.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepo) listPosts(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Description,
			&p.Thumbnail, &p.CreatorID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
