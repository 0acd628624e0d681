package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/apperr"
	"github.com/inkwell-press/inkwell/internal/domain"
	"github.com/inkwell-press/inkwell/internal/repository"
	"github.com/inkwell-press/inkwell/internal/storage"
	"github.com/inkwell-press/inkwell/pkg/validator"
)

// MaxThumbnailSize is the upload limit for post thumbnails, in bytes.
const MaxThumbnailSize = 2_000_000

const minDescriptionLen = 12

// Notifier broadcasts post lifecycle events to connected clients.
type Notifier interface {
	NotifyPostCreated(post *domain.Post)
	NotifyPostUpdated(post *domain.Post)
	NotifyPostDeleted(postID uuid.UUID)
}

// PostService owns Post records and coordinates thumbnail replacement,
// cleanup, and the creator's post counter.
type PostService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	blobs    storage.BlobStore
	notifier Notifier
	logger   *slog.Logger
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, blobs storage.BlobStore, logger *slog.Logger) *PostService {
	return &PostService{posts: posts, users: users, blobs: blobs, logger: logger}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *PostService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreatePostInput struct {
	Title         string
	Category      string
	Description   string
	Thumbnail     []byte
	ThumbnailName string
}

type EditPostInput struct {
	Title         string
	Category      string
	Description   string
	Thumbnail     []byte // optional replacement
	ThumbnailName string
}

func (s *PostService) Create(ctx context.Context, creatorID uuid.UUID, input CreatePostInput) (*domain.Post, error) {
	if !validator.Required(input.Title, input.Category, input.Description) || len(input.Thumbnail) == 0 {
		return nil, apperr.Validation("Fill in all fields")
	}
	if int64(len(input.Thumbnail)) > MaxThumbnailSize {
		return nil, apperr.PayloadTooLarge("Thumbnail too big. File should be less than 2mb")
	}

	stored, err := s.blobs.Save(ctx, input.Thumbnail, input.ThumbnailName, MaxThumbnailSize)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &domain.Post{
		ID:          uuid.New(),
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Thumbnail:   stored,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	// Counter update is a separate step, not atomic with post creation.
	if err := s.users.AdjustPostCount(ctx, creatorID, 1); err != nil {
		s.logger.Warn("incrementing post count", "user", creatorID, "err", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyPostCreated(post)
	}

	return post, nil
}

func (s *PostService) ListAll(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}
	if post == nil {
		return nil, apperr.NotFound("Post not found")
	}
	return post, nil
}

func (s *PostService) ListByCategory(ctx context.Context, category string) ([]domain.Post, error) {
	posts, err := s.posts.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing posts by category: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (s *PostService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Post, error) {
	posts, err := s.posts.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("listing posts by creator: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (s *PostService) Edit(ctx context.Context, id uuid.UUID, input EditPostInput) (*domain.Post, error) {
	if !validator.Required(input.Title, input.Category) || len(input.Description) < minDescriptionLen {
		return nil, apperr.Validation("Fill in all fields")
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}
	if post == nil {
		return nil, apperr.NotFound("Post not found")
	}

	if len(input.Thumbnail) > 0 {
		if int64(len(input.Thumbnail)) > MaxThumbnailSize {
			return nil, apperr.PayloadTooLarge("Thumbnail too big. File should be less than 2mb")
		}

		if post.Thumbnail != "" {
			if err := s.blobs.Remove(ctx, post.Thumbnail); err != nil {
				s.logger.Warn("removing old thumbnail", "post", id, "file", post.Thumbnail, "err", err)
			}
		}

		stored, err := s.blobs.Save(ctx, input.Thumbnail, input.ThumbnailName, MaxThumbnailSize)
		if err != nil {
			return nil, err
		}
		post.Thumbnail = stored
	}

	post.Title = input.Title
	post.Category = input.Category
	post.Description = input.Description
	post.UpdatedAt = time.Now()

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, fmt.Errorf("updating post: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyPostUpdated(post)
	}

	return post, nil
}

// Delete removes a post, its thumbnail file, and decrements the creator's
// post counter. The file goes first: the record is only deleted once the
// attachment deletion has succeeded, so a failed file delete can never
// orphan an unreferenced file silently. A file already missing on disk
// counts as deleted.
func (s *PostService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.BadRequest("Post unavailable")
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("getting post: %w", err)
	}
	if post == nil {
		return apperr.NotFound("Post not found")
	}
	if post.Thumbnail == "" {
		return apperr.NotFound("Thumbnail not found for post")
	}

	if err := s.blobs.Remove(ctx, post.Thumbnail); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Post not found")
		}
		return fmt.Errorf("deleting post: %w", err)
	}

	if err := s.users.AdjustPostCount(ctx, post.CreatorID, -1); err != nil {
		s.logger.Warn("decrementing post count", "user", post.CreatorID, "err", err)
	}

	s.logger.Info("post deleted", "post", id, "actor", actorID)

	if s.notifier != nil {
		s.notifier.NotifyPostDeleted(id)
	}

	return nil
}
