package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-press/inkwell/internal/auth"
	"github.com/inkwell-press/inkwell/internal/domain"
	"github.com/inkwell-press/inkwell/internal/repository/memory"
	"github.com/inkwell-press/inkwell/internal/service"
	"github.com/inkwell-press/inkwell/internal/storage"
	fsstore "github.com/inkwell-press/inkwell/internal/storage/fs"
)

type fixture struct {
	users   *memory.UserRepo
	posts   *memory.PostRepo
	blobs   storage.BlobStore
	blobDir string
	tokens  *auth.TokenService
	userSvc *service.UserService
	postSvc *service.PostService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	blobDir := t.TempDir()
	blobs, err := fsstore.New(fsstore.Config{BaseDir: blobDir})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := memory.NewUserRepo()
	posts := memory.NewPostRepo()
	tokens := auth.NewTokenService("test-secret")

	return &fixture{
		users:   users,
		posts:   posts,
		blobs:   blobs,
		blobDir: blobDir,
		tokens:  tokens,
		userSvc: service.NewUserService(users, blobs, tokens, logger),
		postSvc: service.NewPostService(posts, users, blobs, logger),
	}
}

func (f *fixture) register(t *testing.T, name, email, password string) *domain.User {
	t.Helper()

	user, err := f.userSvc.Register(context.Background(), service.RegisterInput{
		Name:            name,
		Email:           email,
		Password:        password,
		PasswordConfirm: password,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) createPost(t *testing.T, creator *domain.User, title, category, description string) *domain.Post {
	t.Helper()

	post, err := f.postSvc.Create(context.Background(), creator.ID, service.CreatePostInput{
		Title:         title,
		Category:      category,
		Description:   description,
		Thumbnail:     []byte("thumbnail bytes"),
		ThumbnailName: "cover.png",
	})
	require.NoError(t, err)
	return post
}
