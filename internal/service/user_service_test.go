package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-press/inkwell/internal/apperr"
	"github.com/inkwell-press/inkwell/internal/service"
)

func TestRegister(t *testing.T) {
	f := newFixture(t)

	user := f.register(t, "Ada", "Ada@Example.com", "secret99")
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, 0, user.PostCount)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegisterShortPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.userSvc.Register(context.Background(), service.RegisterInput{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "12345",
		PasswordConfirm: "12345",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	// No record was created.
	users, listErr := f.users.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, users)
}

func TestRegisterMissingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.userSvc.Register(context.Background(), service.RegisterInput{
		Name:     "Ada",
		Password: "secret99",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.userSvc.Register(context.Background(), service.RegisterInput{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "secret99",
		PasswordConfirm: "secret98",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRegisterDuplicateEmailAnyCase(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ada", "ada@example.com", "secret99")

	_, err := f.userSvc.Register(context.Background(), service.RegisterInput{
		Name:            "Imposter",
		Email:           "ADA@EXAMPLE.COM",
		Password:        "secret99",
		PasswordConfirm: "secret99",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "Ada", "ada@example.com", "secret99")

	result, err := f.userSvc.Login(context.Background(), service.LoginInput{
		Email:    "Ada@Example.com",
		Password: "secret99",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.ID)
	assert.Equal(t, "Ada", result.Name)

	identity, err := f.tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
}

func TestLoginNoEnumerationSignal(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ada", "ada@example.com", "secret99")

	_, wrongPass := f.userSvc.Login(context.Background(), service.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	_, unknownEmail := f.userSvc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "secret99",
	})

	require.Error(t, wrongPass)
	require.Error(t, unknownEmail)
	assert.Equal(t, apperr.From(wrongPass), apperr.From(unknownEmail))
}

func TestGetProfileNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.userSvc.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, http.StatusNotFound, apperr.From(err).StatusCode)
}

func TestListAuthorsExcludesPasswordHash(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ada", "ada@example.com", "secret99")
	f.register(t, "Grace", "grace@example.com", "secret99")

	authors, err := f.userSvc.ListAuthors(context.Background())
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	data, err := json.Marshal(authors)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), authors[0].PasswordHash)
}

func TestChangeAvatar(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "Ada", "ada@example.com", "secret99")
	ctx := context.Background()

	updated, err := f.userSvc.ChangeAvatar(ctx, user.ID, []byte("first avatar"), "me.png")
	require.NoError(t, err)
	require.NotNil(t, updated.Avatar)
	first := *updated.Avatar

	_, err = os.Stat(filepath.Join(f.blobDir, first))
	require.NoError(t, err)

	// Replacing deletes the previous file.
	updated, err = f.userSvc.ChangeAvatar(ctx, user.ID, []byte("second avatar"), "me2.png")
	require.NoError(t, err)
	require.NotNil(t, updated.Avatar)
	assert.NotEqual(t, first, *updated.Avatar)

	_, err = os.Stat(filepath.Join(f.blobDir, first))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(f.blobDir, *updated.Avatar))
	assert.NoError(t, err)
}

func TestChangeAvatarValidation(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "Ada", "ada@example.com", "secret99")
	ctx := context.Background()

	_, err := f.userSvc.ChangeAvatar(ctx, user.ID, nil, "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = f.userSvc.ChangeAvatar(ctx, user.ID, make([]byte, service.MaxAvatarSize+1), "big.png")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPayloadTooLarge))

	_, err = f.userSvc.ChangeAvatar(ctx, user.ID, make([]byte, service.MaxAvatarSize), "ok.png")
	assert.NoError(t, err)
}

func TestChangeAvatarActorMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.userSvc.ChangeAvatar(context.Background(), uuid.New(), []byte("x"), "me.png")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperr.From(err).StatusCode)
}

func TestEditProfilePasswordRoundTrip(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "Ada", "ada@example.com", "secret99")
	ctx := context.Background()

	_, err := f.userSvc.EditProfile(ctx, user.ID, service.EditProfileInput{
		Name:               "Ada L.",
		Email:              "ada@example.com",
		CurrentPassword:    "secret99",
		NewPassword:        "newsecret",
		NewPasswordConfirm: "newsecret",
	})
	require.NoError(t, err)

	_, err = f.userSvc.Login(ctx, service.LoginInput{Email: "ada@example.com", Password: "newsecret"})
	assert.NoError(t, err)

	_, err = f.userSvc.Login(ctx, service.LoginInput{Email: "ada@example.com", Password: "secret99"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestEditProfileEmailConflict(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Ada", "ada@example.com", "secret99")
	grace := f.register(t, "Grace", "grace@example.com", "secret99")
	ctx := context.Background()

	_, err := f.userSvc.EditProfile(ctx, grace.ID, service.EditProfileInput{
		Name:               "Grace",
		Email:              "ada@example.com",
		CurrentPassword:    "secret99",
		NewPassword:        "secret99",
		NewPasswordConfirm: "secret99",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// Keeping your own email is not a conflict.
	_, err = f.userSvc.EditProfile(ctx, grace.ID, service.EditProfileInput{
		Name:               "Grace H.",
		Email:              "Grace@Example.com",
		CurrentPassword:    "secret99",
		NewPassword:        "secret99",
		NewPasswordConfirm: "secret99",
	})
	assert.NoError(t, err)
}

func TestEditProfileWrongCurrentPassword(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "Ada", "ada@example.com", "secret99")

	_, err := f.userSvc.EditProfile(context.Background(), user.ID, service.EditProfileInput{
		Name:               "Ada",
		Email:              "ada@example.com",
		CurrentPassword:    "not-my-password",
		NewPassword:        "newsecret",
		NewPasswordConfirm: "newsecret",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}
