package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/apperr"
	"github.com/inkwell-press/inkwell/internal/auth"
	"github.com/inkwell-press/inkwell/internal/domain"
	"github.com/inkwell-press/inkwell/internal/repository"
	"github.com/inkwell-press/inkwell/internal/storage"
	"github.com/inkwell-press/inkwell/pkg/validator"
)

// MaxAvatarSize is the upload limit for profile avatars, in bytes.
const MaxAvatarSize = 500_000

const minPasswordLen = 6

// UserService owns User records: registration, login, profile reads and
// edits, and avatar replacement.
type UserService struct {
	users  repository.UserRepository
	blobs  storage.BlobStore
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewUserService(users repository.UserRepository, blobs storage.BlobStore, tokens *auth.TokenService, logger *slog.Logger) *UserService {
	return &UserService{users: users, blobs: blobs, tokens: tokens, logger: logger}
}

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password2"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string    `json:"token"`
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
}

type EditProfileInput struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	NewPasswordConfirm string `json:"confirmNewPassword"`
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if !validator.Required(input.Name, input.Email, input.Password) {
		return nil, apperr.Validation("Fill in all fields")
	}

	email := validator.NormalizeEmail(input.Email)
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up email: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already exists")
	}

	if len(strings.TrimSpace(input.Password)) < minPasswordLen {
		return nil, apperr.Validation("Password should be at least 6 characters")
	}
	if input.Password != input.PasswordConfirm {
		return nil, apperr.Validation("Passwords do not match")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		PostCount:    0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if !validator.Required(input.Email, input.Password) {
		return nil, apperr.Validation("Fill in all fields")
	}

	user, err := s.users.GetByEmail(ctx, validator.NormalizeEmail(input.Email))
	if err != nil {
		return nil, fmt.Errorf("looking up email: %w", err)
	}
	// Unknown email and wrong password answer identically so callers
	// cannot probe which accounts exist.
	if user == nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if !auth.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(auth.Identity{ID: user.ID, Name: user.Name})
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &LoginResult{Token: token, ID: user.ID, Name: user.Name}, nil
}

func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}

func (s *UserService) ListAuthors(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// ChangeAvatar replaces the acting user's avatar: validate, best-effort
// delete of the old file, store the new one, update the record. The record
// update comes last so a failed store never leaves a dangling reference.
func (s *UserService) ChangeAvatar(ctx context.Context, userID uuid.UUID, data []byte, filename string) (*domain.User, error) {
	if len(data) == 0 || filename == "" {
		return nil, apperr.Validation("Please choose an image")
	}
	if int64(len(data)) > MaxAvatarSize {
		return nil, apperr.PayloadTooLarge("Profile picture too big. Should be less than 500kb")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFoundActor("User not found")
	}

	if user.Avatar != nil {
		if err := s.blobs.Remove(ctx, *user.Avatar); err != nil {
			s.logger.Warn("removing old avatar", "user", userID, "file", *user.Avatar, "err", err)
		}
	}

	stored, err := s.blobs.Save(ctx, data, filename, MaxAvatarSize)
	if err != nil {
		return nil, err
	}

	user.Avatar = &stored
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFoundActor("User not found")
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return user, nil
}

func (s *UserService) EditProfile(ctx context.Context, userID uuid.UUID, input EditProfileInput) (*domain.User, error) {
	if !validator.Required(input.Name, input.Email, input.CurrentPassword, input.NewPassword) {
		return nil, apperr.Validation("Fill in all fields")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFoundActor("User not found")
	}

	email := validator.NormalizeEmail(input.Email)
	other, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up email: %w", err)
	}
	if other != nil && other.ID != userID {
		return nil, apperr.Conflict("Email already exists")
	}

	if !auth.VerifyPassword(input.CurrentPassword, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid current password")
	}
	if input.NewPassword != input.NewPasswordConfirm {
		return nil, apperr.Validation("New passwords do not match")
	}

	hash, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user.Name = input.Name
	user.Email = email
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFoundActor("User not found")
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return user, nil
}
