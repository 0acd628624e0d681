package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/inkwell-press/inkwell/internal/apperr"
	"github.com/inkwell-press/inkwell/internal/storage"
)

// Config options for the filesystem blob store.
type Config struct {
	BaseDir string // directory holding all attachment files, flat
}

// Backend stores attachments as plain files in a single directory.
type Backend struct {
	baseDir string
}

// New creates the base directory if needed and returns a filesystem store.
func New(config Config) (storage.BlobStore, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}
	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating base directory: %w", err)
	}
	return &Backend{baseDir: config.BaseDir}, nil
}

func (b *Backend) Save(ctx context.Context, data []byte, originalName string, maxSize int64) (string, error) {
	if int64(len(data)) > maxSize {
		return "", apperr.PayloadTooLarge(fmt.Sprintf("File too big. Should be less than %d bytes", maxSize))
	}

	storedName := uuid.NewString() + filepath.Ext(originalName)
	path := filepath.Join(b.baseDir, storedName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", apperr.Storage("Could not store file")
	}
	return storedName, nil
}

func (b *Backend) Remove(ctx context.Context, storedName string) error {
	err := os.Remove(filepath.Join(b.baseDir, storedName))
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return apperr.Storage("Could not delete file")
}
