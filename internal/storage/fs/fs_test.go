package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-press/inkwell/internal/apperr"
	"github.com/inkwell-press/inkwell/internal/storage/fs"
)

func TestSave(t *testing.T) {
	tempDir := t.TempDir()

	backend, err := fs.New(fs.Config{BaseDir: tempDir})
	require.NoError(t, err)

	ctx := context.Background()
	content := []byte("thumbnail bytes")

	stored, err := backend.Save(ctx, content, "cover.png", 1000)
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(stored))

	data, err := os.ReadFile(filepath.Join(tempDir, stored))
	require.NoError(t, err)
	assert.Equal(t, content, data)

	// A second save of the same original name gets a distinct stored name.
	stored2, err := backend.Save(ctx, content, "cover.png", 1000)
	require.NoError(t, err)
	assert.NotEqual(t, stored, stored2)
}

func TestSaveSizeLimit(t *testing.T) {
	backend, err := fs.New(fs.Config{BaseDir: t.TempDir()})
	require.NoError(t, err)

	ctx := context.Background()
	data := make([]byte, 100)

	// Exactly at the limit succeeds.
	_, err = backend.Save(ctx, data, "a.jpg", 100)
	assert.NoError(t, err)

	// One byte over fails.
	_, err = backend.Save(ctx, data, "a.jpg", 99)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPayloadTooLarge))
}

func TestRemove(t *testing.T) {
	tempDir := t.TempDir()

	backend, err := fs.New(fs.Config{BaseDir: tempDir})
	require.NoError(t, err)

	ctx := context.Background()

	stored, err := backend.Save(ctx, []byte("x"), "a.jpg", 10)
	require.NoError(t, err)

	require.NoError(t, backend.Remove(ctx, stored))
	_, err = os.Stat(filepath.Join(tempDir, stored))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is not an error.
	assert.NoError(t, backend.Remove(ctx, stored))
}

func TestRemoveMissingFile(t *testing.T) {
	backend, err := fs.New(fs.Config{BaseDir: t.TempDir()})
	require.NoError(t, err)

	assert.NoError(t, backend.Remove(context.Background(), "never-existed.png"))
}

func TestNewRequiresBaseDir(t *testing.T) {
	_, err := fs.New(fs.Config{})
	assert.Error(t, err)
}
