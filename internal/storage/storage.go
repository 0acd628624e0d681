package storage

import (
	"context"
)

// BlobStore stores attachment files (thumbnails, avatars) addressed by
// generated name.
type BlobStore interface {
	// Save writes data under a generated collision-resistant name derived
	// from originalName's extension and returns that name. Fails with a
	// payload-too-large error when data exceeds maxSize bytes.
	Save(ctx context.Context, data []byte, originalName string, maxSize int64) (string, error)

	// Remove deletes the named file. A missing file is not an error, so
	// repeated or raced deletes are safe.
	Remove(ctx context.Context, storedName string) error
}
