package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage stores uploaded proof photos and receipts. Paths are
// relative keys scoped per employee, e.g. "expenses/<id>/<uuid>.jpg".
type FileStorage interface {
	// Upload writes the file under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// GetURL resolves a stored key to a client-reachable URL.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(ctx context.Context, path string) error
}
