package service

import (
	"context"
	"io"
)

// MediaStorage defines the interface for storing vendor media files.
// Backed by a blob bucket so local disk and cloud storage are interchangeable.
type MediaStorage interface {
	// Save writes the file under the given key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Delete removes the file stored under the given key.
	Delete(ctx context.Context, key string) error
}
