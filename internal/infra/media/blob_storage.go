package media

import (
	"context"
	"io"
	"strings"

	"thames/config"
	"thames/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const defaultBucketURL = "mem://"

// BlobStorage stores vendor media in a gocloud blob bucket. The bucket URL
// decides the backend, so local disk and cloud storage swap via config.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(lc fx.Lifecycle, cfg *config.Config) (service.MediaStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg.Media != nil {
		if cfg.Media.BucketURL != "" {
			bucketURL = cfg.Media.BucketURL
		}
		publicBaseURL = cfg.Media.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Save writes the stream under key and returns the URL it will be served from.
func (s *BlobStorage) Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize blob")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object stored under key. Missing objects are not an error.
func (s *BlobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil {
		return nil
	}

	exists, existsErr := s.bucket.Exists(ctx, key)
	if existsErr == nil && !exists {
		return nil
	}

	return errors.Wrap(err, "failed to delete blob")
}
