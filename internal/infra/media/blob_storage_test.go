package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T, publicBaseURL string) *BlobStorage {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func TestBlobStorage_SaveReturnsPublicURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newMemStorage(t, "https://media.example.com/")

	url, err := storage.Save(ctx, "vendors/abc/media/def.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/vendors/abc/media/def.jpg", url)

	data, err := storage.bucket.ReadAll(ctx, "vendors/abc/media/def.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	attrs, err := storage.bucket.Attributes(ctx, "vendors/abc/media/def.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestBlobStorage_DeleteRemovesObject(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newMemStorage(t, "https://media.example.com")

	_, err := storage.Save(ctx, "vendors/abc/media/def.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, "vendors/abc/media/def.jpg"))

	exists, err := storage.bucket.Exists(ctx, "vendors/abc/media/def.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingObjectIsNotAnError(t *testing.T) {
	t.Parallel()

	storage := newMemStorage(t, "")

	assert.NoError(t, storage.Delete(context.Background(), "vendors/abc/media/never-created.jpg"))
}
