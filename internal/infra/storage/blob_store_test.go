package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_PutOpenDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobImageStore(bucket, "https://cdn.example.com/media/")
	ctx := context.Background()

	url, err := store.Put(ctx, "meals/1/cover.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/meals/1/cover.png", url)

	r, contentType, err := store.Open(ctx, "meals/1/cover.png")
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, "meals/1/cover.png"))

	_, _, err = store.Open(ctx, "meals/1/cover.png")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestBlobImageStore_DeleteMissingKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobImageStore(bucket, "/media")

	assert.NoError(t, store.Delete(context.Background(), "exercises/none.jpg"))
}
