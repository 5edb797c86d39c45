package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "healthtrack/internal/domain/errors"
	mockSvc "healthtrack/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaService_OpenImage_CleansKey(t *testing.T) {
	images := mockSvc.NewMockImageStore(t)
	srv := NewMediaService(images, newDiscardLogger())
	ctx := context.Background()

	images.EXPECT().
		Open(ctx, "meals/abc.png").
		Return(io.NopCloser(strings.NewReader("png")), "image/png", nil)

	rc, contentType, err := srv.OpenImage(ctx, "../meals/./abc.png")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png", string(body))
	assert.Equal(t, "image/png", contentType)
}

func TestMediaService_OpenImage_EmptyKey(t *testing.T) {
	images := mockSvc.NewMockImageStore(t)
	srv := NewMediaService(images, newDiscardLogger())

	_, _, err := srv.OpenImage(context.Background(), "/")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMediaService_OpenImage_StoreMiss(t *testing.T) {
	images := mockSvc.NewMockImageStore(t)
	srv := NewMediaService(images, newDiscardLogger())
	ctx := context.Background()

	images.EXPECT().Open(ctx, "missing.png").Return(nil, "", domainerrors.ErrNotFound)

	_, _, err := srv.OpenImage(ctx, "missing.png")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
