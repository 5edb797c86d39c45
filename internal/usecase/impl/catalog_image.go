package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/service"
	"healthtrack/internal/usecase"
	"healthtrack/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// imageExtensions maps the sniffed content types accepted for catalog pictures to their file extension.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// storeCatalogImage checks an upload and writes it under kind/itemID/ in the image store.
// It returns the public URL and the storage key.
func storeCatalogImage(
	ctx context.Context,
	images service.ImageStore,
	maxBytes int64,
	kind string,
	itemID uuid.UUID,
	upload *usecase.ImageUpload,
) (string, string, error) {
	if upload == nil || upload.Content == nil {
		return "", "", domainerrors.ErrUnsupportedImage.WithDetails("no image provided")
	}
	if upload.Size > maxBytes {
		return "", "", domainerrors.ErrImageTooLarge.WithDetails("limit is "+util.FormatBytes(maxBytes))
	}

	data, err := io.ReadAll(io.LimitReader(upload.Content, maxBytes+1))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to read uploaded image")
	}
	if int64(len(data)) > maxBytes {
		return "", "", domainerrors.ErrImageTooLarge.WithDetails("limit is "+util.FormatBytes(maxBytes))
	}
	if len(data) == 0 {
		return "", "", domainerrors.ErrUnsupportedImage.WithDetails("image is empty")
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", domainerrors.ErrUnsupportedImage.WithDetails(contentType)
	}

	key := fmt.Sprintf("%s/%s/%s%s", kind, itemID, uuid.NewString(), ext)

	url, err := images.Put(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to store image")
	}

	return url, key, nil
}

// cleanMediaKey rejects keys that would escape the bucket root.
func cleanMediaKey(key string) (string, bool) {
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" || cleaned == "." {
		return "", false
	}

	return cleaned, true
}
