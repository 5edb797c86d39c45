package impl

import (
	"context"
	"io"
	"log/slog"

	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/service"
	"healthtrack/internal/usecase"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	images service.ImageStore
	logger *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(images service.ImageStore, logger *slog.Logger) usecase.MediaUsecase {
	return &mediaService{
		images: images,
		logger: logger,
	}
}

// OpenImage streams a stored picture. The caller closes the reader.
func (srv *mediaService) OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	cleaned, ok := cleanMediaKey(key)
	if !ok {
		return nil, "", domainerrors.ErrNotFound
	}

	return srv.images.Open(ctx, cleaned)
}
