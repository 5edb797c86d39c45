package handler

import (
	"net/http"

	"healthtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
}

// MediaHandler streams stored catalog images.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{mediaUC: params.MediaUC}
}

// Serve writes the image stored under the wildcard path.
func (h *MediaHandler) Serve(c echo.Context) error {
	body, contentType, err := h.mediaUC.OpenImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer body.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	// Keys embed a random id, so content under a key never changes.
	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, contentType, body)
}
