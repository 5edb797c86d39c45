package handler

import (
	"strings"

	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// imageFormField is the multipart field carrying catalog images.
const imageFormField = "image"

func catalogFilter(c echo.Context, scope entity.CatalogScope, userID uuid.UUID, kindParam string) entity.CatalogFilter {
	return entity.CatalogFilter{
		Scope:  scope,
		UserID: userID,
		Kind:   strings.TrimSpace(c.QueryParam(kindParam)),
		Query:  strings.TrimSpace(c.QueryParam("q")),
	}
}

// withImageUpload opens the uploaded image and hands it to fn.
func withImageUpload(c echo.Context, fn func(*usecase.ImageUpload) error) error {
	file, err := c.FormFile(imageFormField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("multipart field \"" + imageFormField + "\" is required")
	}

	src, err := file.Open()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("uploaded image could not be read")
	}
	defer src.Close()

	return fn(&usecase.ImageUpload{
		Filename: file.Filename,
		Size:     file.Size,
		Content:  src,
	})
}
