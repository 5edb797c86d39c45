// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"healthtrack/internal/delivery/api/middleware"
	"healthtrack/internal/delivery/api/response"
	"healthtrack/internal/delivery/api/validator"
	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindRequest binds and validates req. When ok is false the 400 response has
// already been written and the returned error must be passed straight back to echo.
func bindRequest(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		if fields := validator.FieldErrors(err); fields != nil {
			return false, response.ValidationFailed(c, fields)
		}

		return false, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return true, nil
}

// callerID returns the authenticated user's id.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid id")
	}

	return id, nil
}

// pathDate parses the :date route parameter as YYYY-MM-DD.
func pathDate(c echo.Context) (time.Time, error) {
	date, err := entity.ParseDate(c.Param("date"))
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD")
	}

	return date, nil
}

// parseOptionalID parses an optional uuid from a request body.
func parseOptionalID(raw *string, field string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a UUID")
	}

	return &id, nil
}

// message is the body of acknowledgement-only responses.
func message(c echo.Context, text string) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": text})
}
