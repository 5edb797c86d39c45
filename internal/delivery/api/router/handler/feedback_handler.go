package handler

import (
	"net/http"

	"healthtrack/internal/delivery/api/response"
	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FeedbackHandlerParams holds dependencies for FeedbackHandler, injected by Fx.
type FeedbackHandlerParams struct {
	fx.In

	FeedbackUC usecase.FeedbackUsecase
}

// FeedbackHandler serves feedback submission and triage.
type FeedbackHandler struct {
	feedbackUC usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler.
func NewFeedbackHandler(params FeedbackHandlerParams) *FeedbackHandler {
	return &FeedbackHandler{feedbackUC: params.FeedbackUC}
}

// SubmitFeedbackRequest is a message for the administrators.
type SubmitFeedbackRequest struct {
	Message string `json:"message" validate:"required,max=5000"`
}

// FeedbackStatusRequest moves an entry through triage.
type FeedbackStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress done"`
}

// Submit stores a new feedback entry.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req SubmitFeedbackRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	feedback, err := h.feedbackUC.Submit(c.Request().Context(), userID, req.Message)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toFeedbackResponse(feedback))
}

// ListMine returns the caller's own entries, newest first.
func (h *FeedbackHandler) ListMine(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	entries, err := h.feedbackUC.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toFeedbackResponses(entries))
}

// ListAll returns every entry, optionally filtered by ?status=.
func (h *FeedbackHandler) ListAll(c echo.Context) error {
	var status *entity.FeedbackStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.FeedbackStatus(raw)
		if !s.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("status must be one of new, in_progress, done")
		}
		status = &s
	}

	entries, err := h.feedbackUC.ListAll(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toFeedbackResponses(entries))
}

// UpdateStatus sets the triage status of an entry.
func (h *FeedbackHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req FeedbackStatusRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	feedback, err := h.feedbackUC.UpdateStatus(c.Request().Context(), id, entity.FeedbackStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toFeedbackResponse(feedback))
}

// Delete removes an entry.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.feedbackUC.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return message(c, "Feedback deleted")
}
