package handler

import (
	"strings"

	"healthtrack/internal/delivery/api/response"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves account management and the dashboard.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// UpdateUserRequest is a partial account update; omitted fields are kept.
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email  *string `json:"email" validate:"omitempty,email,max=255"`
	Role   *string `json:"role" validate:"omitempty,oneof=user admin"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateUserRequest) toPatch() entity.UserPatch {
	patch := entity.UserPatch{Name: r.Name, Email: r.Email}
	if r.Role != nil {
		role := entity.Role(*r.Role)
		patch.Role = &role
	}
	if r.Status != nil {
		status := entity.UserStatus(*r.Status)
		patch.Status = &status
	}

	return patch
}

// ListUsers lists accounts filtered by ?role=, ?status= and ?q=.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context(), entity.UserFilter{
		Role:   entity.Role(c.QueryParam("role")),
		Status: entity.UserStatus(c.QueryParam("status")),
		Query:  strings.TrimSpace(c.QueryParam("q")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponses(users))
}

// GetUser returns one account.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.adminUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user))
}

// UpdateUser applies a partial update to an account.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	user, err := h.adminUC.UpdateUser(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user))
}

// DeleteUser removes an account other than the caller's.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actorID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), actorID, id); err != nil {
		return errors.WithStack(err)
	}

	return message(c, "User deleted")
}

// Statistics returns the dashboard counters.
func (h *AdminHandler) Statistics(c echo.Context) error {
	stats, err := h.adminUC.Statistics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toStatisticsResponse(stats))
}
