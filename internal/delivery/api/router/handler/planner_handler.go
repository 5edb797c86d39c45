package handler

import (
	"net/http"

	"healthtrack/internal/delivery/api/response"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlannerHandlerParams holds dependencies for PlannerHandler, injected by Fx.
type PlannerHandlerParams struct {
	fx.In

	PlannerUC usecase.PlannerUsecase
}

// PlannerHandler serves the day planner.
type PlannerHandler struct {
	plannerUC usecase.PlannerUsecase
}

// NewPlannerHandler is the constructor for PlannerHandler.
func NewPlannerHandler(params PlannerHandlerParams) *PlannerHandler {
	return &PlannerHandler{plannerUC: params.PlannerUC}
}

// CreatePlanRequest represents a new scheduled activity.
type CreatePlanRequest struct {
	Date          string  `json:"date" validate:"required,date"`
	Time          string  `json:"time" validate:"required,clock"`
	ActivityType  string  `json:"activityType" validate:"required,oneof=meal exercise water sleep"`
	Title         string  `json:"title" validate:"required,max=200"`
	Description   string  `json:"description" validate:"max=2000"`
	Notes         string  `json:"notes" validate:"max=2000"`
	CatalogItemID *string `json:"catalogItemId" validate:"omitempty,uuid"`
}

// UpdatePlanRequest overwrites the editable fields of a plan.
type UpdatePlanRequest struct {
	Time        string `json:"time" validate:"required,clock"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Notes       string `json:"notes" validate:"max=2000"`
}

// PlanStatusRequest sets the completion flag directly.
type PlanStatusRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// Today lists today's plans ordered by time.
func (h *PlannerHandler) Today(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	plans, err := h.plannerUC.ListToday(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toPlanResponses(plans))
}

// ForDate lists the plans of the :date parameter ordered by time.
func (h *PlannerHandler) ForDate(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	date, err := pathDate(c)
	if err != nil {
		return err
	}

	plans, err := h.plannerUC.ListForDate(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toPlanResponses(plans))
}

// Create schedules an activity.
func (h *PlannerHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreatePlanRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	catalogItemID, err := parseOptionalID(req.CatalogItemID, "catalogItemId")
	if err != nil {
		return err
	}

	date, _ := entity.ParseDate(req.Date)
	plan, err := h.plannerUC.CreatePlan(c.Request().Context(), userID, &usecase.CreatePlanInput{
		Date:          date,
		Time:          req.Time,
		ActivityType:  entity.ActivityType(req.ActivityType),
		Title:         req.Title,
		Description:   req.Description,
		Notes:         req.Notes,
		CatalogItemID: catalogItemID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlanResponse(plan))
}

// Update overwrites time, title, description and notes of a plan.
func (h *PlannerHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	planID, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdatePlanRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	plan, err := h.plannerUC.UpdatePlan(c.Request().Context(), userID, planID, entity.PlanUpdate{
		PlanTime:    req.Time,
		Title:       req.Title,
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toPlanResponse(plan))
}

// SetStatus toggles completion without writing any log entry.
func (h *PlannerHandler) SetStatus(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	planID, err := pathID(c)
	if err != nil {
		return err
	}

	var req PlanStatusRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	plan, err := h.plannerUC.SetStatus(c.Request().Context(), userID, planID, *req.Completed)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toPlanResponse(plan))
}

// Execute completes a plan and logs the planned activity.
func (h *PlannerHandler) Execute(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	planID, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := h.plannerUC.ExecutePlan(c.Request().Context(), userID, planID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toExecutionResponse(result))
}

// Delete removes a plan. Deleting a missing plan still succeeds.
func (h *PlannerHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	planID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.plannerUC.DeletePlan(c.Request().Context(), userID, planID); err != nil {
		return errors.WithStack(err)
	}

	return message(c, "Plan deleted")
}

// WeeklySummary counts total and completed plans per day and activity type.
func (h *PlannerHandler) WeeklySummary(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	rows, err := h.plannerUC.WeeklySummary(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toPlanSummaryResponses(rows))
}
