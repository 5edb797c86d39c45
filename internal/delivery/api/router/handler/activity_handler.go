package handler

import (
	"net/http"
	"time"

	"healthtrack/internal/delivery/api/response"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler serves the daily activity log.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler.
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{activityUC: params.ActivityUC}
}

// LogMealRequest represents an eaten meal.
type LogMealRequest struct {
	MealID   *string `json:"mealId" validate:"omitempty,uuid"`
	Name     string  `json:"name" validate:"required,max=200"`
	MealType string  `json:"mealType" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Calories int     `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
}

// LogExerciseRequest represents a finished workout.
type LogExerciseRequest struct {
	ExerciseID      *string `json:"exerciseId" validate:"omitempty,uuid"`
	Title           string  `json:"title" validate:"required,max=200"`
	DurationMinutes int     `json:"durationMinutes" validate:"gte=0"`
	CaloriesBurned  int     `json:"caloriesBurned" validate:"gte=0"`
}

// LogWaterRequest represents one drink.
type LogWaterRequest struct {
	AmountMl int `json:"amountMl" validate:"required,gt=0"`
}

// LogSleepRequest represents one night of sleep.
type LogSleepRequest struct {
	Date          string  `json:"date" validate:"omitempty,date"`
	DurationHours float64 `json:"durationHours" validate:"required,gt=0,lte=24"`
	Quality       string  `json:"quality" validate:"required,oneof=poor fair good excellent"`
	Notes         string  `json:"notes" validate:"max=1000"`
}

// LogMeal appends a meal to today's log.
func (h *ActivityHandler) LogMeal(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req LogMealRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	mealID, err := parseOptionalID(req.MealID, "mealId")
	if err != nil {
		return err
	}

	entry, err := h.activityUC.LogMeal(c.Request().Context(), userID, &usecase.LogMealInput{
		MealID:   mealID,
		Name:     req.Name,
		MealType: entity.MealType(req.MealType),
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMealLogResponse(entry))
}

// LogExercise appends a workout to today's log.
func (h *ActivityHandler) LogExercise(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req LogExerciseRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	exerciseID, err := parseOptionalID(req.ExerciseID, "exerciseId")
	if err != nil {
		return err
	}

	entry, err := h.activityUC.LogExercise(c.Request().Context(), userID, &usecase.LogExerciseInput{
		ExerciseID:      exerciseID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExerciseLogResponse(entry))
}

// LogWater records a water intake event.
func (h *ActivityHandler) LogWater(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req LogWaterRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	water, err := h.activityUC.LogWater(c.Request().Context(), userID, req.AmountMl)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWaterLogResponse(water))
}

// LogSleep records a sleep entry.
func (h *ActivityHandler) LogSleep(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req LogSleepRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	var date time.Time
	if req.Date != "" {
		// already checked by the date validator
		date, _ = entity.ParseDate(req.Date)
	}

	sleep, err := h.activityUC.LogSleep(c.Request().Context(), userID, &usecase.LogSleepInput{
		Date:          date,
		DurationHours: req.DurationHours,
		Quality:       entity.SleepQuality(req.Quality),
		Notes:         req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSleepLogResponse(sleep))
}

// Today returns everything logged today.
func (h *ActivityHandler) Today(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	day, err := h.activityUC.Today(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDayActivityResponse(day))
}

// ForDate returns everything logged on the :date parameter.
func (h *ActivityHandler) ForDate(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	date, err := pathDate(c)
	if err != nil {
		return err
	}

	day, err := h.activityUC.ForDate(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDayActivityResponse(day))
}

// Weekly returns per-day totals for the trailing seven days.
func (h *ActivityHandler) Weekly(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	days, err := h.activityUC.Weekly(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toDayTotalsResponses(days))
}

// SleepToday returns today's latest sleep entry, or null.
func (h *ActivityHandler) SleepToday(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	sleep, err := h.activityUC.SleepToday(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toSleepLogResponse(sleep))
}
