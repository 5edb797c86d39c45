package handler

import (
	"net/http"

	"healthtrack/internal/delivery/api/response"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ExerciseHandlerParams holds dependencies for ExerciseHandler, injected by Fx.
type ExerciseHandlerParams struct {
	fx.In

	ExerciseUC usecase.ExerciseUsecase
}

// ExerciseHandler serves the exercise catalog for users and administrators.
type ExerciseHandler struct {
	exerciseUC usecase.ExerciseUsecase
}

// NewExerciseHandler is the constructor for ExerciseHandler.
func NewExerciseHandler(params ExerciseHandlerParams) *ExerciseHandler {
	return &ExerciseHandler{exerciseUC: params.ExerciseUC}
}

// ExerciseRequest represents the editable fields of an exercise.
type ExerciseRequest struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description" validate:"max=2000"`
	Category        string   `json:"category" validate:"max=100"`
	Difficulty      string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	DurationMinutes int      `json:"durationMinutes" validate:"gte=0"`
	CaloriesBurned  int      `json:"caloriesBurned" validate:"gte=0"`
	Steps           []string `json:"steps" validate:"dive,required"`
	Visibility      string   `json:"visibility" validate:"omitempty,oneof=public hidden"`
}

func (r *ExerciseRequest) toInput() *usecase.ExerciseInput {
	return &usecase.ExerciseInput{
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Difficulty:      entity.Difficulty(r.Difficulty),
		DurationMinutes: r.DurationMinutes,
		CaloriesBurned:  r.CaloriesBurned,
		Steps:           r.Steps,
		Visibility:      entity.Visibility(r.Visibility),
	}
}

// List returns admin-public exercises together with the caller's own exercises.
func (h *ExerciseHandler) List(c echo.Context) error {
	return h.list(c, entity.ScopeVisible)
}

// ListAdmin returns the public admin exercises.
func (h *ExerciseHandler) ListAdmin(c echo.Context) error {
	return h.list(c, entity.ScopeAdminPublic)
}

// ListMine returns the caller's custom and copied exercises.
func (h *ExerciseHandler) ListMine(c echo.Context) error {
	return h.list(c, entity.ScopePersonal)
}

// AdminList returns every admin exercise, hidden ones included.
func (h *ExerciseHandler) AdminList(c echo.Context) error {
	return h.list(c, entity.ScopeAdminAll)
}

func (h *ExerciseHandler) list(c echo.Context, scope entity.CatalogScope) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	exercises, err := h.exerciseUC.ListExercises(c.Request().Context(), catalogFilter(c, scope, userID, "difficulty"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toExerciseResponses(exercises))
}

// Get returns one exercise visible to the caller.
func (h *ExerciseHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	exercise, err := h.exerciseUC.GetExercise(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toExerciseResponse(exercise))
}

// Create adds a custom exercise to the caller's catalog.
func (h *ExerciseHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.create(c, &userID)
}

// AdminCreate adds an exercise to the shared catalog.
func (h *ExerciseHandler) AdminCreate(c echo.Context) error {
	return h.create(c, nil)
}

func (h *ExerciseHandler) create(c echo.Context, ownerID *uuid.UUID) error {
	var req ExerciseRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	exercise, err := h.exerciseUC.CreateExercise(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExerciseResponse(exercise))
}

// Update edits one of the caller's exercises.
func (h *ExerciseHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.update(c, &userID)
}

// AdminUpdate edits a shared exercise.
func (h *ExerciseHandler) AdminUpdate(c echo.Context) error {
	return h.update(c, nil)
}

func (h *ExerciseHandler) update(c echo.Context, ownerID *uuid.UUID) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req ExerciseRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	exercise, err := h.exerciseUC.UpdateExercise(c.Request().Context(), id, ownerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toExerciseResponse(exercise))
}

// Copy duplicates an admin exercise into the caller's catalog.
func (h *ExerciseHandler) Copy(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	exercise, err := h.exerciseUC.CopyExercise(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExerciseResponse(exercise))
}

// SetVisibility hides or publishes an admin exercise.
func (h *ExerciseHandler) SetVisibility(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req VisibilityRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	exercise, err := h.exerciseUC.SetExerciseVisibility(c.Request().Context(), id, entity.Visibility(req.Visibility))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toExerciseResponse(exercise))
}

// UploadImage attaches a picture to one of the caller's exercises.
func (h *ExerciseHandler) UploadImage(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.uploadImage(c, &userID)
}

// AdminUploadImage attaches a picture to a shared exercise.
func (h *ExerciseHandler) AdminUploadImage(c echo.Context) error {
	return h.uploadImage(c, nil)
}

func (h *ExerciseHandler) uploadImage(c echo.Context, ownerID *uuid.UUID) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var exercise *entity.Exercise
	err = withImageUpload(c, func(upload *usecase.ImageUpload) error {
		var uploadErr error
		exercise, uploadErr = h.exerciseUC.UploadExerciseImage(c.Request().Context(), id, ownerID, upload)

		return uploadErr
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toExerciseResponse(exercise))
}

// Delete removes one of the caller's exercises.
func (h *ExerciseHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.delete(c, &userID)
}

// AdminDelete removes a shared exercise.
func (h *ExerciseHandler) AdminDelete(c echo.Context) error {
	return h.delete(c, nil)
}

func (h *ExerciseHandler) delete(c echo.Context, ownerID *uuid.UUID) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.exerciseUC.DeleteExercise(c.Request().Context(), id, ownerID); err != nil {
		return errors.WithStack(err)
	}

	return message(c, "Exercise deleted")
}
