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

// MealHandlerParams holds dependencies for MealHandler, injected by Fx.
type MealHandlerParams struct {
	fx.In

	MealUC usecase.MealUsecase
}

// MealHandler serves the meal catalog for users and administrators.
type MealHandler struct {
	mealUC usecase.MealUsecase
}

// NewMealHandler is the constructor for MealHandler.
func NewMealHandler(params MealHandlerParams) *MealHandler {
	return &MealHandler{mealUC: params.MealUC}
}

// MealRequest represents the editable fields of a meal.
type MealRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Description     string   `json:"description" validate:"max=2000"`
	MealType        string   `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	Calories        int      `json:"calories" validate:"gte=0"`
	Protein         float64  `json:"protein" validate:"gte=0"`
	Carbs           float64  `json:"carbs" validate:"gte=0"`
	Fat             float64  `json:"fat" validate:"gte=0"`
	PrepTimeMinutes int      `json:"prepTimeMinutes" validate:"gte=0"`
	Ingredients     []string `json:"ingredients" validate:"dive,required"`
	Steps           []string `json:"steps" validate:"dive,required"`
	Visibility      string   `json:"visibility" validate:"omitempty,oneof=public hidden"`
}

func (r *MealRequest) toInput() *usecase.MealInput {
	return &usecase.MealInput{
		Name:            r.Name,
		Description:     r.Description,
		MealType:        entity.MealType(r.MealType),
		Calories:        r.Calories,
		Protein:         r.Protein,
		Carbs:           r.Carbs,
		Fat:             r.Fat,
		PrepTimeMinutes: r.PrepTimeMinutes,
		Ingredients:     r.Ingredients,
		Steps:           r.Steps,
		Visibility:      entity.Visibility(r.Visibility),
	}
}

// VisibilityRequest toggles an admin item between public and hidden.
type VisibilityRequest struct {
	Visibility string `json:"visibility" validate:"required,oneof=public hidden"`
}

// List returns admin-public meals together with the caller's own meals.
func (h *MealHandler) List(c echo.Context) error {
	return h.list(c, entity.ScopeVisible)
}

// ListAdmin returns the public admin meals.
func (h *MealHandler) ListAdmin(c echo.Context) error {
	return h.list(c, entity.ScopeAdminPublic)
}

// ListMine returns the caller's custom and copied meals.
func (h *MealHandler) ListMine(c echo.Context) error {
	return h.list(c, entity.ScopePersonal)
}

// AdminList returns every admin meal, hidden ones included.
func (h *MealHandler) AdminList(c echo.Context) error {
	return h.list(c, entity.ScopeAdminAll)
}

func (h *MealHandler) list(c echo.Context, scope entity.CatalogScope) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	meals, err := h.mealUC.ListMeals(c.Request().Context(), catalogFilter(c, scope, userID, "type"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toMealResponses(meals))
}

// Get returns one meal visible to the caller.
func (h *MealHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	meal, err := h.mealUC.GetMeal(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toMealResponse(meal))
}

// Create adds a custom meal to the caller's catalog.
func (h *MealHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.create(c, &userID)
}

// AdminCreate adds a meal to the shared catalog.
func (h *MealHandler) AdminCreate(c echo.Context) error {
	return h.create(c, nil)
}

func (h *MealHandler) create(c echo.Context, ownerID *uuid.UUID) error {
	var req MealRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	meal, err := h.mealUC.CreateMeal(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMealResponse(meal))
}

// Update edits one of the caller's meals.
func (h *MealHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.update(c, &userID)
}

// AdminUpdate edits a shared meal.
func (h *MealHandler) AdminUpdate(c echo.Context) error {
	return h.update(c, nil)
}

func (h *MealHandler) update(c echo.Context, ownerID *uuid.UUID) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req MealRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	meal, err := h.mealUC.UpdateMeal(c.Request().Context(), id, ownerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toMealResponse(meal))
}

// Copy duplicates an admin meal into the caller's catalog.
func (h *MealHandler) Copy(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	meal, err := h.mealUC.CopyMeal(c.Request().Context(), id, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMealResponse(meal))
}

// SetVisibility hides or publishes an admin meal.
func (h *MealHandler) SetVisibility(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req VisibilityRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	meal, err := h.mealUC.SetMealVisibility(c.Request().Context(), id, entity.Visibility(req.Visibility))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toMealResponse(meal))
}

// UploadImage attaches a picture to one of the caller's meals.
func (h *MealHandler) UploadImage(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.uploadImage(c, &userID)
}

// AdminUploadImage attaches a picture to a shared meal.
func (h *MealHandler) AdminUploadImage(c echo.Context) error {
	return h.uploadImage(c, nil)
}

func (h *MealHandler) uploadImage(c echo.Context, ownerID *uuid.UUID) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var meal *entity.Meal
	err = withImageUpload(c, func(upload *usecase.ImageUpload) error {
		var uploadErr error
		meal, uploadErr = h.mealUC.UploadMealImage(c.Request().Context(), id, ownerID, upload)

		return uploadErr
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toMealResponse(meal))
}

// Delete removes one of the caller's meals.
func (h *MealHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	return h.delete(c, &userID)
}

// AdminDelete removes a shared meal.
func (h *MealHandler) AdminDelete(c echo.Context) error {
	return h.delete(c, nil)
}

func (h *MealHandler) delete(c echo.Context, ownerID *uuid.UUID) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.mealUC.DeleteMeal(c.Request().Context(), id, ownerID); err != nil {
		return errors.WithStack(err)
	}

	return message(c, "Meal deleted")
}
