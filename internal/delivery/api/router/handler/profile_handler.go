package handler

import (
	"healthtrack/internal/delivery/api/response"
	"healthtrack/internal/domain/entity"
	"healthtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the biometric profile and calorie calculator.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// BiometricsRequest carries the six calculator inputs. All are required.
type BiometricsRequest struct {
	Age           int     `json:"age" validate:"required,gte=1,lte=150"`
	Weight        float64 `json:"weight" validate:"required,gt=0"`
	Height        float64 `json:"height" validate:"required,gt=0"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	ActivityLevel string  `json:"activityLevel" validate:"required"`
	Goal          string  `json:"goal" validate:"required"`
}

func (r *BiometricsRequest) toBiometrics() entity.Biometrics {
	return entity.Biometrics{
		Age:           r.Age,
		WeightKg:      r.Weight,
		HeightCm:      r.Height,
		Gender:        entity.Gender(r.Gender),
		ActivityLevel: entity.ActivityLevel(r.ActivityLevel),
		Goal:          entity.Goal(r.Goal),
	}
}

// UpdateAccountRequest edits the caller's name or email.
type UpdateAccountRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

// Get returns the account with its profile, which is null until first saved.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	out, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, AccountProfileResponse{
		User:    toUserResponse(out.User),
		Profile: toProfileResponse(out.Profile),
	})
}

// Save stores the biometrics together with the recalculated metrics.
func (h *ProfileHandler) Save(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req BiometricsRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	profile, err := h.profileUC.SaveProfile(c.Request().Context(), userID, req.toBiometrics())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toProfileResponse(profile))
}

// UpdateAccount edits the caller's name or email.
func (h *ProfileHandler) UpdateAccount(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	user, err := h.profileUC.UpdateAccount(c.Request().Context(), userID, &usecase.UpdateAccountInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toUserResponse(user))
}

// Calculate previews the metrics without saving anything.
func (h *ProfileHandler) Calculate(c echo.Context) error {
	var req BiometricsRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	metrics, err := h.profileUC.Calculate(c.Request().Context(), req.toBiometrics())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toMetricsResponse(metrics))
}
