package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "healthtrack/internal/delivery/context"
	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/service"
	"healthtrack/internal/errors"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	accounts usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accounts usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accounts: accounts}
}

// Authenticate validates the bearer token, reloads the account it names and
// stores the caller's identity in the request context. Role and status come
// from the stored account, so deactivation and demotion apply to tokens
// issued earlier.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized.WithDetails("token must be a Bearer token")
		}

		claims, err := m.tokenSvc.Validate(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
				Debug("Rejected bearer token", "error", err)

			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		user, err := m.accounts.Me(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				return domainerrors.ErrUnauthorized.WithDetails("account no longer exists")
			}

			return errors.Wrap(err, "failed to load authenticated account")
		}
		if !user.IsActive() {
			return domainerrors.ErrAccountInactive
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), deliverycontext.Identity{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role.String(),
		})
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if identity.Role != requiredRole.String() {
				return domainerrors.ErrForbidden.WithDetails("requires " + requiredRole.String() + " role")
			}

			return next(c)
		}
	}
}

// GetIdentity returns the authenticated caller.
func GetIdentity(c echo.Context) (deliverycontext.Identity, bool) {
	return deliverycontext.GetIdentity(c.Request().Context())
}

// GetUserID returns the authenticated caller's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c.Request().Context())
}
