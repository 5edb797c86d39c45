// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"
	"strings"

	"healthtrack/config"
	"healthtrack/internal/delivery/api/middleware"
	"healthtrack/internal/delivery/api/router/handler"
	"healthtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipartOverhead is the allowance for multipart framing on top of the image bytes.
const multipartOverhead = 64 << 10

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MealHandler     *handler.MealHandler
	ExerciseHandler *handler.ExerciseHandler
	MediaHandler    *handler.MediaHandler
	ActivityHandler *handler.ActivityHandler
	PlannerHandler  *handler.PlannerHandler
	ProfileHandler  *handler.ProfileHandler
	FeedbackHandler *handler.FeedbackHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	meals          *handler.MealHandler
	exercises      *handler.ExerciseHandler
	media          *handler.MediaHandler
	activity       *handler.ActivityHandler
	planner        *handler.PlannerHandler
	profile        *handler.ProfileHandler
	feedback       *handler.FeedbackHandler
	admin          *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		meals:          params.MealHandler,
		exercises:      params.ExerciseHandler,
		media:          params.MediaHandler,
		activity:       params.ActivityHandler,
		planner:        params.PlannerHandler,
		profile:        params.ProfileHandler,
		feedback:       params.FeedbackHandler,
		admin:          params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// IsImageUpload reports whether a request path is a catalog image upload.
// Those routes get their own body limit instead of the global one.
func IsImageUpload(c echo.Context) bool {
	return strings.HasSuffix(c.Path(), "/:id/image")
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/media/*", r.media.Serve)

	imageLimit := echomiddleware.BodyLimit(strconv.FormatInt(r.config.Storage.MaxImageBytes+multipartOverhead, 10))
	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.GET("/me", r.auth.Me, authenticated)
	}

	// Static segments are registered before /:id so they are not read as ids.
	mealsGroup := api.Group("/meals", authenticated)
	{
		mealsGroup.GET("", r.meals.List)
		mealsGroup.GET("/admin", r.meals.ListAdmin)
		mealsGroup.GET("/user", r.meals.ListMine)
		mealsGroup.POST("", r.meals.Create)
		mealsGroup.GET("/:id", r.meals.Get)
		mealsGroup.PUT("/:id", r.meals.Update)
		mealsGroup.DELETE("/:id", r.meals.Delete)
		mealsGroup.POST("/:id/copy", r.meals.Copy)
		mealsGroup.POST("/:id/image", r.meals.UploadImage, imageLimit)
	}

	exercisesGroup := api.Group("/exercises", authenticated)
	{
		exercisesGroup.GET("", r.exercises.List)
		exercisesGroup.GET("/admin", r.exercises.ListAdmin)
		exercisesGroup.GET("/user", r.exercises.ListMine)
		exercisesGroup.POST("", r.exercises.Create)
		exercisesGroup.GET("/:id", r.exercises.Get)
		exercisesGroup.PUT("/:id", r.exercises.Update)
		exercisesGroup.DELETE("/:id", r.exercises.Delete)
		exercisesGroup.POST("/:id/copy", r.exercises.Copy)
		exercisesGroup.POST("/:id/image", r.exercises.UploadImage, imageLimit)
	}

	activityGroup := api.Group("/activity", authenticated)
	{
		activityGroup.POST("/log-meal", r.activity.LogMeal)
		activityGroup.POST("/log-exercise", r.activity.LogExercise)
		activityGroup.POST("/log-water", r.activity.LogWater)
		activityGroup.POST("/log-sleep", r.activity.LogSleep)
		activityGroup.GET("/today", r.activity.Today)
		activityGroup.GET("/date/:date", r.activity.ForDate)
		activityGroup.GET("/weekly", r.activity.Weekly)
		activityGroup.GET("/sleep/today", r.activity.SleepToday)
	}

	planningGroup := api.Group("/planning", authenticated)
	{
		planningGroup.GET("/today", r.planner.Today)
		planningGroup.GET("/date/:date", r.planner.ForDate)
		planningGroup.GET("/weekly-summary", r.planner.WeeklySummary)
		planningGroup.POST("", r.planner.Create)
		planningGroup.PUT("/:id", r.planner.Update)
		planningGroup.PATCH("/:id/status", r.planner.SetStatus)
		planningGroup.POST("/:id/execute", r.planner.Execute)
		planningGroup.DELETE("/:id", r.planner.Delete)
	}

	profileGroup := api.Group("/profile", authenticated)
	{
		profileGroup.GET("", r.profile.Get)
		profileGroup.PUT("", r.profile.Save)
		profileGroup.PUT("/account", r.profile.UpdateAccount)
		profileGroup.POST("/calculate", r.profile.Calculate)
	}

	feedbackGroup := api.Group("/feedback", authenticated)
	{
		feedbackGroup.POST("", r.feedback.Submit)
		feedbackGroup.GET("/my-feedback", r.feedback.ListMine)
		feedbackGroup.GET("/all", r.feedback.ListAll, adminOnly)
		feedbackGroup.PUT("/:id", r.feedback.UpdateStatus, adminOnly)
		feedbackGroup.DELETE("/:id", r.feedback.Delete, adminOnly)
	}

	adminGroup := api.Group("/admin", authenticated, adminOnly)
	{
		adminMeals := adminGroup.Group("/meals")
		adminMeals.GET("", r.meals.AdminList)
		adminMeals.POST("", r.meals.AdminCreate)
		adminMeals.PUT("/:id", r.meals.AdminUpdate)
		adminMeals.PATCH("/:id/visibility", r.meals.SetVisibility)
		adminMeals.POST("/:id/image", r.meals.AdminUploadImage, imageLimit)
		adminMeals.DELETE("/:id", r.meals.AdminDelete)

		adminExercises := adminGroup.Group("/exercises")
		adminExercises.GET("", r.exercises.AdminList)
		adminExercises.POST("", r.exercises.AdminCreate)
		adminExercises.PUT("/:id", r.exercises.AdminUpdate)
		adminExercises.PATCH("/:id/visibility", r.exercises.SetVisibility)
		adminExercises.POST("/:id/image", r.exercises.AdminUploadImage, imageLimit)
		adminExercises.DELETE("/:id", r.exercises.AdminDelete)

		adminGroup.GET("/users", r.admin.ListUsers)
		adminGroup.GET("/users/:id", r.admin.GetUser)
		adminGroup.PUT("/users/:id", r.admin.UpdateUser)
		adminGroup.DELETE("/users/:id", r.admin.DeleteUser)
		adminGroup.GET("/statistics", r.admin.Statistics)
	}
}
