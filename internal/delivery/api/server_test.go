package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthtrack/config"
	apimiddleware "healthtrack/internal/delivery/api/middleware"
	"healthtrack/internal/delivery/api/router"
	"healthtrack/internal/delivery/api/router/handler"
	"healthtrack/internal/domain/entity"
	domainerrors "healthtrack/internal/domain/errors"
	"healthtrack/internal/domain/service"
	mockSvc "healthtrack/internal/mocks/service"
	mockUC "healthtrack/internal/mocks/usecase"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken     = "user-token"
	adminToken    = "admin-token"
	inactiveToken = "inactive-token"
	demotedToken  = "demoted-token"
)

// apiFixtures holds the assembled echo instance and the mocks behind it.
type apiFixtures struct {
	e        *echo.Echo
	userID   uuid.UUID
	adminID  uuid.UUID
	auth     *mockUC.MockAuthUsecase
	meals    *mockUC.MockMealUsecase
	media    *mockUC.MockMediaUsecase
	activity *mockUC.MockActivityUsecase
	planner  *mockUC.MockPlannerUsecase
	profile  *mockUC.MockProfileUsecase
	feedback *mockUC.MockFeedbackUsecase
	admin    *mockUC.MockAdminUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Storage.MaxImageBytes = 1 << 20

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := apiFixtures{
		userID:   uuid.New(),
		adminID:  uuid.New(),
		auth:     mockUC.NewMockAuthUsecase(t),
		meals:    mockUC.NewMockMealUsecase(t),
		media:    mockUC.NewMockMediaUsecase(t),
		activity: mockUC.NewMockActivityUsecase(t),
		planner:  mockUC.NewMockPlannerUsecase(t),
		profile:  mockUC.NewMockProfileUsecase(t),
		feedback: mockUC.NewMockFeedbackUsecase(t),
		admin:    mockUC.NewMockAdminUsecase(t),
	}

	inactiveID, demotedID := uuid.New(), uuid.New()

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().Validate(userToken).
		Return(&service.Claims{UserID: f.userID, Name: "Ann", Email: "ann@example.com", Role: "user"}, nil).Maybe()
	tokens.EXPECT().Validate(adminToken).
		Return(&service.Claims{UserID: f.adminID, Name: "Root", Email: "root@example.com", Role: "admin"}, nil).Maybe()
	tokens.EXPECT().Validate(inactiveToken).
		Return(&service.Claims{UserID: inactiveID, Name: "Gone", Role: "user"}, nil).Maybe()
	tokens.EXPECT().Validate(demotedToken).
		Return(&service.Claims{UserID: demotedID, Name: "Former", Role: "admin"}, nil).Maybe()
	tokens.EXPECT().Validate(mock.Anything).Return(nil, errors.New("token is expired")).Maybe()

	// The middleware reloads the account named by the token on every request.
	accounts := mockUC.NewMockAuthUsecase(t)
	accounts.EXPECT().Me(mock.Anything, f.userID).
		Return(&entity.User{ID: f.userID, Name: "Ann", Email: "ann@example.com", Role: entity.RoleUser, Status: entity.UserStatusActive}, nil).Maybe()
	accounts.EXPECT().Me(mock.Anything, f.adminID).
		Return(&entity.User{ID: f.adminID, Name: "Root", Email: "root@example.com", Role: entity.RoleAdmin, Status: entity.UserStatusActive}, nil).Maybe()
	accounts.EXPECT().Me(mock.Anything, inactiveID).
		Return(&entity.User{ID: inactiveID, Name: "Gone", Role: entity.RoleUser, Status: entity.UserStatusInactive}, nil).Maybe()
	accounts.EXPECT().Me(mock.Anything, demotedID).
		Return(&entity.User{ID: demotedID, Name: "Former", Role: entity.RoleUser, Status: entity.UserStatusActive}, nil).Maybe()

	f.e = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth}),
		MealHandler:     handler.NewMealHandler(handler.MealHandlerParams{MealUC: f.meals}),
		ExerciseHandler: handler.NewExerciseHandler(handler.ExerciseHandlerParams{ExerciseUC: mockUC.NewMockExerciseUsecase(t)}),
		MediaHandler:    handler.NewMediaHandler(handler.MediaHandlerParams{MediaUC: f.media}),
		ActivityHandler: handler.NewActivityHandler(handler.ActivityHandlerParams{ActivityUC: f.activity}),
		PlannerHandler:  handler.NewPlannerHandler(handler.PlannerHandlerParams{PlannerUC: f.planner}),
		ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profile}),
		FeedbackHandler: handler.NewFeedbackHandler(handler.FeedbackHandlerParams{FeedbackUC: f.feedback}),
		AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: f.admin}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokens, accounts),
		Config:          cfg,
	})

	return f
}

func (f apiFixtures) do(t *testing.T, method, target, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return f.send(t, req, token)
}

func (f apiFixtures) send(t *testing.T, req *http.Request, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec, decoded
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()

	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %v", body)

	return errBody["code"].(string)
}

func TestAPI_HealthCheck(t *testing.T) {
	f := createTestAPI(t)

	rec, body := f.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAPI_AuthGate(t *testing.T) {
	f := createTestAPI(t)

	tests := []struct {
		name     string
		target   string
		token    string
		wantCode int
		wantErr  string
	}{
		{name: "missing token", target: "/api/auth/me", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{name: "expired token", target: "/api/planning/today", token: "stale", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{name: "user on admin route", target: "/api/admin/statistics", token: userToken, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "user on feedback triage", target: "/api/feedback/all", token: userToken, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "deactivated account with live token", target: "/api/planning/today", token: inactiveToken, wantCode: http.StatusForbidden, wantErr: "ACCOUNT_INACTIVE"},
		{name: "demoted admin with admin token", target: "/api/admin/statistics", token: demotedToken, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := f.do(t, http.MethodGet, tt.target, tt.token, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, errorCode(t, body))
		})
	}
}

func TestAPI_Register(t *testing.T) {
	f := createTestAPI(t)

	user := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Role: entity.RoleUser, Status: entity.UserStatusActive}
	f.auth.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "Secret123!"}).
		Return(&usecase.AuthOutput{Token: "signed", ExpiresAt: time.Now().Add(time.Hour), User: user}, nil)

	rec, body := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ann", "email": "ann@example.com", "password": "Secret123!",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "signed", data["token"])
	assert.Equal(t, "ann@example.com", data["user"].(map[string]any)["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAPI_Register_ValidationDetails(t *testing.T) {
	f := createTestAPI(t)

	rec, body := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "Ann"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
	details := body["error"].(map[string]any)["details"].(map[string]any)
	assert.Equal(t, "required", details["email"])
	assert.Equal(t, "required", details["password"])
}

func TestAPI_DomainErrorsMapToStatus(t *testing.T) {
	f := createTestAPI(t)

	f.auth.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to create user"))
	f.auth.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrAccountInactive, "login"))

	rec, body := f.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ann", "email": "ann@example.com", "password": "Secret123!",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, body))

	rec, body = f.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ann@example.com", "password": "Secret123!",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCOUNT_INACTIVE", errorCode(t, body))
}

func TestAPI_UnexpectedErrorIsHidden(t *testing.T) {
	f := createTestAPI(t)

	f.activity.EXPECT().Weekly(mock.Anything, f.userID).Return(nil, errors.New("pq: connection reset"))

	rec, body := f.do(t, http.MethodGet, "/api/activity/weekly", userToken, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, body))
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestAPI_CatalogStaticRoutesBeforeID(t *testing.T) {
	f := createTestAPI(t)

	f.meals.EXPECT().
		ListMeals(mock.Anything, entity.CatalogFilter{Scope: entity.ScopeAdminPublic, UserID: f.userID, Kind: "lunch", Query: "salad"}).
		Return([]*entity.Meal{{ID: uuid.New(), Name: "Salad", Ownership: entity.Ownership{Source: entity.SourceAdmin, Visibility: entity.VisibilityPublic}}}, nil)
	f.meals.EXPECT().
		ListMeals(mock.Anything, entity.CatalogFilter{Scope: entity.ScopePersonal, UserID: f.userID}).
		Return(nil, nil)

	rec, body := f.do(t, http.MethodGet, "/api/meals/admin?type=lunch&q=salad", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "admin", items[0].(map[string]any)["source"])
	assert.Equal(t, []any{}, items[0].(map[string]any)["ingredients"])

	rec, body = f.do(t, http.MethodGet, "/api/meals/user", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["data"])
}

func TestAPI_AdminCatalogUsesSharedCatalog(t *testing.T) {
	f := createTestAPI(t)

	mealID := uuid.New()
	f.meals.EXPECT().
		SetMealVisibility(mock.Anything, mealID, entity.VisibilityHidden).
		Return(&entity.Meal{ID: mealID, Name: "Soup", Ownership: entity.Ownership{Source: entity.SourceAdmin, Visibility: entity.VisibilityHidden}}, nil)
	f.meals.EXPECT().DeleteMeal(mock.Anything, mealID, (*uuid.UUID)(nil)).Return(nil)

	rec, body := f.do(t, http.MethodPatch, "/api/admin/meals/"+mealID.String()+"/visibility", adminToken, map[string]string{"visibility": "hidden"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hidden", body["data"].(map[string]any)["visibility"])

	rec, _ = f.do(t, http.MethodDelete, "/api/admin/meals/"+mealID.String(), adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_InvalidPathID(t *testing.T) {
	f := createTestAPI(t)

	rec, body := f.do(t, http.MethodGet, "/api/meals/not-a-uuid", userToken, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestAPI_BodyLimit(t *testing.T) {
	f := createTestAPI(t)

	big := strings.Repeat("x", 200<<10)
	rec, body := f.do(t, http.MethodPost, "/api/feedback", userToken, map[string]string{"message": big})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", errorCode(t, body))
}

func TestAPI_UploadMealImage(t *testing.T) {
	f := createTestAPI(t)

	mealID := uuid.New()
	content := bytes.Repeat([]byte{0x89}, 200<<10) // above the default body limit

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "dinner.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	f.meals.EXPECT().
		UploadMealImage(mock.Anything, mealID, &f.userID, mock.AnythingOfType("*usecase.ImageUpload")).
		RunAndReturn(func(_ context.Context, id uuid.UUID, _ *uuid.UUID, upload *usecase.ImageUpload) (*entity.Meal, error) {
			assert.Equal(t, "dinner.png", upload.Filename)
			assert.Equal(t, int64(len(content)), upload.Size)

			return &entity.Meal{ID: id, ImageURL: "/media/meals/" + id.String() + "/a.png"}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/meals/"+mealID.String()+"/image", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	rec, body := f.send(t, req, userToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/media/meals/"+mealID.String()+"/a.png", body["data"].(map[string]any)["imageUrl"])
}

func TestAPI_UploadWithoutFile(t *testing.T) {
	f := createTestAPI(t)

	rec, body := f.do(t, http.MethodPost, "/api/meals/"+uuid.NewString()+"/image", userToken, map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestAPI_ServeMedia(t *testing.T) {
	f := createTestAPI(t)

	f.media.EXPECT().OpenImage(mock.Anything, "meals/abc/img.png").
		Return(io.NopCloser(strings.NewReader("PNGDATA")), "image/png", nil)
	f.media.EXPECT().OpenImage(mock.Anything, "meals/missing.png").
		Return(nil, "", domainerrors.ErrNotFound)

	rec, _ := f.do(t, http.MethodGet, "/media/meals/abc/img.png", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "PNGDATA", rec.Body.String())

	rec, body := f.do(t, http.MethodGet, "/media/meals/missing.png", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestAPI_ActivityToday(t *testing.T) {
	f := createTestAPI(t)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	f.activity.EXPECT().Today(mock.Anything, f.userID).Return(&entity.DayActivity{
		Date:  today,
		Meals: []*entity.MealLogEntry{{ID: uuid.New(), LogDate: today, Name: "Oats", Calories: 350}},
		Water: []*entity.WaterLog{{ID: uuid.New(), LogDate: today, AmountMl: 250}, {ID: uuid.New(), LogDate: today, AmountMl: 500}},
	}, nil)

	rec, body := f.do(t, http.MethodGet, "/api/activity/today", userToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "2026-03-10", data["date"])
	assert.Equal(t, []any{}, data["exercises"])
	assert.Nil(t, data["sleep"])
	assert.EqualValues(t, 350, data["totalCalories"])
	water := data["water"].(map[string]any)
	assert.EqualValues(t, 750, water["totalMl"])
	assert.EqualValues(t, 3, water["cups"])
}

func TestAPI_LogMeal(t *testing.T) {
	f := createTestAPI(t)

	mealID := uuid.New()
	f.activity.EXPECT().
		LogMeal(mock.Anything, f.userID, &usecase.LogMealInput{MealID: &mealID, Name: "Oats", MealType: entity.MealTypeBreakfast, Calories: 350}).
		Return(&entity.MealLogEntry{ID: uuid.New(), MealID: &mealID, Name: "Oats", Calories: 350}, nil)

	rec, _ := f.do(t, http.MethodPost, "/api/activity/log-meal", userToken, map[string]any{
		"mealId": mealID.String(), "name": "Oats", "mealType": "breakfast", "calories": 350,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, body := f.do(t, http.MethodPost, "/api/activity/log-meal", userToken, map[string]any{
		"mealId": "nope", "name": "Oats", "calories": 350,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "uuid", body["error"].(map[string]any)["details"].(map[string]any)["mealId"])
}

func TestAPI_PlannerCreateAndExecute(t *testing.T) {
	f := createTestAPI(t)

	planID := uuid.New()
	catalogID := uuid.New()
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	plan := &entity.Plan{
		ID: planID, UserID: f.userID, PlanDate: date, PlanTime: "07:30:00",
		ActivityType: entity.ActivityMeal, Title: "Breakfast", CatalogItemID: &catalogID,
	}

	f.planner.EXPECT().
		CreatePlan(mock.Anything, f.userID, &usecase.CreatePlanInput{
			Date: date, Time: "07:30", ActivityType: entity.ActivityMeal, Title: "Breakfast", CatalogItemID: &catalogID,
		}).
		Return(plan, nil)

	rec, body := f.do(t, http.MethodPost, "/api/planning", userToken, map[string]any{
		"date": "2026-03-12", "time": "07:30", "activityType": "meal", "title": "Breakfast", "catalogItemId": catalogID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "2026-03-12", data["date"])
	assert.Equal(t, "07:30:00", data["time"])
	assert.Equal(t, false, data["completed"])

	completed := *plan
	completed.MarkCompleted(time.Now())
	f.planner.EXPECT().ExecutePlan(mock.Anything, f.userID, planID).Return(&entity.ExecutionResult{
		Plan: &completed, Logged: false, ActivityType: entity.ActivityMeal, Reason: entity.ReasonCatalogItemNotFound,
	}, nil)

	rec, body = f.do(t, http.MethodPost, "/api/planning/"+planID.String()+"/execute", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = body["data"].(map[string]any)
	assert.Equal(t, false, data["logged"])
	assert.Equal(t, "CATALOG_ITEM_NOT_FOUND", data["reason"])
	assert.Equal(t, true, data["plan"].(map[string]any)["completed"])
}

func TestAPI_PlannerValidation(t *testing.T) {
	f := createTestAPI(t)

	rec, body := f.do(t, http.MethodPost, "/api/planning", userToken, map[string]any{
		"date": "12/03/2026", "time": "7pm", "activityType": "nap", "title": "Rest",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	details := body["error"].(map[string]any)["details"].(map[string]any)
	assert.Equal(t, "date", details["date"])
	assert.Equal(t, "clock", details["time"])
	assert.Equal(t, "oneof=meal exercise water sleep", details["activityType"])

	rec, body = f.do(t, http.MethodPatch, "/api/planning/"+uuid.NewString()+"/status", userToken, map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required", body["error"].(map[string]any)["details"].(map[string]any)["completed"])
}

func TestAPI_PlannerSetStatusFalse(t *testing.T) {
	f := createTestAPI(t)

	planID := uuid.New()
	f.planner.EXPECT().SetStatus(mock.Anything, f.userID, planID, false).
		Return(&entity.Plan{ID: planID, PlanTime: "08:00:00", ActivityType: entity.ActivityWater}, nil)

	rec, body := f.do(t, http.MethodPatch, "/api/planning/"+planID.String()+"/status", userToken, map[string]any{"completed": false})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["data"].(map[string]any)["completed"])
}

func TestAPI_ProfileWithoutSavedProfile(t *testing.T) {
	f := createTestAPI(t)

	f.profile.EXPECT().GetProfile(mock.Anything, f.userID).Return(&usecase.ProfileOutput{
		User: &entity.User{ID: f.userID, Name: "Ann", Role: entity.RoleUser},
	}, nil)

	rec, body := f.do(t, http.MethodGet, "/api/profile", userToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Nil(t, data["profile"])
	assert.Equal(t, "Ann", data["user"].(map[string]any)["name"])
}

func TestAPI_ProfileCalculate(t *testing.T) {
	f := createTestAPI(t)

	b := entity.Biometrics{Age: 25, WeightKg: 70, HeightCm: 170, Gender: entity.GenderMale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalMaintain}
	f.profile.EXPECT().Calculate(mock.Anything, b).Return(b.Calculate(), nil)

	rec, body := f.do(t, http.MethodPost, "/api/profile/calculate", userToken, map[string]any{
		"age": 25, "weight": 70, "height": 170, "gender": "male", "activityLevel": "moderate", "goal": "maintain",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1700, data["bmr"])
	assert.EqualValues(t, 2635, data["tdee"])
	assert.EqualValues(t, 2635, data["calorieGoal"])

	rec, _ = f.do(t, http.MethodPut, "/api/profile", userToken, map[string]any{"age": 25})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_FeedbackTriage(t *testing.T) {
	f := createTestAPI(t)

	id := uuid.New()
	status := entity.FeedbackNew
	f.feedback.EXPECT().ListAll(mock.Anything, &status).Return([]*entity.Feedback{{ID: id, Message: "hi", Status: status, UserName: "Ann"}}, nil)
	f.feedback.EXPECT().UpdateStatus(mock.Anything, id, entity.FeedbackDone).
		Return(&entity.Feedback{ID: id, Message: "hi", Status: entity.FeedbackDone}, nil)

	rec, body := f.do(t, http.MethodGet, "/api/feedback/all?status=new", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ann", body["data"].([]any)[0].(map[string]any)["userName"])

	rec, _ = f.do(t, http.MethodGet, "/api/feedback/all?status=archived", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = f.do(t, http.MethodPut, "/api/feedback/"+id.String(), adminToken, map[string]string{"status": "done"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", body["data"].(map[string]any)["status"])

	rec, _ = f.do(t, http.MethodDelete, "/api/feedback/"+id.String(), userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_AdminUsers(t *testing.T) {
	f := createTestAPI(t)

	f.admin.EXPECT().DeleteUser(mock.Anything, f.adminID, f.adminID).
		Return(errors.Wrap(domainerrors.ErrCannotDeleteSelf, "delete user"))

	role := entity.RoleAdmin
	targetID := uuid.New()
	f.admin.EXPECT().UpdateUser(mock.Anything, targetID, entity.UserPatch{Role: &role}).
		Return(&entity.User{ID: targetID, Role: entity.RoleAdmin, Status: entity.UserStatusActive}, nil)

	rec, body := f.do(t, http.MethodDelete, "/api/admin/users/"+f.adminID.String(), adminToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "CANNOT_DELETE_SELF", errorCode(t, body))

	rec, body = f.do(t, http.MethodPut, "/api/admin/users/"+targetID.String(), adminToken, map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", body["data"].(map[string]any)["role"])
}

func TestAPI_AdminStatistics(t *testing.T) {
	f := createTestAPI(t)

	stats := &entity.Statistics{Feedback: map[entity.FeedbackStatus]int64{entity.FeedbackNew: 2}}
	stats.Users.Total = 5
	stats.Plans.Completed = 3
	f.admin.EXPECT().Statistics(mock.Anything).Return(stats, nil)

	rec, body := f.do(t, http.MethodGet, "/api/admin/statistics", adminToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 5, data["users"].(map[string]any)["total"])
	assert.EqualValues(t, 3, data["plans"].(map[string]any)["completed"])
	assert.Equal(t, map[string]any{"new": float64(2), "in_progress": float64(0), "done": float64(0)}, data["feedback"])
}
