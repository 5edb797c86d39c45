package handler

import (
	"time"

	"healthtrack/internal/domain/entity"
	"healthtrack/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

func toAuthResponse(out *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
		User:      toUserResponse(out.User),
	}
}

// OwnershipResponse describes where a catalog item comes from.
type OwnershipResponse struct {
	OwnerID    *uuid.UUID `json:"ownerId"`
	Source     string     `json:"source"`
	OriginID   *uuid.UUID `json:"originId"`
	Visibility string     `json:"visibility"`
}

func toOwnershipResponse(o entity.Ownership) OwnershipResponse {
	return OwnershipResponse{
		OwnerID:    o.OwnerID,
		Source:     string(o.Source),
		OriginID:   o.OriginID,
		Visibility: string(o.Visibility),
	}
}

// MealResponse is a catalog meal.
type MealResponse struct {
	ID uuid.UUID `json:"id"`
	OwnershipResponse
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	MealType        string    `json:"mealType"`
	Calories        int       `json:"calories"`
	Protein         float64   `json:"protein"`
	Carbs           float64   `json:"carbs"`
	Fat             float64   `json:"fat"`
	PrepTimeMinutes int       `json:"prepTimeMinutes"`
	Ingredients     []string  `json:"ingredients"`
	Steps           []string  `json:"steps"`
	ImageURL        string    `json:"imageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toMealResponse(m *entity.Meal) *MealResponse {
	return &MealResponse{
		ID:                m.ID,
		OwnershipResponse: toOwnershipResponse(m.Ownership),
		Name:              m.Name,
		Description:       m.Description,
		MealType:          string(m.MealType),
		Calories:          m.Calories,
		Protein:           m.Protein,
		Carbs:             m.Carbs,
		Fat:               m.Fat,
		PrepTimeMinutes:   m.PrepTimeMinutes,
		Ingredients:       nonNil(m.Ingredients),
		Steps:             nonNil(m.Steps),
		ImageURL:          m.ImageURL,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toMealResponses(meals []*entity.Meal) []*MealResponse {
	out := make([]*MealResponse, 0, len(meals))
	for _, m := range meals {
		out = append(out, toMealResponse(m))
	}

	return out
}

// ExerciseResponse is a catalog exercise.
type ExerciseResponse struct {
	ID uuid.UUID `json:"id"`
	OwnershipResponse
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Difficulty      string    `json:"difficulty"`
	DurationMinutes int       `json:"durationMinutes"`
	CaloriesBurned  int       `json:"caloriesBurned"`
	Steps           []string  `json:"steps"`
	ImageURL        string    `json:"imageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toExerciseResponse(e *entity.Exercise) *ExerciseResponse {
	return &ExerciseResponse{
		ID:                e.ID,
		OwnershipResponse: toOwnershipResponse(e.Ownership),
		Title:             e.Title,
		Description:       e.Description,
		Category:          e.Category,
		Difficulty:        string(e.Difficulty),
		DurationMinutes:   e.DurationMinutes,
		CaloriesBurned:    e.CaloriesBurned,
		Steps:             nonNil(e.Steps),
		ImageURL:          e.ImageURL,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toExerciseResponses(exercises []*entity.Exercise) []*ExerciseResponse {
	out := make([]*ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, toExerciseResponse(e))
	}

	return out
}

// MealLogResponse is a logged meal.
type MealLogResponse struct {
	ID       uuid.UUID  `json:"id"`
	Date     string     `json:"date"`
	MealID   *uuid.UUID `json:"mealId"`
	Name     string     `json:"name"`
	MealType string     `json:"mealType"`
	Calories int        `json:"calories"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fat      float64    `json:"fat"`
	LoggedAt time.Time  `json:"loggedAt"`
}

func toMealLogResponse(e *entity.MealLogEntry) *MealLogResponse {
	return &MealLogResponse{
		ID:       e.ID,
		Date:     e.LogDate.Format(entity.DateLayout),
		MealID:   e.MealID,
		Name:     e.Name,
		MealType: string(e.MealType),
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
		LoggedAt: e.LoggedAt,
	}
}

// ExerciseLogResponse is a logged workout.
type ExerciseLogResponse struct {
	ID              uuid.UUID  `json:"id"`
	Date            string     `json:"date"`
	ExerciseID      *uuid.UUID `json:"exerciseId"`
	Title           string     `json:"title"`
	DurationMinutes int        `json:"durationMinutes"`
	CaloriesBurned  int        `json:"caloriesBurned"`
	LoggedAt        time.Time  `json:"loggedAt"`
}

func toExerciseLogResponse(e *entity.ExerciseLogEntry) *ExerciseLogResponse {
	return &ExerciseLogResponse{
		ID:              e.ID,
		Date:            e.LogDate.Format(entity.DateLayout),
		ExerciseID:      e.ExerciseID,
		Title:           e.Title,
		DurationMinutes: e.DurationMinutes,
		CaloriesBurned:  e.CaloriesBurned,
		LoggedAt:        e.LoggedAt,
	}
}

// WaterLogResponse is one water intake event.
type WaterLogResponse struct {
	ID       uuid.UUID `json:"id"`
	Date     string    `json:"date"`
	AmountMl int       `json:"amountMl"`
	LoggedAt time.Time `json:"loggedAt"`
}

func toWaterLogResponse(w *entity.WaterLog) *WaterLogResponse {
	return &WaterLogResponse{
		ID:       w.ID,
		Date:     w.LogDate.Format(entity.DateLayout),
		AmountMl: w.AmountMl,
		LoggedAt: w.LoggedAt,
	}
}

// SleepLogResponse is one sleep entry.
type SleepLogResponse struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date"`
	DurationHours float64   `json:"durationHours"`
	Quality       string    `json:"quality"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toSleepLogResponse(s *entity.SleepLog) *SleepLogResponse {
	if s == nil {
		return nil
	}

	return &SleepLogResponse{
		ID:            s.ID,
		Date:          s.SleepDate.Format(entity.DateLayout),
		DurationHours: s.DurationHours,
		Quality:       string(s.Quality),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}

// WaterSummary lists the water events of a day with their totals.
type WaterSummary struct {
	Entries []*WaterLogResponse `json:"entries"`
	TotalMl int                 `json:"totalMl"`
	Cups    int                 `json:"cups"`
}

// DayActivityResponse is everything logged on one date.
type DayActivityResponse struct {
	Date           string                 `json:"date"`
	Meals          []*MealLogResponse     `json:"meals"`
	Exercises      []*ExerciseLogResponse `json:"exercises"`
	Water          WaterSummary           `json:"water"`
	Sleep          *SleepLogResponse      `json:"sleep"`
	TotalCalories  int                    `json:"totalCalories"`
	CaloriesBurned int                    `json:"caloriesBurned"`
}

func toDayActivityResponse(d *entity.DayActivity) *DayActivityResponse {
	out := &DayActivityResponse{
		Date:           d.Date.Format(entity.DateLayout),
		Meals:          make([]*MealLogResponse, 0, len(d.Meals)),
		Exercises:      make([]*ExerciseLogResponse, 0, len(d.Exercises)),
		Sleep:          toSleepLogResponse(d.Sleep),
		TotalCalories:  d.TotalCalories(),
		CaloriesBurned: d.CaloriesBurned(),
	}

	for _, m := range d.Meals {
		out.Meals = append(out.Meals, toMealLogResponse(m))
	}
	for _, e := range d.Exercises {
		out.Exercises = append(out.Exercises, toExerciseLogResponse(e))
	}

	total := d.TotalWaterMl()
	out.Water = WaterSummary{
		Entries: make([]*WaterLogResponse, 0, len(d.Water)),
		TotalMl: total,
		Cups:    entity.CupsFromMl(total),
	}
	for _, w := range d.Water {
		out.Water.Entries = append(out.Water.Entries, toWaterLogResponse(w))
	}

	return out
}

// DayTotalsResponse is one point of the weekly chart.
type DayTotalsResponse struct {
	Date           string `json:"date"`
	TotalCalories  int    `json:"totalCalories"`
	CaloriesBurned int    `json:"caloriesBurned"`
	WaterMl        int    `json:"waterMl"`
	WaterCups      int    `json:"waterCups"`
}

func toDayTotalsResponses(days []entity.DayTotals) []DayTotalsResponse {
	out := make([]DayTotalsResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DayTotalsResponse{
			Date:           d.Date.Format(entity.DateLayout),
			TotalCalories:  d.TotalCalories,
			CaloriesBurned: d.CaloriesBurned,
			WaterMl:        d.WaterMl,
			WaterCups:      d.WaterCups(),
		})
	}

	return out
}

// PlanResponse is a scheduled activity.
type PlanResponse struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	ActivityType  string     `json:"activityType"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Notes         string     `json:"notes"`
	Completed     bool       `json:"completed"`
	CatalogItemID *uuid.UUID `json:"catalogItemId"`
	CompletedAt   *time.Time `json:"completedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func toPlanResponse(p *entity.Plan) *PlanResponse {
	return &PlanResponse{
		ID:            p.ID,
		Date:          p.PlanDate.Format(entity.DateLayout),
		Time:          p.PlanTime,
		ActivityType:  string(p.ActivityType),
		Title:         p.Title,
		Description:   p.Description,
		Notes:         p.Notes,
		Completed:     p.Completed,
		CatalogItemID: p.CatalogItemID,
		CompletedAt:   p.CompletedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPlanResponses(plans []*entity.Plan) []*PlanResponse {
	out := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}

	return out
}

// ExecutionResponse reports what executing a plan did.
type ExecutionResponse struct {
	Plan         *PlanResponse `json:"plan"`
	Logged       bool          `json:"logged"`
	ActivityType string        `json:"activityType"`
	Reason       string        `json:"reason,omitempty"`
}

func toExecutionResponse(r *entity.ExecutionResult) *ExecutionResponse {
	return &ExecutionResponse{
		Plan:         toPlanResponse(r.Plan),
		Logged:       r.Logged,
		ActivityType: string(r.ActivityType),
		Reason:       r.Reason,
	}
}

// PlanSummaryResponse counts plans for one date and activity type.
type PlanSummaryResponse struct {
	Date         string `json:"date"`
	ActivityType string `json:"activityType"`
	Total        int    `json:"total"`
	Completed    int    `json:"completed"`
}

func toPlanSummaryResponses(rows []entity.PlanSummary) []PlanSummaryResponse {
	out := make([]PlanSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, PlanSummaryResponse{
			Date:         r.PlanDate.Format(entity.DateLayout),
			ActivityType: string(r.ActivityType),
			Total:        r.Total,
			Completed:    r.Completed,
		})
	}

	return out
}

// MetricsResponse holds the calorie calculation results.
type MetricsResponse struct {
	BMR         int `json:"bmr"`
	TDEE        int `json:"tdee"`
	CalorieGoal int `json:"calorieGoal"`
}

func toMetricsResponse(m entity.CalorieMetrics) MetricsResponse {
	return MetricsResponse{BMR: m.BMR, TDEE: m.TDEE, CalorieGoal: m.CalorieGoal}
}

// ProfileResponse is the stored biometric profile.
type ProfileResponse struct {
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
	MetricsResponse
	UpdatedAt time.Time `json:"updatedAt"`
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		Age:             p.Age,
		Weight:          p.WeightKg,
		Height:          p.HeightCm,
		Gender:          string(p.Gender),
		ActivityLevel:   string(p.ActivityLevel),
		Goal:            string(p.Goal),
		MetricsResponse: toMetricsResponse(p.CalorieMetrics),
		UpdatedAt:       p.UpdatedAt,
	}
}

// AccountProfileResponse pairs the account with its profile.
type AccountProfileResponse struct {
	User    *UserResponse    `json:"user"`
	Profile *ProfileResponse `json:"profile"`
}

// FeedbackResponse is a feedback entry. User fields are filled on admin listings.
type FeedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	UserEmail string    `json:"userEmail,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toFeedbackResponse(f *entity.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		UserName:  f.UserName,
		UserEmail: f.UserEmail,
		Message:   f.Message,
		Status:    string(f.Status),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toFeedbackResponses(entries []*entity.Feedback) []*FeedbackResponse {
	out := make([]*FeedbackResponse, 0, len(entries))
	for _, f := range entries {
		out = append(out, toFeedbackResponse(f))
	}

	return out
}

// StatisticsResponse is the admin dashboard.
type StatisticsResponse struct {
	Users struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
		Admins int64 `json:"admins"`
	} `json:"users"`
	Catalog struct {
		AdminMeals        int64 `json:"adminMeals"`
		PersonalMeals     int64 `json:"personalMeals"`
		AdminExercises    int64 `json:"adminExercises"`
		PersonalExercises int64 `json:"personalExercises"`
	} `json:"catalog"`
	Plans struct {
		Total     int64 `json:"total"`
		Completed int64 `json:"completed"`
	} `json:"plans"`
	Feedback map[string]int64 `json:"feedback"`
	Today    struct {
		MealLogs     int64 `json:"mealLogs"`
		ExerciseLogs int64 `json:"exerciseLogs"`
		WaterLogs    int64 `json:"waterLogs"`
	} `json:"today"`
}

func toStatisticsResponse(s *entity.Statistics) *StatisticsResponse {
	out := &StatisticsResponse{Feedback: map[string]int64{}}
	out.Users.Total = s.Users.Total
	out.Users.Active = s.Users.Active
	out.Users.Admins = s.Users.Admins
	out.Catalog.AdminMeals = s.Catalog.AdminMeals
	out.Catalog.PersonalMeals = s.Catalog.PersonalMeals
	out.Catalog.AdminExercises = s.Catalog.AdminExercises
	out.Catalog.PersonalExercises = s.Catalog.PersonalExercises
	out.Plans.Total = s.Plans.Total
	out.Plans.Completed = s.Plans.Completed
	out.Today.MealLogs = s.Today.MealLogs
	out.Today.ExerciseLogs = s.Today.ExerciseLogs
	out.Today.WaterLogs = s.Today.WaterLogs

	for _, status := range []entity.FeedbackStatus{entity.FeedbackNew, entity.FeedbackInProgress, entity.FeedbackDone} {
		out.Feedback[string(status)] = s.Feedback[status]
	}

	return out
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}

	return items
}
