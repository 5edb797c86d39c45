package entity

// Statistics is the admin dashboard snapshot.
type Statistics struct {
	Users struct {
		Total  int64
		Active int64
		Admins int64
	}
	Catalog struct {
		AdminMeals        int64
		PersonalMeals     int64
		AdminExercises    int64
		PersonalExercises int64
	}
	Plans struct {
		Total     int64
		Completed int64
	}
	Feedback map[FeedbackStatus]int64
	Today    struct {
		MealLogs     int64
		ExerciseLogs int64
		WaterLogs    int64
	}
}
