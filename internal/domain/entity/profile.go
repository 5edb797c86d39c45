package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Gender selects the Harris-Benedict coefficients.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales BMR to daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// Multiplier returns the TDEE factor for the level. Unknown levels count as sedentary.
func (l ActivityLevel) Multiplier() float64 {
	if m, ok := activityMultipliers[l]; ok {
		return m
	}

	return activityMultipliers[ActivitySedentary]
}

// Goal is the user's weight goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// goalAdjustment is the daily calorie deficit or surplus applied for lose and gain.
const goalAdjustment = 500

// Biometrics are the inputs of the calorie calculation.
type Biometrics struct {
	Age           int
	WeightKg      float64
	HeightCm      float64
	Gender        Gender
	ActivityLevel ActivityLevel
	Goal          Goal
}

// CalorieMetrics are the values derived from Biometrics.
type CalorieMetrics struct {
	BMR         int
	TDEE        int
	CalorieGoal int
}

// BasalRate computes the basal metabolic rate with the revised Harris-Benedict equation.
func (b Biometrics) BasalRate() float64 {
	age := float64(b.Age)
	if b.Gender == GenderFemale {
		return 447.593 + 9.247*b.WeightKg + 3.098*b.HeightCm - 4.330*age
	}

	return 88.362 + 13.397*b.WeightKg + 4.799*b.HeightCm - 5.677*age
}

// Calculate derives BMR, TDEE and the daily calorie goal.
func (b Biometrics) Calculate() CalorieMetrics {
	bmr := b.BasalRate()
	tdee := bmr * b.ActivityLevel.Multiplier()
	goal := int(math.Round(tdee))

	switch b.Goal {
	case GoalLose:
		goal -= goalAdjustment
	case GoalGain:
		goal += goalAdjustment
	}

	return CalorieMetrics{
		BMR:         int(math.Round(bmr)),
		TDEE:        int(math.Round(tdee)),
		CalorieGoal: goal,
	}
}

// Profile is the stored biometrics of a user together with the derived metrics.
// There is at most one per user and it is always saved as a whole.
type Profile struct {
	UserID uuid.UUID
	Biometrics
	CalorieMetrics
	UpdatedAt time.Time
}

// NewProfile computes the metrics for b and binds them to userID.
func NewProfile(userID uuid.UUID, b Biometrics, now time.Time) *Profile {
	return &Profile{
		UserID:         userID,
		Biometrics:     b,
		CalorieMetrics: b.Calculate(),
		UpdatedAt:      now,
	}
}
