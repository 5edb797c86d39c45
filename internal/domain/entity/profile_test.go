package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBiometrics_Calculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       Biometrics
		expected CalorieMetrics
	}{
		{
			name:     "male moderate maintain",
			in:       Biometrics{Age: 25, WeightKg: 70, HeightCm: 170, Gender: GenderMale, ActivityLevel: ActivityModerate, Goal: GoalMaintain},
			expected: CalorieMetrics{BMR: 1700, TDEE: 2635, CalorieGoal: 2635},
		},
		{
			name:     "male moderate lose",
			in:       Biometrics{Age: 25, WeightKg: 70, HeightCm: 170, Gender: GenderMale, ActivityLevel: ActivityModerate, Goal: GoalLose},
			expected: CalorieMetrics{BMR: 1700, TDEE: 2635, CalorieGoal: 2135},
		},
		{
			name:     "male moderate gain",
			in:       Biometrics{Age: 25, WeightKg: 70, HeightCm: 170, Gender: GenderMale, ActivityLevel: ActivityModerate, Goal: GoalGain},
			expected: CalorieMetrics{BMR: 1700, TDEE: 2635, CalorieGoal: 3135},
		},
		{
			name:     "female sedentary lose",
			in:       Biometrics{Age: 30, WeightKg: 60, HeightCm: 165, Gender: GenderFemale, ActivityLevel: ActivitySedentary, Goal: GoalLose},
			expected: CalorieMetrics{BMR: 1384, TDEE: 1660, CalorieGoal: 1160},
		},
		{
			name:     "unknown activity level falls back to sedentary",
			in:       Biometrics{Age: 30, WeightKg: 60, HeightCm: 165, Gender: GenderFemale, ActivityLevel: "couch", Goal: GoalMaintain},
			expected: CalorieMetrics{BMR: 1384, TDEE: 1660, CalorieGoal: 1660},
		},
		{
			name:     "unknown goal is treated as maintain",
			in:       Biometrics{Age: 25, WeightKg: 70, HeightCm: 170, Gender: GenderMale, ActivityLevel: ActivityModerate, Goal: "bulk"},
			expected: CalorieMetrics{BMR: 1700, TDEE: 2635, CalorieGoal: 2635},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.in.Calculate())
		})
	}
}

func TestBiometrics_GoalGrowsWithWeight(t *testing.T) {
	t.Parallel()

	prev := 0
	for weight := 40.0; weight <= 150; weight += 5 {
		b := Biometrics{Age: 40, WeightKg: weight, HeightCm: 175, Gender: GenderMale, ActivityLevel: ActivityLight, Goal: GoalMaintain}
		goal := b.Calculate().CalorieGoal
		assert.Greater(t, goal, prev, "weight %.0f", weight)
		prev = goal
	}
}

func TestActivityLevel_Multiplier(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.2, ActivitySedentary.Multiplier(), 1e-9)
	assert.InDelta(t, 1.375, ActivityLight.Multiplier(), 1e-9)
	assert.InDelta(t, 1.55, ActivityModerate.Multiplier(), 1e-9)
	assert.InDelta(t, 1.725, ActivityActive.Multiplier(), 1e-9)
	assert.InDelta(t, 1.9, ActivityVeryActive.Multiplier(), 1e-9)
	assert.InDelta(t, 1.2, ActivityLevel("").Multiplier(), 1e-9)
}

func TestNewProfile_ExposesRoundedMetrics(t *testing.T) {
	t.Parallel()

	b := Biometrics{Age: 25, WeightKg: 70, HeightCm: 170, Gender: GenderMale, ActivityLevel: ActivityModerate, Goal: GoalMaintain}
	userID := uuid.New()
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

	p := NewProfile(userID, b, now)

	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, 1700, p.BMR)
	assert.Equal(t, 2635, p.TDEE)
	assert.Equal(t, 2635, p.CalorieGoal)
	assert.InDelta(t, 1700.057, p.BasalRate(), 0.001)
	assert.Equal(t, now, p.UpdatedAt)
}
