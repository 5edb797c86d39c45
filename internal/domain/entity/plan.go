package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType is the kind of activity a plan schedules.
type ActivityType string

const (
	ActivityMeal     ActivityType = "meal"
	ActivityExercise ActivityType = "exercise"
	ActivityWater    ActivityType = "water"
	ActivitySleep    ActivityType = "sleep"
)

// IsValid checks if the ActivityType is a valid value.
func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityMeal, ActivityExercise, ActivityWater, ActivitySleep:
		return true
	default:
		return false
	}
}

// Plan is a user's scheduled activity for a date and time of day.
//
// Completed only moves false to true through execution; the status toggle
// is the one path that may clear it again.
type Plan struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PlanDate      time.Time
	PlanTime      string // HH:MM:SS
	ActivityType  ActivityType
	Title         string
	Description   string
	Notes         string
	Completed     bool
	CatalogItemID *uuid.UUID // meal or exercise id matching ActivityType
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MarkCompleted flips the plan to completed at the given instant.
func (p *Plan) MarkCompleted(at time.Time) {
	p.Completed = true
	p.CompletedAt = &at
}

// SetCompleted applies a manual status toggle.
func (p *Plan) SetCompleted(completed bool, at time.Time) {
	if completed {
		p.MarkCompleted(at)
		return
	}
	p.Completed = false
	p.CompletedAt = nil
}

// PlanUpdate is the full overwrite applied by the edit operation. Completion is never part of it.
type PlanUpdate struct {
	PlanTime    string
	Title       string
	Description string
	Notes       string
}

// Reasons reported when executing a plan does not write a log entry.
const (
	ReasonCatalogItemNotFound = "CATALOG_ITEM_NOT_FOUND"
	ReasonNotApplicable       = "NOT_APPLICABLE"
)

// ExecutionResult describes the outcome of executing a plan.
type ExecutionResult struct {
	Plan         *Plan
	Logged       bool
	ActivityType ActivityType
	Reason       string // empty when Logged is true
}

// PlanSummary counts plans per (date, activity type).
type PlanSummary struct {
	PlanDate     time.Time
	ActivityType ActivityType
	Total        int
	Completed    int
}
