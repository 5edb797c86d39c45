package entity

import (
	"time"

	"github.com/google/uuid"
)

// Source records how a catalog item came to exist.
type Source string

const (
	// SourceAdmin marks items curated by administrators and shared with everyone.
	SourceAdmin Source = "admin"
	// SourceCustom marks items a user created from scratch.
	SourceCustom Source = "custom"
	// SourceCopied marks personal duplicates of an admin item.
	SourceCopied Source = "copied"
)

// Visibility only applies to admin items; personal items are always private to their owner.
type Visibility string

const (
	VisibilityPublic Visibility = "public"
	VisibilityHidden Visibility = "hidden"
)

// IsValid checks if the Visibility is a valid value.
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityHidden
}

// Ownership is shared by every catalog item kind.
type Ownership struct {
	OwnerID    *uuid.UUID // nil for admin items
	Source     Source
	OriginID   *uuid.UUID // admin item this one was copied from
	Visibility Visibility
}

// IsAdminItem reports whether the item belongs to the shared admin catalog.
func (o Ownership) IsAdminItem() bool {
	return o.OwnerID == nil
}

// OwnedBy reports whether the item is a personal item of userID.
func (o Ownership) OwnedBy(userID uuid.UUID) bool {
	return o.OwnerID != nil && *o.OwnerID == userID
}

// VisibleTo reports whether userID may read the item.
func (o Ownership) VisibleTo(userID uuid.UUID) bool {
	if o.IsAdminItem() {
		return o.Visibility == VisibilityPublic
	}

	return o.OwnedBy(userID)
}

// CatalogScope selects which part of a catalog a listing covers.
type CatalogScope int

const (
	// ScopeVisible is admin-public items plus the caller's personal items.
	ScopeVisible CatalogScope = iota
	// ScopeAdminPublic is admin items that are not hidden.
	ScopeAdminPublic
	// ScopePersonal is the caller's custom and copied items.
	ScopePersonal
	// ScopeAdminAll is every admin item, hidden ones included.
	ScopeAdminAll
)

// CatalogFilter narrows catalog listings.
type CatalogFilter struct {
	Scope  CatalogScope
	UserID uuid.UUID // caller; ignored for admin-only scopes
	Kind   string    // meal type for meals, difficulty for exercises
	Query  string    // case-insensitive name search
}

// MealType classifies a meal by the time of day it is eaten.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Meal is a catalog recipe with its nutrition facts.
type Meal struct {
	ID              uuid.UUID
	Ownership
	Name            string
	Description     string
	MealType        MealType
	Calories        int
	Protein         float64
	Carbs           float64
	Fat             float64
	PrepTimeMinutes int
	Ingredients     []string
	Steps           []string
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CopyFor duplicates an admin meal into userID's personal catalog.
func (m *Meal) CopyFor(userID uuid.UUID) *Meal {
	owner := userID
	origin := m.ID
	cp := *m
	cp.ID = uuid.Nil
	cp.Ownership = Ownership{OwnerID: &owner, Source: SourceCopied, OriginID: &origin, Visibility: VisibilityPublic}
	cp.Ingredients = append([]string(nil), m.Ingredients...)
	cp.Steps = append([]string(nil), m.Steps...)

	return &cp
}

// Difficulty grades how demanding an exercise is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a catalog workout.
type Exercise struct {
	ID              uuid.UUID
	Ownership
	Title           string
	Description     string
	Category        string
	Difficulty      Difficulty
	DurationMinutes int
	CaloriesBurned  int
	Steps           []string
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CopyFor duplicates an admin exercise into userID's personal catalog.
func (e *Exercise) CopyFor(userID uuid.UUID) *Exercise {
	owner := userID
	origin := e.ID
	cp := *e
	cp.ID = uuid.Nil
	cp.Ownership = Ownership{OwnerID: &owner, Source: SourceCopied, OriginID: &origin, Visibility: VisibilityPublic}
	cp.Steps = append([]string(nil), e.Steps...)

	return &cp
}
