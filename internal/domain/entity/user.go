// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus describes whether an account may sign in.
type UserStatus string

const (
	// UserStatusActive is the default status for new accounts.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive blocks login while keeping the account's data.
	UserStatusInactive UserStatus = "inactive"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Name         string     // The user's display name.
	Email        string     // Login identifier, unique across accounts.
	PasswordHash string     // bcrypt hash of the password; never serialized to clients.
	Role         Role       // Either user or admin.
	Status       UserStatus // Inactive accounts cannot log in.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive reports whether the user may sign in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// UserFilter narrows the admin user listing. Empty fields match everything.
type UserFilter struct {
	Role   Role
	Status UserStatus
	Query  string // Case-insensitive match against name or email.
}

// UserPatch holds a partial account update; nil fields are left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Role   *Role
	Status *UserStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil && p.Status == nil
}
