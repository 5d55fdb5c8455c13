package models

import "time"

// UserRole enumerates the access roles an account can hold.
// Profile access is gated by ownership, not by role; the role is kept on the
// record for the admin surfaces that live outside this service.
type UserRole string

const (
	RoleUser  UserRole = "ROLE_USER"
	RoleAdmin UserRole = "ROLE_ADMIN"
)

// User represents an account entity together with its public profile.
// It is both the authentication subject (email + password hash) and the
// profile aggregate (introduction, job, skill list).
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database at creation time.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the Argon2id-encoded password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from every JSON projection.
	PasswordHash string `json:"-"`

	// Role is the access role assigned to the account.
	Role UserRole `json:"-"`

	// Introduction is optional free text, unset until the first
	// successful profile edit.
	Introduction *string `json:"introduction,omitempty"`

	// Job is the user's occupation, unset until the first successful
	// profile edit.
	Job *string `json:"job,omitempty"`

	// JobSkills is the ordered skill list attached to the profile.
	// The order is the order supplied by the last profile edit.
	JobSkills []JobSkill `json:"jobSkills,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
