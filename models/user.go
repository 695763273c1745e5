package models

import "time"

// User represents an account used for authentication and note ownership.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the store-assigned identifier of the user. Immutable.
	UserID int64 `json:"user_id"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Username is unique across all users and case-sensitive as stored.
	Username string `json:"username"`

	// PasswordHash is the self-describing bcrypt digest of the account
	// password. Never the plaintext and never serialized.
	PasswordHash string `json:"-"`

	// LoginAttempts counts failed logins since the last successful one.
	LoginAttempts int `json:"-"`

	// LastAttemptTime is the time of the most recent login evaluation,
	// successful or not. Nil until the first login.
	LastAttemptTime *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsLocked reports whether the account is inside the lockout window at now:
// at least threshold failed attempts, the last one less than window ago.
func (u User) IsLocked(now time.Time, threshold int, window time.Duration) bool {
	if u.LoginAttempts < threshold || u.LastAttemptTime == nil {
		return false
	}

	return now.Sub(*u.LastAttemptTime) < window
}

// Profile is the owner-visible view of a [User].
type Profile struct {
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries the login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest carries the account password change form.
// CurrentPassword is re-verified before the new password is accepted.
type ChangePasswordRequest struct {
	CurrentPassword  string `json:"current_password"`
	NewPassword      string `json:"new_password"`
	RepeatedPassword string `json:"repeated_password"`
}
