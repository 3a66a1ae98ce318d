package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// It is used only at the persistence layer.
	ID int64 `json:"-"`

	// UserName is the unique login identifier.
	// Typically entered during authentication and shown in UI.
	UserName string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials carries the values collected by the login and
// registration screens before they are exchanged for a [User].
type Credentials struct {
	// UserName is the login identifier entered by the user.
	UserName string

	// Password is the plaintext password entered by the user.
	// It never leaves the process and is never persisted.
	Password string

	// Remember requests a remember-me token to be stored locally
	// so the next launch skips the password prompt.
	Remember bool
}
