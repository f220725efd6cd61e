package models

// User represents an account entity used for authentication and list ownership.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the persistence layer at registration time.
	ID int64 `json:"id"`

	// Username is the globally unique login identifier.
	// It may change via a profile update; uniqueness is enforced
	// by the storage layer on every write.
	Username string `json:"username"`

	// PasswordHash is the salted one-way hash of the user's password.
	// It is never serialized to JSON and must never be logged.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
