package models

// User represents a person whose diet is being tracked.
//
// Users are created once and never updated. Removing a user removes all of
// their meals through the storage layer's cascade rule.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64 `json:"created_at"`
}
