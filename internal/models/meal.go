package models

// Meal represents a single meal recorded against a user's diet plan.
// A meal always belongs to exactly one user.
type Meal struct {
	// ID is the unique identifier for the meal (UUID format).
	ID string `json:"id"`

	// Name is the short label of the meal (e.g. "Breakfast").
	Name string `json:"name"`

	// Description is a free-form description of what was eaten.
	Description string `json:"description"`

	// Date is the calendar date of the meal, stored canonically as
	// YYYY-MM-DD with no time component.
	Date string `json:"date"`

	// Time is the time of day as a zero-padded HH:MM string. Meals are
	// ordered by comparing Date and Time as strings, so the zero padding
	// matters.
	Time string `json:"time"`

	// IsExpected reports whether the meal conforms to the diet plan.
	IsExpected bool `json:"is_expected"`

	// UserID is the ID of the owning user.
	UserID string `json:"user_id"`

	// CreatedAt is the Unix timestamp when the meal was recorded.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last update.
	UpdatedAt int64 `json:"updated_at"`
}
