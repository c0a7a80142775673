// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/models"
)

// ErrNotFound is returned when a user or meal does not exist. A meal that
// exists under a different owner is reported the same way, so callers cannot
// tell absence and ownership mismatch apart.
var ErrNotFound = errors.New("not found")

// Store defines the interface for user and meal storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. ID and CreatedAt are assigned by the
	// store when unset.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID.
	// Returns ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// ListUsers returns all users ordered by creation time.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateMeal persists a new meal for meal.UserID. ID, CreatedAt and
	// UpdatedAt are assigned by the store when unset.
	CreateMeal(ctx context.Context, meal *models.Meal) error

	// GetMeal retrieves a meal by ID, filtered by its owning user in the
	// same query. Returns ErrNotFound when no row matches both predicates.
	GetMeal(ctx context.Context, mealID, userID string) (*models.Meal, error)

	// UpdateMeal replaces the editable fields of the meal identified by
	// meal.ID and owned by ownerID, refreshing UpdatedAt. The ownership
	// check and the write are a single statement. meal.UserID is written as
	// given and may differ from ownerID, reassigning the meal.
	// Returns ErrNotFound when no row matches.
	UpdateMeal(ctx context.Context, meal *models.Meal, ownerID string) error

	// DeleteMeal removes the meal identified by mealID and owned by userID.
	// Returns ErrNotFound when no row matches.
	DeleteMeal(ctx context.Context, mealID, userID string) error

	// ListMeals returns the user's meals ordered by date descending.
	ListMeals(ctx context.Context, userID string) ([]models.Meal, error)

	// ListMealsByRecency returns the user's meals ordered by date then time,
	// both descending, compared as strings. Most recent meal first.
	ListMealsByRecency(ctx context.Context, userID string) ([]models.Meal, error)

	// CountMealsByExpectation counts the user's meals whose IsExpected flag
	// matches expected.
	CountMealsByExpectation(ctx context.Context, userID string, expected bool) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
