package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/models"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/storage"
)

const mealColumns = "id, name, description, date, time, is_expected, user_id, created_at, updated_at"

// CreateMeal inserts a new meal into the database.
func (s *SQLiteStore) CreateMeal(ctx context.Context, meal *models.Meal) error {
	// Generate ID and timestamps if not set
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if meal.CreatedAt == 0 {
		meal.CreatedAt = now
	}
	if meal.UpdatedAt == 0 {
		meal.UpdatedAt = meal.CreatedAt
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO meals ("+mealColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		meal.ID, meal.Name, meal.Description, meal.Date, meal.Time,
		meal.IsExpected, meal.UserID, meal.CreatedAt, meal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meal: %w", err)
	}

	return nil
}

// GetMeal retrieves a meal by ID and owning user in a single filtered query.
// A meal owned by a different user is indistinguishable from a missing one.
func (s *SQLiteStore) GetMeal(ctx context.Context, mealID, userID string) (*models.Meal, error) {
	meal := &models.Meal{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+mealColumns+" FROM meals WHERE id = ? AND user_id = ?",
		mealID, userID,
	).Scan(&meal.ID, &meal.Name, &meal.Description, &meal.Date, &meal.Time,
		&meal.IsExpected, &meal.UserID, &meal.CreatedAt, &meal.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("meal %s: %w", mealID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}

	return meal, nil
}

// UpdateMeal replaces the editable fields of the meal identified by meal.ID
// and owned by ownerID. The ownership predicate is part of the UPDATE itself
// so there is no window between check and write.
func (s *SQLiteStore) UpdateMeal(ctx context.Context, meal *models.Meal, ownerID string) error {
	meal.UpdatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		`UPDATE meals
		 SET name = ?, description = ?, date = ?, time = ?, is_expected = ?, user_id = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		meal.Name, meal.Description, meal.Date, meal.Time, meal.IsExpected,
		meal.UserID, meal.UpdatedAt, meal.ID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal %s: %w", meal.ID, storage.ErrNotFound)
	}

	return nil
}

// DeleteMeal removes the meal identified by mealID and owned by userID.
func (s *SQLiteStore) DeleteMeal(ctx context.Context, mealID, userID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM meals WHERE id = ? AND user_id = ?",
		mealID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal %s: %w", mealID, storage.ErrNotFound)
	}

	return nil
}

// ListMeals returns the user's meals ordered by date descending.
func (s *SQLiteStore) ListMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	return s.queryMeals(ctx,
		"SELECT "+mealColumns+" FROM meals WHERE user_id = ? ORDER BY date DESC",
		userID,
	)
}

// ListMealsByRecency returns the user's meals ordered by date then time, both
// descending. SQLite compares the TEXT columns lexicographically, which is
// correct for YYYY-MM-DD dates and zero-padded HH:MM times.
func (s *SQLiteStore) ListMealsByRecency(ctx context.Context, userID string) ([]models.Meal, error) {
	return s.queryMeals(ctx,
		"SELECT "+mealColumns+" FROM meals WHERE user_id = ? ORDER BY date DESC, time DESC",
		userID,
	)
}

// CountMealsByExpectation counts the user's meals with the given is_expected value.
func (s *SQLiteStore) CountMealsByExpectation(ctx context.Context, userID string, expected bool) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(id) FROM meals WHERE user_id = ? AND is_expected = ?",
		userID, expected,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}

	return count, nil
}

func (s *SQLiteStore) queryMeals(ctx context.Context, query string, args ...any) ([]models.Meal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	meals := []models.Meal{}
	for rows.Next() {
		var meal models.Meal
		if err := rows.Scan(&meal.ID, &meal.Name, &meal.Description, &meal.Date, &meal.Time,
			&meal.IsExpected, &meal.UserID, &meal.CreatedAt, &meal.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meals: %w", err)
	}

	return meals, nil
}
