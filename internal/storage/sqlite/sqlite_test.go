package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/models"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "daily-diet-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, name string) *models.User {
	t.Helper()

	user := &models.User{Name: name}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func createTestMeal(t *testing.T, store *SQLiteStore, userID, date, mealTime string, expected bool) *models.Meal {
	t.Helper()

	meal := &models.Meal{
		Name:        "Meal",
		Description: "A meal",
		Date:        date,
		Time:        mealTime,
		IsExpected:  expected,
		UserID:      userID,
	}
	if err := store.CreateMeal(context.Background(), meal); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}
	return meal
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser generates ID and CreatedAt", func(t *testing.T) {
		user := createTestUser(t, store, "Alice")

		if user.ID == "" {
			t.Error("Expected user ID to be generated")
		}
		if user.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetUser retrieves created user", func(t *testing.T) {
		created := createTestUser(t, store, "Bob")

		retrieved, err := store.GetUser(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if retrieved.Name != "Bob" {
			t.Errorf("Name mismatch: got %s, want Bob", retrieved.Name)
		}
	})

	t.Run("GetUser returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := store.GetUser(ctx, "3b9c0f3e-0000-0000-0000-000000000000")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListUsers returns all users", func(t *testing.T) {
		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) < 2 {
			t.Errorf("Expected at least 2 users, got %d", len(users))
		}
	})
}

func TestMeals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := createTestUser(t, store, "Alice")
	stranger := createTestUser(t, store, "Mallory")

	t.Run("CreateMeal generates ID and timestamps", func(t *testing.T) {
		meal := createTestMeal(t, store, owner.ID, "2024-11-01", "08:00", true)

		if meal.ID == "" {
			t.Error("Expected meal ID to be generated")
		}
		if meal.CreatedAt == 0 || meal.UpdatedAt == 0 {
			t.Error("Expected timestamps to be set")
		}
	})

	t.Run("GetMeal requires matching owner", func(t *testing.T) {
		meal := createTestMeal(t, store, owner.ID, "2024-11-01", "12:00", true)

		retrieved, err := store.GetMeal(ctx, meal.ID, owner.ID)
		if err != nil {
			t.Fatalf("GetMeal failed: %v", err)
		}
		if retrieved.ID != meal.ID {
			t.Errorf("ID mismatch: got %s, want %s", retrieved.ID, meal.ID)
		}
		if !retrieved.IsExpected {
			t.Error("Expected IsExpected to round-trip as true")
		}

		// A non-owner must see the same error as a missing meal.
		_, err = store.GetMeal(ctx, meal.ID, stranger.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for non-owner, got %v", err)
		}
	})

	t.Run("UpdateMeal replaces fields for the owner only", func(t *testing.T) {
		meal := createTestMeal(t, store, owner.ID, "2024-11-01", "18:00", true)

		update := &models.Meal{
			ID:          meal.ID,
			Name:        "Dinner",
			Description: "A bad dinner",
			Date:        "2024-11-02",
			Time:        "19:30",
			IsExpected:  false,
			UserID:      owner.ID,
		}
		if err := store.UpdateMeal(ctx, update, stranger.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for non-owner update, got %v", err)
		}

		if err := store.UpdateMeal(ctx, update, owner.ID); err != nil {
			t.Fatalf("UpdateMeal failed: %v", err)
		}

		retrieved, err := store.GetMeal(ctx, meal.ID, owner.ID)
		if err != nil {
			t.Fatalf("GetMeal failed: %v", err)
		}
		if retrieved.Description != "A bad dinner" {
			t.Errorf("Description mismatch: got %s", retrieved.Description)
		}
		if retrieved.IsExpected {
			t.Error("Expected IsExpected to be false after update")
		}
		if retrieved.UpdatedAt < retrieved.CreatedAt {
			t.Errorf("UpdatedAt %d older than CreatedAt %d", retrieved.UpdatedAt, retrieved.CreatedAt)
		}
	})

	t.Run("UpdateMeal can reassign the meal to another user", func(t *testing.T) {
		meal := createTestMeal(t, store, owner.ID, "2024-11-03", "08:00", true)

		update := &models.Meal{
			ID:          meal.ID,
			Name:        meal.Name,
			Description: meal.Description,
			Date:        meal.Date,
			Time:        meal.Time,
			IsExpected:  meal.IsExpected,
			UserID:      stranger.ID,
		}
		if err := store.UpdateMeal(ctx, update, owner.ID); err != nil {
			t.Fatalf("UpdateMeal failed: %v", err)
		}

		if _, err := store.GetMeal(ctx, meal.ID, owner.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected old owner to lose the meal, got %v", err)
		}
		if _, err := store.GetMeal(ctx, meal.ID, stranger.ID); err != nil {
			t.Errorf("Expected new owner to find the meal, got %v", err)
		}
	})

	t.Run("DeleteMeal requires matching owner", func(t *testing.T) {
		meal := createTestMeal(t, store, owner.ID, "2024-11-04", "08:00", true)

		if err := store.DeleteMeal(ctx, meal.ID, stranger.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for non-owner delete, got %v", err)
		}
		if err := store.DeleteMeal(ctx, meal.ID, owner.ID); err != nil {
			t.Fatalf("DeleteMeal failed: %v", err)
		}
		if _, err := store.GetMeal(ctx, meal.ID, owner.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestMealOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, store, "Carol")

	// Inserted out of order on purpose.
	createTestMeal(t, store, user.ID, "2024-11-01", "12:00", true)
	createTestMeal(t, store, user.ID, "2024-11-02", "08:00", false)
	createTestMeal(t, store, user.ID, "2024-11-01", "18:00", true)
	createTestMeal(t, store, user.ID, "2024-11-03", "08:00", true)

	t.Run("ListMeals orders by date descending", func(t *testing.T) {
		meals, err := store.ListMeals(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListMeals failed: %v", err)
		}
		if len(meals) != 4 {
			t.Fatalf("Expected 4 meals, got %d", len(meals))
		}
		for i := 1; i < len(meals); i++ {
			if meals[i-1].Date < meals[i].Date {
				t.Errorf("Meals not ordered by date desc: %s before %s", meals[i-1].Date, meals[i].Date)
			}
		}
	})

	t.Run("ListMealsByRecency breaks date ties by time", func(t *testing.T) {
		meals, err := store.ListMealsByRecency(ctx, user.ID)
		if err != nil {
			t.Fatalf("ListMealsByRecency failed: %v", err)
		}
		if len(meals) != 4 {
			t.Fatalf("Expected 4 meals, got %d", len(meals))
		}

		wantDates := []string{"2024-11-03", "2024-11-02", "2024-11-01", "2024-11-01"}
		wantTimes := []string{"08:00", "08:00", "18:00", "12:00"}
		for i, meal := range meals {
			if meal.Date != wantDates[i] || meal.Time != wantTimes[i] {
				t.Errorf("Position %d: got %s %s, want %s %s", i, meal.Date, meal.Time, wantDates[i], wantTimes[i])
			}
		}
	})

	t.Run("CountMealsByExpectation splits by flag", func(t *testing.T) {
		expected, err := store.CountMealsByExpectation(ctx, user.ID, true)
		if err != nil {
			t.Fatalf("CountMealsByExpectation failed: %v", err)
		}
		unexpected, err := store.CountMealsByExpectation(ctx, user.ID, false)
		if err != nil {
			t.Fatalf("CountMealsByExpectation failed: %v", err)
		}

		if expected != 3 {
			t.Errorf("Expected count = %d, want 3", expected)
		}
		if unexpected != 1 {
			t.Errorf("Unexpected count = %d, want 1", unexpected)
		}
	})

	t.Run("ListMeals returns empty slice for user without meals", func(t *testing.T) {
		empty := createTestUser(t, store, "Dave")

		meals, err := store.ListMeals(ctx, empty.ID)
		if err != nil {
			t.Fatalf("ListMeals failed: %v", err)
		}
		if meals == nil || len(meals) != 0 {
			t.Errorf("Expected empty non-nil slice, got %v", meals)
		}
	})
}

func TestDeleteUserCascadesToMeals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, store, "Erin")
	meal := createTestMeal(t, store, user.ID, "2024-11-01", "08:00", true)

	// There is no user deletion endpoint; the cascade is a schema guarantee,
	// so exercise it directly.
	if _, err := store.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", user.ID); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	if _, err := store.GetMeal(ctx, meal.ID, user.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected meal to be gone after owner deletion, got %v", err)
	}

	var count int
	if err := store.db.QueryRowContext(ctx, "SELECT COUNT(id) FROM meals WHERE user_id = ?", user.ID).Scan(&count); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 meals after cascade, got %d", count)
	}
}
