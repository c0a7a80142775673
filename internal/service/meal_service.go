package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/httpx"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/middleware"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/models"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/storage"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/summary"
)

// MealService exposes the meal endpoints. All per-user operations run behind
// the middleware.RequireUser guard, which resolves the owner before the
// handlers execute.
type MealService struct {
	store    storage.Store
	validate *validator.Validate
}

// NewMealService creates a new MealService with the given storage backend.
func NewMealService(store storage.Store) *MealService {
	return &MealService{store: store, validate: validator.New()}
}

type mealRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	IsExpected  *bool  `json:"is_expected" validate:"required"`
	UserID      string `json:"user_id" validate:"required,uuid"`
}

// dateLayouts are tried in order when normalizing an incoming date string.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// normalizeDate truncates an incoming date string to its calendar date in
// YYYY-MM-DD form, discarding any time or zone component. It is idempotent:
// an already canonical date comes back unchanged.
func normalizeDate(raw string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", raw)
}

// Create handles POST /meals. The meal is created directly for the user_id
// in the payload, so no ownership guard applies here.
func (s *MealService) Create(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := normalizeDate(req.Date)
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("CreateMeal request received", "name", req.Name, "user_id", req.UserID)

	meal := &models.Meal{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		IsExpected:  *req.IsExpected,
		UserID:      req.UserID,
	}
	if err := s.store.CreateMeal(r.Context(), meal); err != nil {
		slog.Error("CreateMeal failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("Meal created", "meal_id", meal.ID, "user_id", meal.UserID)

	httpx.JSON(w, http.StatusCreated, map[string]*models.Meal{"meal": meal})
}

// Update handles PUT /meals/{id}/{userId}. All editable fields are replaced
// as given; the payload's user_id is written even when it differs from the
// current owner, which reassigns the meal.
func (s *MealService) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	mealID := r.PathValue("id")
	if _, err := uuid.Parse(mealID); err != nil {
		httpx.Message(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	var req mealRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := normalizeDate(req.Date)
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("UpdateMeal request received", "meal_id", mealID, "user_id", user.ID)

	meal := &models.Meal{
		ID:          mealID,
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		IsExpected:  *req.IsExpected,
		UserID:      req.UserID,
	}
	if err := s.store.UpdateMeal(r.Context(), meal, user.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, "Meal not found")
			return
		}
		slog.Error("UpdateMeal failed", "meal_id", mealID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Return the stored record. The lookup uses the payload's user_id since
	// the update may have reassigned the meal.
	updated, err := s.store.GetMeal(r.Context(), mealID, meal.UserID)
	if err != nil {
		slog.Error("Failed to fetch updated meal", "meal_id", mealID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("Meal updated", "meal_id", mealID)

	httpx.JSON(w, http.StatusOK, map[string]*models.Meal{"meal": updated})
}

// Delete handles DELETE /meals/{id}/{userId}.
func (s *MealService) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	mealID := r.PathValue("id")
	if _, err := uuid.Parse(mealID); err != nil {
		httpx.Message(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	if err := s.store.DeleteMeal(r.Context(), mealID, user.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, "Meal not found")
			return
		}
		slog.Error("DeleteMeal failed", "meal_id", mealID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("Meal deleted", "meal_id", mealID, "user_id", user.ID)

	httpx.Message(w, http.StatusOK, "Meal deleted")
}

// List handles GET /meals/{userId}.
func (s *MealService) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	meals, err := s.store.ListMeals(r.Context(), user.ID)
	if err != nil {
		slog.Error("ListMeals failed", "user_id", user.ID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string][]models.Meal{"meals": meals})
}

// Get handles GET /meals/{id}/{userId}.
func (s *MealService) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	mealID := r.PathValue("id")
	if _, err := uuid.Parse(mealID); err != nil {
		httpx.Message(w, http.StatusBadRequest, "invalid meal id")
		return
	}

	meal, err := s.store.GetMeal(r.Context(), mealID, user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, "Meal not found")
			return
		}
		slog.Error("GetMeal failed", "meal_id", mealID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]*models.Meal{"meal": meal})
}

// Summary handles GET /meals/summary/{userId}. The counts come from
// independent queries and the best sequence from a single scan over the
// recency-ordered history, so the report is recomputed on every call.
func (s *MealService) Summary(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	slog.Info("Summary request received", "user_id", user.ID)

	meals, err := s.store.ListMealsByRecency(r.Context(), user.ID)
	if err != nil {
		slog.Error("Summary failed", "user_id", user.ID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	expected, err := s.store.CountMealsByExpectation(r.Context(), user.ID, true)
	if err != nil {
		slog.Error("Summary failed", "user_id", user.ID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	unexpected, err := s.store.CountMealsByExpectation(r.Context(), user.ID, false)
	if err != nil {
		slog.Error("Summary failed", "user_id", user.ID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	report := summary.Report{
		TotalMeal:         len(meals),
		TotalExpected:     expected,
		TotalUnexpected:   unexpected,
		TotalBestSequence: summary.BestSequence(meals),
	}

	httpx.JSON(w, http.StatusOK, report)
}
