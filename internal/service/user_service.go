package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/httpx"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/models"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/storage"
)

// UserService exposes the user endpoints.
type UserService struct {
	store    storage.Store
	validate *validator.Validate
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store, validate: validator.New()}
}

type createUserRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create handles POST /users.
func (s *UserService) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeValid(r, s.validate, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("CreateUser request received", "name", req.Name)

	user := &models.User{Name: req.Name}
	if err := s.store.CreateUser(r.Context(), user); err != nil {
		slog.Error("CreateUser failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("User created", "user_id", user.ID)

	httpx.JSON(w, http.StatusCreated, map[string]*models.User{"user": user})
}

// List handles GET /users.
func (s *UserService) List(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		slog.Error("ListUsers failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string][]models.User{"users": users})
}

// Get handles GET /users/{id}.
func (s *UserService) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if _, err := uuid.Parse(userID); err != nil {
		httpx.Message(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Message(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("GetUser failed", "user_id", userID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]*models.User{"user": user})
}
