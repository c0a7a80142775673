package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/httpx"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/models"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/storage"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userKey is the context key for storing the resolved meal owner.
const userKey contextKey = "user"

// UserFrom extracts the resolved user from the context.
// Returns nil if no user was attached.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// RequireUser returns a middleware that resolves the {userId} path parameter
// to an existing user before the handler runs. Malformed ids are rejected
// with 400 and unknown users with 404; otherwise the user record is attached
// to the request context for the handler to read via UserFrom.
//
// Every per-user meal operation goes through this guard, so handlers behind
// it can rely on the owner existing.
func RequireUser(store storage.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("userId")
		if _, err := uuid.Parse(userID); err != nil {
			httpx.Message(w, http.StatusBadRequest, "invalid user id")
			return
		}

		user, err := store.GetUser(r.Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				httpx.Message(w, http.StatusNotFound, "User not found")
				return
			}
			slog.Error("Failed to resolve user", "user_id", userID, "error", err)
			httpx.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
