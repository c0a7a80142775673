// Package server wires the HTTP routes and middleware of the daily diet API.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/middleware"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/service"
	"github.com/lwsantos/rocketseat-chalange-daily-diet/internal/storage"
)

// New constructs the root http.Handler with all routes and middlewares
// applied. The same handler is served by main and exercised by tests.
func New(store storage.Store) http.Handler {
	mux := http.NewServeMux()

	users := service.NewUserService(store)
	meals := service.NewMealService(store)

	mux.HandleFunc("POST /users", users.Create)
	mux.HandleFunc("GET /users", users.List)
	mux.HandleFunc("GET /users/{id}", users.Get)

	// Per-user meal routes resolve {userId} through the ownership guard.
	// Creation is the exception: the meal is created for the payload's
	// user_id directly.
	mux.HandleFunc("POST /meals", meals.Create)
	mux.Handle("PUT /meals/{id}/{userId}", middleware.RequireUser(store, http.HandlerFunc(meals.Update)))
	mux.Handle("DELETE /meals/{id}/{userId}", middleware.RequireUser(store, http.HandlerFunc(meals.Delete)))
	mux.Handle("GET /meals/{userId}", middleware.RequireUser(store, http.HandlerFunc(meals.List)))
	mux.Handle("GET /meals/{id}/{userId}", middleware.RequireUser(store, http.HandlerFunc(meals.Get)))
	mux.Handle("GET /meals/summary/{userId}", middleware.RequireUser(store, http.HandlerFunc(meals.Summary)))

	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Logging(middleware.Metrics(mux))
}
