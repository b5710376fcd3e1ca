// Package router sets up all HTTP routes and middleware chains for the
// storefront API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"radhakart/internal/handlers"
	"radhakart/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(catalog *handlers.Catalog, upload *handlers.Upload, auth *handlers.Auth, orders *handlers.Orders) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Credential endpoints share a stricter limit than the rest of the API.
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/getImages", catalog.GetImages)
		r.Get("/getCloudImages", catalog.GetCloudImages)

		// Upload authorization
		r.Get("/signature", upload.Signature)

		// Accounts
		r.With(authLimiter.Middleware).Post("/signup", auth.Signup)
		r.With(authLimiter.Middleware).Post("/login", auth.Login)

		// Orders
		r.Post("/placeOrder", orders.Place)
		r.Get("/orders", orders.List)
		r.Get("/getOrders/{userId}", orders.ListForUser)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
