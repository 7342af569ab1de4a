// Package router sets up all HTTP routes and middleware chains for the
// blog service. Procedures live under /rpc; queries are GETs with
// query-string inputs, mutations are POSTs with JSON bodies.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/handlers"
	"inkpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. limiter may be nil when rate limiting is disabled.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	// Health check, never rate limited.
	r.Get("/health", healthHandler)

	// The RPC surface. Route names mirror the procedure names of the
	// public contract.
	r.Route("/rpc", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Get("/category.all", api.CategoryAll)
		r.Post("/category.create", api.CategoryCreate)
		r.Post("/category.update", api.CategoryUpdate)
		r.Post("/category.delete", api.CategoryDelete)

		r.Get("/post.all", api.PostAll)
		r.Get("/post.byId", api.PostByID)
		r.Get("/post.byCategory", api.PostByCategory)
		r.Post("/post.create", api.PostCreate)
		r.Post("/post.update", api.PostUpdate)
		r.Post("/post.delete", api.PostDelete)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
