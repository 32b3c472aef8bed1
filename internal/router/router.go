package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pulsefeed/ranking-service/internal/handler"
)

// HealthCheck reports readiness of the service's dependencies.
type HealthCheck func(ctx context.Context) error

func Setup(h *handler.Handler, healthy HealthCheck, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	// Routes
	r.Get("/users/{userID}/feed", h.GetFeed)
	r.Post("/users/{userID}/interactions", h.PostInteraction)
	r.Get("/health", healthHandler(healthy))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func healthHandler(healthy HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := healthy(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}
}
