package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                         liveness probe
//	GET /api/v1/cycles/current          cycle in effect right now
//	GET /api/v1/cycles/{id}             cycle by four digit identifier
//	GET /api/v1/cycles/date/{date}      cycle in effect on a UTC date
//	GET /api/v1/cycles/range            cycles overlapping ?start=&end=
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1/cycles", func(r chi.Router) {
		r.Get("/current", handlers.GetCurrentCycle)
		r.Get("/range", handlers.GetCycleRange)
		r.Get("/date/{date}", handlers.GetCycleByDate)
		r.Get("/{id}", handlers.GetCycleByID)
	})

	return r
}
