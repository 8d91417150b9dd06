package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the API router serves.
type Handlers struct {
	Health  *HealthHandler
	Tables  *TableHandler
	Systems *SystemLinkHandler
}

// NewRouter mounts the API routes. global middleware wraps every route;
// api middleware wraps /api/v1 only, so probes and metrics stay cheap.
func NewRouter(h Handlers, global, api []func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(global...)

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(api...)

		r.Get("/system-intakes", h.Tables.SystemIntakes)
		r.Get("/trb-requests", h.Tables.TRBRequests)

		r.Route("/system-intakes/{id}/systems", func(r chi.Router) {
			r.Get("/", h.Systems.List)
			r.Delete("/{linkID}", h.Systems.Remove)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
