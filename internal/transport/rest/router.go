package rest

import (
	"net/http"

	"github.com/heartmarshall/adcopy-backend/internal/transport/middleware"
)

// Routes holds everything the API mux dispatches to.
type Routes struct {
	Health  *HealthHandler
	Content *ContentHandler
	History *HistoryHandler
	// Metrics serves /metrics; nil leaves the route unregistered.
	Metrics http.Handler
	// Auth guards every /api/v1 route.
	Auth middleware.Middleware
	// GenerateLimit throttles the generation POSTs. Nil disables it.
	GenerateLimit middleware.Middleware
}

// NewRouter registers the probes and the /api/v1 surface on a new ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	api := middleware.Chain(rt.Auth)
	generate := middleware.Chain(rt.Auth, rt.GenerateLimit)

	mux.Handle("POST /api/v1/content-requests", generate(http.HandlerFunc(rt.Content.Generate)))
	mux.Handle("POST /api/v1/content-requests/variations", generate(http.HandlerFunc(rt.Content.Variations)))
	mux.Handle("GET /api/v1/content-requests", api(http.HandlerFunc(rt.Content.List)))
	mux.Handle("GET /api/v1/content-requests/{id}", api(http.HandlerFunc(rt.Content.Get)))
	mux.Handle("POST /api/v1/artifacts/{id}/publish", api(http.HandlerFunc(rt.Content.Publish)))
	mux.Handle("GET /api/v1/history", api(http.HandlerFunc(rt.History.List)))
	mux.Handle("GET /api/v1/history/stats", api(http.HandlerFunc(rt.History.Stats)))

	return mux
}
