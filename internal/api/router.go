package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/teamalloc/internal/api/handler"
	"github.com/mcoot/teamalloc/internal/api/middleware"
	"github.com/mcoot/teamalloc/internal/config"
	"github.com/mcoot/teamalloc/internal/services/runs"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	RunController *runs.Controller
	// Defaults supplies layout and seed for requests that omit them
	Defaults config.Config
	// Gatherer backs /metrics (optional)
	// If nil, the route is not registered
	Gatherer prometheus.Gatherer
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	allocationHandler := handler.NewAllocationHandler(cfg.RunController, cfg.Defaults)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	allocations := api.PathPrefix("/allocations").Subrouter()
	allocations.HandleFunc("", allocationHandler.Create).Methods(http.MethodPost)
	allocations.HandleFunc("", allocationHandler.List).Methods(http.MethodGet)
	allocations.HandleFunc("/{id}", allocationHandler.Get).Methods(http.MethodGet)
	allocations.HandleFunc("/{id}", allocationHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
