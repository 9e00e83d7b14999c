package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mcoot/teamalloc/internal/dependencies/clock"
	"github.com/mcoot/teamalloc/internal/dependencies/random"
	"github.com/mcoot/teamalloc/internal/metrics"
	"github.com/mcoot/teamalloc/internal/services/allocation"
	"github.com/mcoot/teamalloc/internal/services/runs"
	"github.com/mcoot/teamalloc/internal/services/scoring"
	"github.com/mcoot/teamalloc/internal/storage"
	"github.com/mcoot/teamalloc/internal/storage/memory"
	redisstorage "github.com/mcoot/teamalloc/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock        clock.Clock
	RandomSource random.Source

	// Metrics
	Metrics  metrics.Recorder
	Registry *prometheus.Registry

	// Services
	ScoringService    *scoring.Service
	AllocationService *allocation.Service
	RunController     *runs.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// EnableMetrics creates a Prometheus registry with allocation, Go and
	// process collectors. When false, metrics are discarded.
	EnableMetrics bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var recorder metrics.Recorder = metrics.Nop{}
	var registry *prometheus.Registry
	if cfg.EnableMetrics {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder = metrics.NewPrometheus(registry)
	}

	app := newWithDependencies(store, clock.New(), random.SeededSource, recorder, logger)
	app.Registry = registry
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, source random.Source, recorder metrics.Recorder, logger *slog.Logger) *App {
	scoringService := scoring.New()
	allocationService := allocation.New(scoringService, logger)
	runController := runs.NewController(store, allocationService, clk, source, recorder, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		RandomSource:      source,
		Metrics:           recorder,
		ScoringService:    scoringService,
		AllocationService: allocationService,
		RunController:     runController,
	}
}
