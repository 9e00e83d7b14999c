package runs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/teamalloc/internal/config"
	"github.com/mcoot/teamalloc/internal/dependencies/clock"
	"github.com/mcoot/teamalloc/internal/dependencies/random"
	"github.com/mcoot/teamalloc/internal/metrics"
	"github.com/mcoot/teamalloc/internal/model"
	"github.com/mcoot/teamalloc/internal/services/allocation"
	"github.com/mcoot/teamalloc/internal/services/pairs"
	"github.com/mcoot/teamalloc/internal/services/stats"
	"github.com/mcoot/teamalloc/internal/services/validation"
	"github.com/mcoot/teamalloc/internal/storage"
)

// Controller runs allocations end to end: allocate, validate, report and
// persist
type Controller struct {
	storage   storage.Storage
	allocator *allocation.Service
	clock     clock.Clock
	newRandom random.Source
	metrics   metrics.Recorder
	logger    *slog.Logger
}

// NewController creates a new run Controller
func NewController(
	storage storage.Storage,
	allocator *allocation.Service,
	clock clock.Clock,
	newRandom random.Source,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		allocator: allocator,
		clock:     clock,
		newRandom: newRandom,
		metrics:   recorder,
		logger:    logger,
	}
}

// Run allocates roster using cfg, then validates, summarizes and stores
// the result. A run whose pairs could not all be seated together is still
// returned and stored, with Status partial and a failing report.
func (c *Controller) Run(ctx context.Context, roster *model.Roster, cfg config.Config) (*model.Run, error) {
	started := c.clock.Now()

	alloc, err := c.allocator.Allocate(roster, cfg.Teams, c.newRandom(cfg.Seed))
	if err != nil {
		c.metrics.RecordFailure(failureReason(err))
		c.logger.Warn("allocation rejected",
			slog.Int("people", roster.Len()),
			slog.Int("seats", cfg.Teams.TotalCapacity()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	report := validation.Validate(roster, alloc.Pairs, cfg.Teams, alloc.Assignment)

	run := &model.Run{
		ID:         model.RunID(uuid.NewString()),
		CreatedAt:  started,
		Layout:     cfg.Teams,
		Seed:       cfg.Seed,
		Status:     alloc.Status,
		People:     roster.Snapshot(),
		Assignment: alloc.Assignment,
		Orphaned:   alloc.Orphaned,
		Report:     report,
		Stats:      stats.Report(roster, cfg.Teams, alloc.Assignment),
	}

	if err := c.storage.SaveRun(ctx, run); err != nil {
		c.logger.Error("failed to save run",
			slog.String("run_id", string(run.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.metrics.RecordRun(run.Status, len(run.Orphaned), len(report.Violations), c.clock.Since(started))

	if !report.Valid {
		for _, v := range report.Violations {
			c.logger.Warn("allocation violation",
				slog.String("run_id", string(run.ID)),
				slog.String("kind", string(v.Kind)),
				slog.String("detail", v.Message),
			)
		}
	}

	c.logger.Info("run completed",
		slog.String("run_id", string(run.ID)),
		slog.String("status", string(run.Status)),
		slog.Bool("valid", report.Valid),
		slog.Int("people", roster.Len()),
		slog.Int("teams", cfg.Teams.TeamCount()),
		slog.Uint64("seed", cfg.Seed),
	)

	return run, nil
}

// Check validates and summarizes an existing assignment without storing it
func (c *Controller) Check(_ context.Context, roster *model.Roster, layout model.Layout, assignment model.Assignment) (model.ValidationReport, []model.TeamStats, error) {
	if err := layout.Validate(); err != nil {
		return model.ValidationReport{}, nil, err
	}
	extracted, err := pairs.Extract(roster)
	if err != nil {
		return model.ValidationReport{}, nil, err
	}

	report := validation.Validate(roster, extracted, layout, assignment)
	return report, stats.Report(roster, layout, assignment), nil
}

// GetRun retrieves a run by ID
func (c *Controller) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	return c.storage.GetRun(ctx, id)
}

// ListRuns returns the most recent runs
func (c *Controller) ListRuns(ctx context.Context, limit int) ([]*model.Run, error) {
	return c.storage.ListRuns(ctx, limit)
}

// DeleteRun removes a run, returning model.ErrRunNotFound if it does not exist
func (c *Controller) DeleteRun(ctx context.Context, id model.RunID) error {
	if _, err := c.storage.GetRun(ctx, id); err != nil {
		return err
	}
	return c.storage.DeleteRun(ctx, id)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, model.ErrCapacityMismatch):
		return "capacity_mismatch"
	case errors.Is(err, model.ErrInvalidLayout):
		return "invalid_layout"
	case errors.Is(err, model.ErrNoCapacity):
		return "no_capacity"
	case errors.Is(err, model.ErrUnknownGuest),
		errors.Is(err, model.ErrSelfInvite),
		errors.Is(err, model.ErrPersonInMultiplePairs):
		return "invalid_roster"
	default:
		return "other"
	}
}
