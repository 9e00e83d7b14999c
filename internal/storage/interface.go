package storage

import (
	"context"

	"github.com/mcoot/teamalloc/internal/model"
)

// Storage defines the interface for persisting allocation runs
type Storage interface {
	// SaveRun stores a run, replacing any run with the same ID
	SaveRun(ctx context.Context, run *model.Run) error
	// GetRun returns model.ErrRunNotFound for unknown IDs
	GetRun(ctx context.Context, id model.RunID) (*model.Run, error)
	// ListRuns returns stored runs, newest first, at most limit (all if limit <= 0)
	ListRuns(ctx context.Context, limit int) ([]*model.Run, error)
	DeleteRun(ctx context.Context, id model.RunID) error
}
