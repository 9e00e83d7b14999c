package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/teamalloc/internal/model"
	"github.com/mcoot/teamalloc/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu   sync.RWMutex
	runs map[model.RunID]*model.Run
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		runs: make(map[model.RunID]*model.Run),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveRun(ctx context.Context, run *model.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *Storage) GetRun(ctx context.Context, id model.RunID) (*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, model.ErrRunNotFound
	}
	return run, nil
}

func (s *Storage) ListRuns(ctx context.Context, limit int) ([]*model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]*model.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID > runs[j].ID
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (s *Storage) DeleteRun(ctx context.Context, id model.RunID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	return nil
}
