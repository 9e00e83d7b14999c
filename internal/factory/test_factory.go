package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/teamalloc/internal/dependencies/mocks"
	"github.com/mcoot/teamalloc/internal/metrics"
	"github.com/mcoot/teamalloc/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Every run shuffles with MockRandom, whatever its seed.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom.Source(), metrics.Nop{}, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Memory:     store,
	}
}
