package mocks

import (
	"github.com/mcoot/teamalloc/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// Permutation, when set, is applied by Shuffle: element i of the
	// shuffled sequence is element Permutation[i] of the input.
	// When nil, Shuffle leaves the order unchanged.
	Permutation []int

	// ShuffleCalls counts calls to Shuffle
	ShuffleCalls int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Source returns a random.Source that always hands out this mock
func (r *MockRandom) Source() random.Source {
	return func(uint64) random.Random { return r }
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Shuffle applies Permutation through swap, or does nothing
func (r *MockRandom) Shuffle(n int, swap func(i, j int)) {
	r.ShuffleCalls++
	if len(r.Permutation) != n {
		return
	}
	// pos[k] tracks where original element k currently sits
	pos := make([]int, n)
	at := make([]int, n)
	for i := range pos {
		pos[i] = i
		at[i] = i
	}
	for i, want := range r.Permutation {
		j := pos[want]
		if i == j {
			continue
		}
		swap(i, j)
		at[i], at[j] = at[j], at[i]
		pos[at[i]] = i
		pos[at[j]] = j
	}
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.Permutation = nil
	r.ShuffleCalls = 0
}
