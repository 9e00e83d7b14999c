package random

import (
	"math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// SeededRandom implements Random with a PCG generator, so a given seed
// always yields the same sequence
type SeededRandom struct {
	rng *rand.Rand
}

// NewSeeded creates a SeededRandom for the given seed
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Intn returns a random int in [0, n), or 0 if n <= 0
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// Shuffle randomizes element order with a Fisher-Yates shuffle
func (r *SeededRandom) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	r.rng.Shuffle(n, swap)
}

// Source builds a Random for a seed; runs create a fresh one each time
type Source func(seed uint64) Random

// SeededSource is the production Source
func SeededSource(seed uint64) Random {
	return NewSeeded(seed)
}
