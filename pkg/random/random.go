// Package random supplies the randomness consumed by maze generation.
//
// Generation never touches a process-wide generator. Callers inject a
// [Source], which makes every maze reproducible from its seed and lets tests
// script the exact start cell and direction orders.
//
// *rand.Rand from math/rand/v2 already satisfies [Source]:
//
//	rng := random.New(42)
//	g, err := maze.Generate(40, 20, rng)
package random

import (
	"math/rand/v2"
	"time"
)

// Source is the random input of the maze generator.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements using Fisher–Yates.
	// swap swaps the elements with indexes i and j.
	Shuffle(n int, swap func(i, j int))
}

// New returns a PCG-backed source. The same seed always yields the same
// sequence of values.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// NewSeed returns a non-zero seed derived from the current time. Zero is
// reserved to mean "pick one for me" in option structs.
func NewSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}

var _ Source = (*rand.Rand)(nil)
