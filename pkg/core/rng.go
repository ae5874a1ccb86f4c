package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Scaled returns round(scale * U()) where U is uniform in [0, 1).
func (r *RNG) Scaled(scale float64) int {
	return Round(scale * r.r.Float64())
}

// Round rounds half up, so Round(-2.5) is -2 and Round(2.5) is 3.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
