package utils

import (
	"math/rand"
	"time"
)

// RandSource is a seedable random number generator. It is not safe for
// concurrent use; callers that share one across goroutines must serialize
// access themselves.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a new random source with the given seed. A zero
// seed selects a time-based seed; runs that need to be reproducible must
// pass a non-zero seed.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (r *RandSource) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a random int in [0, n)
func (r *RandSource) Intn(n int) int {
	return r.rng.Intn(n)
}

// UniformFloat64 returns a uniformly distributed random number in [min, max)
func (r *RandSource) UniformFloat64(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// SymmetricFloat64 returns a uniformly distributed random number in [-scale, scale)
func (r *RandSource) SymmetricFloat64(scale float64) float64 {
	return (r.rng.Float64()*2 - 1) * scale
}
