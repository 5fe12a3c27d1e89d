// Package rng holds the small random helpers shared by level generation and agents.
// Every helper takes an explicit *rand.Rand so a level build owns its own source.
package rng

import (
	"math"
	"math/rand"
	"time"

	"goldmines/pkg/engine/world"
)

// New returns a source seeded with seed, or with the clock when seed is 0
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IntRange returns a uniform integer in [min, max], inclusive on both ends.
// Returns min when max < min.
func IntRange(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// FloatRange returns a uniform float in [min, max)
func FloatRange(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Chance returns true with probability p
func Chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// Bool is a fair coin flip
func Bool(r *rand.Rand) bool {
	return r.Intn(2) == 0
}

// UnitVector returns a vector of length 1 pointing in a uniformly random direction
func UnitVector(r *rand.Rand) world.Vec2 {
	a := r.Float64() * 2 * math.Pi
	return world.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// SampleUntil calls sample until it reports success or maxAttempts calls have been made.
// Returns the last accepted value and true, or the zero value and false on exhaustion.
func SampleUntil[T any](maxAttempts int, sample func() (T, bool)) (T, bool) {
	for i := 0; i < maxAttempts; i++ {
		if v, ok := sample(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
