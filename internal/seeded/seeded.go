// Package seeded provides a stateless, seed-addressed pseudo-random
// source. Every function is a pure function of its seed argument:
// callers obtain "independent" draws by offsetting the seed
// arithmetically (seed + k*constant) instead of advancing any internal
// state. This keeps generator output reproducible for the same
// (userId, index) pair across processes and restarts: the cache is the
// seed itself. Do not replace this with a stateful PRNG.
package seeded

import "math"

// Next returns a value in [0,1) derived purely from the seed.
func Next(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// Between returns a value in [min, max) derived from the seed.
func Between(seed int64, min, max float64) float64 {
	return min + Next(seed)*(max-min)
}

// IntBetween returns an integer in [min, max] (inclusive) derived from
// the seed. Returns min when max <= min.
func IntBetween(seed int64, min, max int) int {
	if max <= min {
		return min
	}
	return min + int(Next(seed)*float64(max-min+1))
}

// Index returns an index in [0, n) derived from the seed. Returns 0
// when n <= 0 so callers can index fixed pools without guarding.
func Index(seed int64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Next(seed) * float64(n))
}

// Chance reports whether a seed-derived draw falls below probability p.
func Chance(seed int64, p float64) bool {
	return Next(seed) < p
}
