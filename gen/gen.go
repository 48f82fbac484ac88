// Package gen provides deterministic, composable pseudo-random value
// generators for reproducible testing.
//
// A Gen[A] is a pure function from a 64-bit seed to a (next seed, value)
// pair: the same seed always yields the same output, and the seed is the
// sole source of entropy. Generators are built by composing combinators on
// top of a single seed-advancing primitive, NextSeed, so any value drawn
// anywhere in a composition can be reproduced from one integer.
//
// Basic usage:
//
//	g := gen.Ranged(10, 20, gen.Int())
//	v := g.Run(seed) // v is in [10, 20), identical for identical seeds
//
// The underlying transition is a linear congruential step. Its statistical
// quality is intentionally minimal: this is a reproducibility tool, not a
// statistically rigorous or cryptographically secure PRNG.
package gen

import "github.com/shipq/randcheck/state"

// Gen is a deterministic generator of A values: a state transition whose
// threaded state is a uint64 seed.
type Gen[A any] = state.State[uint64, A]

// Knuth's MMIX linear congruential parameters. Process-wide constants,
// never reconfigured: changing them would silently break every recorded
// reproduction seed.
const (
	seedMultiplier uint64 = 6364136223846793005
	seedIncrement  uint64 = 1442695040888963407
)

// NextSeed is the sole entropy-advancing primitive. It steps the seed with
// a linear congruential transition and produces the new seed as its value;
// every other generator in this package derives its randomness from it.
var NextSeed Gen[uint64] = func(seed uint64) (uint64, uint64) {
	next := seed*seedMultiplier + seedIncrement
	return next, next
}

// Pure returns a generator that produces a without consuming any entropy:
// the seed passes through unchanged.
func Pure[A any](a A) Gen[A] {
	return state.Pure[uint64](a)
}

// Map transforms the values produced by g with f. Entropy consumption is
// exactly g's.
func Map[A, B any](g Gen[A], f func(A) B) Gen[B] {
	return state.Map(g, f)
}

// Map2 draws from ga, then from gb on the seed ga produced, and combines
// the two values with f. The second draw never sees the original seed, so
// sequentially combined generators cannot produce correlated values.
func Map2[A, B, C any](ga Gen[A], gb Gen[B], f func(A, B) C) Gen[C] {
	return state.Map2(ga, gb, f)
}

// FlatMap draws from ga, then runs the generator f chooses from that value.
// This is how data-dependent generation is built, e.g. drawing a length and
// then that many elements.
func FlatMap[A, B any](ga Gen[A], f func(A) Gen[B]) Gen[B] {
	return state.FlatMap(ga, f)
}

// CurrentSeed produces the incoming seed as a value without advancing it.
func CurrentSeed() Gen[uint64] {
	return state.Get[uint64]()
}

// Erase adapts a typed generator to Gen[any] for use with variadic
// consumers such as the property driver. The seed transition is unchanged.
func Erase[A any](g Gen[A]) Gen[any] {
	return func(seed uint64) (uint64, any) {
		return g(seed)
	}
}
