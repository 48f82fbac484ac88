package gen

import "math"

// Uint64 generates a raw 64-bit draw.
func Uint64() Gen[uint64] {
	return NextSeed
}

// Int64 generates a signed 64-bit value by reinterpreting the raw draw.
// The full range of int64 is reachable, negatives included.
func Int64() Gen[int64] {
	return Map(NextSeed, func(u uint64) int64 { return int64(u) })
}

// Int generates a machine int by reinterpreting the raw draw.
func Int() Gen[int] {
	return Map(NextSeed, func(u uint64) int { return int(u) })
}

// Int32 generates a signed 32-bit value by truncating the raw draw.
func Int32() Gen[int32] {
	return Map(NextSeed, func(u uint64) int32 { return int32(u) })
}

// Uint32 generates an unsigned 32-bit value by truncating the raw draw.
func Uint32() Gen[uint32] {
	return Map(NextSeed, func(u uint64) uint32 { return uint32(u) })
}

// Bool generates a boolean from the parity of the raw draw.
func Bool() Gen[bool] {
	return Map(NextSeed, func(u uint64) bool { return u%2 == 0 })
}

// Float64 generates a float by drawing two independent signed values
// sequentially and dividing the first by the second. The quotient is
// deliberately unconstrained: zero, negative values, ±Inf and NaN are all
// legitimate outputs, which makes this generator good at surfacing float
// edge cases in code under test. Use FiniteFloat64 when non-finite values
// are unwanted. Consumes two seed transitions per draw.
func Float64() Gen[float64] {
	return Map2(Int64(), Int64(), func(a, b int64) float64 {
		return float64(a) / float64(b)
	})
}

// FiniteFloat64 is the opt-in companion to Float64 that maps non-finite
// quotients (NaN, ±Inf) to zero. Entropy consumption is identical to
// Float64, so the two can be swapped without shifting downstream draws.
func FiniteFloat64() Gen[float64] {
	return Map(Float64(), func(f float64) float64 {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	})
}
