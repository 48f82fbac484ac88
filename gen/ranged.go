package gen

// Integer covers the integer types the ranged combinators bound.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BoundedBy bounds g's output to [0, max) by reducing it modulo max.
// Panics if max < 1: a non-positive bound is a programmer error, not a
// data-dependent condition.
//
// The reduction happens in unsigned arithmetic: a negative draw is
// reinterpreted as its two's-complement uint64 pattern before the modulus
// is taken. This sidesteps the abs-of-minimum-int overflow entirely (the
// minimum signed value has no positive counterpart to take abs of) while
// keeping the result deterministic per seed.
func BoundedBy[T Integer](max T, g Gen[T]) Gen[T] {
	if max < 1 {
		panic("gen: BoundedBy max must be positive")
	}
	return Map(g, func(v T) T {
		return T(uint64(v) % uint64(max))
	})
}

// Ranged bounds g's output to the half-open interval [min, max).
// Panics if min > max. When min == max the range is degenerate and Ranged
// short-circuits to Pure(min): the constant is produced with zero entropy
// consumption, which keeps seed alignment stable for downstream draws in a
// composition.
//
// Note the span max-min is computed in T; for ranges wider than T can
// represent (e.g. the full signed range) the span overflows and BoundedBy
// rejects it.
func Ranged[T Integer](min, max T, g Gen[T]) Gen[T] {
	if min > max {
		panic("gen: Ranged min must not exceed max")
	}
	if min == max {
		return Pure(min)
	}
	return Map(BoundedBy(max-min, g), func(v T) T {
		return v + min
	})
}

// Rune generates a code point in the closed range [lo, hi].
// Panics if lo > hi.
func Rune(lo, hi rune) Gen[rune] {
	if lo > hi {
		panic("gen: Rune lo must not exceed hi")
	}
	raw := Map(NextSeed, func(u uint64) rune { return rune(int32(u)) })
	return Ranged(lo, hi+1, raw)
}

// OneOf generates one of the given values, chosen by a bounded draw.
// Panics if values is empty.
func OneOf[T any](values ...T) Gen[T] {
	if len(values) == 0 {
		panic("gen: OneOf called with no values")
	}
	return Map(Ranged(0, len(values), Int()), func(i int) T {
		return values[i]
	})
}
