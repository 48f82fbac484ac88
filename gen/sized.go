package gen

import "github.com/shipq/randcheck/state"

// Charsets for string generation.
const (
	CharsetAlphaLower = "abcdefghijklmnopqrstuvwxyz"
	CharsetAlphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlpha      = CharsetAlphaLower + CharsetAlphaUpper
	CharsetDigits     = "0123456789"
	CharsetAlphaNum   = CharsetAlpha + CharsetDigits
	CharsetHex        = "0123456789abcdef"
	CharsetPrintable  = CharsetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Repeat draws from g exactly n times and produces the values in draw
// order. Panics if n is negative. Entropy consumption is exactly n times
// g's own: Repeat(n, Pure(x)) consumes none.
func Repeat[A any](n int, g Gen[A]) Gen[[]A] {
	if n < 0 {
		panic("gen: Repeat n must be non-negative")
	}
	return state.Sequence(n, g)
}

// SliceOf generates a slice whose length is drawn from [minLen, maxLen)
// and whose elements come from g. Panics if minLen > maxLen; when
// minLen == maxLen the length is the constant minLen and no entropy is
// spent choosing it. A negative drawn length (possible when minLen is
// negative) is clamped to zero rather than faulting.
func SliceOf[A any](minLen, maxLen int, g Gen[A]) Gen[[]A] {
	return FlatMap(Ranged(minLen, maxLen, Int()), func(n int) Gen[[]A] {
		if n < 0 {
			n = 0
		}
		return Repeat(n, g)
	})
}

// String generates text whose length is drawn from [minLen, maxLen) and
// whose characters come from charGen, preserving draw order.
func String(minLen, maxLen int, charGen Gen[rune]) Gen[string] {
	return Map(SliceOf(minLen, maxLen, charGen), func(rs []rune) string {
		return string(rs)
	})
}

// FromCharset generates a single character picked from charset.
// Panics if charset is empty.
func FromCharset(charset string) Gen[rune] {
	rs := []rune(charset)
	if len(rs) == 0 {
		panic("gen: FromCharset called with empty charset")
	}
	return Map(Ranged(0, len(rs), Int()), func(i int) rune {
		return rs[i]
	})
}

// StringFrom generates text of length [minLen, maxLen) over charset.
func StringFrom(charset string, minLen, maxLen int) Gen[string] {
	return String(minLen, maxLen, FromCharset(charset))
}
