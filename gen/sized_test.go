package gen

import (
	"strings"
	"testing"
)

func TestRepeatPureConsumesNoEntropy(t *testing.T) {
	g := Repeat(5, Pure(1))
	for _, s := range testSeeds {
		next, vs := g(s)
		if next != s {
			t.Errorf("Repeat(5, Pure(1)) advanced the seed: %d -> %d", s, next)
		}
		if len(vs) != 5 {
			t.Fatalf("Repeat(5, Pure(1)) produced %d elements", len(vs))
		}
		for i, v := range vs {
			if v != 1 {
				t.Errorf("Repeat(5, Pure(1)) element %d = %d", i, v)
			}
		}
	}
}

func TestRepeatElementsMatchDrawOrder(t *testing.T) {
	seed := uint64(11)
	_, vs := Repeat(4, Uint64())(seed)

	want := make([]uint64, 4)
	s := seed
	for i := range want {
		s = step(s)
		want[i] = s
	}
	for i := range want {
		if vs[i] != want[i] {
			t.Errorf("Repeat element %d = %d, want %d (draw order broken)", i, vs[i], want[i])
		}
	}
}

func TestRepeatConsumesExactEntropy(t *testing.T) {
	seed := uint64(3)
	final, _ := Repeat(7, Uint64())(seed)
	want := seed
	for i := 0; i < 7; i++ {
		want = step(want)
	}
	if final != want {
		t.Errorf("Repeat(7) final seed = %d, want %d", final, want)
	}
}

func TestRepeatZeroIsEmpty(t *testing.T) {
	for _, s := range testSeeds {
		next, vs := Repeat(0, Uint64())(s)
		if next != s || len(vs) != 0 {
			t.Errorf("Repeat(0) at seed %d = (seed %d, %v)", s, next, vs)
		}
	}
}

func TestRepeatNegativePanics(t *testing.T) {
	mustPanic(t, "Repeat(-1)", func() { Repeat(-1, Uint64()) })
}

func TestSliceOfLengthInRange(t *testing.T) {
	g := SliceOf(2, 8, Bool())
	seed := uint64(0)
	for i := 0; i < 500; i++ {
		var vs []bool
		seed, vs = g(seed)
		if len(vs) < 2 || len(vs) >= 8 {
			t.Fatalf("SliceOf(2, 8) produced length %d on iteration %d", len(vs), i)
		}
	}
}

func TestSliceOfDegenerateZeroIsAlwaysEmpty(t *testing.T) {
	g := SliceOf(0, 0, Uint64())
	for _, s := range testSeeds {
		next, vs := g(s)
		if len(vs) != 0 {
			t.Errorf("SliceOf(0, 0) at seed %d produced %d elements", s, len(vs))
		}
		if next != s {
			t.Errorf("SliceOf(0, 0) consumed entropy at seed %d", s)
		}
	}
}

func TestSliceOfClampsNegativeLength(t *testing.T) {
	// A negative minimum makes negative drawn lengths possible; they must
	// clamp to an empty slice instead of faulting.
	g := SliceOf(-5, 3, Uint64())
	seed := uint64(0)
	for i := 0; i < 500; i++ {
		var vs []uint64
		seed, vs = g(seed)
		if len(vs) >= 3 {
			t.Fatalf("SliceOf(-5, 3) produced length %d", len(vs))
		}
	}
}

func TestSliceOfRejectsInvertedBounds(t *testing.T) {
	mustPanic(t, "SliceOf(5, 2)", func() { SliceOf(5, 2, Uint64()) })
}

func TestStringLengthAndCharset(t *testing.T) {
	g := StringFrom(CharsetAlphaLower, 1, 12)
	seed := uint64(0)
	for i := 0; i < 500; i++ {
		var s string
		seed, s = g(seed)
		if len(s) < 1 || len(s) >= 12 {
			t.Fatalf("StringFrom produced length %d", len(s))
		}
		for _, r := range s {
			if !strings.ContainsRune(CharsetAlphaLower, r) {
				t.Fatalf("StringFrom produced %q outside charset", r)
			}
		}
	}
}

func TestStringPreservesDrawOrder(t *testing.T) {
	charGen := Rune('a', 'z')
	seed := uint64(21)

	// Fixed-length variant so the character draws line up exactly.
	strGen := String(6, 6, charGen)
	_, s := strGen(seed)

	_, rs := Repeat(6, charGen)(seed)
	if s != string(rs) {
		t.Errorf("String = %q, want characters in draw order %q", s, string(rs))
	}
}

func TestStringDeterminism(t *testing.T) {
	g := String(0, 20, FromCharset(CharsetPrintable))
	for _, s := range testSeeds {
		if a, b := g.Run(s), g.Run(s); a != b {
			t.Errorf("String at seed %d not reproducible: %q vs %q", s, a, b)
		}
	}
}

func TestFromCharsetRejectsEmpty(t *testing.T) {
	mustPanic(t, "FromCharset(\"\")", func() { FromCharset("") })
}
