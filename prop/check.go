package prop

import "github.com/shipq/randcheck/gen"

// TB is the subset of testing.TB the checkers report through.
type TB interface {
	Helper()
	Logf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Check runs a property through the variadic driver and reports the first
// violation through t, with the failing inputs and the reproduction seed.
//
// Example:
//
//	prop.Check(t, "sum is commutative", prop.Config{Trials: 200},
//	    func(in []any) bool {
//	        a, b := in[0].(int64), in[1].(int64)
//	        return a+b == b+a
//	    },
//	    gen.Erase(gen.Int64()), gen.Erase(gen.Int64()),
//	)
func Check(t TB, name string, cfg Config, property Property, gens ...gen.Gen[any]) {
	t.Helper()

	res := Run(cfg, property, gens...)
	if cfg.Verbose {
		t.Logf("prop %q: seed %d, ran %d trials", name, res.Seed, res.Trials)
	}
	if res.Failure != nil {
		t.Errorf("prop %q failed on trial %d with inputs %v (seed=%d, set %s=%d to replay)",
			name, res.Failure.Trial, res.Failure.Inputs, res.Seed, SeedEnv, res.Seed)
	}
}

// ForAll checks a single-generator property with its natural type.
// It is a typed shim over Check; the draw-and-check loop lives only in Run.
func ForAll[A any](t TB, name string, cfg Config, g gen.Gen[A], property func(A) bool) {
	t.Helper()
	Check(t, name, cfg, func(inputs []any) bool {
		return property(inputs[0].(A))
	}, gen.Erase(g))
}

// ForAll2 checks a two-generator property with its natural types.
func ForAll2[A, B any](t TB, name string, cfg Config, ga gen.Gen[A], gb gen.Gen[B], property func(A, B) bool) {
	t.Helper()
	Check(t, name, cfg, func(inputs []any) bool {
		return property(inputs[0].(A), inputs[1].(B))
	}, gen.Erase(ga), gen.Erase(gb))
}

// CheckSeeds replays a property under specific seeds, typically ones a
// prior run reported. Useful as a regression net for known-bad cases.
func CheckSeeds(t TB, name string, seeds []uint64, cfg Config, property Property, gens ...gen.Gen[any]) {
	t.Helper()
	for _, seed := range seeds {
		c := cfg
		c.Seed = seed
		Check(t, name, c, property, gens...)
	}
}
