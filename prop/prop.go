// Package prop runs property checks against seeded generators.
//
// A property is a predicate expected to hold for every generated input.
// The driver draws one value per generator per trial, threading the seed
// across the draws in order, and invokes the property with the drawn
// values. When a trial fails, the failing inputs and the run's seed are
// surfaced so the exact case can be replayed.
//
// Basic usage:
//
//	prop.ForAll(t, "doubles are even", prop.Config{},
//	    gen.Map(gen.Int64(), func(n int64) int64 { return n * 2 }),
//	    func(n int64) bool { return n%2 == 0 },
//	)
//
// Set RANDCHECK_SEED to replay a reported failure.
package prop

import (
	"os"
	"strconv"
	"time"

	"github.com/shipq/randcheck/gen"
)

// SeedEnv is the environment variable that, when set, overrides every
// run's seed. Failure reports name it so a failing run can be replayed.
const SeedEnv = "RANDCHECK_SEED"

// DefaultTrials is the number of trials used when Config.Trials is unset.
const DefaultTrials = 100

// Config controls a property run.
type Config struct {
	// Trials is the number of draw-and-check iterations. Default: 100.
	Trials int

	// Seed is the starting seed. Zero means derive one from the clock
	// (or take it from RANDCHECK_SEED if that is set).
	Seed uint64

	// Verbose enables per-run logging through the TB.
	Verbose bool
}

// Failure records the trial that violated the property and the exact
// inputs drawn for it.
type Failure struct {
	Trial  int
	Inputs []any
}

// Result summarizes a property run: the seed it started from, how many
// trials ran, and the first violation if there was one.
type Result struct {
	Seed    uint64
	Trials  int
	Failure *Failure
}

// Passed reports whether the run completed without a violation.
func (r Result) Passed() bool {
	return r.Failure == nil
}

// Property is checked against the values drawn in one trial, in generator
// order. It reports whether the invariant held; how a violation is
// described (assertion library, log, plain bool) is the property's
// business, never the driver's.
type Property func(inputs []any) bool

// effectiveSeed resolves the seed for a run: environment override first,
// then the configured seed, then the wall clock.
func effectiveSeed(cfg Config) uint64 {
	if env := os.Getenv(SeedEnv); env != "" {
		if seed, err := strconv.ParseUint(env, 10, 64); err == nil {
			return seed
		}
	}
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Run is the variadic driver core. Each trial draws one value per
// generator, feeding the seed produced by one draw into the next, then
// invokes property with the drawn values. The first violating trial stops
// the run; its inputs are returned verbatim in the Result. Run never
// retries or suppresses a violation.
//
// Run panics if no generators are given: a property over zero inputs has
// nothing to sample.
func Run(cfg Config, property Property, gens ...gen.Gen[any]) Result {
	if len(gens) == 0 {
		panic("prop: Run called with no generators")
	}
	trials := cfg.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}

	seed := effectiveSeed(cfg)
	res := Result{Seed: seed}

	for i := 0; i < trials; i++ {
		inputs := make([]any, len(gens))
		for j, g := range gens {
			seed, inputs[j] = g(seed)
		}
		res.Trials++
		if !property(inputs) {
			res.Failure = &Failure{Trial: i + 1, Inputs: inputs}
			return res
		}
	}
	return res
}
