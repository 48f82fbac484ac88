package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/shipq/randcheck/cli"
	"github.com/shipq/randcheck/config"
	"github.com/shipq/randcheck/gen"
)

const sampleUsage = `randcheck sample - draw values from a generator

Usage: randcheck sample <kind> [options]

Kinds:
  int           signed 64-bit integers
  float         floats (NaN and ±Inf are legitimate draws)
  finite-float  floats with non-finite draws mapped to zero
  bool          booleans
  string        alphanumeric strings

Options:
  -n <count>       number of values to draw (default from config)
  -seed <seed>     starting seed (default: config, else wall clock)
  -config <path>   config file (default: randcheck.ini)
`

func sampleCmd(args []string) {
	if len(args) < 1 || args[0] == "-h" || args[0] == "--help" {
		fmt.Print(sampleUsage)
		os.Exit(0)
	}
	kind := args[0]

	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	n := fs.Int("n", 0, "number of values to draw")
	seedFlag := fs.Uint64("seed", 0, "starting seed")
	cfgPath := fs.String("config", config.DefaultFile, "config file path")
	if err := fs.Parse(args[1:]); err != nil {
		cli.FatalErr("parsing flags", err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		cli.FatalErr("loading config", err)
	}

	count := cfg.SampleCount
	if *n > 0 {
		count = *n
	}
	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cli.Infof("sampling %d %s values (seed %d)", count, kind, seed)

	switch kind {
	case "int":
		printNumeric(seed, count, gen.Map(gen.Int64(), func(v int64) float64 {
			return float64(v)
		}))
	case "float":
		printNumeric(seed, count, gen.Float64())
	case "finite-float":
		printNumeric(seed, count, gen.FiniteFloat64())
	case "bool":
		printBools(seed, count)
	case "string":
		printStrings(seed, count)
	default:
		cli.Fatal("unknown sample kind: " + kind)
	}
}

func printNumeric(seed uint64, count int, g gen.Gen[float64]) {
	values := make([]float64, count)
	for i := range values {
		seed, values[i] = g(seed)
		cli.Infof("  %v", values[i])
	}
	cli.Infof("%s", summarize(values))
}

func printBools(seed uint64, count int) {
	trues := 0
	g := gen.Bool()
	for i := 0; i < count; i++ {
		var b bool
		seed, b = g(seed)
		cli.Infof("  %v", b)
		if b {
			trues++
		}
	}
	cli.Infof("true: %d, false: %d", trues, count-trues)
}

func printStrings(seed uint64, count int) {
	g := gen.StringFrom(gen.CharsetAlphaNum, 0, 16)
	total := 0
	for i := 0; i < count; i++ {
		var s string
		seed, s = g(seed)
		cli.Infof("  %q", s)
		total += len(s)
	}
	cli.Infof("mean length: %.2f", float64(total)/float64(count))
}

// summarize formats summary statistics over the finite draws. Non-finite
// values are counted separately: they are legitimate outputs of the float
// generator but would poison the aggregates.
func summarize(values []float64) string {
	finite := make([]float64, 0, len(values))
	nonFinite := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			nonFinite++
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return fmt.Sprintf("no finite values (%d non-finite)", nonFinite)
	}

	mean, _ := stats.Mean(finite)
	median, _ := stats.Median(finite)
	stdev, _ := stats.StandardDeviation(finite)
	min, _ := stats.Min(finite)
	max, _ := stats.Max(finite)

	s := fmt.Sprintf("mean: %.4g, median: %.4g, stdev: %.4g, min: %.4g, max: %.4g",
		mean, median, stdev, min, max)
	if nonFinite > 0 {
		s += fmt.Sprintf(" (%d non-finite draws excluded)", nonFinite)
	}
	return s
}
