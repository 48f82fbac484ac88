// Package config loads randcheck.ini, the run configuration for the
// randcheck CLI. Library packages never read it; they take explicit
// arguments.
//
// File format:
//
//	[check]
//	trials = 200
//	seed = 12345
//	verbose = true
//
//	[sample]
//	count = 25
//
// Lines starting with # or ; are comments. Section and key names are
// case-insensitive. Unknown sections and keys are ignored so a config file
// can be shared across tool versions.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "randcheck.ini"

// Config holds the CLI's run settings.
type Config struct {
	// Trials is the number of property trials per check.
	Trials int

	// Seed is the starting seed; zero means derive one from the clock.
	Seed uint64

	// Verbose enables per-run logging.
	Verbose bool

	// SampleCount is how many values `randcheck sample` draws.
	SampleCount int
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Trials:      100,
		SampleCount: 20,
	}
}

// Load reads a config file from disk. A missing file is not an error:
// defaults are returned.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads configuration from r, starting from the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	section := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.Trim(line, "[]"))
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		if err := cfg.set(section, key, value); err != nil {
			return Config{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) set(section, key, value string) error {
	switch section + "." + key {
	case "check.trials":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("config: check.trials must be a positive integer, got %q", value)
		}
		c.Trials = n
	case "check.seed":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("config: check.seed must be an unsigned integer, got %q", value)
		}
		c.Seed = n
	case "check.verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: check.verbose must be a boolean, got %q", value)
		}
		c.Verbose = b
	case "sample.count":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("config: sample.count must be a positive integer, got %q", value)
		}
		c.SampleCount = n
	}
	return nil
}
