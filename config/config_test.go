package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseFull(t *testing.T) {
	input := `
# run settings
[check]
trials = 250
seed = 98765
verbose = true

; sampling
[sample]
count = 7
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Trials != 250 {
		t.Errorf("Trials = %d, want 250", cfg.Trials)
	}
	if cfg.Seed != 98765 {
		t.Errorf("Seed = %d, want 98765", cfg.Seed)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.SampleCount != 7 {
		t.Errorf("SampleCount = %d, want 7", cfg.SampleCount)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(\"\") = %+v, want defaults %+v", cfg, Default())
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	input := `
[check]
trials = 5
future_knob = whatever

[unknown_section]
anything = goes
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Trials != 5 {
		t.Errorf("Trials = %d, want 5", cfg.Trials)
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[CHECK]\nTrials = 9\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Trials != 9 {
		t.Errorf("Trials = %d, want 9", cfg.Trials)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := []string{
		"[check]\ntrials = zero\n",
		"[check]\ntrials = -3\n",
		"[check]\nseed = -1\n",
		"[check]\nverbose = maybe\n",
		"[sample]\ncount = 0\n",
	}
	for _, input := range cases {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("Parse(%q) accepted a bad value", input)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	writeFile(t, path, "[sample]\ncount = 3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SampleCount != 3 {
		t.Errorf("SampleCount = %d, want 3", cfg.SampleCount)
	}
}
