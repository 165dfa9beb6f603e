package config

import (
	"os"
	"path"
	"testing"
)

func TestDefaultBudgets(t *testing.T) {
	c := Default()
	if c.MaxValues != 100 {
		t.Errorf("expected 100 values per test, got %d", c.MaxValues)
	}
	if c.MaxAttempts != 15 {
		t.Errorf("expected 15 attempts per value, got %d", c.MaxAttempts)
	}
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	file := path.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(file, []byte(`{"max_values": 7, "seed": 3}`), 0644); err != nil {
		t.Fatalf("error writing config: %s", err)
	}
	c, err := ParseConfig(file)
	if err != nil {
		t.Fatalf("error parsing config: %s", err)
	}
	if c.MaxValues != 7 {
		t.Errorf("expected the configured 7, got %d", c.MaxValues)
	}
	if c.Seed != 3 {
		t.Errorf("expected the configured seed 3, got %d", c.Seed)
	}
	if c.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("unset fields should keep defaults, got %d", c.MaxAttempts)
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	if _, err := ParseConfig(path.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
