package config

import (
	"encoding/json"
	"fmt"
	"os"
)

var (
	// ConfigPath is the variable which stores the config path command line parameter
	ConfigPath string
)

// Defaults for the generation budgets.
const (
	// DefaultMaxValues is the number of values generated per test
	DefaultMaxValues = 100
	// DefaultMaxAttempts is the number of generation attempts per value
	// before the runner gives up
	DefaultMaxAttempts = 15
)

// Config stores the config for the engine
type Config struct {
	// MaxValues number of values to generate and check per test
	MaxValues int `json:"max_values"`
	// MaxAttempts number of generation attempts per value
	MaxAttempts int `json:"max_attempts"`
	// Seed for the test run RNG. 0 picks a fresh seed per run
	Seed uint64 `json:"seed"`
	// APIServerAddr address of the APIServer serving run reports
	APIServerAddr string `json:"server_addr"`
	// LogConfig configuration for logging
	LogConfig LogConfig `json:"log"`
}

// LogConfig stores the config for logging purpose
type LogConfig struct {
	// Path of the log file
	Path string `json:"path"`
	// Format to log. `json` selects the JSON formatter; any other value
	// uses logrus's text formatter
	Format string `json:"format"`
	// Level log level, one of panic|fatal|error|warn|warning|info|debug|trace
	Level string `json:"level"`
}

// Default returns the config used when no config file is given
func Default() *Config {
	return &Config{
		MaxValues:     DefaultMaxValues,
		MaxAttempts:   DefaultMaxAttempts,
		Seed:          0,
		APIServerAddr: "0.0.0.0:7074",
		LogConfig: LogConfig{
			Path:   "",
			Format: "json",
			Level:  "info",
		},
	}
}

// ParseConfig parses config from the specified file
func ParseConfig(path string) (*Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %s", err)
	}
	config := Default()
	err = json.Unmarshal(bytes, config)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %s", err)
	}
	return config, nil
}
