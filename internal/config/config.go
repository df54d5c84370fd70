// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Recognized values.
const (
	DefaultPort = 5001

	LogModeDevelopment = "development"
	LogModeProduction  = "production"

	CalorieAgeTable       = "age_table"
	CalorieHarrisBenedict = "harris_benedict"

	// DateLayout is the layout of the date field.
	DateLayout = "2006-01-02"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	Port             int  `json:"port,omitempty"`               // HTTP listen port
	RateLimitEnabled bool `json:"rate_limit_enabled,omitempty"` // Enable per-IP rate limiting

	// Behavior
	LogMode         string `json:"log_mode,omitempty"`         // development or production
	CalorieStrategy string `json:"calorie_strategy,omitempty"` // age_table or harris_benedict
	Date            string `json:"date,omitempty"`             // Pin the plan date (YYYY-MM-DD)
	Verbose         bool   `json:"verbose,omitempty"`          // Print human-readable summaries
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:            DefaultPort,
		LogMode:         LogModeDevelopment,
		CalorieStrategy: CalorieAgeTable,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.LogMode {
	case "", LogModeDevelopment, LogModeProduction:
	default:
		return fmt.Errorf("config error: unknown 'log_mode' %q", c.LogMode)
	}

	switch c.CalorieStrategy {
	case "", CalorieAgeTable, CalorieHarrisBenedict:
	default:
		return fmt.Errorf("config error: unknown 'calorie_strategy' %q", c.CalorieStrategy)
	}

	if c.Date != "" {
		if _, err := time.Parse(DateLayout, c.Date); err != nil {
			return fmt.Errorf("config error: 'date' must be YYYY-MM-DD: %w", err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from PORT, LOG_MODE and CALORIE_STRATEGY when set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("LOG_MODE"); v != "" {
		c.LogMode = v
	}
	if v := os.Getenv("CALORIE_STRATEGY"); v != "" {
		c.CalorieStrategy = v
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}
	if result.CalorieStrategy == "" {
		result.CalorieStrategy = defaults.CalorieStrategy
	}
	if result.Date == "" {
		result.Date = defaults.Date
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// PlanDate returns the pinned date, or ok=false when none is configured.
func (c *Config) PlanDate() (date time.Time, ok bool, err error) {
	if c.Date == "" {
		return time.Time{}, false, nil
	}
	date, err = time.Parse(DateLayout, c.Date)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q: %w", c.Date, err)
	}
	return date, true, nil
}
