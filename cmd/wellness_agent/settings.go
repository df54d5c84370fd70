package main

import (
	"fmt"
	"time"

	"github.com/jonathan/wellness-engine/internal/config"
	"github.com/jonathan/wellness-engine/internal/logger"
	"github.com/jonathan/wellness-engine/internal/nutrition"
	"github.com/spf13/cobra"
)

// Resolved settings shared by all commands.
var (
	settings config.Config
	appLog   *logger.Logger
)

// loadSettings resolves configuration from the config file, the environment
// and flags, in increasing precedence, and builds the logger.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	l, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	settings = cfg
	appLog = l.With("command", cmd.Name())
	return nil
}

func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("invalid config file: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = verboseFlag
	}
	if flags.Changed("log-mode") {
		cfg.LogMode = logModeFlag
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newEngine builds a nutrition engine using the configured calorie strategy.
func newEngine(cfg config.Config) (*nutrition.Engine, error) {
	strategy, err := nutrition.StrategyByName(cfg.CalorieStrategy)
	if err != nil {
		return nil, err
	}
	return nutrition.NewEngine(nutrition.WithStrategy(strategy)), nil
}

// planDate returns the date override if given, then the configured date, then now.
func planDate(override string, cfg config.Config) (time.Time, error) {
	if override != "" {
		date, err := time.Parse(config.DateLayout, override)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", override, err)
		}
		return date, nil
	}
	date, ok, err := cfg.PlanDate()
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return date, nil
	}
	return time.Now(), nil
}
