package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointRule is the limit applied to one endpoint.
type EndpointRule struct {
	Name   string        // Bucket namespace; requests under the same name share a bucket
	Path   string        // Exact path, or a prefix when it ends with "/"
	Method string        // HTTP method
	Limit  int           // Requests per window; zero means unlimited
	Window time.Duration // Refill window
	Burst  int           // Bucket capacity (defaults to Limit if 0)
}

func (r EndpointRule) capacity() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Limit
}

// DefaultRules returns the built-in per-endpoint limits.
func DefaultRules() []EndpointRule {
	return []EndpointRule{
		{Name: "health-check", Path: "/api/health-check", Method: "GET"},
		{Name: "predict", Path: "/api/predict", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Name: "nutrition", Path: "/api/nutrition", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// DefaultConfig returns an enabled configuration with the built-in rules.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		IdleTTL:       time.Hour,
		SweepInterval: 5 * time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		Rules:         DefaultRules(),
	}
}

// LoadConfig builds the configuration from RATE_LIMIT_* environment
// variables on top of DefaultConfig. enabled is the configured default and
// RATE_LIMIT_ENABLED overrides it.
func LoadConfig(enabled bool) *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", enabled)
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.IdleTTL = getEnvDuration("RATE_LIMIT_IDLE_TTL", cfg.IdleTTL)
	cfg.SweepInterval = getEnvDuration("RATE_LIMIT_SWEEP_INTERVAL", cfg.SweepInterval)
	cfg.Whitelist = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))
	return cfg
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
