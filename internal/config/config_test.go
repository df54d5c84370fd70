package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 8080,
		"log_mode": "production",
		"calorie_strategy": "harris_benedict",
		"date": "2024-03-15",
		"verbose": true,
		"rate_limit_enabled": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, LogModeProduction, cfg.LogMode)
	assert.Equal(t, CalorieHarrisBenedict, cfg.CalorieStrategy)
	assert.Equal(t, "2024-03-15", cfg.Date)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.RateLimitEnabled)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config", Config{}, ""},
		{"defaults", Defaults(), ""},
		{"negative port", Config{Port: -1}, "'port'"},
		{"port too large", Config{Port: 70000}, "'port'"},
		{"unknown log mode", Config{LogMode: "verbose"}, "'log_mode'"},
		{"unknown strategy", Config{CalorieStrategy: "blended"}, "'calorie_strategy'"},
		{"bad date", Config{Date: "15/03/2024"}, "'date'"},
		{"valid date", Config{Date: "2024-03-15"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "6000")
	t.Setenv("LOG_MODE", LogModeProduction)
	t.Setenv("CALORIE_STRATEGY", CalorieHarrisBenedict)

	cfg := Config{Port: 5001, LogMode: LogModeDevelopment}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, LogModeProduction, cfg.LogMode)
	assert.Equal(t, CalorieHarrisBenedict, cfg.CalorieStrategy)
}

func TestApplyEnv_Unset(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_MODE", "")
	t.Setenv("CALORIE_STRATEGY", "")

	cfg := Config{Port: 7000, LogMode: LogModeDevelopment}
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, Config{Port: 7000, LogMode: LogModeDevelopment}, cfg)
}

func TestApplyEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "http")

	cfg := Config{}
	err := cfg.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		Port:    9000,
		Verbose: true,
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, LogModeDevelopment, merged.LogMode)
	assert.Equal(t, CalorieAgeTable, merged.CalorieStrategy)
	assert.Empty(t, merged.Date)
	assert.True(t, merged.Verbose)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{LogMode: LogModeProduction}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 0, merged.Port)
	assert.Equal(t, LogModeProduction, merged.LogMode)
	assert.Empty(t, merged.CalorieStrategy)
}

func TestPlanDate(t *testing.T) {
	cfg := Config{}
	_, ok, err := cfg.PlanDate()
	require.NoError(t, err)
	assert.False(t, ok)

	cfg.Date = "2024-01-08"
	date, ok, err := cfg.PlanDate()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), date)

	cfg.Date = "tomorrow"
	_, _, err = cfg.PlanDate()
	assert.Error(t, err)
}
