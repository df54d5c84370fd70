package occupation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_KnownOccupations(t *testing.T) {
	table := Default()

	assert.Equal(t, []string{
		"Chef", "Construction Worker", "Doctor", "Driver", "Nurse", "Software Engineer", "Teacher",
	}, table.Names())

	eng := table.Lookup("Software Engineer")
	assert.Equal(t, ActivitySedentary, eng.ActivityLevel)
	assert.Equal(t, "high", eng.StressPattern)
	assert.Equal(t, 1.2, eng.CalorieMultiplier)
	assert.Equal(t, []string{"eye strain", "posture", "sedentary lifestyle"}, eng.Concerns)
	assert.False(t, eng.IsActive())

	nurse := table.Lookup("Nurse")
	assert.True(t, nurse.IsActive())
	assert.Equal(t, table.Lookup("Doctor").Recommendations, nurse.Recommendations)
}

func TestLookup_UnknownFallsBackToDefault(t *testing.T) {
	table := Default()

	p := table.Lookup("Unknown-Occupation-XYZ")
	assert.Equal(t, ActivityModerate, p.ActivityLevel)
	assert.Equal(t, 1.5, p.CalorieMultiplier)
	assert.Equal(t, []string{"work-life balance", "stress management"}, p.Concerns)
	assert.False(t, table.Known("Unknown-Occupation-XYZ"))
}

func TestLookup_IsCaseSensitive(t *testing.T) {
	table := Default()

	assert.True(t, table.Known("Doctor"))
	assert.False(t, table.Known("doctor"))
	assert.Equal(t, ActivityModerate, table.Lookup("doctor").ActivityLevel)
}

func TestLookup_ReturnsCopies(t *testing.T) {
	table := Default()

	p := table.Lookup("Driver")
	p.Concerns[0] = "mutated"
	p.CalorieMultiplier = 99

	again := table.Lookup("Driver")
	assert.Equal(t, "circulation", again.Concerns[0])
	assert.Equal(t, 1.4, again.CalorieMultiplier)
}

func TestGeneralRecommendations(t *testing.T) {
	recs := Default().GeneralRecommendations()
	require.NotEmpty(t, recs)
	assert.Contains(t, recs, "Stay hydrated throughout the day")
}

func TestParse_Errors(t *testing.T) {
	validDefault := `
default:
  activity_level: moderate
  calorie_multiplier: 1.5
  recommendations: [eat well]
`
	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"malformed yaml", "default: [", "failed to parse YAML"},
		{"bad activity", "default:\n  activity_level: lazy\n  calorie_multiplier: 1\n", "unknown activity level"},
		{"missing default advice", "default:\n  activity_level: light\n  calorie_multiplier: 1\n", "must define recommendations"},
		{"empty name", validDefault + "occupations:\n  - activity_level: light\n    calorie_multiplier: 1.2\n", "empty name"},
		{"duplicate", validDefault + "occupations:\n  - {name: Pilot, activity_level: light, calorie_multiplier: 1.2}\n  - {name: Pilot, activity_level: light, calorie_multiplier: 1.2}\n", "duplicate occupation"},
		{"zero multiplier", validDefault + "occupations:\n  - {name: Pilot, activity_level: light, calorie_multiplier: 0}\n", "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse([]byte(tt.data))
			assert.Nil(t, table)
			require.Error(t, err)
			var loadErr *LoadError
			assert.True(t, errors.As(err, &loadErr))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
