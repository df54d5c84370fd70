package nutrition

import (
	"testing"

	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/jonathan/wellness-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBuildPreferenceTags(t *testing.T) {
	moderate := occupation.Profile{ActivityLevel: occupation.ActivityModerate}

	tests := []struct {
		name       string
		group      AgeGroup
		profile    occupation.Profile
		stress     float64
		heartRate  float64
		conditions []string
		expected   []string
	}{
		{
			name:     "adult baseline",
			group:    AgeAdult,
			profile:  moderate,
			stress:   5,
			expected: []string{"balanced", "budget", "easy", "quick"},
		},
		{
			name:     "child",
			group:    AgeChild,
			profile:  moderate,
			expected: []string{"budget", "easy", "kid_friendly", "quick"},
		},
		{
			name:     "teen on active job collapses high energy",
			group:    AgeTeen,
			profile:  occupation.Profile{ActivityLevel: occupation.ActivityVeryActive},
			expected: []string{"budget", "easy", "high_energy", "quick"},
		},
		{
			name:     "elderly sedentary collapses light",
			group:    AgeElderly,
			profile:  occupation.Profile{ActivityLevel: occupation.ActivitySedentary},
			expected: []string{"budget", "easy", "light", "quick"},
		},
		{
			name:     "stress at threshold adds nothing",
			group:    AgeAdult,
			profile:  moderate,
			stress:   6,
			expected: []string{"balanced", "budget", "easy", "quick"},
		},
		{
			name:       "everything",
			group:      AgeAdult,
			profile:    occupation.Profile{ActivityLevel: occupation.ActivityActive},
			stress:     7,
			heartRate:  100,
			conditions: []string{types.ConditionDiabetes, types.ConditionHypertension},
			expected: []string{
				"balanced", "budget", "calming", "easy", "heart_healthy",
				"high_energy", "low_sodium", "low_sugar", "quick",
			},
		},
		{
			name:      "heart rate at threshold adds nothing",
			group:     AgeAdult,
			profile:   moderate,
			heartRate: 95,
			expected:  []string{"balanced", "budget", "easy", "quick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := BuildPreferenceTags(tt.group, tt.profile, tt.stress, tt.heartRate, tt.conditions)
			assert.Equal(t, tt.expected, tags.Sorted())
		})
	}
}
