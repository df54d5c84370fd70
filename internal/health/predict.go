package health

import (
	"fmt"
	"math"

	"github.com/jonathan/wellness-engine/internal/types"
)

// Predict assesses the metrics and profile. The only error it returns is an
// InvalidInputError for profiles with negative body measurements.
func Predict(m types.HealthMetrics, profile types.UserProfile) (*types.HealthPrediction, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user profile: %w", err)
	}

	score := CalculateHealthScore(m)

	return &types.HealthPrediction{
		OverallHealthScore:    math.Round(score*10) / 10,
		RiskLevel:             DetermineRiskLevel(score, m),
		Insights:              GenerateInsights(m, profile, score),
		Recommendations:       GenerateRecommendations(m, profile),
		AreasNeedingAttention: IdentifyProblemAreas(m),
	}, nil
}
