package health

import "github.com/jonathan/wellness-engine/internal/types"

// Thresholds that force a High risk tier regardless of score.
const (
	criticalSystolic = 140.0
	criticalOxygen   = 90.0
	criticalStress   = 8.0

	highRiskScore     = 60.0
	moderateRiskScore = 75.0
)

// DetermineRiskLevel classifies a score into a risk tier. Critical readings
// take precedence over the score thresholds.
func DetermineRiskLevel(score float64, m types.HealthMetrics) types.RiskLevel {
	if hasCriticalCondition(m) || score < highRiskScore {
		return types.RiskHigh
	}
	if score < moderateRiskScore {
		return types.RiskModerate
	}
	return types.RiskLow
}

func hasCriticalCondition(m types.HealthMetrics) bool {
	switch {
	case m.BloodPressureSystolic != nil && *m.BloodPressureSystolic > criticalSystolic:
		return true
	case m.OxygenSaturation != nil && *m.OxygenSaturation < criticalOxygen:
		return true
	case m.StressLevel != nil && *m.StressLevel > criticalStress:
		return true
	}
	return false
}
