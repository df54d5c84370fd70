// Package health scores raw physiological metrics and derives a risk tier
// with narrative insights and recommendations.
package health

import (
	"github.com/jonathan/wellness-engine/internal/types"
)

// Weights of each metric in the overall score.
const (
	heartRateWeight     = 1.5
	bloodPressureWeight = 2.0
	oxygenWeight        = 1.5
	stressWeight        = 1.0
	sleepWeight         = 1.0
	glucoseWeight       = 1.0
)

// DefaultScore is returned when no scorable metric is present.
const DefaultScore = 75.0

// Normal ranges used by the sub-scores.
var (
	heartRateRange = bounds{60, 100}
	systolicRange  = bounds{90, 120}
	diastolicRange = bounds{60, 80}
	sleepRange     = bounds{7, 9}
	glucoseRange   = bounds{70, 140}
)

const oxygenNormalMin = 95.0

type bounds struct {
	min, max float64
}

func (b bounds) contains(v float64) bool {
	return v >= b.min && v <= b.max
}

// deviation returns the distance from v to the nearest bound.
func (b bounds) deviation(v float64) float64 {
	return min(abs(v-b.min), abs(v-b.max))
}

type component struct {
	score  float64
	weight float64
}

// CalculateHealthScore returns the weighted average of the sub-scores of all
// present metrics, clamped to [0, 100]. Temperature and steps are not scored.
func CalculateHealthScore(m types.HealthMetrics) float64 {
	components := scoreComponents(m)
	if len(components) == 0 {
		return DefaultScore
	}

	weighted, totalWeight := 0.0, 0.0
	for _, c := range components {
		weighted += c.score * c.weight
		totalWeight += c.weight
	}

	return clamp(weighted/totalWeight, 0, 100)
}

func scoreComponents(m types.HealthMetrics) []component {
	components := make([]component, 0, 6)

	if m.HeartRate != nil {
		components = append(components, component{heartRateScore(*m.HeartRate), heartRateWeight})
	}
	// Blood pressure is only scored when both readings are present
	if m.BloodPressureSystolic != nil && m.BloodPressureDiastolic != nil {
		components = append(components, component{
			bloodPressureScore(*m.BloodPressureSystolic, *m.BloodPressureDiastolic),
			bloodPressureWeight,
		})
	}
	if m.OxygenSaturation != nil {
		components = append(components, component{oxygenScore(*m.OxygenSaturation), oxygenWeight})
	}
	if m.StressLevel != nil {
		components = append(components, component{stressScore(*m.StressLevel), stressWeight})
	}
	if m.SleepHours != nil {
		components = append(components, component{sleepScore(*m.SleepHours), sleepWeight})
	}
	if m.BloodGlucose != nil {
		components = append(components, component{glucoseScore(*m.BloodGlucose), glucoseWeight})
	}

	return components
}

func heartRateScore(hr float64) float64 {
	if heartRateRange.contains(hr) {
		return 100
	}
	return max(0, 100-2*heartRateRange.deviation(hr))
}

func bloodPressureScore(systolic, diastolic float64) float64 {
	sysScore := 100.0
	if !systolicRange.contains(systolic) {
		sysScore = max(0, 100-abs(systolic-120))
	}
	diaScore := 100.0
	if !diastolicRange.contains(diastolic) {
		diaScore = max(0, 100-2*abs(diastolic-80))
	}
	return (sysScore + diaScore) / 2
}

func oxygenScore(o2 float64) float64 {
	if o2 >= oxygenNormalMin {
		return 100
	}
	return max(0, o2*1.05)
}

// stressScore is an inverse scale: lower stress scores higher.
func stressScore(stress float64) float64 {
	return max(0, 100-10*stress)
}

func sleepScore(hours float64) float64 {
	if sleepRange.contains(hours) {
		return 100
	}
	return max(0, 100-10*abs(hours-8))
}

func glucoseScore(glucose float64) float64 {
	if glucoseRange.contains(glucose) {
		return 100
	}
	return max(0, 100-0.5*glucoseRange.deviation(glucose))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
