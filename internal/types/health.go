// Package types provides type definitions for structured data used throughout the wellness engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// HealthMetrics holds raw physiological readings. Every field is optional;
// a nil pointer means the reading was not supplied.
type HealthMetrics struct {
	HeartRate              *float64 `json:"heartRate,omitempty"`
	BloodPressureSystolic  *float64 `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *float64 `json:"bloodPressureDiastolic,omitempty"`
	OxygenSaturation       *float64 `json:"oxygenSaturation,omitempty"`
	Temperature            *float64 `json:"temperature,omitempty"`
	StressLevel            *float64 `json:"stressLevel,omitempty"` // 1-10
	BloodGlucose           *float64 `json:"bloodGlucose,omitempty"`
	SleepHours             *float64 `json:"sleepHours,omitempty"`
	Steps                  *float64 `json:"steps,omitempty"`
}

// UserProfile holds demographic and lifestyle information about a user.
type UserProfile struct {
	Age               *int     `json:"age,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	Weight            *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"` // kg
	Height            *float64 `json:"height,omitempty" validate:"omitempty,gte=0"` // cm
	Occupation        string   `json:"occupation,omitempty"`
	ExerciseFrequency string   `json:"exerciseFrequency,omitempty"`
	DietType          string   `json:"dietType,omitempty"`
	HealthConditions  []string `json:"healthConditions,omitempty"`
}

// PredictRequest is the input envelope for a health prediction.
type PredictRequest struct {
	Metrics     HealthMetrics `json:"metrics"`
	UserProfile UserProfile   `json:"userProfile"`
}

// RiskLevel is the coarse risk tier of a health assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// HealthPrediction is the result of a health assessment.
type HealthPrediction struct {
	OverallHealthScore    float64   `json:"overallHealthScore"`
	RiskLevel             RiskLevel `json:"riskLevel"`
	Insights              []string  `json:"insights"`
	Recommendations       []string  `json:"recommendations"`
	AreasNeedingAttention []string  `json:"areasNeedingAttention"`
}

// Float returns a pointer to v. It is handy for building optional metrics.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}
