package health

import (
	"fmt"
	"strconv"

	"github.com/jonathan/wellness-engine/internal/types"
)

// NoConcern is the single problem area reported when nothing triggers.
const NoConcern = "No major areas of concern"

const defaultAge = 30

// GenerateInsights returns a narrative reading of the score and any metric
// outside its comfortable range.
func GenerateInsights(m types.HealthMetrics, profile types.UserProfile, score float64) []string {
	insights := make([]string, 0, 6)

	switch {
	case score >= 85:
		insights = append(insights, fmt.Sprintf("Excellent health status with a score of %.1f/100. Keep up the great work!", score))
	case score >= 70:
		insights = append(insights, fmt.Sprintf("Good health status with a score of %.1f/100. Minor improvements recommended.", score))
	default:
		insights = append(insights, fmt.Sprintf("Health score is %.1f/100. Several areas need attention for improvement.", score))
	}

	if hr := m.HeartRate; hr != nil {
		if *hr > 100 {
			insights = append(insights, fmt.Sprintf("Heart rate (%s bpm) is elevated. Consider stress management and regular exercise.", num(*hr)))
		} else if *hr < 60 {
			insights = append(insights, fmt.Sprintf("Heart rate (%s bpm) is lower than average. This is normal for athletes, otherwise consult a doctor.", num(*hr)))
		}
	}

	if sys := m.BloodPressureSystolic; sys != nil {
		if *sys > 130 {
			insights = append(insights, fmt.Sprintf("Blood pressure (%s mmHg systolic) is elevated. Reduce sodium intake and manage stress.", num(*sys)))
		} else if *sys < 90 {
			insights = append(insights, fmt.Sprintf("Blood pressure (%s mmHg systolic) is on the lower side. Stay hydrated and monitor symptoms.", num(*sys)))
		}
	}

	if stress := m.StressLevel; stress != nil && *stress > 7 {
		insights = append(insights, fmt.Sprintf("High stress level detected (%s/10). Prioritize relaxation and mental health.", num(*stress)))
	}

	if sleep := m.SleepHours; sleep != nil {
		if *sleep < 6 {
			insights = append(insights, fmt.Sprintf("Insufficient sleep (%s hours). Aim for 7-9 hours for optimal health.", num(*sleep)))
		} else if *sleep > 10 {
			insights = append(insights, fmt.Sprintf("Excessive sleep (%s hours) may indicate underlying issues.", num(*sleep)))
		}
	}

	age := defaultAge
	if profile.Age != nil {
		age = *profile.Age
	}
	if age > 50 && m.BloodPressureSystolic != nil && *m.BloodPressureSystolic > 120 {
		insights = append(insights, fmt.Sprintf("At age %d, maintaining optimal blood pressure is crucial. Regular monitoring recommended.", age))
	}

	return insights
}

// GenerateRecommendations returns actionable steps for the metrics and
// profile attributes that warrant them.
func GenerateRecommendations(m types.HealthMetrics, profile types.UserProfile) []string {
	recs := make([]string, 0, 8)

	if m.HeartRate != nil && *m.HeartRate > 100 {
		recs = append(recs,
			"Practice deep breathing exercises for 10 minutes daily",
			"Consider cardiovascular exercise 3-4 times per week",
		)
	}

	if m.BloodPressureSystolic != nil && *m.BloodPressureSystolic > 130 {
		recs = append(recs,
			"Reduce sodium intake to less than 2,300mg per day",
			"Increase potassium-rich foods (bananas, spinach)",
		)
	}

	if m.StressLevel != nil && *m.StressLevel > 6 {
		recs = append(recs,
			"Practice mindfulness meditation for 15 minutes daily",
			"Engage in stress-reducing activities (yoga, walking)",
			"Consider speaking with a mental health professional",
		)
	}

	if m.SleepHours != nil && *m.SleepHours < 7 {
		recs = append(recs,
			"Establish a consistent sleep schedule",
			"Avoid screens 1 hour before bedtime",
			"Create a relaxing bedtime routine",
		)
	}

	switch profile.ExerciseFrequency {
	case "Rarely", "Never", "":
		recs = append(recs,
			"Start with 30 minutes of moderate exercise 3 times per week",
			"Consider walking, swimming, or cycling",
		)
	}

	if bmi, ok := BMI(profile); ok {
		if bmi > 25 {
			recs = append(recs, fmt.Sprintf("BMI of %.1f is above the healthy range. Work with a nutritionist to develop a healthy eating plan", bmi))
		} else if bmi < 18.5 {
			recs = append(recs, fmt.Sprintf("BMI of %.1f is below the healthy range. Consult with a healthcare provider about healthy weight gain", bmi))
		}
	}

	return recs
}

// IdentifyProblemAreas names the health areas needing attention.
func IdentifyProblemAreas(m types.HealthMetrics) []string {
	areas := make([]string, 0, 7)

	if hr := m.HeartRate; hr != nil && (*hr < 60 || *hr > 100) {
		areas = append(areas, "Cardiovascular Health")
	}
	if (m.BloodPressureSystolic != nil && *m.BloodPressureSystolic > 130) ||
		(m.BloodPressureDiastolic != nil && *m.BloodPressureDiastolic > 85) {
		areas = append(areas, "Blood Pressure Management")
	}
	if m.StressLevel != nil && *m.StressLevel > 6 {
		areas = append(areas, "Stress Management")
	}
	if sleep := m.SleepHours; sleep != nil && (*sleep < 6 || *sleep > 10) {
		areas = append(areas, "Sleep Quality")
	}
	if m.OxygenSaturation != nil && *m.OxygenSaturation < 95 {
		areas = append(areas, "Respiratory Function")
	}
	if g := m.BloodGlucose; g != nil && (*g > 140 || *g < 70) {
		areas = append(areas, "Blood Sugar Regulation")
	}
	if m.Steps != nil && *m.Steps < 3000 {
		areas = append(areas, "Physical Activity Level")
	}

	if len(areas) == 0 {
		return []string{NoConcern}
	}
	return areas
}

// BMI computes body mass index from weight (kg) and height (cm). It reports
// false when either measurement is missing or not positive.
func BMI(profile types.UserProfile) (float64, bool) {
	if profile.Weight == nil || profile.Height == nil || *profile.Weight <= 0 || *profile.Height <= 0 {
		return 0, false
	}
	h := *profile.Height
	return *profile.Weight / (h * h) * 10000, true
}

// num formats a metric with the shortest exact representation (80, 7.5).
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
