package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/jonathan/wellness-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintPrediction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPrediction(&types.HealthPrediction{
		OverallHealthScore:    82.9,
		RiskLevel:             types.RiskLow,
		Insights:              []string{"Good health status with minor areas for improvement"},
		Recommendations:       []string{"Aim for 7-9 hours of sleep"},
		AreasNeedingAttention: []string{"Sleep"},
	})
	output := buf.String()

	assert.Contains(t, output, "HEALTH PREDICTION")
	assert.Contains(t, output, "82.9 / 100")
	assert.Contains(t, output, "Low")
	assert.Contains(t, output, "Sleep")
}

func TestPrintPrediction_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPrediction(nil)
	assert.Empty(t, buf.String())
}

func TestPrintNutrition(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.NutritionRecommendations{
		DailyCalorieTarget: 2000,
		MealPlans: []types.DayPlan{
			{
				Day:           "Monday",
				Breakfast:     types.MealOption{Name: "Oatmeal", Calories: 500},
				Lunch:         types.MealOption{Name: "Quinoa Bowl", Calories: 700},
				Dinner:        types.MealOption{Name: "Khichdi", Calories: 600},
				TotalCalories: 1800,
			},
		},
		HealthySnacks: []types.SnackOption{{Name: "Mixed Nuts", Calories: 180}},
		HealthyDrinks: []types.DrinkOption{{Name: "Green Tea"}},
		HydrationPlan: types.HydrationPlan{DailyTargetLiters: 2, DailyTargetGlasses: 8, ReminderIntervalHours: 2},
		OccupationAdvice: types.OccupationAdvice{
			StressManagement: []string{"Consider chamomile tea"},
		},
	}

	p.PrintNutrition(rec)
	output := buf.String()

	assert.Contains(t, output, "NUTRITION PLAN")
	assert.Contains(t, output, "Daily target: 2000 kcal")
	assert.Contains(t, output, "Monday (1800 kcal)")
	assert.Contains(t, output, "Quinoa Bowl")
	assert.Contains(t, output, "Mixed Nuts (180 kcal)")
	assert.Contains(t, output, "2.0 L (8 glasses), every 2h")
	assert.Contains(t, output, "Stress management")
}

func TestPrintNutrition_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintNutrition(nil)
	assert.Empty(t, buf.String())
}

func TestPrintOccupations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOccupations([]occupation.Profile{
		{Name: "Chef", ActivityLevel: occupation.ActivityActive, CalorieMultiplier: 1.7},
	})

	output := buf.String()
	assert.Contains(t, output, "OCCUPATIONS")
	assert.Contains(t, output, "Chef")
	assert.Contains(t, output, "x1.70")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("•", 100))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestWriteList_Overflow(t *testing.T) {
	var sb strings.Builder
	writeList(&sb, "Items", []string{"a", "b", "c", "d", "e", "f", "g"})

	assert.Contains(t, sb.String(), "... and 2 more")
	assert.NotContains(t, sb.String(), "• f")
}
