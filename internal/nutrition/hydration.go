package nutrition

import (
	"math"

	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/jonathan/wellness-engine/internal/types"
)

const (
	litersPerKg       = 0.035
	activeBonusLiters = 0.5
	glassesPerLiter   = 4
)

// DailyWaterLiters returns the daily water target: whole liters from body
// weight, plus half a liter for active occupations, rounded to one decimal.
func DailyWaterLiters(weight float64, profile occupation.Profile) float64 {
	liters := math.Floor(weight * litersPerKg)
	if profile.IsActive() {
		liters += activeBonusLiters
	}
	return math.Round(liters*10) / 10
}

func (e *Engine) hydrationPlan(weight float64, profile occupation.Profile) types.HydrationPlan {
	liters := DailyWaterLiters(weight, profile)
	static := e.catalog.Hydration()
	return types.HydrationPlan{
		DailyTargetLiters:     liters,
		DailyTargetGlasses:    int(math.Floor(liters * glassesPerLiter)),
		ReminderIntervalHours: static.ReminderIntervalHours,
		Tips:                  static.Tips,
		Schedule:              static.Schedule,
	}
}
