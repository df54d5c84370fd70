// Package nutrition builds personalized nutrition recommendations: a daily
// calorie target, a rotating weekly meal plan, ranked snacks and drinks, a
// hydration plan and occupation-aware advice.
package nutrition

import (
	"fmt"

	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/jonathan/wellness-engine/internal/types"
)

// AgeGroup classifies a person by age.
type AgeGroup string

const (
	AgeChild   AgeGroup = "child"
	AgeTeen    AgeGroup = "teen"
	AgeAdult   AgeGroup = "adult"
	AgeElderly AgeGroup = "elderly"
)

// AgeGroupFor returns the age group. Boundaries are inclusive: child up to
// 12, teen 13 to 19, adult 20 to 59, elderly from 60.
func AgeGroupFor(age int) AgeGroup {
	switch {
	case age <= 12:
		return AgeChild
	case age <= 19:
		return AgeTeen
	case age >= 60:
		return AgeElderly
	default:
		return AgeAdult
	}
}

// DailyCalorieTarget returns the flat age-based daily calorie target.
func DailyCalorieTarget(age int) int {
	switch AgeGroupFor(age) {
	case AgeTeen:
		return 2400
	case AgeChild:
		return 1800
	case AgeElderly:
		return 1700
	default:
		return 2000
	}
}

// CalorieInput is everything a calorie strategy may consider.
type CalorieInput struct {
	Age        int
	Weight     float64
	Height     float64
	Gender     string
	Occupation occupation.Profile
}

// CalorieStrategy computes a daily calorie target. An engine uses exactly one.
type CalorieStrategy interface {
	Name() string
	DailyTarget(in CalorieInput) int
}

// Strategy names accepted by StrategyByName.
const (
	StrategyAgeTable       = "age_table"
	StrategyHarrisBenedict = "harris_benedict"
)

// AgeTable is the default strategy: a fixed lookup by age group.
type AgeTable struct{}

func (AgeTable) Name() string { return StrategyAgeTable }

func (AgeTable) DailyTarget(in CalorieInput) int {
	return DailyCalorieTarget(in.Age)
}

// HarrisBenedict estimates basal metabolic rate with the revised
// Harris-Benedict equation and scales it by the occupation's multiplier.
type HarrisBenedict struct{}

func (HarrisBenedict) Name() string { return StrategyHarrisBenedict }

func (HarrisBenedict) DailyTarget(in CalorieInput) int {
	age := float64(in.Age)
	var bmr float64
	if in.Gender == types.GenderMale {
		bmr = 88.362 + 13.397*in.Weight + 4.799*in.Height - 5.677*age
	} else {
		bmr = 447.593 + 9.247*in.Weight + 3.098*in.Height - 4.330*age
	}
	multiplier := in.Occupation.CalorieMultiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}
	return int(bmr * multiplier)
}

// StrategyByName resolves a configured strategy name. Empty selects the age table.
func StrategyByName(name string) (CalorieStrategy, error) {
	switch name {
	case "", StrategyAgeTable:
		return AgeTable{}, nil
	case StrategyHarrisBenedict:
		return HarrisBenedict{}, nil
	default:
		return nil, fmt.Errorf("unknown calorie strategy %q", name)
	}
}
