package nutrition

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/wellness-engine/internal/catalog"
	"github.com/jonathan/wellness-engine/internal/types"
)

// Weekdays are the labels of a weekly plan, in order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Share of the daily calorie target per meal. The remaining 10% is left for snacks.
var slotShare = map[catalog.MealSlot]float64{
	catalog.Breakfast: 0.25,
	catalog.Lunch:     0.35,
	catalog.Dinner:    0.30,
}

// HypertensionNote is attached to lunch and dinner when hypertension is reported.
const HypertensionNote = "Prepared with minimal salt, herbs for flavor"

type planInput struct {
	dailyCalories int
	weekOffset    int
	diet          string
	tags          types.TagSet
	hypertension  bool
}

// vegetarianDiet reports whether the diet excludes meat and fish dishes.
func vegetarianDiet(diet string) bool {
	return diet == types.DietVegetarian || diet == types.DietVegan
}

// eggDish reports whether an entry is named after eggs. Vegetarian diets skip
// these even when the catalog does not flag them.
func eggDish(name string) bool {
	return strings.Contains(strings.ToLower(name), "egg")
}

func (e *Engine) weeklyMealPlan(in planInput) ([]types.DayPlan, error) {
	filtered := make(map[catalog.MealSlot][]catalog.Meal, len(catalog.MealSlots))
	raw := make(map[catalog.MealSlot][]catalog.Meal, len(catalog.MealSlots))
	for _, slot := range catalog.MealSlots {
		meals := e.catalog.Meals(slot)
		raw[slot] = meals
		if vegetarianDiet(in.diet) {
			filtered[slot] = slices.DeleteFunc(slices.Clone(meals), func(m catalog.Meal) bool {
				return m.NonVegetarian || eggDish(m.Name)
			})
		} else {
			filtered[slot] = meals
		}
	}

	plans := make([]types.DayPlan, 0, len(Weekdays))
	for day, label := range Weekdays {
		plan := types.DayPlan{Day: label}
		for _, slot := range catalog.MealSlots {
			meal, err := SelectOption(filtered[slot], raw[slot], day, in.weekOffset, in.tags)
			if err != nil {
				return nil, fmt.Errorf("failed to select %s for %s: %w", slot, label, err)
			}
			option := mealOption(meal, int(float64(in.dailyCalories)*slotShare[slot]))
			if in.hypertension && slot != catalog.Breakfast {
				option.Note = HypertensionNote
			}
			switch slot {
			case catalog.Breakfast:
				plan.Breakfast = option
			case catalog.Lunch:
				plan.Lunch = option
			case catalog.Dinner:
				plan.Dinner = option
			}
			plan.TotalCalories += option.Calories
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func mealOption(m catalog.Meal, calories int) types.MealOption {
	return types.MealOption{
		Name:        m.Name,
		Calories:    calories,
		Description: m.Description,
		Benefits:    m.Benefits,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fats:        m.Fats,
		Tags:        m.Tags.Sorted(),
	}
}
