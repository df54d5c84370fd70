package nutrition

import (
	"slices"

	"github.com/jonathan/wellness-engine/internal/catalog"
	"github.com/jonathan/wellness-engine/internal/types"
)

const (
	itemLimit                 = 6
	stressAdviceThreshold     = 6.0
	stressManagementThreshold = 7.0
)

func (e *Engine) healthySnacks(diet string, stress float64, tags types.TagSet) []types.SnackOption {
	snacks := e.catalog.Snacks()
	if vegetarianDiet(diet) {
		snacks = slices.DeleteFunc(snacks, func(s catalog.Snack) bool {
			return eggDish(s.Name)
		})
	}

	top := SelectTopItems(snacks, tags, itemLimit)
	out := make([]types.SnackOption, 0, len(top))
	for _, s := range top {
		option := types.SnackOption{
			Name:        s.Name,
			Calories:    s.Calories,
			Description: s.Description,
			Benefits:    s.Benefits,
			BestTime:    s.BestTime,
			Tags:        s.Tags.Sorted(),
		}
		if stress > stressAdviceThreshold && s.Tags.Has(types.TagStressRelief) {
			option.Recommendation = s.StressAdvice
		}
		out = append(out, option)
	}
	return out
}

func (e *Engine) healthyDrinks(stress float64, tags types.TagSet) []types.DrinkOption {
	top := SelectTopItems(e.catalog.Drinks(), tags, itemLimit)
	out := make([]types.DrinkOption, 0, len(top))
	for _, d := range top {
		option := types.DrinkOption{
			Name:        d.Name,
			Calories:    d.Calories,
			Description: d.Description,
			Benefits:    d.Benefits,
			Servings:    d.Servings,
			Tags:        d.Tags.Sorted(),
		}
		if stress > stressAdviceThreshold && d.Tags.Has(types.TagStressRelief) {
			option.Recommendation = d.StressAdvice
		}
		out = append(out, option)
	}
	return out
}
