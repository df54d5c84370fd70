// Package catalog holds the authored meal, snack and drink options together
// with the static hydration and advice text. The data is embedded and parsed
// once; callers receive copies and never mutate the shared entries.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/jonathan/wellness-engine/internal/types"
)

//go:embed catalog.yaml
var catalogYAML []byte

// MealSlot identifies one of the three daily meals.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
)

// MealSlots lists the slots in serving order.
var MealSlots = []MealSlot{Breakfast, Lunch, Dinner}

// Meal is an authored meal option. Calories are assigned per plan.
type Meal struct {
	Name          string
	Description   string
	Benefits      string
	Protein       string
	Carbs         string
	Fats          string
	NonVegetarian bool
	Tags          types.TagSet
}

// TagSet returns the derived tags of the meal.
func (m Meal) TagSet() types.TagSet { return m.Tags }

// Snack is an authored snack option.
type Snack struct {
	Name         string
	Calories     int
	Description  string
	Benefits     string
	BestTime     string
	StressAdvice string
	Tags         types.TagSet
}

// TagSet returns the derived tags of the snack.
func (s Snack) TagSet() types.TagSet { return s.Tags }

// Drink is an authored drink option.
type Drink struct {
	Name         string
	Calories     int
	Description  string
	Benefits     string
	Servings     string
	StressAdvice string
	Tags         types.TagSet
}

// TagSet returns the derived tags of the drink.
func (d Drink) TagSet() types.TagSet { return d.Tags }

// Hydration is the static part of a hydration plan.
type Hydration struct {
	ReminderIntervalHours int
	Tips                  []string
	Schedule              []types.HydrationSlot
}

// Advice holds gender and stress guidance lists.
type Advice struct {
	Female           []string
	Male             []string
	StressManagement []string
}

// Catalog is the immutable collection of options and static guidance.
type Catalog struct {
	meals     map[MealSlot][]Meal
	snacks    []Snack
	drinks    []Drink
	hydration Hydration
	advice    Advice
	rules     []keywordRule
	baseline  []string
}

// Meals returns the meals authored for a slot, in catalog order.
func (c *Catalog) Meals(slot MealSlot) []Meal {
	return slices.Clone(c.meals[slot])
}

// Snacks returns all snacks in catalog order.
func (c *Catalog) Snacks() []Snack {
	return slices.Clone(c.snacks)
}

// Drinks returns all drinks in catalog order.
func (c *Catalog) Drinks() []Drink {
	return slices.Clone(c.drinks)
}

// Hydration returns the static hydration guidance.
func (c *Catalog) Hydration() Hydration {
	return Hydration{
		ReminderIntervalHours: c.hydration.ReminderIntervalHours,
		Tips:                  slices.Clone(c.hydration.Tips),
		Schedule:              slices.Clone(c.hydration.Schedule),
	}
}

// Advice returns the gender and stress guidance lists.
func (c *Catalog) Advice() Advice {
	return Advice{
		Female:           slices.Clone(c.advice.Female),
		Male:             slices.Clone(c.advice.Male),
		StressManagement: slices.Clone(c.advice.StressManagement),
	}
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog parsed from the embedded data.
// It panics if the embedded data is malformed.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(catalogYAML)
		if err != nil {
			panic(fmt.Sprintf("failed to load embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
