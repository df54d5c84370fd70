package catalog

import (
	"fmt"

	"github.com/jonathan/wellness-engine/internal/types"
	"gopkg.in/yaml.v3"
)

type mealEntry struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Benefits      string   `yaml:"benefits"`
	Protein       string   `yaml:"protein"`
	Carbs         string   `yaml:"carbs"`
	Fats          string   `yaml:"fats"`
	NonVegetarian bool     `yaml:"non_vegetarian"`
	Tags          []string `yaml:"tags"`
}

type snackEntry struct {
	Name         string   `yaml:"name"`
	Calories     int      `yaml:"calories"`
	Description  string   `yaml:"description"`
	Benefits     string   `yaml:"benefits"`
	BestTime     string   `yaml:"best_time"`
	StressAdvice string   `yaml:"stress_advice"`
	Tags         []string `yaml:"tags"`
}

type drinkEntry struct {
	Name         string   `yaml:"name"`
	Calories     int      `yaml:"calories"`
	Description  string   `yaml:"description"`
	Benefits     string   `yaml:"benefits"`
	Servings     string   `yaml:"servings"`
	StressAdvice string   `yaml:"stress_advice"`
	Tags         []string `yaml:"tags"`
}

type catalogFile struct {
	BaselineTags []string                 `yaml:"baseline_tags"`
	KeywordTags  []keywordRule            `yaml:"keyword_tags"`
	Meals        map[MealSlot][]mealEntry `yaml:"meals"`
	Snacks       []snackEntry             `yaml:"snacks"`
	Drinks       []drinkEntry             `yaml:"drinks"`
	Hydration    struct {
		ReminderIntervalHours int                   `yaml:"reminder_interval_hours"`
		Tips                  []string              `yaml:"tips"`
		Schedule              []types.HydrationSlot `yaml:"schedule"`
	} `yaml:"hydration"`
	Advice struct {
		Female           []string `yaml:"female"`
		Male             []string `yaml:"male"`
		StressManagement []string `yaml:"stress_management"`
	} `yaml:"advice"`
}

// Parse builds a Catalog from YAML data. Each option's tag set is the union
// of the baseline tags, tags inferred from its name and its authored tags.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	c := &Catalog{
		meals:    make(map[MealSlot][]Meal, len(MealSlots)),
		rules:    file.KeywordTags,
		baseline: file.BaselineTags,
		hydration: Hydration{
			ReminderIntervalHours: file.Hydration.ReminderIntervalHours,
			Tips:                  file.Hydration.Tips,
			Schedule:              file.Hydration.Schedule,
		},
		advice: Advice{
			Female:           file.Advice.Female,
			Male:             file.Advice.Male,
			StressManagement: file.Advice.StressManagement,
		},
	}

	for _, rule := range c.rules {
		if rule.Tag == "" || len(rule.Keywords) == 0 {
			return nil, &LoadError{Message: "keyword rule needs a tag and at least one keyword"}
		}
	}

	for _, slot := range MealSlots {
		entries := file.Meals[slot]
		if len(entries) == 0 {
			return nil, &LoadError{Message: fmt.Sprintf("no %s meals defined", slot)}
		}
		vegetarian := 0
		meals := make([]Meal, 0, len(entries))
		for _, e := range entries {
			if e.Name == "" {
				return nil, &LoadError{Message: fmt.Sprintf("%s meal with empty name", slot)}
			}
			if !e.NonVegetarian {
				vegetarian++
			}
			meals = append(meals, Meal{
				Name:          e.Name,
				Description:   e.Description,
				Benefits:      e.Benefits,
				Protein:       e.Protein,
				Carbs:         e.Carbs,
				Fats:          e.Fats,
				NonVegetarian: e.NonVegetarian,
				Tags:          c.deriveTags(e.Name, e.Tags),
			})
		}
		if vegetarian == 0 {
			return nil, &LoadError{Message: fmt.Sprintf("no vegetarian %s meals defined", slot)}
		}
		c.meals[slot] = meals
	}

	for _, e := range file.Snacks {
		if e.Name == "" {
			return nil, &LoadError{Message: "snack with empty name"}
		}
		c.snacks = append(c.snacks, Snack{
			Name:         e.Name,
			Calories:     e.Calories,
			Description:  e.Description,
			Benefits:     e.Benefits,
			BestTime:     e.BestTime,
			StressAdvice: e.StressAdvice,
			Tags:         c.deriveTags(e.Name, e.Tags),
		})
	}

	for _, e := range file.Drinks {
		if e.Name == "" {
			return nil, &LoadError{Message: "drink with empty name"}
		}
		c.drinks = append(c.drinks, Drink{
			Name:         e.Name,
			Calories:     e.Calories,
			Description:  e.Description,
			Benefits:     e.Benefits,
			Servings:     e.Servings,
			StressAdvice: e.StressAdvice,
			Tags:         c.deriveTags(e.Name, e.Tags),
		})
	}

	return c, nil
}

func (c *Catalog) deriveTags(name string, authored []string) types.TagSet {
	tags := types.NewTagSet(c.baseline...)
	for t := range c.InferTags(name) {
		tags.Add(t)
	}
	tags.Add(authored...)
	return tags
}
