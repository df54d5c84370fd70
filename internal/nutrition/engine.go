package nutrition

import (
	"fmt"
	"slices"
	"time"

	"github.com/jonathan/wellness-engine/internal/catalog"
	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/jonathan/wellness-engine/internal/types"
)

// Defaults applied to absent request fields.
const (
	DefaultAge         = 30
	DefaultWeight      = 70.0
	DefaultHeight      = 170.0
	DefaultStressLevel = 5.0
	DefaultHeartRate   = 75.0
	DefaultDiet        = types.DietNonVegetarian
	DefaultOccupation  = "Other"
	DefaultGender      = types.GenderOther
)

// Engine generates nutrition recommendations. It holds only read-only
// reference data and is safe for concurrent use.
type Engine struct {
	catalog     *catalog.Catalog
	occupations *occupation.Table
	strategy    CalorieStrategy
	now         func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the embedded option catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithOccupations replaces the embedded occupation table.
func WithOccupations(t *occupation.Table) Option {
	return func(e *Engine) { e.occupations = t }
}

// WithStrategy sets the calorie strategy.
func WithStrategy(s CalorieStrategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithClock sets the clock used to derive the week offset.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine backed by the embedded reference data and the
// age-table calorie strategy unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		strategy: AgeTable{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.occupations == nil {
		e.occupations = occupation.Default()
	}
	return e
}

// Strategy returns the active calorie strategy.
func (e *Engine) Strategy() CalorieStrategy {
	return e.strategy
}

// Generate builds recommendations for the current date.
func (e *Engine) Generate(req types.NutritionRequest) (*types.NutritionRecommendations, error) {
	return e.GenerateAt(req, e.now())
}

// GenerateAt builds recommendations as of date. The ISO week of date rotates
// the weekly meal plan.
func (e *Engine) GenerateAt(req types.NutritionRequest, date time.Time) (*types.NutritionRecommendations, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid nutrition request: %w", err)
	}
	in := resolve(req)

	profile := e.occupations.Lookup(in.occupation)
	group := AgeGroupFor(in.age)
	tags := BuildPreferenceTags(group, profile, in.stress, in.heartRate, in.conditions)

	daily := e.strategy.DailyTarget(CalorieInput{
		Age:        in.age,
		Weight:     in.weight,
		Height:     in.height,
		Gender:     in.gender,
		Occupation: profile,
	})

	_, week := date.ISOWeek()
	plans, err := e.weeklyMealPlan(planInput{
		dailyCalories: daily,
		weekOffset:    week,
		diet:          in.diet,
		tags:          tags,
		hypertension:  slices.Contains(in.conditions, types.ConditionHypertension),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build meal plan: %w", err)
	}

	return &types.NutritionRecommendations{
		DailyCalorieTarget: daily,
		MealPlans:          plans,
		HealthySnacks:      e.healthySnacks(in.diet, in.stress, tags),
		HealthyDrinks:      e.healthyDrinks(in.stress, tags),
		HydrationPlan:      e.hydrationPlan(in.weight, profile),
		OccupationAdvice:   e.occupationAdvice(profile, in.gender, in.stress),
	}, nil
}

type resolved struct {
	occupation string
	gender     string
	age        int
	weight     float64
	height     float64
	stress     float64
	heartRate  float64
	diet       string
	conditions []string
}

func resolve(req types.NutritionRequest) resolved {
	r := resolved{
		occupation: req.Occupation,
		gender:     req.Gender,
		age:        DefaultAge,
		weight:     DefaultWeight,
		height:     DefaultHeight,
		stress:     DefaultStressLevel,
		heartRate:  DefaultHeartRate,
		diet:       req.DietType,
		conditions: req.HealthConditions,
	}
	if r.occupation == "" {
		r.occupation = DefaultOccupation
	}
	if r.gender == "" {
		r.gender = DefaultGender
	}
	if r.diet == "" {
		r.diet = DefaultDiet
	}
	if req.Age != nil {
		r.age = *req.Age
	}
	if req.Weight != nil {
		r.weight = *req.Weight
	}
	if req.Height != nil {
		r.height = *req.Height
	}
	if req.StressLevel != nil {
		r.stress = *req.StressLevel
	}
	if req.HeartRate != nil {
		r.heartRate = *req.HeartRate
	}
	return r
}
