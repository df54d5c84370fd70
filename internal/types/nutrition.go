// Package types provides type definitions for structured data used throughout the wellness engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Recognized enum-like values. Anything else falls back to defaults.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"

	DietVegetarian    = "Vegetarian"
	DietVegan         = "Vegan"
	DietNonVegetarian = "Non-Vegetarian"
	DietPescatarian   = "Pescatarian"

	ConditionDiabetes     = "Diabetes"
	ConditionHypertension = "Hypertension"
)

// NutritionRequest carries the profile and metric fields the nutrition engine
// consumes. Absent fields are replaced with documented defaults.
type NutritionRequest struct {
	Occupation       string   `json:"occupation,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	Age              *int     `json:"age,omitempty"`
	Weight           *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Height           *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`
	StressLevel      *float64 `json:"stressLevel,omitempty"`
	HeartRate        *float64 `json:"heartRate,omitempty"`
	DietType         string   `json:"dietType,omitempty"`
	HealthConditions []string `json:"healthConditions,omitempty"`
}

// MealOption is a single meal chosen for a day slot.
type MealOption struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Description string   `json:"description"`
	Benefits    string   `json:"benefits"`
	Protein     string   `json:"protein"`
	Carbs       string   `json:"carbs"`
	Fats        string   `json:"fats"`
	Tags        []string `json:"tags,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// SnackOption is a ranked snack suggestion.
type SnackOption struct {
	Name           string   `json:"name"`
	Calories       int      `json:"calories"`
	Description    string   `json:"description"`
	Benefits       string   `json:"benefits"`
	BestTime       string   `json:"bestTime,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// DrinkOption is a ranked drink suggestion.
type DrinkOption struct {
	Name           string   `json:"name"`
	Calories       int      `json:"calories"`
	Description    string   `json:"description"`
	Benefits       string   `json:"benefits"`
	Servings       string   `json:"servings,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// DayPlan holds the three meals for one weekday.
type DayPlan struct {
	Day           string     `json:"day"`
	Breakfast     MealOption `json:"breakfast"`
	Lunch         MealOption `json:"lunch"`
	Dinner        MealOption `json:"dinner"`
	TotalCalories int        `json:"totalCalories"`
}

// HydrationSlot is one entry of the daily drinking schedule.
type HydrationSlot struct {
	Time   string `json:"time"`
	Amount string `json:"amount"`
	Note   string `json:"note"`
}

// HydrationPlan describes daily water intake targets.
type HydrationPlan struct {
	DailyTargetLiters     float64         `json:"dailyTargetLiters"`
	DailyTargetGlasses    int             `json:"dailyTargetGlasses"`
	ReminderIntervalHours int             `json:"reminderIntervalHours"`
	Tips                  []string        `json:"tips"`
	Schedule              []HydrationSlot `json:"schedule"`
}

// OccupationAdvice bundles occupation, gender and stress guidance.
type OccupationAdvice struct {
	OccupationConcerns   []string `json:"occupationConcerns"`
	Recommendations      []string `json:"recommendations"`
	GenderSpecificAdvice []string `json:"genderSpecificAdvice"`
	StressManagement     []string `json:"stressManagement,omitempty"`
}

// NutritionRecommendations is the full nutrition output bundle.
type NutritionRecommendations struct {
	DailyCalorieTarget int              `json:"dailyCalorieTarget"`
	MealPlans          []DayPlan        `json:"mealPlans"`
	HealthySnacks      []SnackOption    `json:"healthySnacks"`
	HealthyDrinks      []DrinkOption    `json:"healthyDrinks"`
	HydrationPlan      HydrationPlan    `json:"hydrationPlan"`
	OccupationAdvice   OccupationAdvice `json:"occupationAdvice"`
}
