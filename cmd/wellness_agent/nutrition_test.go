package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/wellness-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNutritionJSON(t *testing.T, body string, args ...string) *types.NutritionRecommendations {
	t.Helper()
	in := writeFile(t, "request.json", body)
	stdout, err := executeCommand(t, "", append([]string{"nutrition", "--in", in}, args...)...)
	require.NoError(t, err)

	var rec types.NutritionRecommendations
	require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
	return &rec
}

func TestNutritionCommand_Defaults(t *testing.T) {
	rec := runNutritionJSON(t, `{}`, "--date", "2024-01-01")

	assert.Equal(t, 2000, rec.DailyCalorieTarget)
	assert.Len(t, rec.MealPlans, 7)
	assert.Equal(t, "Monday", rec.MealPlans[0].Day)
	assert.Equal(t, 500, rec.MealPlans[0].Breakfast.Calories)
}

func TestNutritionCommand_DateIsDeterministic(t *testing.T) {
	body := `{"occupation": "nurse", "age": 40, "weight": 70, "stressLevel": 8}`
	a := runNutritionJSON(t, body, "--date", "2024-03-04")
	b := runNutritionJSON(t, body, "--date", "2024-03-06")

	// Same ISO week yields the same plan.
	assert.Equal(t, a, b)
}

func TestNutritionCommand_ConfigStrategy(t *testing.T) {
	cfgPath := writeFile(t, "config.json", `{"calorie_strategy": "harris_benedict", "date": "2024-01-01"}`)
	body := `{"gender": "Male", "age": 30, "weight": 80, "height": 180, "occupation": "Software Engineer"}`

	ageTable := runNutritionJSON(t, body, "--date", "2024-01-01")
	hb := runNutritionJSON(t, body, "--config", cfgPath)

	assert.Equal(t, 2000, ageTable.DailyCalorieTarget)
	assert.Equal(t, 2224, hb.DailyCalorieTarget)
}

func TestNutritionCommand_EnvStrategy(t *testing.T) {
	in := writeFile(t, "request.json", `{"gender": "female", "age": 30, "weight": 60, "height": 165}`)

	stdout, err := executeCommandEnv(t, map[string]string{"CALORIE_STRATEGY": "harris_benedict"}, "",
		"nutrition", "--in", in, "--date", "2024-01-01")
	require.NoError(t, err)
	var rec types.NutritionRecommendations
	require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
	assert.NotEqual(t, 2000, rec.DailyCalorieTarget)

	_, err = executeCommandEnv(t, map[string]string{"CALORIE_STRATEGY": "bogus"}, "", "nutrition", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calorie_strategy")
}

func TestNutritionCommand_WritesOutputFile(t *testing.T) {
	in := writeFile(t, "request.json", `{"dietType": "vegetarian"}`)
	out := filepath.Join(t.TempDir(), "out", "plan.json")

	stdout, err := executeCommand(t, "", "nutrition", "--in", in, "--out", out, "--date", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully wrote nutrition plan (2000 kcal/day)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var rec types.NutritionRecommendations
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Len(t, rec.MealPlans, 7)
}

func TestNutritionCommand_InvalidDate(t *testing.T) {
	in := writeFile(t, "request.json", `{}`)
	_, err := executeCommand(t, "", "nutrition", "--in", in, "--date", "01/02/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--date")
}

func TestNutritionCommand_NegativeWeight(t *testing.T) {
	in := writeFile(t, "request.json", `{"weight": -1}`)
	_, err := executeCommand(t, "", "nutrition", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
}
