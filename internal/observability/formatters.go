// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/wellness-engine/internal/occupation"
	"github.com/jonathan/wellness-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads a line to the box's inner width, counting runes.
func pad(line string) string {
	width := boxWidth - 4
	n := utf8.RuneCountInString(line)
	if n > width {
		runes := []rune(line)
		return string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-n)
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for _, item := range items[:count] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintPrediction outputs a human-readable summary of a health prediction.
func (p *Printer) PrintPrediction(prediction *types.HealthPrediction) {
	if prediction == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.1f / 100\n", prediction.OverallHealthScore))
	sb.WriteString(fmt.Sprintf("Risk:     %s\n", prediction.RiskLevel))
	sb.WriteString("\n")

	writeList(&sb, "Insights", prediction.Insights)
	writeList(&sb, "Recommendations", prediction.Recommendations)
	writeList(&sb, "Areas needing attention", prediction.AreasNeedingAttention)

	p.printBox("HEALTH PREDICTION", sb.String())
}

// PrintNutrition outputs a human-readable summary of nutrition recommendations.
func (p *Printer) PrintNutrition(rec *types.NutritionRecommendations) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Daily target: %d kcal\n", rec.DailyCalorieTarget))
	sb.WriteString("\n")

	sb.WriteString("Weekly plan:\n")
	for _, day := range rec.MealPlans {
		sb.WriteString(fmt.Sprintf("  %s (%d kcal)\n", day.Day, day.TotalCalories))
		sb.WriteString(fmt.Sprintf("    B: %s\n", day.Breakfast.Name))
		sb.WriteString(fmt.Sprintf("    L: %s\n", day.Lunch.Name))
		sb.WriteString(fmt.Sprintf("    D: %s\n", day.Dinner.Name))
	}
	sb.WriteString("\n")

	snacks := make([]string, 0, len(rec.HealthySnacks))
	for _, s := range rec.HealthySnacks {
		snacks = append(snacks, fmt.Sprintf("%s (%d kcal)", s.Name, s.Calories))
	}
	writeList(&sb, "Snacks", snacks)

	drinks := make([]string, 0, len(rec.HealthyDrinks))
	for _, d := range rec.HealthyDrinks {
		drinks = append(drinks, d.Name)
	}
	writeList(&sb, "Drinks", drinks)

	sb.WriteString(fmt.Sprintf("Water: %.1f L (%d glasses), every %dh\n",
		rec.HydrationPlan.DailyTargetLiters,
		rec.HydrationPlan.DailyTargetGlasses,
		rec.HydrationPlan.ReminderIntervalHours))

	if len(rec.OccupationAdvice.StressManagement) > 0 {
		sb.WriteString("\n")
		writeList(&sb, "Stress management", rec.OccupationAdvice.StressManagement)
	}

	p.printBox("NUTRITION PLAN", sb.String())
}

// PrintOccupations lists occupation profiles.
func (p *Printer) PrintOccupations(profiles []occupation.Profile) {
	var sb strings.Builder
	for _, prof := range profiles {
		sb.WriteString(fmt.Sprintf("%-20s %-12s x%.2f\n", prof.Name, prof.ActivityLevel, prof.CalorieMultiplier))
	}
	if len(profiles) == 0 {
		sb.WriteString("(none)\n")
	}
	p.printBox("OCCUPATIONS", sb.String())
}
