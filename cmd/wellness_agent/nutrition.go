package main

import (
	"fmt"

	"github.com/jonathan/wellness-engine/internal/observability"
	"github.com/jonathan/wellness-engine/internal/schemas"
	"github.com/jonathan/wellness-engine/internal/types"
	"github.com/spf13/cobra"
)

var (
	nutritionInput  string
	nutritionOutput string
	nutritionDate   string
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Build a weekly nutrition plan",
	Long: `Reads a nutrition request (occupation, gender, age, weight, height, stressLevel,
heartRate, dietType, healthConditions) and writes a calorie target, a seven day meal
plan, snacks, drinks, a hydration plan and occupation advice.

The plan rotates weekly. Use --date (or "date" in the config file) to pin the week.`,
	RunE: runNutrition,
}

func init() {
	nutritionCmd.Flags().StringVarP(&nutritionInput, "in", "i", "", "Path to nutrition request JSON (- for stdin)")
	nutritionCmd.Flags().StringVarP(&nutritionOutput, "out", "o", "", "Path to output recommendations JSON (stdout if empty)")
	nutritionCmd.Flags().StringVar(&nutritionDate, "date", "", "Plan date as YYYY-MM-DD (default: today)")

	if err := nutritionCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(nutritionCmd)
}

func runNutrition(cmd *cobra.Command, _ []string) error {
	var req types.NutritionRequest
	if err := readJSONInput(nutritionInput, cmd.InOrStdin(), &req); err != nil {
		return err
	}

	engine, err := newEngine(settings)
	if err != nil {
		return err
	}
	date, err := planDate(nutritionDate, settings)
	if err != nil {
		return err
	}

	rec, err := engine.GenerateAt(req, date)
	if err != nil {
		return fmt.Errorf("nutrition plan failed: %w", err)
	}

	// Validate against schema (non-fatal)
	if err := schemas.ValidateNutrition(rec); err != nil {
		appLog.Warn("nutrition plan failed schema validation", "error", err)
	}

	if err := writeJSONOutput(nutritionOutput, cmd.OutOrStdout(), rec); err != nil {
		return err
	}

	appLog.Info("nutrition plan complete",
		"calories", rec.DailyCalorieTarget,
		"strategy", engine.Strategy().Name(),
		"date", date.Format("2006-01-02"),
	)

	if settings.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintNutrition(rec)
	}
	if nutritionOutput != "" && nutritionOutput != "-" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully wrote nutrition plan (%d kcal/day) to %s\n",
			rec.DailyCalorieTarget, nutritionOutput)
	}
	return nil
}
