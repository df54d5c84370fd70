package main

import (
	"fmt"

	"github.com/jonathan/wellness-engine/internal/health"
	"github.com/jonathan/wellness-engine/internal/observability"
	"github.com/jonathan/wellness-engine/internal/schemas"
	"github.com/jonathan/wellness-engine/internal/types"
	"github.com/spf13/cobra"
)

var (
	predictInput  string
	predictOutput string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score health metrics into a risk assessment",
	Long: `Reads a prediction request ({"metrics": {...}, "userProfile": {...}}) and writes a
health prediction with an overall score, risk level, insights and recommendations.`,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVarP(&predictInput, "in", "i", "", "Path to prediction request JSON (- for stdin)")
	predictCmd.Flags().StringVarP(&predictOutput, "out", "o", "", "Path to output prediction JSON (stdout if empty)")

	if err := predictCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	var req types.PredictRequest
	if err := readJSONInput(predictInput, cmd.InOrStdin(), &req); err != nil {
		return err
	}

	prediction, err := health.Predict(req.Metrics, req.UserProfile)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	// Validate against schema (non-fatal)
	if err := schemas.ValidatePrediction(prediction); err != nil {
		appLog.Warn("prediction failed schema validation", "error", err)
	}

	if err := writeJSONOutput(predictOutput, cmd.OutOrStdout(), prediction); err != nil {
		return err
	}

	appLog.Info("prediction complete",
		"score", prediction.OverallHealthScore,
		"risk", string(prediction.RiskLevel),
	)

	if settings.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintPrediction(prediction)
	}
	if predictOutput != "" && predictOutput != "-" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully wrote prediction (score %.1f, risk %s) to %s\n",
			prediction.OverallHealthScore, prediction.RiskLevel, predictOutput)
	}
	return nil
}
