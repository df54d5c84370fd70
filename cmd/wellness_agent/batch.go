package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/wellness-engine/internal/health"
	"github.com/jonathan/wellness-engine/internal/nutrition"
	"github.com/jonathan/wellness-engine/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	batchInput   string
	batchOutput  string
	batchDate    string
	batchWorkers int
)

// BatchInput is the batch request file.
type BatchInput struct {
	Predict   []types.PredictRequest   `json:"predict"`
	Nutrition []types.NutritionRequest `json:"nutrition"`
}

// PredictResult is the outcome of one batched prediction.
type PredictResult struct {
	Index      int                     `json:"index"`
	Prediction *types.HealthPrediction `json:"prediction,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// NutritionResult is the outcome of one batched nutrition plan.
type NutritionResult struct {
	Index           int                             `json:"index"`
	Recommendations *types.NutritionRecommendations `json:"recommendations,omitempty"`
	Error           string                          `json:"error,omitempty"`
}

// BatchOutput holds results in input order.
type BatchOutput struct {
	Predict   []PredictResult   `json:"predict"`
	Nutrition []NutritionResult `json:"nutrition"`
	Failed    int               `json:"failed"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate many prediction and nutrition requests concurrently",
	Long: `Reads {"predict": [...], "nutrition": [...]} and evaluates every request on a bounded
worker pool. Results keep input order. A failing request is reported in its result
and does not stop the batch.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "in", "i", "", "Path to batch request JSON (- for stdin)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output batch JSON (stdout if empty)")
	batchCmd.Flags().StringVar(&batchDate, "date", "", "Plan date as YYYY-MM-DD (default: today)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Maximum concurrent evaluations")

	if err := batchCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	var in BatchInput
	if err := readJSONInput(batchInput, cmd.InOrStdin(), &in); err != nil {
		return err
	}

	engine, err := newEngine(settings)
	if err != nil {
		return err
	}
	date, err := planDate(batchDate, settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out, err := evaluateBatch(ctx, engine, in, date, batchWorkers)
	if err != nil {
		return err
	}

	if err := writeJSONOutput(batchOutput, cmd.OutOrStdout(), out); err != nil {
		return err
	}

	appLog.Info("batch complete",
		"predict", len(out.Predict),
		"nutrition", len(out.Nutrition),
		"failed", out.Failed,
	)

	if batchOutput != "" && batchOutput != "-" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully evaluated %d requests (%d failed) to %s\n",
			len(out.Predict)+len(out.Nutrition), out.Failed, batchOutput)
	}
	return nil
}

// evaluateBatch fans the requests out over at most workers goroutines.
// Each goroutine writes only its own result slot.
func evaluateBatch(ctx context.Context, engine *nutrition.Engine, in BatchInput, date time.Time, workers int) (*BatchOutput, error) {
	if workers < 1 {
		workers = 1
	}

	out := &BatchOutput{
		Predict:   make([]PredictResult, len(in.Predict)),
		Nutrition: make([]NutritionResult, len(in.Nutrition)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, req := range in.Predict {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := PredictResult{Index: i}
			prediction, err := health.Predict(req.Metrics, req.UserProfile)
			if err != nil {
				res.Error = err.Error()
			} else {
				res.Prediction = prediction
			}
			out.Predict[i] = res
			return nil
		})
	}

	for i, req := range in.Nutrition {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := NutritionResult{Index: i}
			rec, err := engine.GenerateAt(req, date)
			if err != nil {
				res.Error = err.Error()
			} else {
				res.Recommendations = rec
			}
			out.Nutrition[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	for _, r := range out.Predict {
		if r.Error != "" {
			out.Failed++
		}
	}
	for _, r := range out.Nutrition {
		if r.Error != "" {
			out.Failed++
		}
	}
	return out, nil
}
