// Package main provides the wellness_agent CLI: health predictions, nutrition
// plans, batch evaluation and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	verboseFlag bool
	logModeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "wellness_agent",
	Short: "Health scoring and nutrition recommendation engine",
	Long: `wellness_agent scores physiological metrics into a health risk assessment and builds
personalized weekly nutrition plans. Run it as a CLI over JSON files or as an HTTP API.

Configuration can be loaded from a JSON file using --config. Environment variables
(PORT, LOG_MODE, CALORIE_STRATEGY) override the file, and flags override both.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if appLog != nil {
			appLog.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print human-readable summaries")
	rootCmd.PersistentFlags().StringVar(&logModeFlag, "log-mode", "", "Log mode: development or production")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
