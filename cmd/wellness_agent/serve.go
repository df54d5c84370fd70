package main

import (
	"github.com/jonathan/wellness-engine/internal/server"
	"github.com/jonathan/wellness-engine/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveRateLimit bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing GET /api/health-check, POST /api/predict and
POST /api/nutrition. The port defaults to PORT or 5001.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, PORT or 5001)")
	serveCmd.Flags().BoolVar(&serveRateLimit, "rate-limit", false, "Enable per-client rate limiting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := buildServer(cmd)
	if err != nil {
		return err
	}
	return srv.Start()
}

func buildServer(cmd *cobra.Command) (*server.Server, error) {
	port := settings.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}
	rateLimited := settings.RateLimitEnabled
	if cmd.Flags().Changed("rate-limit") {
		rateLimited = serveRateLimit
	}

	engine, err := newEngine(settings)
	if err != nil {
		return nil, err
	}

	// RATE_LIMIT_ENABLED in the environment overrides the flag and config.
	rl := ratelimit.LoadConfig(rateLimited)

	appLog.Info("configuring server",
		"port", port,
		"rate_limit", rl.Enabled,
		"calorie_strategy", engine.Strategy().Name(),
	)

	return server.New(server.Config{
		Port:      port,
		RateLimit: rl,
		Engine:    engine,
		Logger:    appLog,
	}), nil
}
