package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var (
		port    int
		delayMs int
		lexPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start an HTTP server exposing POST /analyze, POST /analyze/stream (server-sent events),
POST /validate, GET /stages and GET /health.

Rate limits are read from RATE_LIMIT_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig(cmd, func(cfg *config.Config) {
				if cmd.Flags().Changed("port") {
					cfg.Port = port
				}
				if cmd.Flags().Changed("delay") {
					cfg.StageDelayMs = delayMs
				}
				if cmd.Flags().Changed("lexicon") {
					cfg.LexiconPath = lexPath
				}
			})
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			analyzer, err := newAnalyzer(cfg, logger)
			if err != nil {
				return err
			}
			limits, err := ratelimit.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load rate limits: %w", err)
			}

			srv := server.New(server.Config{
				Port:          cfg.Port,
				Analyzer:      analyzer,
				Logger:        logger,
				MaxInputBytes: cfg.MaxInputBytes,
				RateLimit:     limits,
			})
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	cmd.Flags().IntVar(&delayMs, "delay", 0, "Simulated per-stage latency in milliseconds (default from config, 500)")
	cmd.Flags().StringVar(&lexPath, "lexicon", "", "Path to a YAML lexicon override")

	return cmd
}
