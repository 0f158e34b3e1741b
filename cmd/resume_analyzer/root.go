package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "resume_analyzer",
		Short: "Résumé analysis engine",
		Long: `Résumé analyzer extracts structured entities from free-form résumé text and runs them
through a six-stage pipeline that produces a positive-only professional profile,
skill, experience and education assessments, and highlights.

Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newAnalyzeCmd(g),
		newServeCmd(g),
		newValidateCmd(),
		newStagesCmd(),
	)
	return root
}

// loadConfig merges defaults, the optional config file and explicitly set flags, in that order.
// Flags are applied last so an explicit zero such as --delay 0 is kept.
func (g *globalFlags) loadConfig(cmd *cobra.Command, override func(cfg *config.Config)) (config.Config, error) {
	var cfg config.Config
	if g.configPath != "" {
		loaded, err := config.LoadConfig(g.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = g.logFormat
	}
	if override != nil {
		override(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Logs go to stderr so stdout stays parseable.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat, w)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// newAnalyzer builds an analyzer from configuration, loading a lexicon override when set.
func newAnalyzer(cfg config.Config, logger *slog.Logger, opts ...pipeline.Option) (*pipeline.Analyzer, error) {
	base := []pipeline.Option{
		pipeline.WithStageDelay(cfg.StageDelay()),
		pipeline.WithLogger(logger),
	}
	if cfg.LexiconPath != "" {
		lex, err := lexicon.LoadFile(cfg.LexiconPath)
		if err != nil {
			return nil, err
		}
		base = append(base, pipeline.WithLexicon(lex))
		logger.Debug("loaded lexicon override", "path", cfg.LexiconPath)
	}
	return pipeline.NewAnalyzer(append(base, opts...)...), nil
}
