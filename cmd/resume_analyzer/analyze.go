package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/orchestrator"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type analyzeFlags struct {
	file      string
	url       string
	text      string
	targetJob string
	lexicon   string
	delayMs   int
	maxBytes  int64
	jsonOut   bool
	verbose   bool
	dump      bool
}

func newAnalyzeCmd(g *globalFlags) *cobra.Command {
	f := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a résumé and print the structured result",
		Long: `Runs the six analysis stages over a résumé read from a file (.txt, .md, .html),
a URL, inline text, or stdin (--file -).

Progress is printed as "Step N/6: <title>..." lines unless --json is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, g, f)
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to résumé file, or - for stdin (mutually exclusive with --url and --text)")
	cmd.Flags().StringVar(&f.url, "url", "", "URL of a résumé page to fetch")
	cmd.Flags().StringVar(&f.text, "text", "", "Résumé text given inline")
	cmd.Flags().StringVarP(&f.targetJob, "target-job", "t", "", "Target job description used to match skills")
	cmd.Flags().StringVar(&f.lexicon, "lexicon", "", "Path to a YAML lexicon override")
	cmd.Flags().IntVar(&f.delayMs, "delay", 0, "Simulated per-stage latency in milliseconds (default from config, 500)")
	cmd.Flags().Int64Var(&f.maxBytes, "max-bytes", 0, "Maximum résumé size in bytes")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Print the result as JSON only")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print the final state of every step")
	cmd.Flags().BoolVar(&f.dump, "dump", false, "Dump the full report for debugging")
	cmd.MarkFlagsMutuallyExclusive("file", "url", "text")

	return cmd
}

func runAnalyze(cmd *cobra.Command, g *globalFlags, f *analyzeFlags) error {
	cfg, err := g.loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("file") {
			cfg.File = f.file
		}
		if cmd.Flags().Changed("url") {
			cfg.URL = f.url
		}
		if cmd.Flags().Changed("text") {
			cfg.File, cfg.URL = "", ""
		}
		if cmd.Flags().Changed("target-job") {
			cfg.TargetJob = f.targetJob
		}
		if cmd.Flags().Changed("lexicon") {
			cfg.LexiconPath = f.lexicon
		}
		if cmd.Flags().Changed("delay") {
			cfg.StageDelayMs = f.delayMs
		}
		if cmd.Flags().Changed("max-bytes") {
			cfg.MaxInputBytes = f.maxBytes
		}
		if cmd.Flags().Changed("json") {
			cfg.JSON = f.jsonOut
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = f.verbose
		}
	})
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	text, meta, err := readInput(cmd, cfg, f, logger)
	if err != nil {
		return err
	}
	logger.Debug("input ingested", "source", meta.Source, "format", meta.Format, "characters", meta.Characters, "hash", meta.Hash)

	out := cmd.OutOrStdout()
	var progress []pipeline.Option
	if !cfg.JSON {
		progress = append(progress, pipeline.WithProgress(progressPrinter(out)))
	}

	analyzer, err := newAnalyzer(cfg, logger, progress...)
	if err != nil {
		return err
	}

	report, err := analyzer.Analyze(cmd.Context(), types.AnalysisRequest{Text: text, TargetJob: cfg.TargetJob})
	printer := observability.NewPrinter(out)
	if err != nil {
		if report != nil && cfg.Verbose && !cfg.JSON {
			printer.PrintSteps(report.Steps)
		}
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.JSON {
		data, err := json.MarshalIndent(report.Result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
	} else {
		_, _ = fmt.Fprintln(out)
		printer.PrintResult(report.Result)
		if cfg.Verbose {
			printer.PrintSteps(report.Steps)
		}
	}
	if f.dump {
		printer.Dump(report)
	}
	return nil
}

// readInput resolves the résumé source: inline text, stdin, a file, or a URL.
func readInput(cmd *cobra.Command, cfg config.Config, f *analyzeFlags, logger *slog.Logger) (string, *ingestion.Metadata, error) {
	switch {
	case cmd.Flags().Changed("text"):
		return ingestion.Ingest(f.text, "inline", ingestion.FormatText)
	case cfg.File == "-":
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), cfg.MaxInputBytes+1))
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		if int64(len(data)) > cfg.MaxInputBytes {
			return "", nil, fmt.Errorf("%w: stdin exceeds %d bytes", ingestion.ErrTooLarge, cfg.MaxInputBytes)
		}
		return ingestion.Ingest(string(data), "stdin", ingestion.FormatText)
	case cfg.File != "":
		return ingestion.IngestFromFile(cfg.File, cfg.MaxInputBytes)
	case cfg.URL != "":
		return ingestion.IngestFromURL(cmd.Context(), cfg.URL, cfg.MaxInputBytes, logger)
	default:
		return "", nil, fmt.Errorf("one of --file, --url or --text must be provided (via flag or config)")
	}
}

// progressPrinter writes one line when a step starts and one when it fails.
func progressPrinter(out io.Writer) pipeline.ProgressCallback {
	return func(event pipeline.ProgressEvent) {
		switch event.Status {
		case orchestrator.StatusProcessing:
			_, _ = fmt.Fprintln(out, event.Message)
		case orchestrator.StatusError:
			_, _ = fmt.Fprintf(out, "  ✗ %s\n", event.Message)
		}
	}
}
