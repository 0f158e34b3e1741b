// Package pipeline provides the high-level orchestration for the résumé analysis process.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/language"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/orchestrator"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/pipeline/steps"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultStageDelay is the simulated inference latency applied before each stage
const DefaultStageDelay = 500 * time.Millisecond

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string              `json:"step"`
	Title   string              `json:"title"`
	Status  orchestrator.Status `json:"status"`
	Index   int                 `json:"index"`
	Total   int                 `json:"total"`
	Message string              `json:"message"`
	RunID   string              `json:"run_id,omitempty"`
	Content any                 `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Report is the outcome of one run: the result on success plus a snapshot of every step
type Report struct {
	RunID  string                      `json:"run_id"`
	Result *types.ResumeAnalysisResult `json:"result,omitempty"`
	Steps  []orchestrator.Step         `json:"steps"`
}

// Analyzer wires the stage executors into an orchestrator for each run.
// It holds no per-run state and is safe for concurrent use.
type Analyzer struct {
	lex        *lexicon.Lexicon
	hook       steps.InferenceHook
	now        func() time.Time
	onProgress ProgressCallback
	logger     *slog.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLexicon replaces the embedded keyword tables.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(a *Analyzer) {
		if lex != nil {
			a.lex = lex
		}
	}
}

// WithInferenceHook replaces the per-stage delay hook.
func WithInferenceHook(hook steps.InferenceHook) Option {
	return func(a *Analyzer) {
		if hook != nil {
			a.hook = hook
		}
	}
}

// WithStageDelay sets a fixed latency before each stage. Zero disables it.
func WithStageDelay(d time.Duration) Option {
	return WithInferenceHook(steps.Delay(d))
}

// WithClock sets the clock used for dates and step timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// WithProgress registers a callback for every step transition.
func WithProgress(fn ProgressCallback) Option {
	return func(a *Analyzer) {
		a.onProgress = fn
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an analyzer with the embedded lexicon and the default stage delay.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		lex:    lexicon.Default(),
		hook:   steps.Delay(DefaultStageDelay),
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// With returns a copy of the analyzer with extra options applied. The receiver is not modified.
func (a *Analyzer) With(opts ...Option) *Analyzer {
	clone := *a
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Lexicon returns the keyword tables in use.
func (a *Analyzer) Lexicon() *lexicon.Lexicon {
	return a.lex
}

// Analyze runs all six stages over the request text. A stage failure returns an
// *AnalysisError together with the report, whose Result is nil.
func (a *Analyzer) Analyze(ctx context.Context, req types.AnalysisRequest) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, &RequestError{Message: "request failed validation", Cause: err}
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, &RequestError{Message: "text is blank"}
	}

	runID := uuid.New().String()
	rc := &steps.RunContext{
		RunID:     runID,
		RawText:   req.Text,
		Language:  language.Detect(req.Text),
		TargetJob: req.TargetJob,
		Now:       a.now(),
	}

	orch, err := orchestrator.New(steps.Specs(), rc,
		orchestrator.WithClock[*steps.RunContext](a.now),
		orchestrator.WithObserver(a.observer(runID)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}

	logger := a.logger.With("run_id", runID)
	logger.Info("analysis started", "language", rc.Language, "chars", len([]rune(req.Text)))
	start := time.Now()

	parser := parsing.NewParser(a.lex, parsing.WithClock(func() time.Time { return rc.Now }))
	stages := steps.NewStages(parser, a.lex, a.hook)

	report := &Report{RunID: runID}
	runErr := orch.RunAll(ctx, stages.Executors()...)
	report.Steps = snapshot(orch.Context().Steps)
	if runErr != nil {
		logger.Warn("analysis aborted", "error", runErr)
		return report, runErr
	}

	if failed := orch.Failed(); failed != nil {
		logger.Warn("analysis failed", "step", failed.ID, "error", failed.Error)
		return report, &AnalysisError{RunID: runID, StepID: failed.ID, Message: failed.Error}
	}

	result, err := Assemble(rc)
	if err != nil {
		return report, err
	}
	if err := schemas.ValidateResult(result); err != nil {
		return report, fmt.Errorf("assembled result failed schema validation: %w", err)
	}

	report.Result = result
	logger.Info("analysis completed",
		"ai_tag", result.ProfessionalProfile.AITag,
		"years", result.ProfessionalProfile.YearsOfExperience,
		"duration", time.Since(start))
	return report, nil
}

// Assemble builds the final result from the stage outputs held by the run context.
func Assemble(rc *steps.RunContext) (*types.ResumeAnalysisResult, error) {
	var missing []string
	for _, def := range steps.StepRegistry[1:] {
		if !rc.Has(def.Name) {
			missing = append(missing, def.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &AssemblyError{Missing: missing}
	}

	return &types.ResumeAnalysisResult{
		ProfessionalProfile:  *rc.Profile,
		SkillAssessment:      *rc.Skills,
		ExperienceAssessment: *rc.Experience,
		EducationAssessment:  *rc.Education,
		OverallAssessment:    *rc.Overall,
		Language:             rc.Language,
	}, nil
}

// observer logs each step transition and forwards it as a progress event.
func (a *Analyzer) observer(runID string) orchestrator.UpdateFunc[*steps.RunContext] {
	return func(step *orchestrator.Step, pc orchestrator.PipelineContext[*steps.RunContext]) {
		a.logger.Debug("step transition", "run_id", runID, "step", step.ID, "status", step.Status)
		if a.onProgress == nil {
			return
		}

		index := 0
		for i, s := range pc.Steps {
			if s.ID == step.ID {
				index = i
				break
			}
		}
		total := len(pc.Steps)

		event := ProgressEvent{
			Step:   step.ID,
			Title:  step.Title,
			Status: step.Status,
			Index:  index,
			Total:  total,
			RunID:  runID,
		}
		switch step.Status {
		case orchestrator.StatusProcessing:
			event.Message = fmt.Sprintf("Step %d/%d: %s...", index+1, total, step.Title)
		case orchestrator.StatusCompleted:
			event.Message = fmt.Sprintf("Completed %s", step.Title)
			event.Content = step.Result
		case orchestrator.StatusError:
			event.Message = fmt.Sprintf("%s failed: %s", step.Title, step.Error)
		default:
			event.Message = step.Title
		}
		a.onProgress(event)
	}
}

// snapshot copies the step records so callers cannot mutate the run.
func snapshot(live []*orchestrator.Step) []orchestrator.Step {
	out := make([]orchestrator.Step, 0, len(live))
	for _, s := range live {
		out = append(out, *s)
	}
	return out
}
