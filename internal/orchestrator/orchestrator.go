// Package orchestrator runs an ordered list of steps one at a time, tracking the status,
// result and error of each and reporting every state transition to an observer.
//
// An Orchestrator is owned by a single run and is not safe for concurrent use.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of a step
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Step is the bookkeeping record for one step
type Step struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Result      any       `json:"result,omitempty"`
	Error       string    `json:"error,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// StepSpec declares one step of the pipeline
type StepSpec struct {
	ID          string
	Title       string
	Description string
}

// PipelineContext is the envelope shared across one run. Metadata is typed by the caller.
type PipelineContext[M any] struct {
	Steps            []*Step `json:"steps"`
	CurrentStepIndex int     `json:"current_step_index"`
	IsProcessing     bool    `json:"is_processing"`
	Metadata         M       `json:"metadata"`
}

// Executor performs the work of one step and returns its result
type Executor[M any] func(ctx context.Context, step *Step, pc PipelineContext[M]) (any, error)

// UpdateFunc observes every state transition
type UpdateFunc[M any] func(step *Step, pc PipelineContext[M])

// Option configures an Orchestrator
type Option[M any] func(*Orchestrator[M])

// WithObserver registers a callback invoked on every step transition.
func WithObserver[M any](fn UpdateFunc[M]) Option[M] {
	return func(o *Orchestrator[M]) {
		o.onUpdate = fn
	}
}

// WithClock sets the clock used for step timestamps.
func WithClock[M any](now func() time.Time) Option[M] {
	return func(o *Orchestrator[M]) {
		if now != nil {
			o.now = now
		}
	}
}

// Orchestrator is a sequential step state machine
type Orchestrator[M any] struct {
	steps      []*Step
	current    int
	processing bool
	metadata   M
	onUpdate   UpdateFunc[M]
	now        func() time.Time
}

// New builds an orchestrator with every step pending and the index at zero.
func New[M any](specs []StepSpec, metadata M, opts ...Option[M]) (*Orchestrator[M], error) {
	o := &Orchestrator[M]{metadata: metadata, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	seen := make(map[string]bool, len(specs))
	o.steps = make([]*Step, 0, len(specs))
	for _, spec := range specs {
		if spec.ID == "" {
			return nil, errors.New("step id is required")
		}
		if seen[spec.ID] {
			return nil, &DuplicateStepError{ID: spec.ID}
		}
		seen[spec.ID] = true
		o.steps = append(o.steps, &Step{
			ID:          spec.ID,
			Title:       spec.Title,
			Description: spec.Description,
			Status:      StatusPending,
			Timestamp:   o.now(),
		})
	}
	return o, nil
}

// RunStep executes one step. The step moves to processing, then to completed or error.
// The observer sees the processing transition and, once the step settles, exactly one more
// update. A failed or panicking executor yields a *StageError.
func (o *Orchestrator[M]) RunStep(ctx context.Context, id string, exec Executor[M]) error {
	idx := o.indexOf(id)
	if idx < 0 {
		return &StepNotFoundError{ID: id}
	}
	step := o.steps[idx]
	if step.Status == StatusCompleted {
		return &AlreadyCompletedError{ID: id}
	}

	step.Status = StatusProcessing
	step.Error = ""
	step.Timestamp = o.now()
	o.processing = true
	o.notify(step)

	defer func() {
		o.processing = false
		o.notify(step)
	}()

	result, err := o.execute(ctx, step, exec)
	if err != nil {
		step.Status = StatusError
		step.Error = err.Error()
		step.Timestamp = o.now()
		return &StageError{StepID: id, Cause: err}
	}

	step.Result = result
	step.Status = StatusCompleted
	step.Timestamp = o.now()
	if o.current < len(o.steps)-1 {
		o.current++
	}
	return nil
}

func (o *Orchestrator[M]) execute(ctx context.Context, step *Step, exec Executor[M]) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return exec(ctx, step, o.Context())
}

// RunAll runs the steps in definition order, dispatching executors by position.
// Completed steps are skipped. A stage failure stops the run but is not returned:
// callers inspect Failed. Missing executors and context cancellation are returned.
func (o *Orchestrator[M]) RunAll(ctx context.Context, executors ...Executor[M]) error {
	for i, step := range o.steps {
		if step.Status == StatusCompleted {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if i >= len(executors) || executors[i] == nil {
			return &NoExecutorError{ID: step.ID}
		}
		if err := o.RunStep(ctx, step.ID, executors[i]); err != nil {
			var stageErr *StageError
			if errors.As(err, &stageErr) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Context returns a shallow copy of the envelope. The step pointers are live.
func (o *Orchestrator[M]) Context() PipelineContext[M] {
	steps := make([]*Step, len(o.steps))
	copy(steps, o.steps)
	return PipelineContext[M]{
		Steps:            steps,
		CurrentStepIndex: o.current,
		IsProcessing:     o.processing,
		Metadata:         o.metadata,
	}
}

// CurrentStep returns the step at the current index, or nil for an empty pipeline.
func (o *Orchestrator[M]) CurrentStep() *Step {
	if len(o.steps) == 0 {
		return nil
	}
	return o.steps[o.current]
}

// StepResult returns the stored result of a step.
func (o *Orchestrator[M]) StepResult(id string) (any, bool) {
	idx := o.indexOf(id)
	if idx < 0 || o.steps[idx].Status != StatusCompleted {
		return nil, false
	}
	return o.steps[idx].Result, true
}

// Failed returns the first step in error, or nil.
func (o *Orchestrator[M]) Failed() *Step {
	for _, step := range o.steps {
		if step.Status == StatusError {
			return step
		}
	}
	return nil
}

// Completed reports whether every step has completed.
func (o *Orchestrator[M]) Completed() bool {
	for _, step := range o.steps {
		if step.Status != StatusCompleted {
			return false
		}
	}
	return true
}

// Metadata returns the run-scoped metadata.
func (o *Orchestrator[M]) Metadata() M {
	return o.metadata
}

// SetMetadata replaces the run-scoped metadata.
func (o *Orchestrator[M]) SetMetadata(m M) {
	o.metadata = m
}

func (o *Orchestrator[M]) indexOf(id string) int {
	for i, step := range o.steps {
		if step.ID == id {
			return i
		}
	}
	return -1
}

func (o *Orchestrator[M]) notify(step *Step) {
	if o.onUpdate != nil {
		o.onUpdate(step, o.Context())
	}
}
