package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMeta struct {
	Visited []string
}

var testSpecs = []StepSpec{
	{ID: "a", Title: "Step A", Description: "first"},
	{ID: "b", Title: "Step B", Description: "second"},
	{ID: "c", Title: "Step C", Description: "third"},
}

// tickClock returns a clock that advances one second per call.
func tickClock() func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func recordingExecutor(result any) Executor[*testMeta] {
	return func(_ context.Context, step *Step, pc PipelineContext[*testMeta]) (any, error) {
		pc.Metadata.Visited = append(pc.Metadata.Visited, step.ID)
		return result, nil
	}
}

func failingExecutor(msg string) Executor[*testMeta] {
	return func(_ context.Context, step *Step, pc PipelineContext[*testMeta]) (any, error) {
		pc.Metadata.Visited = append(pc.Metadata.Visited, step.ID)
		return nil, errors.New(msg)
	}
}

func newTestOrchestrator(t *testing.T, opts ...Option[*testMeta]) *Orchestrator[*testMeta] {
	t.Helper()
	opts = append([]Option[*testMeta]{WithClock[*testMeta](tickClock())}, opts...)
	o, err := New(testSpecs, &testMeta{}, opts...)
	require.NoError(t, err)
	return o
}

func TestNew_InitialState(t *testing.T) {
	o := newTestOrchestrator(t)
	pc := o.Context()

	require.Len(t, pc.Steps, 3)
	for i, step := range pc.Steps {
		assert.Equal(t, testSpecs[i].ID, step.ID)
		assert.Equal(t, testSpecs[i].Title, step.Title)
		assert.Equal(t, StatusPending, step.Status)
		assert.Nil(t, step.Result)
		assert.Empty(t, step.Error)
	}
	assert.Equal(t, 0, pc.CurrentStepIndex)
	assert.False(t, pc.IsProcessing)
	assert.Empty(t, pc.Metadata.Visited)
	assert.Equal(t, "a", o.CurrentStep().ID)
}

func TestNew_RejectsBadSpecs(t *testing.T) {
	_, err := New([]StepSpec{{ID: "a"}, {ID: "a"}}, 0)
	var dup *DuplicateStepError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.ID)

	_, err = New([]StepSpec{{Title: "no id"}}, 0)
	require.Error(t, err)
}

func TestRunAll_CompletesInOrder(t *testing.T) {
	o := newTestOrchestrator(t)

	err := o.RunAll(context.Background(), recordingExecutor(1), recordingExecutor(2), recordingExecutor(3))
	require.NoError(t, err)

	pc := o.Context()
	for _, step := range pc.Steps {
		assert.Equal(t, StatusCompleted, step.Status)
	}
	assert.Equal(t, len(testSpecs)-1, pc.CurrentStepIndex)
	assert.False(t, pc.IsProcessing)
	assert.Equal(t, []string{"a", "b", "c"}, o.Metadata().Visited)
	assert.True(t, o.Completed())
	assert.Nil(t, o.Failed())

	result, ok := o.StepResult("b")
	assert.True(t, ok)
	assert.Equal(t, 2, result)
}

func TestRunAll_StopsAtFirstError(t *testing.T) {
	o := newTestOrchestrator(t)

	err := o.RunAll(context.Background(), recordingExecutor(1), failingExecutor("boom"), recordingExecutor(3))
	require.NoError(t, err)

	pc := o.Context()
	assert.Equal(t, StatusCompleted, pc.Steps[0].Status)
	assert.Equal(t, StatusError, pc.Steps[1].Status)
	assert.Equal(t, "boom", pc.Steps[1].Error)
	assert.Equal(t, StatusPending, pc.Steps[2].Status)
	assert.Equal(t, 1, pc.CurrentStepIndex)
	assert.Equal(t, []string{"a", "b"}, o.Metadata().Visited)

	failed := o.Failed()
	require.NotNil(t, failed)
	assert.Equal(t, "b", failed.ID)
	assert.False(t, o.Completed())

	_, ok := o.StepResult("b")
	assert.False(t, ok)
}

func TestRunAll_IsIdempotentForCompletedSteps(t *testing.T) {
	o := newTestOrchestrator(t)

	require.NoError(t, o.RunAll(context.Background(), recordingExecutor("first"), failingExecutor("transient")))
	first := *o.Context().Steps[0]

	require.NoError(t, o.RunAll(context.Background(), recordingExecutor("again"), recordingExecutor(2), recordingExecutor(3)))

	pc := o.Context()
	assert.Equal(t, first, *pc.Steps[0])
	assert.Equal(t, "first", pc.Steps[0].Result)
	assert.Equal(t, StatusCompleted, pc.Steps[1].Status)
	assert.Empty(t, pc.Steps[1].Error)
	assert.Equal(t, StatusCompleted, pc.Steps[2].Status)
	assert.Equal(t, []string{"a", "b", "b", "c"}, o.Metadata().Visited)
}

func TestRunAll_NoExecutor(t *testing.T) {
	o := newTestOrchestrator(t)

	err := o.RunAll(context.Background(), recordingExecutor(1))

	var noExec *NoExecutorError
	require.ErrorAs(t, err, &noExec)
	assert.Equal(t, "b", noExec.ID)
	assert.Equal(t, StatusCompleted, o.Context().Steps[0].Status)
	assert.Equal(t, StatusPending, o.Context().Steps[1].Status)
}

func TestRunAll_NilExecutor(t *testing.T) {
	o := newTestOrchestrator(t)

	err := o.RunAll(context.Background(), nil, recordingExecutor(2), recordingExecutor(3))

	var noExec *NoExecutorError
	require.ErrorAs(t, err, &noExec)
	assert.Equal(t, "a", noExec.ID)
}

func TestRunAll_CancelledContext(t *testing.T) {
	o := newTestOrchestrator(t)
	ctx, cancel := context.WithCancel(context.Background())

	cancelling := func(_ context.Context, _ *Step, _ PipelineContext[*testMeta]) (any, error) {
		cancel()
		return "done", nil
	}

	err := o.RunAll(ctx, cancelling, recordingExecutor(2), recordingExecutor(3))

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusCompleted, o.Context().Steps[0].Status)
	assert.Equal(t, StatusPending, o.Context().Steps[1].Status)
}

func TestRunStep_NotFound(t *testing.T) {
	o := newTestOrchestrator(t)

	err := o.RunStep(context.Background(), "missing", recordingExecutor(nil))

	var notFound *StepNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "unknown step: missing", err.Error())
	for _, step := range o.Context().Steps {
		assert.Equal(t, StatusPending, step.Status)
	}
}

func TestRunStep_ReturnsStageError(t *testing.T) {
	o := newTestOrchestrator(t)

	err := o.RunStep(context.Background(), "a", failingExecutor("bad input"))

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "a", stageErr.StepID)
	assert.EqualError(t, errors.Unwrap(err), "bad input")
	assert.Equal(t, 0, o.Context().CurrentStepIndex)
}

func TestRunStep_RecoversPanic(t *testing.T) {
	o := newTestOrchestrator(t)

	panicking := func(_ context.Context, _ *Step, _ PipelineContext[*testMeta]) (any, error) {
		panic("index out of range")
	}
	err := o.RunStep(context.Background(), "a", panicking)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	step := o.Context().Steps[0]
	assert.Equal(t, StatusError, step.Status)
	assert.Equal(t, "panic: index out of range", step.Error)
	assert.False(t, o.Context().IsProcessing)
}

func TestRunStep_RejectsCompletedStep(t *testing.T) {
	o := newTestOrchestrator(t)
	require.NoError(t, o.RunStep(context.Background(), "a", recordingExecutor(1)))

	err := o.RunStep(context.Background(), "a", recordingExecutor(2))

	var done *AlreadyCompletedError
	require.ErrorAs(t, err, &done)
	result, _ := o.StepResult("a")
	assert.Equal(t, 1, result)
}

func TestRunStep_IndexStopsAtLastStep(t *testing.T) {
	o := newTestOrchestrator(t)

	require.NoError(t, o.RunStep(context.Background(), "c", recordingExecutor(nil)))
	require.NoError(t, o.RunStep(context.Background(), "a", recordingExecutor(nil)))
	require.NoError(t, o.RunStep(context.Background(), "b", recordingExecutor(nil)))

	assert.Equal(t, 2, o.Context().CurrentStepIndex)
}

func TestObserver_SeesEveryTransition(t *testing.T) {
	type event struct {
		id         string
		status     Status
		processing bool
	}
	var events []event
	observer := func(step *Step, pc PipelineContext[*testMeta]) {
		events = append(events, event{id: step.ID, status: step.Status, processing: pc.IsProcessing})
	}
	o := newTestOrchestrator(t, WithObserver[*testMeta](observer))

	require.NoError(t, o.RunAll(context.Background(), recordingExecutor(1), failingExecutor("x"), recordingExecutor(3)))

	assert.Equal(t, []event{
		{id: "a", status: StatusProcessing, processing: true},
		{id: "a", status: StatusCompleted, processing: false},
		{id: "b", status: StatusProcessing, processing: true},
		{id: "b", status: StatusError, processing: false},
	}, events)
}

func TestExecutor_SeesProcessingContext(t *testing.T) {
	o := newTestOrchestrator(t)

	var seen PipelineContext[*testMeta]
	exec := func(_ context.Context, step *Step, pc PipelineContext[*testMeta]) (any, error) {
		seen = pc
		assert.Equal(t, StatusProcessing, step.Status)
		return nil, nil
	}
	require.NoError(t, o.RunStep(context.Background(), "a", exec))

	assert.True(t, seen.IsProcessing)
	assert.Equal(t, 0, seen.CurrentStepIndex)
}

func TestTimestamps_AdvanceOnTransition(t *testing.T) {
	o := newTestOrchestrator(t)
	created := o.Context().Steps[0].Timestamp

	require.NoError(t, o.RunStep(context.Background(), "a", recordingExecutor(nil)))

	assert.True(t, o.Context().Steps[0].Timestamp.After(created))
}

func TestContext_IsShallowCopy(t *testing.T) {
	o := newTestOrchestrator(t)

	pc := o.Context()
	pc.Steps[0] = &Step{ID: "replaced"}
	pc.CurrentStepIndex = 2

	fresh := o.Context()
	assert.Equal(t, "a", fresh.Steps[0].ID)
	assert.Equal(t, 0, fresh.CurrentStepIndex)

	fresh.Steps[1].Title = "mutated"
	assert.Equal(t, "mutated", o.Context().Steps[1].Title)
}

func TestMetadata_GetSet(t *testing.T) {
	o := newTestOrchestrator(t)
	o.SetMetadata(&testMeta{Visited: []string{"seed"}})

	assert.Equal(t, []string{"seed"}, o.Metadata().Visited)
	assert.Equal(t, []string{"seed"}, o.Context().Metadata.Visited)
}

func TestCurrentStep_EmptyPipeline(t *testing.T) {
	o, err := New[int](nil, 0)
	require.NoError(t, err)

	assert.Nil(t, o.CurrentStep())
	assert.NoError(t, o.RunAll(context.Background()))
	assert.True(t, o.Completed())
}
