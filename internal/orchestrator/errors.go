package orchestrator

import "fmt"

// StepNotFoundError is returned when a step id is not part of the pipeline
type StepNotFoundError struct {
	ID string
}

func (e *StepNotFoundError) Error() string {
	return fmt.Sprintf("unknown step: %s", e.ID)
}

// NoExecutorError is returned when RunAll reaches a pending step without an executor
type NoExecutorError struct {
	ID string
}

func (e *NoExecutorError) Error() string {
	return fmt.Sprintf("no executor bound for step: %s", e.ID)
}

// AlreadyCompletedError is returned when RunStep targets a completed step
type AlreadyCompletedError struct {
	ID string
}

func (e *AlreadyCompletedError) Error() string {
	return fmt.Sprintf("step already completed: %s", e.ID)
}

// DuplicateStepError is returned when two step specs share an id
type DuplicateStepError struct {
	ID string
}

func (e *DuplicateStepError) Error() string {
	return fmt.Sprintf("duplicate step id: %s", e.ID)
}

// StageError wraps a failure raised by a step's executor
type StageError struct {
	StepID string
	Cause  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.StepID, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}
