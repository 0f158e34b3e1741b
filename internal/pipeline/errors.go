package pipeline

import (
	"fmt"
	"strings"
)

// RequestError is returned when the analysis request is rejected before any stage runs
type RequestError struct {
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid analysis request: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid analysis request: %s", e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// AnalysisError is returned when a stage ended in error. No result is assembled.
type AnalysisError struct {
	RunID   string
	StepID  string
	Message string
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis %s failed at step %s: %s", e.RunID, e.StepID, e.Message)
}

// AssemblyError is returned when a stage result needed by the final result is missing
type AssemblyError struct {
	Missing []string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("cannot assemble result, missing stage results: %s", strings.Join(e.Missing, ", "))
}
