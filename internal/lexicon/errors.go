package lexicon

import "fmt"

// LoadError represents a failure to read or validate lexicon tables
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("lexicon error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
