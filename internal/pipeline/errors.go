package pipeline

import "fmt"

// StepError reports which step of a run failed.
type StepError struct {
	Step string
	Err  error
}

// Error implements error.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap returns the step's own error.
func (e *StepError) Unwrap() error {
	return e.Err
}
