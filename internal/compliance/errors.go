// Package compliance orchestrates linguistic analysis and rule evaluation
// into a single compliance verdict for a piece of marketing copy.
package compliance

import (
	"fmt"
	"time"
)

// InvalidInputError represents a request rejected before analysis begins.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// TimeoutError represents a per-request timeout that elapsed before the
// evaluation completed.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("service timeout: evaluation exceeded %s", e.Timeout)
}
