// Package rules compiles brand guidelines into evaluable rule sets.
package rules

import "fmt"

// CompileError represents a failure to compile a brand's rule set.
type CompileError struct {
	Message string
	Cause   error
}

func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rule compile error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rule compile error: %s", e.Message)
}

func (e *CompileError) Unwrap() error {
	return e.Cause
}

// RuleError represents a problem with an individual rule definition.
type RuleError struct {
	RuleID  string
	Message string
}

func (e *RuleError) Error() string {
	if e.RuleID != "" {
		return fmt.Sprintf("rule error (%s): %s", e.RuleID, e.Message)
	}
	return fmt.Sprintf("rule error: %s", e.Message)
}
