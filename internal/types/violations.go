// Package types provides type definitions for structured data used throughout the brandguard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Well-known violation types emitted by the analyzer and rule engine.
const (
	ViolationToneMismatch        = "tone_mismatch"
	ViolationReadabilityMismatch = "readability_mismatch"
	ViolationKeyMessageAbsence   = "key_message_absence"
	ViolationRestrictedTerm      = "restricted_term"
	ViolationRuleFailure         = "rule_failure"
)

// Violation represents a single compliance failure or advisory finding.
type Violation struct {
	Type       string  `json:"type"`
	Severity   string  `json:"severity"`
	Message    string  `json:"message"`
	Suggestion string  `json:"suggestion,omitempty"`
	Context    string  `json:"context,omitempty"` // offending fragment, rule id, or category
	Confidence float64 `json:"confidence,omitempty"`

	// RuleID is set when the violation came from a compiled guideline rule.
	RuleID *string `json:"rule_id,omitempty"`
}

// Key identifies a violation for de-duplication when analyzer and rule-engine
// findings are merged.
func (v *Violation) Key() string {
	return v.Type + "\x00" + v.Context
}
