// Package types provides type definitions for structured data used throughout the brandguard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONMarshaling(t *testing.T) {
	ruleID := "acme_tagline"
	violation := Violation{
		Type:       ViolationRuleFailure,
		Severity:   SeverityError,
		Message:    "Content must include the tagline",
		Suggestion: "revise the content",
		Context:    "acme_tagline",
		Confidence: 1.0,
		RuleID:     &ruleID,
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type": "rule_failure"`)
	assert.Contains(t, string(jsonBytes), `"severity": "error"`)
	assert.Contains(t, string(jsonBytes), `"rule_id": "acme_tagline"`)

	var decoded Violation
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, violation, decoded)
}

func TestViolation_OptionalFieldsOmitted(t *testing.T) {
	violation := Violation{
		Type:     ViolationToneMismatch,
		Severity: SeverityWarning,
		Message:  "tone reads casual",
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "rule_id")
	assert.NotContains(t, string(jsonBytes), "suggestion")
}

func TestViolation_Key(t *testing.T) {
	a := Violation{Type: ViolationRestrictedTerm, Context: "cheap"}
	b := Violation{Type: ViolationRestrictedTerm, Context: "cheap", Message: "different message"}
	c := Violation{Type: ViolationRestrictedTerm, Context: "bargain"}
	d := Violation{Type: ViolationToneMismatch, Context: "cheap"}

	assert.Equal(t, a.Key(), b.Key(), "key ignores the message")
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key(), d.Key())
}
