package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brandguard/internal/types"
)

func restrictedTermViolation() types.Violation {
	return types.Violation{
		Type:     types.ViolationRestrictedTerm,
		Severity: types.SeverityError,
		Message:  "restricted term present",
		Context:  "cheap",
	}
}

func TestAutoFix_ReplacesRestrictedTerm(t *testing.T) {
	v := NewValidator(Options{})
	result, err := v.AutoFix("Our CHEAP product wins.", []types.Violation{restrictedTermViolation()}, complianceBrand())
	require.NoError(t, err)

	assert.Equal(t, "Our affordable product wins.", result.FixedContent)
	require.Len(t, result.AppliedFixes, 1)
	assert.Equal(t, "cheap", result.AppliedFixes[0].Original)
	assert.Equal(t, "affordable", result.AppliedFixes[0].Replacement)
	assert.Equal(t, 1, result.AppliedFixes[0].Count)
}

func TestAutoFix_RemovesTermWithoutReplacement(t *testing.T) {
	v := NewValidator(Options{})
	brand := complianceBrand()
	brand.MessagingFramework.RestrictedTerms = []string{"synergy"}
	brand.MessagingFramework.Replacements = nil

	result, err := v.AutoFix("Pure synergy drives us.", []types.Violation{restrictedTermViolation()}, brand)
	require.NoError(t, err)

	assert.Equal(t, "Pure drives us.", result.FixedContent)
	require.Len(t, result.AppliedFixes, 1)
	assert.Empty(t, result.AppliedFixes[0].Replacement)
}

func TestAutoFix_RecognizesRuleFailureForRestrictedTerms(t *testing.T) {
	v := NewValidator(Options{})
	ruleID := "brand_restricted_terms"
	violations := []types.Violation{{
		Type:     types.ViolationRuleFailure,
		Severity: types.SeverityError,
		Context:  ruleID,
		RuleID:   &ruleID,
	}}

	result, err := v.AutoFix("A cheap shortcut.", violations, complianceBrand())
	require.NoError(t, err)
	assert.Equal(t, "A affordable shortcut.", result.FixedContent)
}

func TestAutoFix_DampsExclamations(t *testing.T) {
	v := NewValidator(Options{})
	violations := []types.Violation{{
		Type:     types.ViolationToneMismatch,
		Severity: types.SeverityWarning,
	}}

	result, err := v.AutoFix("Built to last!!! Really!!", violations, complianceBrand())
	require.NoError(t, err)

	assert.Equal(t, "Built to last! Really!", result.FixedContent)
	require.Len(t, result.AppliedFixes, 1)
	assert.Equal(t, 2, result.AppliedFixes[0].Count)
}

func TestAutoFix_CleanContentUnchanged(t *testing.T) {
	v := NewValidator(Options{})
	content := "Everything we make is built to last."

	result, err := v.AutoFix(content, nil, complianceBrand())
	require.NoError(t, err)
	assert.Equal(t, content, result.FixedContent)
	assert.Empty(t, result.AppliedFixes)

	// Fixing already-fixed content is a no-op.
	again, err := v.AutoFix(result.FixedContent, []types.Violation{restrictedTermViolation()}, complianceBrand())
	require.NoError(t, err)
	assert.Equal(t, content, again.FixedContent)
	assert.Empty(t, again.AppliedFixes)
}

func TestAutoFix_EmptyBrand(t *testing.T) {
	v := NewValidator(Options{})
	_, err := v.AutoFix("anything", nil, nil)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}
