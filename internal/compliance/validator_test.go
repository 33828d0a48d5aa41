package compliance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brandguard/internal/rules"
	"github.com/jonathan/brandguard/internal/types"
)

func complianceBrand() *types.BrandSnapshot {
	return &types.BrandSnapshot{
		ID:   "acme",
		Name: "Acme",
		Guidelines: []types.Guideline{
			{
				ID:       "acme_tagline",
				Category: types.CategoryContent,
				RuleType: types.RuleTypeMust,
				Priority: 10,
				Content:  `Content must include the tagline "built to last"`,
			},
		},
		MessagingFramework: types.MessagingFramework{
			KeyMessages:     []string{"built to last"},
			RestrictedTerms: []string{"cheap"},
			Replacements:    map[string]string{"cheap": "affordable"},
		},
	}
}

func boolPtr(b bool) *bool { return &b }

func TestValidateContent_Compliant(t *testing.T) {
	v := NewValidator(Options{})
	result, err := v.ValidateContent(context.Background(), "Everything we make is built to last.", complianceBrand(), nil)
	require.NoError(t, err)

	assert.True(t, result.IsCompliant)
	assert.Greater(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
	assert.Equal(t, EngineVersion, result.Processing.EngineVersion)
	assert.False(t, result.Processing.CacheHit)
	require.NotNil(t, result.Features, "the analyzed feature bundle rides on the result")
	assert.Greater(t, result.Features.Readability.TotalWords, 0)
}

func TestValidateContent_RestrictedTermFails(t *testing.T) {
	v := NewValidator(Options{})
	result, err := v.ValidateContent(context.Background(), "Our cheap product is built to last.", complianceBrand(), nil)
	require.NoError(t, err)

	assert.False(t, result.IsCompliant)
	found := false
	for _, violation := range result.Violations {
		if violation.RuleID != nil && *violation.RuleID == "brand_restricted_terms" {
			found = true
			assert.Equal(t, types.SeverityError, violation.Severity)
		}
	}
	assert.True(t, found, "restricted-term failure must surface as a violation")
}

func TestValidateContent_CompliantIffNoFailures(t *testing.T) {
	v := NewValidator(Options{})
	for _, content := range []string{
		"Everything we make is built to last.",
		"Our cheap product is built to last.",
		"Nothing relevant here.",
	} {
		result, err := v.ValidateContent(context.Background(), content, complianceBrand(), nil)
		require.NoError(t, err)

		hasError := false
		for _, violation := range result.Violations {
			if violation.Severity == types.SeverityError {
				hasError = true
			}
		}
		assert.Equal(t, !hasError, result.IsCompliant, "content: %s", content)
	}
}

func TestValidateContent_EmptyBrand(t *testing.T) {
	v := NewValidator(Options{})

	_, err := v.ValidateContent(context.Background(), "anything", nil, nil)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)

	_, err = v.ValidateContent(context.Background(), "anything", &types.BrandSnapshot{}, nil)
	require.ErrorAs(t, err, &invalid)
}

func TestValidateContent_CacheHit(t *testing.T) {
	v := NewValidator(Options{})
	content := "Everything we make is built to last."

	first, err := v.ValidateContent(context.Background(), content, complianceBrand(), nil)
	require.NoError(t, err)
	require.False(t, first.Processing.CacheHit)

	second, err := v.ValidateContent(context.Background(), content, complianceBrand(), nil)
	require.NoError(t, err)
	assert.True(t, second.Processing.CacheHit)
	assert.Equal(t, first.IsCompliant, second.IsCompliant)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Violations, second.Violations)
}

func TestValidateContent_ConfigDisablesRestrictedTerms(t *testing.T) {
	v := NewValidator(Options{})
	cfg := &types.ComplianceConfig{CheckRestrictedTerms: boolPtr(false)}

	result, err := v.ValidateContent(context.Background(), "Our cheap product is built to last.", complianceBrand(), cfg)
	require.NoError(t, err)

	for _, violation := range result.Violations {
		if violation.RuleID != nil {
			assert.NotEqual(t, "brand_restricted_terms", *violation.RuleID)
		}
	}
	assert.True(t, result.IsCompliant)
}

func TestValidateContent_Timeout(t *testing.T) {
	v := NewValidator(Options{DisableResultCache: true})
	err := v.AddDynamicRule(rules.DynamicRule{
		Guideline: types.Guideline{
			ID: "slow", Category: types.CategoryContent,
			RuleType: types.RuleTypeShould, Priority: 1,
			Content: "A slow rule",
		},
		Evaluate: func(string, *types.FeatureBundle, rules.Context) rules.Outcome {
			time.Sleep(500 * time.Millisecond)
			return rules.Outcome{Status: rules.StatusPass}
		},
	})
	require.NoError(t, err)

	cfg := &types.ComplianceConfig{Timeout: 20 * time.Millisecond}
	_, err = v.ValidateContent(context.Background(), "built to last", complianceBrand(), cfg)

	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, cfg.Timeout, timeout.Timeout)
}

func TestValidateContent_CanceledContextIsNotATimeout(t *testing.T) {
	v := NewValidator(Options{DisableResultCache: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := v.ValidateContent(ctx, "Everything we make is built to last.", complianceBrand(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var timeout *TimeoutError
	assert.False(t, errors.As(err, &timeout), "caller cancellation must not be reported as a timeout")
}

func TestAddDynamicRule_InvalidatesCachedResults(t *testing.T) {
	v := NewValidator(Options{})
	content := "Everything we make is built to last."

	first, err := v.ValidateContent(context.Background(), content, complianceBrand(), nil)
	require.NoError(t, err)
	require.True(t, first.IsCompliant)

	err = v.AddDynamicRule(rules.DynamicRule{
		Guideline: types.Guideline{
			ID: "always_fail", Category: types.CategoryContent,
			RuleType: types.RuleTypeMust, Priority: 5,
			Content: "A rule that always fails",
		},
		Evaluate: func(string, *types.FeatureBundle, rules.Context) rules.Outcome {
			return rules.Outcome{Status: rules.StatusFail, Detail: "always"}
		},
	})
	require.NoError(t, err)

	second, err := v.ValidateContent(context.Background(), content, complianceBrand(), nil)
	require.NoError(t, err)
	assert.False(t, second.Processing.CacheHit, "adding a rule must invalidate cached results")
	assert.False(t, second.IsCompliant)
}

func TestAddDynamicRule_Validation(t *testing.T) {
	v := NewValidator(Options{})

	err := v.AddDynamicRule(rules.DynamicRule{})
	var invalid *InvalidInputError
	assert.True(t, errors.As(err, &invalid))

	err = v.AddDynamicRule(rules.DynamicRule{
		Guideline: types.Guideline{ID: "no_eval", RuleType: types.RuleTypeMust, Content: "x"},
	})
	assert.True(t, errors.As(err, &invalid))
}

func TestConfigHash_DistinguishesOptions(t *testing.T) {
	base := &types.ComplianceConfig{}
	noTerms := &types.ComplianceConfig{CheckRestrictedTerms: boolPtr(false)}

	assert.NotEqual(t, configHash(base), configHash(noTerms))
	assert.Equal(t, configHash(base), configHash(&types.ComplianceConfig{}))
}
