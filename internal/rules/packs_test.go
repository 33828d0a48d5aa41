package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brandguard/internal/types"
)

func TestGlobalRules(t *testing.T) {
	rules, err := GlobalRules()
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	byID := make(map[string]types.Guideline, len(rules))
	for _, g := range rules {
		byID[g.ID] = g
	}

	profanity, ok := byID["global_profanity"]
	require.True(t, ok)
	assert.Equal(t, types.RuleTypeMustNot, profanity.RuleType)
	assert.Equal(t, 100, profanity.Priority)
	assert.Equal(t, types.CategoryContent, profanity.Category)
}

func TestIndustryRules(t *testing.T) {
	tests := []struct {
		industry string
		wantIDs  []string
	}{
		{"healthcare", []string{"healthcare_regulatory_disclosure", "healthcare_cure_claims"}},
		{"finance", []string{"finance_risk_disclosure", "finance_return_guarantees"}},
		{"legal", []string{"legal_outcome_promises", "legal_advertising_notice"}},
	}
	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			rules, err := IndustryRules(tt.industry)
			require.NoError(t, err)

			ids := make([]string, 0, len(rules))
			for _, g := range rules {
				ids = append(ids, g.ID)
			}
			for _, want := range tt.wantIDs {
				assert.Contains(t, ids, want)
			}
		})
	}
}

func TestIndustryRules_Unknown(t *testing.T) {
	rules, err := IndustryRules("aerospace")
	require.NoError(t, err)
	assert.Empty(t, rules)

	rules, err = IndustryRules("")
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestPackRulesAreCopies(t *testing.T) {
	first, err := GlobalRules()
	require.NoError(t, err)
	require.NotEmpty(t, first)
	first[0].Priority = -1

	second, err := GlobalRules()
	require.NoError(t, err)
	assert.NotEqual(t, -1, second[0].Priority, "mutating a returned slice must not affect the pack")
}
