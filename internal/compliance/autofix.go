// Package compliance orchestrates linguistic analysis and rule evaluation.
package compliance

import (
	"regexp"
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

var multiExclaim = regexp.MustCompile(`!{2,}`)

// AutoFix applies best-effort textual remediation for the mechanically
// fixable subset of violations: restricted-term substitution and exclamation
// damping for tone mismatches. Violations it cannot fix are left for a human.
func (v *Validator) AutoFix(content string, violations []types.Violation, brand *types.BrandSnapshot) (*types.AutoFixResult, error) {
	if brand == nil || brand.ID == "" {
		return nil, &InvalidInputError{Message: "brand snapshot is empty"}
	}

	result := &types.AutoFixResult{FixedContent: content}

	needsTermFix := false
	needsToneFix := false
	for _, violation := range violations {
		switch violation.Type {
		case types.ViolationRestrictedTerm:
			needsTermFix = true
		case types.ViolationRuleFailure:
			// Restricted terms surface as rule failures after a full run.
			if violation.RuleID != nil && *violation.RuleID == "brand_restricted_terms" {
				needsTermFix = true
			}
		case types.ViolationToneMismatch:
			needsToneFix = true
		}
	}

	if needsTermFix {
		result.FixedContent = v.fixRestrictedTerms(result.FixedContent, brand, &result.AppliedFixes)
	}
	if needsToneFix {
		result.FixedContent = dampExclamation(result.FixedContent, &result.AppliedFixes)
	}

	return result, nil
}

// fixRestrictedTerms substitutes each restricted term with its configured
// replacement, or removes it when no replacement exists. Matching is
// case-insensitive.
func (v *Validator) fixRestrictedTerms(content string, brand *types.BrandSnapshot, fixes *[]types.AppliedFix) string {
	for _, term := range brand.MessagingFramework.RestrictedTerms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		replacement := brand.MessagingFramework.Replacements[term]

		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
		if err != nil {
			continue
		}
		count := len(re.FindAllStringIndex(content, -1))
		if count == 0 {
			continue
		}
		if replacement == "" {
			content = collapseSpaces(re.ReplaceAllString(content, ""))
		} else {
			content = re.ReplaceAllString(content, replacement)
		}
		*fixes = append(*fixes, types.AppliedFix{
			Type:        types.ViolationRestrictedTerm,
			Original:    term,
			Replacement: replacement,
			Count:       count,
		})
	}
	return content
}

// dampExclamation collapses runs of exclamation marks, the most common
// mechanical cause of an off-voice reading.
func dampExclamation(content string, fixes *[]types.AppliedFix) string {
	count := len(multiExclaim.FindAllString(content, -1))
	if count == 0 {
		return content
	}
	*fixes = append(*fixes, types.AppliedFix{
		Type:        types.ViolationToneMismatch,
		Original:    "!!",
		Replacement: "!",
		Count:       count,
	})
	return multiExclaim.ReplaceAllString(content, "!")
}

var spaceRun = regexp.MustCompile(`  +`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
