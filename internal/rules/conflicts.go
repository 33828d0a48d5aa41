// Package rules compiles brand guidelines into evaluable rule sets.
package rules

import (
	"fmt"

	"github.com/jonathan/brandguard/internal/types"
)

// detectConflicts scans each category for pairs of rules with contradictory
// obligations on an overlapping subject: one positive (must/should) and one
// negative (must_not/dont). Resolution policy: higher priority wins; at equal
// priority the positive obligation is authoritative, and the conflict is
// still reported for visibility.
func detectConflicts(rs *RuleSet) []types.RuleConflict {
	var conflicts []types.RuleConflict

	for _, category := range rs.CategoryNames() {
		list := rs.Categories[category]
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				a, b := list[i], list[j]
				if c := conflictBetween(category, a, b); c != nil {
					conflicts = append(conflicts, *c)
				}
			}
		}
	}
	return conflicts
}

func conflictBetween(category string, a, b *CompiledRule) *types.RuleConflict {
	ga, gb := a.Guideline, b.Guideline
	if isPositive(ga.RuleType) == isPositive(gb.RuleType) {
		return nil
	}

	subject := sharedSubject(ga, gb)
	if subject == "" {
		return nil
	}

	// The category list is priority-sorted, so a never has lower priority
	// than b. Higher priority wins; at a tie the must rule wins.
	resolution := ga.ID
	reason := "higher priority wins"
	if ga.Priority == gb.Priority {
		reason = "equal priority resolves to the positive obligation"
		if isPositive(gb.RuleType) {
			resolution = gb.ID
		}
	}

	return &types.RuleConflict{
		RuleA:      ga.ID,
		RuleB:      gb.ID,
		Category:   category,
		Subject:    subject,
		Resolution: resolution,
		Reason:     fmt.Sprintf("%s (%s) contradicts %s (%s): %s", ga.ID, ga.RuleType, gb.ID, gb.RuleType, reason),
	}
}

// sharedSubject returns a subject term both guidelines reference, or "".
func sharedSubject(a, b types.Guideline) string {
	termsA := subjectTerms(a)
	termsB := make(map[string]bool)
	for _, t := range subjectTerms(b) {
		termsB[t] = true
	}
	for _, t := range termsA {
		if termsB[t] {
			return t
		}
	}
	return ""
}

func isPositive(ruleType string) bool {
	return ruleType == types.RuleTypeMust || ruleType == types.RuleTypeShould
}
