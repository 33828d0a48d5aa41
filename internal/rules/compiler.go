// Package rules compiles brand guidelines into evaluable rule sets.
package rules

import (
	"sort"

	"github.com/jonathan/brandguard/internal/types"
)

// RuleSet is the compiled, conflict-checked, priority-ordered collection of
// evaluable rules for one brand version. Immutable after compilation; dynamic
// rules live on the Engine, not here.
type RuleSet struct {
	Version    string
	Categories map[string][]*CompiledRule
	Conflicts  []types.RuleConflict

	categoryOrder []string
}

// CategoryNames returns the categories in deterministic (sorted) order.
func (rs *RuleSet) CategoryNames() []string {
	return rs.categoryOrder
}

// Len returns the total number of compiled rules.
func (rs *RuleSet) Len() int {
	n := 0
	for _, rules := range rs.Categories {
		n += len(rules)
	}
	return n
}

// Compile builds a brand's rule set: its own guidelines plus the global rules
// and its industry pack, grouped by category, sorted by priority descending
// (ties broken by guideline ID for bit-identical ordering), with conflicts
// detected once.
func Compile(brand *types.BrandSnapshot) (*RuleSet, error) {
	if brand == nil {
		return nil, &CompileError{Message: "brand snapshot is nil"}
	}

	global, err := GlobalRules()
	if err != nil {
		return nil, &CompileError{Message: "failed to load global rules", Cause: err}
	}
	industry, err := IndustryRules(brand.Industry)
	if err != nil {
		return nil, &CompileError{Message: "failed to load industry rules", Cause: err}
	}

	guidelines := make([]types.Guideline, 0, len(brand.Guidelines)+len(global)+len(industry)+1)
	guidelines = append(guidelines, brand.Guidelines...)
	guidelines = append(guidelines, global...)
	guidelines = append(guidelines, industry...)
	if rt := brand.MessagingFramework.RestrictedTerms; len(rt) > 0 {
		guidelines = append(guidelines, types.Guideline{
			ID:       "brand_restricted_terms",
			Category: types.CategoryContent,
			RuleType: types.RuleTypeMustNot,
			Priority: 90,
			Content:  "Content must not use the brand's restricted terms",
			Metadata: map[string]any{"terms": rt, "config_gate": GateRestrictedTerms},
		})
	}

	rs := &RuleSet{
		Version:    brand.GuidelineVersion(),
		Categories: make(map[string][]*CompiledRule),
	}
	for _, g := range guidelines {
		category := g.Category
		if category == "" {
			category = types.CategoryContent
		}
		g.Category = category
		kind, eval := resolveEvaluator(g)
		rs.Categories[category] = append(rs.Categories[category], &CompiledRule{
			Guideline: g,
			Kind:      kind,
			Evaluate:  eval,
		})
	}

	for category, list := range rs.Categories {
		sortRules(list)
		rs.categoryOrder = append(rs.categoryOrder, category)
	}
	sort.Strings(rs.categoryOrder)

	rs.Conflicts = detectConflicts(rs)
	return rs, nil
}

// sortRules orders a category's rules by priority descending, then by ID so
// that compilation is idempotent.
func sortRules(list []*CompiledRule) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Guideline.Priority != list[j].Guideline.Priority {
			return list[i].Guideline.Priority > list[j].Guideline.Priority
		}
		return list[i].Guideline.ID < list[j].Guideline.ID
	})
}
