// Package rules compiles brand guidelines into evaluable rule sets.
package rules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/brandguard/internal/types"
)

// RuleResult pairs a rule with its evaluation detail.
type RuleResult struct {
	Guideline types.Guideline
	Detail    string
}

// Evaluation buckets every evaluated rule and carries the priority-weighted
// score. Skipped rules (panicking evaluators) count toward neither.
type Evaluation struct {
	Passed   []RuleResult
	Failed   []RuleResult
	Warnings []RuleResult
	Skipped  []RuleResult
	Score    float64
}

// Engine evaluates a compiled rule set against content. Dynamic rules added
// at runtime live on the engine and participate in the same category
// grouping, priority ordering and scoring as compiled rules; adding one only
// re-merges the affected category.
type Engine struct {
	rs *RuleSet

	// supersededBy maps a conflict's losing rule ID to the authoritative
	// rule ID, so the loser is excluded when the winner is satisfied.
	supersededBy map[string]string

	mu     sync.RWMutex
	merged map[string][]*CompiledRule // categories with dynamic additions
}

// NewEngine creates an engine over an immutable compiled rule set.
func NewEngine(rs *RuleSet) *Engine {
	superseded := make(map[string]string, len(rs.Conflicts))
	for _, c := range rs.Conflicts {
		loser := c.RuleA
		if loser == c.Resolution {
			loser = c.RuleB
		}
		superseded[loser] = c.Resolution
	}
	return &Engine{rs: rs, supersededBy: superseded, merged: make(map[string][]*CompiledRule)}
}

// Conflicts returns the conflicts detected at compile time.
func (e *Engine) Conflicts() []types.RuleConflict {
	return e.rs.Conflicts
}

// DynamicRule describes a runtime-injected rule with an explicit evaluator.
type DynamicRule struct {
	Guideline types.Guideline
	Evaluate  Evaluator
}

// AddDynamicRule injects a session-scoped rule. Only the affected category's
// ordering is rebuilt.
func (e *Engine) AddDynamicRule(spec DynamicRule) error {
	if spec.Guideline.ID == "" {
		return &RuleError{RuleID: "", Message: "dynamic rule requires an id"}
	}
	if spec.Evaluate == nil {
		return &RuleError{RuleID: spec.Guideline.ID, Message: "dynamic rule requires an evaluator"}
	}
	category := spec.Guideline.Category
	if category == "" {
		category = types.CategoryContent
		spec.Guideline.Category = category
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	base, ok := e.merged[category]
	if !ok {
		base = append([]*CompiledRule{}, e.rs.Categories[category]...)
	}
	base = append(base, &CompiledRule{
		Guideline: spec.Guideline,
		Kind:      KindCustom,
		Evaluate:  spec.Evaluate,
		Dynamic:   true,
	})
	sortRules(base)
	e.merged[category] = base
	return nil
}

// categoryRules returns the effective ordered rules for a category,
// preferring the dynamically merged list when one exists.
func (e *Engine) categoryRules(category string) []*CompiledRule {
	if list, ok := e.merged[category]; ok {
		return list
	}
	return e.rs.Categories[category]
}

// categories returns every effective category name in deterministic order.
func (e *Engine) categories() []string {
	names := e.rs.CategoryNames()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	extra := make([]string, 0, len(e.merged))
	for n := range e.merged {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	if len(extra) == 0 {
		return names
	}
	out := append(append([]string{}, names...), extra...)
	sort.Strings(out)
	return out
}

// Evaluate runs every in-scope rule against the content and feature bundle.
// A failed mandatory rule lands in Failed, a failed advisory rule in
// Warnings. An evaluator that panics is isolated: its rule is skipped and
// excluded from scoring, and evaluation continues. A rule that lost a
// compile-time conflict is skipped when the authoritative rule passed, so a
// resolved must/must_not pair cannot fail content that satisfies the winner.
func (e *Engine) Evaluate(content string, bundle *types.FeatureBundle, evalCtx Context) *Evaluation {
	e.mu.RLock()
	defer e.mu.RUnlock()

	type outcomeRecord struct {
		guideline types.Guideline
		outcome   Outcome
		ok        bool
	}

	var records []outcomeRecord
	passedByID := make(map[string]bool)

	for _, category := range e.categories() {
		for _, rule := range e.categoryRules(category) {
			g := rule.Guideline
			if !g.AppliesTo(evalCtx.ContentType) || evalCtx.gateDisabled(g) {
				continue
			}

			outcome, ok := safeEvaluate(rule, content, bundle, evalCtx)
			records = append(records, outcomeRecord{guideline: g, outcome: outcome, ok: ok})
			if ok && outcome.Status == StatusPass {
				passedByID[g.ID] = true
			}
		}
	}

	eval := &Evaluation{}
	var weightTotal, weightPassed float64

	for _, rec := range records {
		g := rec.guideline
		if !rec.ok {
			eval.Skipped = append(eval.Skipped, RuleResult{Guideline: g, Detail: rec.outcome.Detail})
			continue
		}
		if rec.outcome.Status != StatusPass {
			if winner, ok := e.supersededBy[g.ID]; ok && passedByID[winner] {
				eval.Skipped = append(eval.Skipped, RuleResult{
					Guideline: g,
					Detail:    fmt.Sprintf("superseded by %s, which passed", winner),
				})
				continue
			}
		}

		weight := float64(g.Priority)
		if weight < 1 {
			weight = 1
		}
		weightTotal += weight

		result := RuleResult{Guideline: g, Detail: rec.outcome.Detail}
		if rec.outcome.Status == StatusPass {
			weightPassed += weight
			eval.Passed = append(eval.Passed, result)
			continue
		}
		if g.IsMandatory() {
			eval.Failed = append(eval.Failed, result)
		} else {
			eval.Warnings = append(eval.Warnings, result)
		}
	}

	if weightTotal > 0 {
		eval.Score = weightPassed / weightTotal
	} else {
		eval.Score = 1.0
	}
	if eval.Score < 0 {
		eval.Score = 0
	} else if eval.Score > 1 {
		eval.Score = 1
	}
	return eval
}

// safeEvaluate invokes a rule's evaluator, converting a panic into a skipped
// outcome so one malformed rule never aborts the evaluation.
func safeEvaluate(rule *CompiledRule, content string, bundle *types.FeatureBundle, evalCtx Context) (outcome Outcome, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Detail: fmt.Sprintf("evaluator panicked: %v", r)}
			ok = false
		}
	}()
	return rule.Evaluate(content, bundle, evalCtx), true
}
