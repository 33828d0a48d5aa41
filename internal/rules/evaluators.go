// Package rules compiles brand guidelines into evaluable rule sets and
// evaluates them against content and its linguistic features.
package rules

import (
	"fmt"
	"strings"

	"github.com/jonathan/brandguard/internal/analysis"
	"github.com/jonathan/brandguard/internal/types"
)

// Evaluator kinds. All but KindCustom are serializable.
const (
	KindSubstringPresence = "substring_presence"
	KindSubstringAbsence  = "substring_absence"
	KindFeatureThreshold  = "feature_threshold"
	KindCustom            = "custom"
)

// Rule evaluation statuses.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Outcome is the result of evaluating a single rule.
type Outcome struct {
	Status string
	Detail string
}

// Config gates a rule can declare via metadata "config_gate". A gated rule
// is skipped when the request disables that gate.
const (
	GateRestrictedTerms = "check_restricted_terms"
	GateBrandVoice      = "enforce_brand_voice"
)

// Context carries request-scoped evaluation hints.
type Context struct {
	ContentType    string
	TargetAudience string

	// DisabledGates lists config gates turned off for this request.
	DisabledGates map[string]bool
}

// gateDisabled reports whether a guideline's config gate is disabled in this
// context.
func (c Context) gateDisabled(g types.Guideline) bool {
	if g.Metadata == nil || len(c.DisabledGates) == 0 {
		return false
	}
	gate, ok := g.Metadata["config_gate"].(string)
	if !ok {
		return false
	}
	return c.DisabledGates[gate]
}

// Evaluator decides whether content satisfies one rule.
type Evaluator func(content string, bundle *types.FeatureBundle, evalCtx Context) Outcome

// CompiledRule is a guideline plus its resolved evaluator.
type CompiledRule struct {
	Guideline types.Guideline
	Kind      string
	Evaluate  Evaluator
	Dynamic   bool
}

// resolveEvaluator builds the evaluator for a guideline from its rule type,
// category and metadata.
func resolveEvaluator(g types.Guideline) (string, Evaluator) {
	if spec := thresholdSpec(g); spec != nil {
		return KindFeatureThreshold, featureThresholdEvaluator(spec)
	}

	terms := subjectTerms(g)
	switch g.RuleType {
	case types.RuleTypeMustNot, types.RuleTypeDont:
		return KindSubstringAbsence, substringAbsenceEvaluator(terms)
	default:
		return KindSubstringPresence, substringPresenceEvaluator(terms)
	}
}

// substringPresenceEvaluator passes when at least one subject term appears in
// the content. A guideline with no extractable subject passes vacuously.
func substringPresenceEvaluator(terms []string) Evaluator {
	return func(content string, _ *types.FeatureBundle, _ Context) Outcome {
		if len(terms) == 0 {
			return Outcome{Status: StatusPass, Detail: "no subject terms to check"}
		}
		lower := strings.ToLower(content)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return Outcome{Status: StatusPass, Detail: fmt.Sprintf("found %q", term)}
			}
		}
		return Outcome{
			Status: StatusFail,
			Detail: fmt.Sprintf("expected one of %s", quoteList(terms)),
		}
	}
}

// substringAbsenceEvaluator passes when no subject term appears in the content.
func substringAbsenceEvaluator(terms []string) Evaluator {
	return func(content string, _ *types.FeatureBundle, _ Context) Outcome {
		lower := strings.ToLower(content)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return Outcome{
					Status: StatusFail,
					Detail: fmt.Sprintf("prohibited term %q present", term),
				}
			}
		}
		return Outcome{Status: StatusPass}
	}
}

// thresholdSpec extracts a feature-threshold specification from guideline
// metadata. Readability guidelines with a target_grade get one implicitly.
func thresholdSpec(g types.Guideline) *featureThreshold {
	if g.Metadata == nil {
		return nil
	}
	if tg, ok := numericMeta(g.Metadata, "target_grade"); ok && g.Category == types.CategoryReadability {
		return &featureThreshold{Feature: "readability.grade_level", Operator: "<=", Value: tg}
	}
	feature, ok := g.Metadata["feature"].(string)
	if !ok {
		return nil
	}
	op, _ := g.Metadata["operator"].(string)
	if op == "" {
		op = "<="
	}
	value, ok := numericMeta(g.Metadata, "value")
	if !ok {
		return nil
	}
	return &featureThreshold{Feature: feature, Operator: op, Value: value}
}

type featureThreshold struct {
	Feature  string
	Operator string
	Value    float64
}

func featureThresholdEvaluator(spec *featureThreshold) Evaluator {
	return func(_ string, bundle *types.FeatureBundle, _ Context) Outcome {
		if bundle == nil {
			return Outcome{Status: StatusPass, Detail: "no feature bundle available"}
		}
		actual, ok := bundle.Feature(spec.Feature)
		if !ok {
			return Outcome{Status: StatusPass, Detail: fmt.Sprintf("unknown feature %q", spec.Feature)}
		}
		pass := false
		switch spec.Operator {
		case "<=":
			pass = actual <= spec.Value
		case "<":
			pass = actual < spec.Value
		case ">=":
			pass = actual >= spec.Value
		case ">":
			pass = actual > spec.Value
		case "==", "=":
			pass = actual == spec.Value
		}
		if pass {
			return Outcome{Status: StatusPass}
		}
		return Outcome{
			Status: StatusFail,
			Detail: fmt.Sprintf("%s is %.2f, want %s %.2f", spec.Feature, actual, spec.Operator, spec.Value),
		}
	}
}

// subjectTerms extracts the terms a simple evaluator should look for:
// explicit metadata terms first, then quoted fragments of the statement,
// then significant statement words as a last resort.
func subjectTerms(g types.Guideline) []string {
	if g.Metadata != nil {
		if raw, ok := g.Metadata["terms"]; ok {
			if terms := toStringSlice(raw); len(terms) > 0 {
				return lowerAll(terms)
			}
		}
	}
	if quoted := quotedFragments(g.Content); len(quoted) > 0 {
		return lowerAll(quoted)
	}
	return significantWords(g.Content)
}

// quotedFragments returns the double- or single-quoted substrings of a
// guideline statement.
func quotedFragments(statement string) []string {
	var out []string
	for _, q := range []rune{'"', '\''} {
		parts := strings.Split(statement, string(q))
		// Odd indexes are inside quotes when quoting is balanced.
		if len(parts) >= 3 {
			for i := 1; i < len(parts); i += 2 {
				if f := strings.TrimSpace(parts[i]); f != "" {
					out = append(out, f)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return out
}

var statementStopwords = map[string]bool{
	"must": true, "not": true, "should": true, "dont": true, "don't": true,
	"never": true, "always": true, "the": true, "a": true, "an": true,
	"use": true, "include": true, "avoid": true, "mention": true, "be": true,
	"in": true, "of": true, "to": true, "any": true, "all": true, "content": true,
	"our": true, "with": true, "and": true, "or": true, "words": true,
	"word": true, "term": true, "terms": true, "phrase": true, "phrases": true,
}

// significantWords keeps the statement tokens that plausibly name its subject.
func significantWords(statement string) []string {
	tokens := analysis.Tokenize(statement)
	var out []string
	for _, t := range tokens {
		if len(t) < 3 || statementStopwords[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func toStringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	}
	return nil
}

func numericMeta(meta map[string]any, key string) (float64, bool) {
	switch v := meta[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func quoteList(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return strings.Join(quoted, ", ")
}
