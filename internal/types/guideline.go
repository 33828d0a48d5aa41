// Package types provides type definitions for structured data used throughout the brandguard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Rule types recognized for guidelines. A "must"/"must_not" guideline is
// mandatory; "should"/"dont" are advisory.
const (
	RuleTypeMust    = "must"
	RuleTypeMustNot = "must_not"
	RuleTypeShould  = "should"
	RuleTypeDont    = "dont"
)

// Guideline categories used for grouping compiled rules.
const (
	CategoryTone        = "tone"
	CategoryContent     = "content"
	CategoryLegal       = "legal"
	CategoryReadability = "readability"
)

// Guideline represents a single brand policy statement, authored by brand
// administrators or injected from a built-in global/industry rule pack.
type Guideline struct {
	ID       string         `json:"id" yaml:"id" validate:"required"`
	Category string         `json:"category" yaml:"category" validate:"required"`
	RuleType string         `json:"rule_type" yaml:"rule_type" validate:"required,oneof=must must_not should dont"`
	Priority int            `json:"priority" yaml:"priority"`
	Content  string         `json:"content" yaml:"content" validate:"required"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Mandatory overrides the default derivation from RuleType when set.
	Mandatory *bool `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
}

// IsMandatory reports whether a failed evaluation of this guideline blocks
// compliance. Defaults from the rule type unless explicitly overridden.
func (g *Guideline) IsMandatory() bool {
	if g.Mandatory != nil {
		return *g.Mandatory
	}
	return g.RuleType == RuleTypeMust || g.RuleType == RuleTypeMustNot
}

// ContentTypes returns the content-type scoping list from metadata, if any.
// A guideline with no scoping participates in every evaluation.
func (g *Guideline) ContentTypes() []string {
	if g.Metadata == nil {
		return nil
	}
	raw, ok := g.Metadata["content_types"]
	if !ok {
		return nil
	}
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

// AppliesTo reports whether the guideline participates for the given content
// type. An empty contentType matches only unscoped guidelines.
func (g *Guideline) AppliesTo(contentType string) bool {
	scoped := g.ContentTypes()
	if len(scoped) == 0 {
		return true
	}
	for _, ct := range scoped {
		if ct == contentType {
			return true
		}
	}
	return false
}
