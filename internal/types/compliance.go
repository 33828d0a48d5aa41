// Package types provides type definitions for structured data used throughout the brandguard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// RuleConflict records a pair of same-category guidelines with contradictory
// obligations, detected once at compile time.
type RuleConflict struct {
	RuleA      string `json:"rule_a"`
	RuleB      string `json:"rule_b"`
	Category   string `json:"category"`
	Subject    string `json:"subject,omitempty"`
	Resolution string `json:"resolution"` // the guideline ID treated as authoritative
	Reason     string `json:"reason"`
}

// ProcessingInfo carries metadata about a single evaluation run.
type ProcessingInfo struct {
	Duration      time.Duration `json:"duration"`
	Timestamp     time.Time     `json:"timestamp"`
	EngineVersion string        `json:"engine_version"`
	CacheHit      bool          `json:"cache_hit,omitempty"`
}

// ComplianceResult is the final output of validating one piece of content
// against one brand snapshot.
type ComplianceResult struct {
	IsCompliant         bool           `json:"is_compliant"`
	Violations          []Violation    `json:"violations"`
	Suggestions         []string       `json:"suggestions,omitempty"`
	Score               float64        `json:"score"` // [0, 1], priority-weighted pass ratio
	BrandAlignmentScore float64        `json:"brand_alignment_score"`
	RuleConflicts       []RuleConflict `json:"rule_conflicts,omitempty"`
	Features            *FeatureBundle `json:"features,omitempty"`
	Processing          ProcessingInfo `json:"processing"`
}

// ComplianceConfig holds the evaluation options recognized at the API
// boundary. The zero value enables every check.
type ComplianceConfig struct {
	EnforceBrandVoice    *bool  `json:"enforce_brand_voice,omitempty"`
	CheckRestrictedTerms *bool  `json:"check_restricted_terms,omitempty"`
	ValidateMessaging    *bool  `json:"validate_messaging,omitempty"`
	TargetAudience       string `json:"target_audience,omitempty"`
	ContentType          string `json:"content_type,omitempty"`

	MaxConcurrency int           `json:"max_concurrency,omitempty" validate:"omitempty,min=1,max=16"`
	Timeout        time.Duration `json:"timeout,omitempty"`
}

// VoiceEnforced reports whether tone/voice checks are enabled.
func (c *ComplianceConfig) VoiceEnforced() bool {
	return c.EnforceBrandVoice == nil || *c.EnforceBrandVoice
}

// RestrictedTermsChecked reports whether restricted-term rules are enabled.
func (c *ComplianceConfig) RestrictedTermsChecked() bool {
	return c.CheckRestrictedTerms == nil || *c.CheckRestrictedTerms
}

// MessagingValidated reports whether key-message-presence checks are enabled.
func (c *ComplianceConfig) MessagingValidated() bool {
	return c.ValidateMessaging == nil || *c.ValidateMessaging
}

// BatchItem is one unit of content in a batch validation request.
type BatchItem struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// BatchResult pairs a batch item with either its result or its error. A
// failed item never aborts its siblings.
type BatchResult struct {
	ID     string            `json:"id"`
	Result *ComplianceResult `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// PredictedIssue is a lightweight, forward-looking finding from the
// prediction pass used for live-typing feedback.
type PredictedIssue struct {
	Type       string  `json:"type"`
	Message    string  `json:"message"`
	Likelihood float64 `json:"likelihood"` // [0, 1]
	Context    string  `json:"context,omitempty"`
}

// AppliedFix describes one textual remediation performed by auto-fix.
type AppliedFix struct {
	Type        string `json:"type"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Count       int    `json:"count"`
}

// AutoFixResult is the outcome of best-effort remediation.
type AutoFixResult struct {
	FixedContent string       `json:"fixed_content"`
	AppliedFixes []AppliedFix `json:"applied_fixes"`
}
