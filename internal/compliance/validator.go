// Package compliance orchestrates linguistic analysis and rule evaluation
// into a single compliance verdict for a piece of marketing copy.
package compliance

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/brandguard/internal/analysis"
	"github.com/jonathan/brandguard/internal/cache"
	"github.com/jonathan/brandguard/internal/rules"
	"github.com/jonathan/brandguard/internal/types"
)

// EngineVersion is reported in processing metadata.
const EngineVersion = "brandguard/1.0"

// Default operational limits.
const (
	DefaultTimeout        = 10 * time.Second
	DefaultMaxConcurrency = 3
	DefaultRuleSetTTL     = 30 * time.Minute
	DefaultResultTTL      = 5 * time.Minute
)

// Options configures a Validator. Zero values fall back to in-memory caches
// and the default timeout.
type Options struct {
	RuleSetCache cache.Cache
	ResultCache  cache.Cache
	RuleSetTTL   time.Duration
	ResultTTL    time.Duration
	Timeout      time.Duration

	// DisableResultCache turns off full-result caching; rule-set caching
	// stays on since compilation is the expensive idempotent step.
	DisableResultCache bool
}

// Validator is the public entry point of the compliance engine. It owns the
// advisory caches and the per-request concurrency and timeout control; the
// analyzer and rule engine it drives are pure.
type Validator struct {
	ruleSetCache cache.Cache
	resultCache  cache.Cache
	ruleSetTTL   time.Duration
	resultTTL    time.Duration
	timeout      time.Duration
	cacheResults bool

	mu      sync.RWMutex
	dynamic []rules.DynamicRule
}

// NewValidator creates a validator with the given options.
func NewValidator(opts Options) *Validator {
	v := &Validator{
		ruleSetCache: opts.RuleSetCache,
		resultCache:  opts.ResultCache,
		ruleSetTTL:   opts.RuleSetTTL,
		resultTTL:    opts.ResultTTL,
		timeout:      opts.Timeout,
		cacheResults: !opts.DisableResultCache,
	}
	if v.ruleSetCache == nil {
		v.ruleSetCache = cache.NewMemoryCache(DefaultRuleSetTTL, 10*time.Minute)
	}
	if v.resultCache == nil {
		v.resultCache = cache.NewMemoryCache(DefaultResultTTL, time.Minute)
	}
	if v.ruleSetTTL <= 0 {
		v.ruleSetTTL = DefaultRuleSetTTL
	}
	if v.resultTTL <= 0 {
		v.resultTTL = DefaultResultTTL
	}
	if v.timeout <= 0 {
		v.timeout = DefaultTimeout
	}
	return v
}

// AddDynamicRule registers a session-scoped rule that participates in every
// subsequent evaluation alongside compiled guideline rules.
func (v *Validator) AddDynamicRule(spec rules.DynamicRule) error {
	if spec.Guideline.ID == "" {
		return &InvalidInputError{Message: "dynamic rule requires an id"}
	}
	if spec.Evaluate == nil {
		return &InvalidInputError{Message: "dynamic rule requires an evaluator"}
	}
	v.mu.Lock()
	v.dynamic = append(v.dynamic, spec)
	v.mu.Unlock()

	// Cached results predate the new rule.
	v.resultCache.Clear()
	return nil
}

// ValidateContent validates one piece of content against a brand snapshot.
// Analyzer and rule-compiler branches run concurrently; the whole request is
// bounded by the validator's timeout.
func (v *Validator) ValidateContent(ctx context.Context, content string, brand *types.BrandSnapshot, cfg *types.ComplianceConfig) (*types.ComplianceResult, error) {
	if brand == nil || brand.ID == "" {
		return nil, &InvalidInputError{Message: "brand snapshot is empty"}
	}
	if cfg == nil {
		cfg = &types.ComplianceConfig{}
	}

	timeout := v.timeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	version := brand.GuidelineVersion()
	resultKey := cache.ResultKey(version, cache.ContentHash(content), configHash(cfg))
	if v.cacheResults {
		if cached, ok := v.resultCache.Get(resultKey); ok {
			result := cached.(*types.ComplianceResult)
			copied := *result
			copied.Processing.CacheHit = true
			return &copied, nil
		}
	}

	type computed struct {
		result *types.ComplianceResult
		err    error
	}
	done := make(chan computed, 1)
	go func() {
		result, err := v.evaluate(ctx, content, brand, cfg, version)
		done <- computed{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &TimeoutError{Timeout: timeout}
		}
		return nil, ctx.Err()
	case c := <-done:
		if c.err != nil {
			return nil, c.err
		}
		if v.cacheResults {
			v.resultCache.Set(resultKey, c.result, v.resultTTL)
		}
		return c.result, nil
	}
}

// evaluate performs the actual analysis, compilation and rule evaluation.
func (v *Validator) evaluate(ctx context.Context, content string, brand *types.BrandSnapshot, cfg *types.ComplianceConfig, version string) (*types.ComplianceResult, error) {
	start := time.Now()

	var bundle *types.FeatureBundle
	var analyzerViolations []types.Violation
	var suggestions []string
	var ruleSet *rules.RuleSet

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle = analysis.AnalyzeAll(brand, content)
		analyzerViolations, suggestions = analysis.Validate(brand, content, bundle)
		return nil
	})
	g.Go(func() error {
		rs, err := v.compileRuleSet(brand, version)
		if err != nil {
			return err
		}
		ruleSet = rs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	engine := rules.NewEngine(ruleSet)
	v.mu.RLock()
	for _, spec := range v.dynamic {
		if err := engine.AddDynamicRule(spec); err != nil {
			v.mu.RUnlock()
			return nil, err
		}
	}
	v.mu.RUnlock()

	evaluation := engine.Evaluate(content, bundle, evalContext(cfg))

	violations := mergeViolations(filterAnalyzerViolations(analyzerViolations, cfg), evaluation)

	return &types.ComplianceResult{
		IsCompliant:         len(evaluation.Failed) == 0,
		Violations:          violations,
		Suggestions:         suggestions,
		Score:               evaluation.Score,
		BrandAlignmentScore: bundle.BrandAlignment.OverallScore,
		RuleConflicts:       engine.Conflicts(),
		Features:            bundle,
		Processing: types.ProcessingInfo{
			Duration:      time.Since(start),
			Timestamp:     start.UTC(),
			EngineVersion: EngineVersion,
		},
	}, nil
}

// compileRuleSet fetches the brand's compiled rule set from cache or compiles
// it. Cache hits return the identical rule ordering.
func (v *Validator) compileRuleSet(brand *types.BrandSnapshot, version string) (*rules.RuleSet, error) {
	key := cache.RuleSetKey(brand.ID, version)
	if cached, ok := v.ruleSetCache.Get(key); ok {
		return cached.(*rules.RuleSet), nil
	}
	rs, err := rules.Compile(brand)
	if err != nil {
		return nil, err
	}
	v.ruleSetCache.Set(key, rs, v.ruleSetTTL)
	return rs, nil
}

// evalContext translates the request config into the engine's evaluation
// context.
func evalContext(cfg *types.ComplianceConfig) rules.Context {
	disabled := make(map[string]bool)
	if !cfg.RestrictedTermsChecked() {
		disabled[rules.GateRestrictedTerms] = true
	}
	if !cfg.VoiceEnforced() {
		disabled[rules.GateBrandVoice] = true
	}
	return rules.Context{
		ContentType:    cfg.ContentType,
		TargetAudience: cfg.TargetAudience,
		DisabledGates:  disabled,
	}
}

// filterAnalyzerViolations drops analyzer findings whose checks the request
// config disabled.
func filterAnalyzerViolations(violations []types.Violation, cfg *types.ComplianceConfig) []types.Violation {
	out := make([]types.Violation, 0, len(violations))
	for _, v := range violations {
		switch v.Type {
		case types.ViolationToneMismatch:
			if !cfg.VoiceEnforced() {
				continue
			}
		case types.ViolationKeyMessageAbsence:
			if !cfg.MessagingValidated() {
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

// mergeViolations combines analyzer findings with rule-engine failures and
// warnings, de-duplicating by (type, context).
func mergeViolations(analyzer []types.Violation, evaluation *rules.Evaluation) []types.Violation {
	merged := make([]types.Violation, 0, len(analyzer)+len(evaluation.Failed)+len(evaluation.Warnings))
	seen := make(map[string]bool)

	add := func(v types.Violation) {
		if seen[v.Key()] {
			return
		}
		seen[v.Key()] = true
		merged = append(merged, v)
	}

	for _, v := range analyzer {
		add(v)
	}
	for _, r := range evaluation.Failed {
		add(ruleViolation(r, types.SeverityError))
	}
	for _, r := range evaluation.Warnings {
		add(ruleViolation(r, types.SeverityWarning))
	}
	return merged
}

func ruleViolation(r rules.RuleResult, severity string) types.Violation {
	id := r.Guideline.ID
	msg := r.Guideline.Content
	if r.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, r.Detail)
	}
	return types.Violation{
		Type:       types.ViolationRuleFailure,
		Severity:   severity,
		Message:    msg,
		Suggestion: fixSuggestion(r),
		Context:    id,
		Confidence: 1.0,
		RuleID:     &id,
	}
}

// fixSuggestion shapes a remediation hint from the rule's obligation.
func fixSuggestion(r rules.RuleResult) string {
	switch r.Guideline.RuleType {
	case types.RuleTypeMustNot, types.RuleTypeDont:
		return "remove or rephrase the flagged wording"
	default:
		return "revise the content to satisfy: " + r.Guideline.Content
	}
}

// configHash builds a stable hash of the evaluation-relevant config options
// for result-cache keys.
func configHash(cfg *types.ComplianceConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "voice=%t;terms=%t;msg=%t;aud=%s;ct=%s",
		cfg.VoiceEnforced(), cfg.RestrictedTermsChecked(), cfg.MessagingValidated(),
		cfg.TargetAudience, cfg.ContentType)
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:8])
}
