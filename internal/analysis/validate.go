// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

// sentenceVarietyFloor is the minimum sentence-length variance below which a
// passage reads monotonous and earns a variety suggestion.
const sentenceVarietyFloor = 2.0

// Validate cross-checks an already-computed feature bundle against the
// brand's expectations and returns analyzer-specific violations plus
// free-form suggestions. Empty content yields no violations.
func Validate(brand *types.BrandSnapshot, content string, bundle *types.FeatureBundle) ([]types.Violation, []string) {
	var violations []types.Violation
	var suggestions []string

	if strings.TrimSpace(content) == "" {
		return violations, suggestions
	}

	if v := checkToneMismatch(brand, bundle); v != nil {
		violations = append(violations, *v)
	}
	if v := checkReadabilityMismatch(brand, bundle); v != nil {
		violations = append(violations, *v)
	}
	if v := checkKeyMessageAbsence(brand, bundle); v != nil {
		violations = append(violations, *v)
	}
	if s := checkSentenceVariety(bundle); s != "" {
		suggestions = append(suggestions, s)
	}

	return violations, suggestions
}

// checkToneMismatch fires when the classified tone differs from the brand's
// expected tone and is not an accepted secondary tone.
func checkToneMismatch(brand *types.BrandSnapshot, bundle *types.FeatureBundle) *types.Violation {
	va := brand.VoiceAnalysis
	if va == nil || va.PrimaryTone == "" {
		return nil
	}
	actual := bundle.Tone.PrimaryTone
	if actual == va.PrimaryTone {
		return nil
	}
	for _, secondary := range va.SecondaryTones {
		if actual == secondary {
			return nil
		}
	}
	return &types.Violation{
		Type:     types.ViolationToneMismatch,
		Severity: types.SeverityWarning,
		Message: fmt.Sprintf("content tone %q does not match the brand's expected tone %q",
			actual, va.PrimaryTone),
		Suggestion: fmt.Sprintf("adjust word choice and sentence structure toward a %s voice", va.PrimaryTone),
		Context:    actual,
		Confidence: bundle.Tone.ToneConfidence,
	}
}

// checkReadabilityMismatch fires when the computed grade level exceeds the
// brand's configured target grade.
func checkReadabilityMismatch(brand *types.BrandSnapshot, bundle *types.FeatureBundle) *types.Violation {
	va := brand.VoiceAnalysis
	if va == nil || va.TargetGrade <= 0 {
		return nil
	}
	if bundle.Readability.GradeLevel <= va.TargetGrade {
		return nil
	}
	return &types.Violation{
		Type:     types.ViolationReadabilityMismatch,
		Severity: types.SeverityWarning,
		Message: fmt.Sprintf("reading grade %.1f exceeds the brand target of %.1f",
			bundle.Readability.GradeLevel, va.TargetGrade),
		Suggestion: "shorten sentences and prefer simpler words",
		Context:    fmt.Sprintf("grade %.1f", bundle.Readability.GradeLevel),
		Confidence: 0.9,
	}
}

// checkKeyMessageAbsence fires when a brand declares key messages and none of
// them appear in the content.
func checkKeyMessageAbsence(brand *types.BrandSnapshot, bundle *types.FeatureBundle) *types.Violation {
	if len(brand.MessagingFramework.KeyMessages) == 0 {
		return nil
	}
	if len(bundle.BrandAlignment.MatchedMessages) > 0 {
		return nil
	}
	return &types.Violation{
		Type:       types.ViolationKeyMessageAbsence,
		Severity:   types.SeverityWarning,
		Message:    "none of the brand's key messages appear in the content",
		Suggestion: fmt.Sprintf("work in at least one key message, e.g. %q", brand.MessagingFramework.KeyMessages[0]),
		Context:    "key_messages",
		Confidence: 1.0,
	}
}

// checkSentenceVariety returns a suggestion when sentence lengths barely vary
// across a passage of three or more sentences.
func checkSentenceVariety(bundle *types.FeatureBundle) string {
	r := bundle.Readability
	if r.TotalSentences < 3 {
		return ""
	}
	if r.SentenceLengthVar >= sentenceVarietyFloor {
		return ""
	}
	return "vary sentence length to improve rhythm; consecutive sentences are nearly uniform"
}
