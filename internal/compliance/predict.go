// Package compliance orchestrates linguistic analysis and rule evaluation.
package compliance

import (
	"fmt"
	"strings"

	"github.com/jonathan/brandguard/internal/analysis"
	"github.com/jonathan/brandguard/internal/types"
)

// PredictViolations is the lighter-weight, forward-looking variant used for
// live-typing feedback: it flags likely issues without compiling or running
// the full rule set.
func (v *Validator) PredictViolations(content string, brand *types.BrandSnapshot, cfg *types.ComplianceConfig) ([]types.PredictedIssue, error) {
	if brand == nil || brand.ID == "" {
		return nil, &InvalidInputError{Message: "brand snapshot is empty"}
	}
	if cfg == nil {
		cfg = &types.ComplianceConfig{}
	}

	var issues []types.PredictedIssue
	lower := strings.ToLower(content)

	if cfg.RestrictedTermsChecked() {
		for _, term := range brand.MessagingFramework.RestrictedTerms {
			t := strings.ToLower(strings.TrimSpace(term))
			if t != "" && strings.Contains(lower, t) {
				issues = append(issues, types.PredictedIssue{
					Type:       types.ViolationRestrictedTerm,
					Message:    fmt.Sprintf("restricted term %q will fail validation", term),
					Likelihood: 1.0,
					Context:    term,
				})
			}
		}
	}

	if cfg.MessagingValidated() && len(brand.MessagingFramework.KeyMessages) > 0 {
		found := false
		for _, msg := range brand.MessagingFramework.KeyMessages {
			if m := strings.ToLower(strings.TrimSpace(msg)); m != "" && strings.Contains(lower, m) {
				found = true
				break
			}
		}
		if !found && strings.TrimSpace(content) != "" {
			issues = append(issues, types.PredictedIssue{
				Type:       types.ViolationKeyMessageAbsence,
				Message:    "no key message present yet",
				Likelihood: 0.7,
				Context:    "key_messages",
			})
		}
	}

	if cfg.VoiceEnforced() && brand.VoiceAnalysis != nil && brand.VoiceAnalysis.TargetGrade > 0 {
		readability := analysis.AnalyzeReadability(content)
		if readability.TotalWords >= 20 && readability.GradeLevel > brand.VoiceAnalysis.TargetGrade+2 {
			issues = append(issues, types.PredictedIssue{
				Type:       types.ViolationReadabilityMismatch,
				Message:    fmt.Sprintf("reading grade is trending toward %.0f, above the brand target of %.0f", readability.GradeLevel, brand.VoiceAnalysis.TargetGrade),
				Likelihood: 0.6,
				Context:    "readability",
			})
		}
	}

	if cfg.VoiceEnforced() && brand.VoiceAnalysis != nil && brand.VoiceAnalysis.PrimaryTone == analysis.ToneProfessional {
		if strings.Count(content, "!") >= 3 {
			issues = append(issues, types.PredictedIssue{
				Type:       types.ViolationToneMismatch,
				Message:    "heavy exclamation use reads off-voice for a professional brand",
				Likelihood: 0.5,
				Context:    "punctuation",
			})
		}
	}

	return issues, nil
}
