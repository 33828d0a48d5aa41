// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

// Blend weights for the combined alignment score. Message presence is
// weighted above voice so that content carrying every key message clears the
// "reasonably aligned" bar regardless of tone.
const (
	voiceBlendWeight   = 0.4
	messageBlendWeight = 0.6
)

// AnalyzeBrandAlignment compares content against the brand's key messages and
// expected voice. When all declared key messages appear in the content the
// overall score exceeds 0.5.
func AnalyzeBrandAlignment(brand *types.BrandSnapshot, content string, tone types.ToneResult) types.BrandAlignmentResult {
	message, matched := messageAlignment(brand, content)
	voice := voiceAlignment(brand, tone)

	return types.BrandAlignmentResult{
		OverallScore:     voiceBlendWeight*voice + messageBlendWeight*message,
		VoiceAlignment:   voice,
		MessageAlignment: message,
		MatchedMessages:  matched,
	}
}

// messageAlignment is the fraction of declared key messages present in the
// content. A brand with no declared messages scores a neutral 0.5.
func messageAlignment(brand *types.BrandSnapshot, content string) (float64, []string) {
	messages := brand.MessagingFramework.KeyMessages
	if len(messages) == 0 {
		return 0.5, nil
	}

	lower := strings.ToLower(content)
	var matched []string
	for _, msg := range messages {
		m := strings.ToLower(strings.TrimSpace(msg))
		if m != "" && strings.Contains(lower, m) {
			matched = append(matched, msg)
		}
	}
	return float64(len(matched)) / float64(len(messages)), matched
}

// voiceAlignment compares the classified tone against the brand's expected
// tone from its latest voice analysis. No voice analysis scores neutral.
func voiceAlignment(brand *types.BrandSnapshot, tone types.ToneResult) float64 {
	va := brand.VoiceAnalysis
	if va == nil || va.PrimaryTone == "" {
		return 0.5
	}
	if tone.PrimaryTone == va.PrimaryTone {
		return 0.8 + 0.2*tone.ToneConfidence
	}
	for _, secondary := range va.SecondaryTones {
		if tone.PrimaryTone == secondary {
			return 0.6
		}
	}
	return 0.3
}
