// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

// Aspect names, used for degraded-aspect flags and per-aspect analysis.
const (
	AspectTone           = "tone"
	AspectSentiment      = "sentiment"
	AspectReadability    = "readability"
	AspectBrandAlignment = "brand_alignment"
	AspectKeywordDensity = "keyword_density"
	AspectEmotion        = "emotion"
	AspectFormality      = "formality"
)

// AnalyzeAll runs every aspect over the content and assembles the feature
// bundle. Empty or whitespace-only content produces neutral values with every
// aspect flagged as degraded; it never fails.
func AnalyzeAll(brand *types.BrandSnapshot, content string) *types.FeatureBundle {
	tone := AnalyzeTone(content)

	bundle := &types.FeatureBundle{
		Tone:           tone,
		Sentiment:      AnalyzeSentiment(content),
		Readability:    AnalyzeReadability(content),
		BrandAlignment: AnalyzeBrandAlignment(brand, content, tone),
		KeywordDensity: AnalyzeKeywordDensity(content, brand.TrackedKeywords),
		Emotion:        AnalyzeEmotion(content),
		FormalityLevel: ClassifyFormality(content),
	}

	if strings.TrimSpace(content) == "" {
		bundle.Degraded = []string{
			AspectTone, AspectSentiment, AspectReadability,
			AspectBrandAlignment, AspectKeywordDensity, AspectEmotion,
			AspectFormality,
		}
	}
	return bundle
}
