// Package types provides type definitions for structured data used throughout the brandguard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Formality buckets produced by the formality classifier.
const (
	FormalityFormal           = "formal"
	FormalityModerateFormal   = "moderate_formal"
	FormalityModerateInformal = "moderate_informal"
	FormalityInformal         = "informal"
)

// ToneScore is one entry in the ranked tone distribution.
type ToneScore struct {
	Tone  string  `json:"tone"`
	Score float64 `json:"score"`
}

// ToneResult holds the tone classification for a piece of content.
type ToneResult struct {
	PrimaryTone     string      `json:"primary_tone"`
	ToneConfidence  float64     `json:"tone_confidence"`
	AllTones        []ToneScore `json:"all_tones"`
	ToneConsistency float64     `json:"tone_consistency"` // 1.0 = perfectly consistent across sentences
}

// SentimentBreakdown is the share of positive/neutral/negative signal.
type SentimentBreakdown struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// SentimentResult holds polarity scoring for a piece of content.
type SentimentResult struct {
	OverallScore float64            `json:"overall_score"` // roughly [-1, 1]
	Breakdown    SentimentBreakdown `json:"breakdown"`
}

// ReadabilityResult holds the readability formulas computed from
// syllable/word/sentence counts.
type ReadabilityResult struct {
	FleschKincaid     float64 `json:"flesch_kincaid"`
	GunningFog        float64 `json:"gunning_fog"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	Grade             string  `json:"grade"` // letter-grade bucket A (easiest) .. F
	GradeLevel        float64 `json:"grade_level"`
	SentenceLengthVar float64 `json:"sentence_length_variance"`
	TotalSentences    int     `json:"total_sentences"`
	TotalWords        int     `json:"total_words"`
}

// BrandAlignmentResult compares content against the brand's messaging
// framework and expected voice.
type BrandAlignmentResult struct {
	OverallScore     float64  `json:"overall_score"`
	VoiceAlignment   float64  `json:"voice_alignment"`
	MessageAlignment float64  `json:"message_alignment"`
	MatchedMessages  []string `json:"matched_messages,omitempty"`
}

// KeywordDensityResult holds per-keyword occurrence densities.
type KeywordDensityResult struct {
	Densities     map[string]float64 `json:"keyword_densities"`
	TotalKeywords int                `json:"total_keywords"`
	ContentLength int                `json:"content_length"`
}

// EmotionResult holds discrete emotion detection output.
type EmotionResult struct {
	PrimaryEmotions  []string `json:"primary_emotions"`
	EmotionIntensity float64  `json:"emotion_intensity"`
}

// FeatureBundle is the structured result of running every linguistic aspect
// over one (brand, content) pair. Immutable once computed; safe to cache
// keyed by (brand version, content hash).
type FeatureBundle struct {
	Tone           ToneResult           `json:"tone"`
	Sentiment      SentimentResult      `json:"sentiment"`
	Readability    ReadabilityResult    `json:"readability"`
	BrandAlignment BrandAlignmentResult `json:"brand_alignment"`
	KeywordDensity KeywordDensityResult `json:"keyword_density"`
	Emotion        EmotionResult        `json:"emotion"`
	FormalityLevel string               `json:"formality_level"`

	// Degraded lists aspects that could not be fully computed (e.g. empty
	// content) and returned neutral values instead of failing.
	Degraded []string `json:"degraded,omitempty"`
}

// Feature returns a named scalar feature from the bundle for threshold
// evaluators. The second return is false for unknown paths.
func (f *FeatureBundle) Feature(path string) (float64, bool) {
	switch path {
	case "tone.confidence":
		return f.Tone.ToneConfidence, true
	case "tone.consistency":
		return f.Tone.ToneConsistency, true
	case "sentiment.overall_score":
		return f.Sentiment.OverallScore, true
	case "sentiment.positive":
		return f.Sentiment.Breakdown.Positive, true
	case "sentiment.negative":
		return f.Sentiment.Breakdown.Negative, true
	case "readability.flesch_kincaid":
		return f.Readability.FleschKincaid, true
	case "readability.gunning_fog":
		return f.Readability.GunningFog, true
	case "readability.grade_level":
		return f.Readability.GradeLevel, true
	case "readability.avg_sentence_length":
		return f.Readability.AvgSentenceLength, true
	case "brand_alignment.overall_score":
		return f.BrandAlignment.OverallScore, true
	case "brand_alignment.voice_alignment":
		return f.BrandAlignment.VoiceAlignment, true
	case "brand_alignment.message_alignment":
		return f.BrandAlignment.MessageAlignment, true
	case "emotion.intensity":
		return f.Emotion.EmotionIntensity, true
	}
	return 0, false
}
