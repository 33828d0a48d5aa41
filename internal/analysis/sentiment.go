// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

var positiveWords = map[string]float64{
	"love": 1.0, "amazing": 1.0, "excellent": 1.0, "wonderful": 1.0,
	"fantastic": 1.0, "great": 0.8, "best": 0.8, "succeed": 0.8,
	"success": 0.8, "happy": 0.8, "delighted": 0.8, "awesome": 0.8,
	"good": 0.6, "helpful": 0.6, "helping": 0.6, "enjoy": 0.6,
	"beautiful": 0.6, "perfect": 0.8, "thrilled": 1.0, "outstanding": 1.0,
	"win": 0.6, "easy": 0.4, "better": 0.4, "improve": 0.4, "thank": 0.6,
	"thanks": 0.6, "appreciate": 0.6, "trusted": 0.6, "proud": 0.6,
}

var negativeWords = map[string]float64{
	"hate": 1.0, "terrible": 1.0, "awful": 1.0, "worst": 1.0,
	"horrible": 1.0, "bad": 0.8, "fail": 0.8, "failure": 0.8,
	"problem": 0.6, "broken": 0.6, "poor": 0.6, "disappointing": 0.8,
	"disappointed": 0.8, "angry": 0.8, "frustrating": 0.8, "wrong": 0.6,
	"difficult": 0.4, "worry": 0.6, "risk": 0.4, "lose": 0.6,
	"loss": 0.6, "never": 0.3, "unfortunately": 0.6, "complaint": 0.6,
}

// AnalyzeSentiment performs lexicon-based polarity scoring. The overall score
// is signed in roughly [-1, 1]; the breakdown shares sum to 1.
func AnalyzeSentiment(content string) types.SentimentResult {
	tokens := Tokenize(content)
	if len(tokens) == 0 {
		return types.SentimentResult{
			OverallScore: 0,
			Breakdown:    types.SentimentBreakdown{Neutral: 1},
		}
	}

	var posWeight, negWeight float64
	var posHits, negHits int
	for _, t := range tokens {
		if w, ok := positiveWords[t]; ok {
			posWeight += w
			posHits++
		}
		if w, ok := negativeWords[t]; ok {
			negWeight += w
			negHits++
		}
	}

	// Exclamation amplifies the dominant polarity.
	exclaims := strings.Count(content, "!")
	if exclaims > 0 {
		boost := float64(exclaims) * 0.25
		if posWeight >= negWeight && posWeight > 0 {
			posWeight += boost
		} else if negWeight > posWeight {
			negWeight += boost
		}
	}

	overall := 0.0
	if posWeight+negWeight > 0 {
		overall = (posWeight - negWeight) / (posWeight + negWeight)
	}

	n := float64(len(tokens))
	positive := float64(posHits) / n
	negative := float64(negHits) / n
	if exclaims > 0 && posHits >= negHits && posHits > 0 {
		positive += float64(exclaims) / n
	}
	// Renormalize so the boosted shares still sum to 1.
	if total := positive + negative; total > 1 {
		positive /= total
		negative /= total
	}
	neutral := 1 - positive - negative
	if neutral < 0 {
		neutral = 0
	}

	return types.SentimentResult{
		OverallScore: overall,
		Breakdown: types.SentimentBreakdown{
			Positive: positive,
			Neutral:  neutral,
			Negative: negative,
		},
	}
}
