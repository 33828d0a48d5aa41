// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"sort"
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

// Discrete emotions detected from lexical markers.
const (
	EmotionJoy        = "joy"
	EmotionExcitement = "excitement"
	EmotionAnger      = "anger"
	EmotionFear       = "fear"
	EmotionSadness    = "sadness"
)

var emotionMarkers = map[string][]string{
	EmotionJoy: {
		"love", "happy", "joy", "delighted", "wonderful", "enjoy", "glad",
		"celebrate", "smile", "cheerful", "pleased", "amazing",
	},
	EmotionExcitement: {
		"exciting", "excited", "thrilled", "incredible", "awesome", "wow",
		"amazing", "unbelievable", "spectacular", "can't wait", "finally",
	},
	EmotionAnger: {
		"angry", "furious", "outraged", "hate", "annoying", "unacceptable",
		"terrible", "fed up", "ridiculous",
	},
	EmotionFear: {
		"afraid", "scared", "worried", "worry", "anxious", "risk", "danger",
		"threat", "fear", "uncertain",
	},
	EmotionSadness: {
		"sad", "unfortunately", "sorry", "regret", "miss", "loss",
		"disappointed", "disappointing", "grief",
	},
}

var emotionOrder = []string{EmotionJoy, EmotionExcitement, EmotionAnger, EmotionFear, EmotionSadness}

// AnalyzeEmotion detects discrete emotions from lexical markers.
// Exclamation-laden text amplifies excitement. Primary emotions are ranked by
// score with alphabetical tie-breaking for determinism.
func AnalyzeEmotion(content string) types.EmotionResult {
	tokens := Tokenize(content)
	if len(tokens) == 0 {
		return types.EmotionResult{}
	}

	lower := strings.ToLower(content)
	tokenSet := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tokenSet[t]++
	}

	scores := make(map[string]float64, len(emotionOrder))
	for _, emotion := range emotionOrder {
		score := 0.0
		for _, marker := range emotionMarkers[emotion] {
			if strings.Contains(marker, " ") || strings.Contains(marker, "'") {
				score += float64(strings.Count(lower, marker))
				continue
			}
			score += float64(tokenSet[marker])
		}
		scores[emotion] = score
	}

	exclaims := strings.Count(content, "!")
	if exclaims > 0 {
		scores[EmotionExcitement] += float64(exclaims) * 0.5
	}

	type scored struct {
		emotion string
		score   float64
	}
	ranked := make([]scored, 0, len(emotionOrder))
	total := 0.0
	for _, e := range emotionOrder {
		total += scores[e]
		if scores[e] > 0 {
			ranked = append(ranked, scored{e, scores[e]})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].emotion < ranked[j].emotion
	})

	primary := make([]string, 0, len(ranked))
	for _, r := range ranked {
		primary = append(primary, r.emotion)
	}

	intensity := total / float64(len(tokens))
	if intensity > 1 {
		intensity = 1
	}

	return types.EmotionResult{
		PrimaryEmotions:  primary,
		EmotionIntensity: intensity,
	}
}
