// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"sort"
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

// Tone taxonomy recognized by the classifier.
const (
	ToneProfessional = "professional"
	ToneCasual       = "casual"
	ToneUrgent       = "urgent"
	TonePlayful      = "playful"
	ToneFriendly     = "friendly"
)

// toneMarkers maps each tone to its lexical cue words.
var toneMarkers = map[string][]string{
	ToneProfessional: {
		"solution", "enterprise", "professional", "expertise", "comprehensive",
		"strategic", "optimize", "leverage", "implementation", "methodology",
		"furthermore", "therefore", "accordingly", "ensure", "deliver",
		"regarding", "consequently", "robust", "scalable", "stakeholders",
	},
	ToneCasual: {
		"hey", "yeah", "cool", "stuff", "things", "awesome", "pretty",
		"guys", "folks", "gonna", "wanna", "kinda", "super", "totally",
	},
	ToneUrgent: {
		"now", "today", "hurry", "limited", "deadline", "immediately", "act",
		"urgent", "last", "expires", "fast", "don't miss", "final", "ends",
	},
	TonePlayful: {
		"fun", "play", "exciting", "wow", "yay", "love", "amazing",
		"awesome", "happy", "celebrate", "magic", "sparkle", "delightful",
	},
	ToneFriendly: {
		"welcome", "thanks", "thank", "together", "help", "helping", "share",
		"community", "friends", "support", "care", "appreciate", "glad",
	},
}

// toneOrder fixes iteration order so repeated runs rank ties identically.
var toneOrder = []string{ToneProfessional, ToneCasual, ToneUrgent, TonePlayful, ToneFriendly}

// AnalyzeTone classifies content into the fixed tone taxonomy using lexical
// and structural cues and returns the full ranked distribution.
func AnalyzeTone(content string) types.ToneResult {
	tokens := Tokenize(content)
	if len(tokens) == 0 {
		return types.ToneResult{
			PrimaryTone:     ToneProfessional,
			ToneConfidence:  0,
			AllTones:        nil,
			ToneConsistency: 1.0,
		}
	}

	raw := toneSignal(content, tokens)

	total := 0.0
	for _, tone := range toneOrder {
		total += raw[tone]
	}

	all := make([]types.ToneScore, 0, len(toneOrder))
	for _, tone := range toneOrder {
		score := 0.0
		if total > 0 {
			score = raw[tone] / total
		}
		all = append(all, types.ToneScore{Tone: tone, Score: score})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Score > all[j].Score })

	primary := all[0].Tone
	confidence := all[0].Score
	if total == 0 {
		// No cues at all: fall back to structural default.
		primary = ToneProfessional
		confidence = 0
	}

	return types.ToneResult{
		PrimaryTone:     primary,
		ToneConfidence:  confidence,
		AllTones:        all,
		ToneConsistency: toneConsistency(content, primary),
	}
}

// toneSignal scores each tone from marker hits plus structural cues: long
// sentences read professional, dense exclamation reads playful and urgent.
func toneSignal(content string, tokens []string) map[string]float64 {
	raw := make(map[string]float64, len(toneOrder))
	lower := strings.ToLower(content)

	tokenSet := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tokenSet[t]++
	}

	for _, tone := range toneOrder {
		score := 0.0
		for _, marker := range toneMarkers[tone] {
			if strings.Contains(marker, " ") {
				score += float64(strings.Count(lower, marker))
				continue
			}
			score += float64(tokenSet[marker])
		}
		raw[tone] = score
	}

	sentences := SplitSentences(content)
	mean, _ := sentenceLengthStats(sentences)
	if mean >= 18 {
		raw[ToneProfessional] += 1.5
	} else if mean > 0 && mean <= 8 {
		raw[ToneCasual] += 0.5
	}

	exclaims := strings.Count(content, "!")
	if exclaims > 0 {
		raw[TonePlayful] += float64(exclaims) * 0.75
		raw[ToneUrgent] += float64(exclaims) * 0.5
	}

	return raw
}

// toneConsistency measures how uniformly sentences share the overall primary
// tone. A single sentence is perfectly consistent.
func toneConsistency(content string, primary string) float64 {
	sentences := SplitSentences(content)
	if len(sentences) <= 1 {
		return 1.0
	}

	agree := 0
	for _, s := range sentences {
		tokens := Tokenize(s)
		raw := toneSignal(s, tokens)
		best, bestScore := primary, 0.0
		for _, tone := range toneOrder {
			if raw[tone] > bestScore {
				best, bestScore = tone, raw[tone]
			}
		}
		if bestScore == 0 || best == primary {
			agree++
		}
	}
	return float64(agree) / float64(len(sentences))
}
