// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"github.com/jonathan/brandguard/internal/types"
)

// AnalyzeReadability computes the Flesch reading-ease score, Flesch-Kincaid
// grade level and Gunning Fog index from syllable/word/sentence counts, and
// buckets the ease score into a letter grade. Content with no words returns
// an all-zero result with grade "A".
func AnalyzeReadability(content string) types.ReadabilityResult {
	sentences := SplitSentences(content)
	tokens := Tokenize(content)

	if len(tokens) == 0 || len(sentences) == 0 {
		return types.ReadabilityResult{Grade: "A"}
	}

	totalSyllables := 0
	complexWords := 0
	for _, t := range tokens {
		syl := CountSyllables(t)
		totalSyllables += syl
		if syl >= 3 {
			complexWords++
		}
	}

	words := float64(len(tokens))
	sents := float64(len(sentences))
	wordsPerSentence := words / sents
	syllablesPerWord := float64(totalSyllables) / words

	flesch := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	gradeLevel := 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59
	if gradeLevel < 0 {
		gradeLevel = 0
	}
	fog := 0.4 * (wordsPerSentence + 100*float64(complexWords)/words)

	mean, variance := sentenceLengthStats(sentences)

	return types.ReadabilityResult{
		FleschKincaid:     flesch,
		GunningFog:        fog,
		AvgSentenceLength: mean,
		Grade:             readabilityGrade(flesch),
		GradeLevel:        gradeLevel,
		SentenceLengthVar: variance,
		TotalSentences:    len(sentences),
		TotalWords:        len(tokens),
	}
}

// readabilityGrade buckets a Flesch reading-ease score. Higher ease reads
// easier, so it earns a better letter.
func readabilityGrade(flesch float64) string {
	switch {
	case flesch >= 90:
		return "A"
	case flesch >= 70:
		return "B"
	case flesch >= 50:
		return "C"
	case flesch >= 30:
		return "D"
	default:
		return "F"
	}
}
