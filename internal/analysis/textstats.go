// Package analysis provides stateless linguistic analysis of marketing copy:
// tone, sentiment, readability, emotion, keyword density, brand alignment and
// formality. All functions are deterministic for identical input and degrade
// to neutral results on empty content.
package analysis

import (
	"strings"
	"unicode"
)

// SplitSentences splits content on terminal punctuation, dropping empty
// fragments. A trailing fragment without terminal punctuation counts as a
// sentence.
func SplitSentences(content string) []string {
	var sentences []string
	var sb strings.Builder

	for _, r := range content {
		sb.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(sb.String())
			if containsLetter(s) {
				sentences = append(sentences, s)
			}
			sb.Reset()
		}
	}
	if s := strings.TrimSpace(sb.String()); containsLetter(s) {
		sentences = append(sentences, s)
	}
	return sentences
}

// Tokenize lowercases content and splits it into word tokens, keeping
// internal apostrophes so contractions survive as single tokens.
func Tokenize(content string) []string {
	lower := strings.ToLower(content)
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.Trim(t, "'")
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CountSyllables estimates syllables in a word by counting vowel groups,
// discounting a trailing silent e. Every word has at least one syllable.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing e, but not for words like "be".
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// sentenceLengthStats returns the mean and population variance of per-sentence
// word counts.
func sentenceLengthStats(sentences []string) (mean, variance float64) {
	if len(sentences) == 0 {
		return 0, 0
	}
	lengths := make([]float64, len(sentences))
	total := 0.0
	for i, s := range sentences {
		lengths[i] = float64(len(Tokenize(s)))
		total += lengths[i]
	}
	mean = total / float64(len(sentences))
	for _, l := range lengths {
		d := l - mean
		variance += d * d
	}
	variance /= float64(len(sentences))
	return mean, variance
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
