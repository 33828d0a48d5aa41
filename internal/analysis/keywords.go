// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

// AnalyzeKeywordDensity computes per-keyword occurrence density normalized by
// word count. Multi-word keywords are matched as phrases, single words as
// whole tokens. An empty keyword list yields an empty density map.
func AnalyzeKeywordDensity(content string, keywords []string) types.KeywordDensityResult {
	tokens := Tokenize(content)
	result := types.KeywordDensityResult{
		Densities:     make(map[string]float64, len(keywords)),
		ContentLength: len(tokens),
	}
	if len(tokens) == 0 {
		for _, kw := range keywords {
			if kw = strings.TrimSpace(kw); kw != "" {
				result.Densities[strings.ToLower(kw)] = 0
			}
		}
		return result
	}

	lower := strings.ToLower(content)
	tokenCounts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tokenCounts[t]++
	}

	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		var occurrences int
		if strings.Contains(kw, " ") {
			occurrences = strings.Count(lower, kw)
		} else {
			occurrences = tokenCounts[kw]
		}
		result.Densities[kw] = float64(occurrences) / float64(len(tokens))
		result.TotalKeywords += occurrences
	}
	return result
}
