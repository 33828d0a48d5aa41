// Package analysis provides stateless linguistic analysis of marketing copy.
package analysis

import (
	"strings"

	"github.com/jonathan/brandguard/internal/types"
)

var formalMarkers = []string{
	"furthermore", "therefore", "moreover", "consequently", "accordingly",
	"regarding", "hence", "nevertheless", "notwithstanding", "pursuant",
	"shall", "herein", "thereby", "whom",
}

var informalMarkers = []string{
	"gonna", "wanna", "kinda", "sorta", "yeah", "hey", "cool", "awesome",
	"stuff", "guys", "folks", "super", "totally", "btw", "ok", "okay",
}

// ClassifyFormality buckets content into a formality level from connective
// and hedge words, contractions and slang markers. Empty content classifies
// as moderate_formal.
func ClassifyFormality(content string) string {
	tokens := Tokenize(content)
	if len(tokens) == 0 {
		return types.FormalityModerateFormal
	}

	tokenSet := make(map[string]int, len(tokens))
	contractions := 0
	for _, t := range tokens {
		tokenSet[t]++
		if strings.Contains(t, "'") {
			contractions++
		}
	}

	formal := 0
	for _, m := range formalMarkers {
		formal += tokenSet[m]
	}
	informal := contractions
	for _, m := range informalMarkers {
		informal += tokenSet[m]
	}

	n := float64(len(tokens))
	score := (float64(formal) - float64(informal)) / n

	switch {
	case score >= 0.02:
		return types.FormalityFormal
	case score >= 0:
		return types.FormalityModerateFormal
	case score >= -0.04:
		return types.FormalityModerateInformal
	default:
		return types.FormalityInformal
	}
}
