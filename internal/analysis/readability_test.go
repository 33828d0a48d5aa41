package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeReadability_DenseTextReadsHarder(t *testing.T) {
	dense := AnalyzeReadability("The aforementioned implementation necessitates comprehensive evaluation of multifaceted parameters.")
	simple := AnalyzeReadability("We check your text. It is quick.")

	assert.Greater(t, dense.GunningFog, simple.GunningFog)
	assert.Less(t, dense.FleschKincaid, simple.FleschKincaid)
	assert.Greater(t, dense.GradeLevel, simple.GradeLevel)
}

func TestAnalyzeReadability_GradeBuckets(t *testing.T) {
	simple := AnalyzeReadability("We help you. It is easy. You will like it.")
	dense := AnalyzeReadability("The aforementioned implementation necessitates comprehensive evaluation of multifaceted parameters alongside considerable organizational determination.")

	assert.Contains(t, []string{"A", "B"}, simple.Grade)
	assert.Equal(t, "F", dense.Grade)
}

func TestAnalyzeReadability_EmptyContent(t *testing.T) {
	result := AnalyzeReadability("")

	assert.Zero(t, result.FleschKincaid)
	assert.Zero(t, result.GunningFog)
	assert.Zero(t, result.TotalWords)
	assert.Equal(t, "A", result.Grade)
}

func TestAnalyzeReadability_Counts(t *testing.T) {
	result := AnalyzeReadability("One two three. Four five six seven.")

	assert.Equal(t, 2, result.TotalSentences)
	assert.Equal(t, 7, result.TotalWords)
	assert.InDelta(t, 3.5, result.AvgSentenceLength, 0.001)
}
