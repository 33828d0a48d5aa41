package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment_PositiveContent(t *testing.T) {
	result := AnalyzeSentiment("We love helping our amazing customers succeed!")

	assert.Greater(t, result.OverallScore, 0.0)
	assert.Greater(t, result.Breakdown.Positive, result.Breakdown.Negative)
}

func TestAnalyzeSentiment_NegativeContent(t *testing.T) {
	result := AnalyzeSentiment("This terrible product is the worst failure. I hate the awful experience.")

	assert.Less(t, result.OverallScore, 0.0)
	assert.Greater(t, result.Breakdown.Negative, result.Breakdown.Positive)
}

func TestAnalyzeSentiment_NeutralContent(t *testing.T) {
	result := AnalyzeSentiment("The meeting is scheduled for Tuesday at three.")

	assert.Zero(t, result.OverallScore)
	assert.Greater(t, result.Breakdown.Neutral, 0.5)
}

func TestAnalyzeSentiment_EmptyContent(t *testing.T) {
	result := AnalyzeSentiment("")

	assert.Zero(t, result.OverallScore)
	assert.Equal(t, 1.0, result.Breakdown.Neutral)
}

func TestAnalyzeSentiment_BreakdownSharesSumToOne(t *testing.T) {
	contents := []string{
		"We love this great product but the poor packaging is disappointing.",
		"love hate!",
		"We love it! Amazing! Even the bad parts are great!",
		"Terrible, awful, and we love nothing about it!",
	}
	for _, content := range contents {
		result := AnalyzeSentiment(content)

		sum := result.Breakdown.Positive + result.Breakdown.Neutral + result.Breakdown.Negative
		assert.InDelta(t, 1.0, sum, 0.001, "content: %s", content)
		assert.GreaterOrEqual(t, result.Breakdown.Neutral, 0.0, "content: %s", content)
	}
}
