package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePersonalityNeutralBaseline(t *testing.T) {
	agg := &PersonalityAggregate{CombinedText: "some answers"}

	result := ScorePersonality(agg, NeutralTextAnalysis())
	require.Len(t, result.Dimensions, 5)
	for name, value := range result.Dimensions {
		assert.Equal(t, 50.0, value, "dimension %s", name)
	}
	assert.Empty(t, result.Description)
	assert.Empty(t, result.KeyPhrases)
	assert.Equal(t, []string{
		"Moderate Openness to experience",
		"Moderate Conscientiousness",
		"Moderate Extraversion",
	}, result.KeyTraits)
}

func TestScorePersonalityPositiveSentimentShiftsDimensions(t *testing.T) {
	analysis := TextAnalysis{
		SentimentPositive: 0.9,
		SentimentNeutral:  0.1,
		SentimentNegative: 0.0,
		KeyPhrases:        []string{"working in a team", "helping others"},
	}

	result := ScorePersonality(&PersonalityAggregate{}, analysis)

	// sentiment=0.9, phrases=2, social hit "team", cooperation hit "helping"
	assert.InDelta(t, 63.0, result.Dimensions[DimensionOpenness], 0.001)
	assert.InDelta(t, 50.0, result.Dimensions[DimensionConscientiousness], 0.001)
	assert.InDelta(t, 70.5, result.Dimensions[DimensionExtraversion], 0.001)
	assert.InDelta(t, 68.8, result.Dimensions[DimensionAgreeableness], 0.001)
	assert.InDelta(t, 36.5, result.Dimensions[DimensionNeuroticism], 0.001)
}

func TestScorePersonalityClampsToRange(t *testing.T) {
	phrases := make([]string, 40)
	for i := range phrases {
		phrases[i] = "new experience"
	}
	analysis := TextAnalysis{SentimentPositive: 1.0, KeyPhrases: phrases}

	result := ScorePersonality(&PersonalityAggregate{}, analysis)
	assert.Equal(t, 100.0, result.Dimensions[DimensionOpenness])
	assert.Equal(t, 35.0, result.Dimensions[DimensionNeuroticism])
}

func TestScorePersonalityMatchesSpanishKeywords(t *testing.T) {
	analysis := NeutralTextAnalysis()
	analysis.KeyPhrases = []string{"trabajar en equipo", "ayudar a la gente", "mantener el orden"}

	result := ScorePersonality(&PersonalityAggregate{}, analysis)

	// openness: 50 + 3*2 = 56; equipo+gente are social, ayudar cooperation, orden organization
	assert.InDelta(t, 56.0, result.Dimensions[DimensionOpenness], 0.001)
	assert.InDelta(t, 58.0, result.Dimensions[DimensionConscientiousness], 0.001)
	assert.InDelta(t, 64.0, result.Dimensions[DimensionExtraversion], 0.001)
	assert.InDelta(t, 58.0, result.Dimensions[DimensionAgreeableness], 0.001)
}

func TestDescribePersonalityUsesThresholds(t *testing.T) {
	description := describePersonality(map[string]float64{
		DimensionOpenness:          80,
		DimensionConscientiousness: 50,
		DimensionExtraversion:      30,
		DimensionAgreeableness:     50,
		DimensionNeuroticism:       20,
	})

	assert.Contains(t, description, "Creative and curious")
	assert.Contains(t, description, "Reserved and introspective")
	assert.Contains(t, description, "Emotionally stable")
	assert.NotContains(t, description, "organized")
}

func TestPersonalityOverallScoreIsMeanOfDimensions(t *testing.T) {
	result := ScorePersonality(&PersonalityAggregate{}, NeutralTextAnalysis())
	assert.Equal(t, 50.0, result.OverallScore())
}
