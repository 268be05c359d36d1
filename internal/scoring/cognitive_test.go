package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCognitivePercentagesAndLevels(t *testing.T) {
	agg := &CognitiveAggregate{
		Scores:    map[string]int{"A": 8, "B": 3},
		MaxScores: map[string]int{"A": 10, "B": 5},
	}

	result := ScoreCognitive(agg)
	require.Len(t, result.CognitiveAreas, 2)

	assert.Equal(t, CognitiveAreaScore{Score: 80.0, Level: LevelHigh}, result.CognitiveAreas["A"])
	assert.Equal(t, CognitiveAreaScore{Score: 60.0, Level: LevelMedium}, result.CognitiveAreas["B"])
	assert.Equal(t, LevelMedium, result.OverallLevel)
	assert.InDelta(t, 70.0, result.OverallScore(), 0.001)
}

func TestScoreCognitiveZeroCeiling(t *testing.T) {
	agg := &CognitiveAggregate{
		Scores:    map[string]int{"A": 3},
		MaxScores: map[string]int{"A": 0},
	}

	result := ScoreCognitive(agg)
	assert.Equal(t, CognitiveAreaScore{Score: 0.0, Level: LevelLow}, result.CognitiveAreas["A"])
}

func TestLevelForBoundaries(t *testing.T) {
	assert.Equal(t, LevelLow, LevelFor(40.00))
	assert.Equal(t, LevelMedium, LevelFor(40.01))
	assert.Equal(t, LevelMedium, LevelFor(70.00))
	assert.Equal(t, LevelHigh, LevelFor(70.01))
}
