package scoring

const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// LevelFor bands a percentage: <=40 low, <=70 medium, above high.
func LevelFor(percentage float64) string {
	switch {
	case percentage <= 40:
		return LevelLow
	case percentage <= 70:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// ScoreCognitive turns the per-category score/ceiling sums into banded
// percentages. A category with a zero ceiling scores 0 rather than failing.
func ScoreCognitive(agg *CognitiveAggregate) *CognitiveResult {
	result := &CognitiveResult{
		CognitiveAreas: make(map[string]CognitiveAreaScore, len(agg.Scores)),
	}

	sum := 0.0
	for category, score := range agg.Scores {
		pct := 0.0
		if max := agg.MaxScores[category]; max > 0 {
			pct = Round2(float64(score) * 100.0 / float64(max))
		}
		result.CognitiveAreas[category] = CognitiveAreaScore{
			Score: pct,
			Level: LevelFor(pct),
		}
		sum += pct
	}

	overall := 0.0
	if len(result.CognitiveAreas) > 0 {
		overall = Round2(sum / float64(len(result.CognitiveAreas)))
	}
	result.OverallLevel = LevelFor(overall)
	return result
}
