package scoring

import (
	"fmt"
	"sort"
)

const topAreaCount = 5

// ScoreVocational ranks the aggregated categories by share of the total
// weight and keeps the top five. Ties are broken by area name so the ranking
// is deterministic.
func ScoreVocational(agg *VocationalAggregate) *VocationalResult {
	total := 0
	for _, score := range agg.CategoryScores {
		total += score
	}

	type areaPct struct {
		area string
		pct  float64
	}
	areas := make([]areaPct, 0, len(agg.CategoryScores))
	for _, area := range sortedKeys(agg.CategoryScores) {
		pct := 0.0
		if total > 0 {
			pct = Round2(float64(agg.CategoryScores[area]) * 100.0 / float64(total))
		}
		areas = append(areas, areaPct{area: area, pct: pct})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].pct != areas[j].pct {
			return areas[i].pct > areas[j].pct
		}
		return areas[i].area < areas[j].area
	})
	if len(areas) > topAreaCount {
		areas = areas[:topAreaCount]
	}

	result := &VocationalResult{}
	for i, a := range areas {
		result.TopAreas = append(result.TopAreas, VocationalTopArea{
			Area:       a.area,
			Percentage: a.pct,
			Ranking:    i + 1,
		})
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Consider careers in the %s area, where you can develop your full potential.", a.area))
	}
	return result
}
