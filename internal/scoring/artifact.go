package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// ResultArtifact is the typed outcome of scoring one completed test attempt.
// It is serialized to JSON only at the storage boundary.
type ResultArtifact interface {
	Kind() TestKind
	OverallScore() float64
}

type VocationalTopArea struct {
	Area       string  `json:"area"`
	Percentage float64 `json:"percentage"`
	Ranking    int     `json:"ranking"`
}

type VocationalResult struct {
	TopAreas        []VocationalTopArea `json:"topAreas"`
	Recommendations []string            `json:"recommendations"`
}

func (r *VocationalResult) Kind() TestKind { return KindVocational }

func (r *VocationalResult) OverallScore() float64 {
	if len(r.TopAreas) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range r.TopAreas {
		sum += a.Percentage
	}
	return Round2(sum / float64(len(r.TopAreas)))
}

type CognitiveAreaScore struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

type CognitiveResult struct {
	CognitiveAreas map[string]CognitiveAreaScore `json:"cognitiveAreas"`
	OverallLevel   string                        `json:"overallLevel"`
}

func (r *CognitiveResult) Kind() TestKind { return KindCognitive }

func (r *CognitiveResult) OverallScore() float64 {
	if len(r.CognitiveAreas) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range r.CognitiveAreas {
		sum += a.Score
	}
	return Round2(sum / float64(len(r.CognitiveAreas)))
}

type PersonalityResult struct {
	Dimensions  map[string]float64 `json:"dimensions"`
	Description string             `json:"description"`
	KeyTraits   []string           `json:"keyTraits"`
	KeyPhrases  []string           `json:"keyPhrases"`
}

func (r *PersonalityResult) Kind() TestKind { return KindPersonality }

func (r *PersonalityResult) OverallScore() float64 {
	if len(r.Dimensions) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range r.Dimensions {
		sum += v
	}
	return Round2(sum / float64(len(r.Dimensions)))
}

// MarshalArtifact renders an artifact for storage.
func MarshalArtifact(a ResultArtifact) (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("marshal %s artifact: %w", a.Kind(), err)
	}
	return string(data), nil
}

// UnmarshalArtifact restores the typed artifact for a known test kind.
func UnmarshalArtifact(kind TestKind, data []byte) (ResultArtifact, error) {
	switch kind {
	case KindPersonality:
		var r PersonalityResult
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("unmarshal personality artifact: %w", err)
		}
		return &r, nil
	case KindVocational:
		var r VocationalResult
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("unmarshal vocational artifact: %w", err)
		}
		return &r, nil
	case KindCognitive:
		var r CognitiveResult
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("unmarshal cognitive artifact: %w", err)
		}
		return &r, nil
	default:
		return nil, fmt.Errorf("unknown test kind %q", kind)
	}
}

// Round2 rounds half-up to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
