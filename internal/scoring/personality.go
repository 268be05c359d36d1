package scoring

import (
	"regexp"
	"sort"
	"strings"
)

// TextAnalysis is the output of the external text-analysis oracle:
// a sentiment split plus extracted key phrases.
type TextAnalysis struct {
	SentimentPositive float64
	SentimentNeutral  float64
	SentimentNegative float64
	KeyPhrases        []string
}

// NeutralTextAnalysis is the fixed fallback used when the oracle is
// unavailable. Scoring it yields the deterministic 50.00 baseline for every
// dimension.
func NeutralTextAnalysis() TextAnalysis {
	return TextAnalysis{
		SentimentPositive: 0.33,
		SentimentNeutral:  0.34,
		SentimentNegative: 0.33,
	}
}

// Polarity collapses the sentiment split into a [-1,1] score.
func (t TextAnalysis) Polarity() float64 {
	return t.SentimentPositive - t.SentimentNegative
}

const (
	DimensionOpenness          = "openness"
	DimensionConscientiousness = "conscientiousness"
	DimensionExtraversion      = "extraversion"
	DimensionAgreeableness     = "agreeableness"
	DimensionNeuroticism       = "neuroticism"
)

var dimensionOrder = []string{
	DimensionOpenness,
	DimensionConscientiousness,
	DimensionExtraversion,
	DimensionAgreeableness,
	DimensionNeuroticism,
}

// Keyword stem families matched against extracted key phrases. Stems cover
// English and Spanish phrasing since test content ships in both.
var (
	organizationWords = regexp.MustCompile(`(?i)(organiz|plan|respons|order|duty|deber|orden)`)
	socialWords       = regexp.MustCompile(`(?i)(group|people|social|team|friend|grupo|gente|equipo|amig)`)
	cooperationWords  = regexp.MustCompile(`(?i)(help|cooper|support|collab|ayud|apoyo)`)
	stressWords       = regexp.MustCompile(`(?i)(stress|anxi|worr|nerv|problem|estr|preocup)`)
)

func countMatches(phrases []string, re *regexp.Regexp) int {
	count := 0
	for _, phrase := range phrases {
		if re.MatchString(phrase) {
			count++
		}
	}
	return count
}

// ScorePersonality derives the five trait dimensions from the analysis:
// every dimension starts at the 50 baseline and is shifted by sentiment
// polarity and keyword-family hit counts, then clamped to [0,100].
func ScorePersonality(agg *PersonalityAggregate, analysis TextAnalysis) *PersonalityResult {
	sentiment := analysis.Polarity()
	phrases := analysis.KeyPhrases

	organizationHits := countMatches(phrases, organizationWords)
	socialHits := countMatches(phrases, socialWords)
	cooperationHits := countMatches(phrases, cooperationWords)
	stressHits := countMatches(phrases, stressWords)

	dimensions := map[string]float64{
		DimensionOpenness:          50.0 + float64(len(phrases))*2.0 + sentiment*10,
		DimensionConscientiousness: 50.0 + float64(organizationHits)*8.0,
		DimensionExtraversion:      50.0 + sentiment*15 + float64(socialHits)*7.0,
		DimensionAgreeableness:     50.0 + sentiment*12 + float64(cooperationHits)*8.0,
		DimensionNeuroticism:       50.0 - sentiment*15 + float64(stressHits)*8.0,
	}
	for name, value := range dimensions {
		dimensions[name] = Round2(clamp(value, 0, 100))
	}

	keyPhrases := phrases
	if keyPhrases == nil {
		keyPhrases = []string{}
	}

	return &PersonalityResult{
		Dimensions:  dimensions,
		Description: describePersonality(dimensions),
		KeyTraits:   keyTraits(dimensions),
		KeyPhrases:  keyPhrases,
	}
}

func describePersonality(dimensions map[string]float64) string {
	var description strings.Builder

	appendTrait := func(value float64, high, low string) {
		if value > 70 {
			description.WriteString(high)
		} else if value < 40 {
			description.WriteString(low)
		}
	}

	appendTrait(dimensions[DimensionOpenness],
		"Creative and curious, open to new experiences. ",
		"Practical and traditional, prefers the familiar. ")
	appendTrait(dimensions[DimensionConscientiousness],
		"Highly organized and responsible, with a strong sense of duty. ",
		"Flexible and spontaneous, values adaptability. ")
	appendTrait(dimensions[DimensionExtraversion],
		"Sociable and energetic, enjoys interacting with others. ",
		"Reserved and introspective, values time alone. ")
	appendTrait(dimensions[DimensionAgreeableness],
		"Cooperative and empathetic, seeks harmony in relationships. ",
		"Direct and analytical, values objectivity. ")
	appendTrait(dimensions[DimensionNeuroticism],
		"Emotionally sensitive, may experience stress easily.",
		"Emotionally stable and resilient under pressure.")

	return strings.TrimSpace(description.String())
}

var traitNames = map[string]string{
	DimensionOpenness:          "Openness to experience",
	DimensionConscientiousness: "Conscientiousness",
	DimensionExtraversion:      "Extraversion",
	DimensionAgreeableness:     "Agreeableness",
	DimensionNeuroticism:       "Emotional sensitivity",
}

func keyTraits(dimensions map[string]float64) []string {
	names := append([]string(nil), dimensionOrder...)
	sort.SliceStable(names, func(i, j int) bool {
		return dimensions[names[i]] > dimensions[names[j]]
	})

	traits := make([]string, 0, 3)
	for _, name := range names[:3] {
		level := "Low"
		if dimensions[name] > 70 {
			level = "High"
		} else if dimensions[name] > 40 {
			level = "Moderate"
		}
		traits = append(traits, level+" "+traitNames[name])
	}
	return traits
}
