package scoring

import (
	"strings"

	"careercompass/internal/models/db_models"
	"careercompass/pkg/utils"
)

type TestKind string

const (
	KindPersonality TestKind = "personality"
	KindVocational  TestKind = "vocational_interests"
	KindCognitive   TestKind = "cognitive_skills"
)

// AnsweredQuestion pairs a question with the option the user chose for it.
type AnsweredQuestion struct {
	Question db_models.Question
	Option   db_models.AnswerOption
}

// VocationalAggregate holds summed option weights per category.
type VocationalAggregate struct {
	CategoryScores map[string]int
}

// CognitiveAggregate holds per-category summed weights plus the summed
// per-question ceilings. The ceiling is the max weight among the options of
// the answered question that share the category, so questions with different
// option counts contribute comparable maxima.
type CognitiveAggregate struct {
	Scores    map[string]int
	MaxScores map[string]int
}

// PersonalityAggregate is the chosen option texts folded into one blob for
// downstream text analysis.
type PersonalityAggregate struct {
	CombinedText string
}

func validateAnswers(answers []AnsweredQuestion, questionsToShow int) error {
	if len(answers) != questionsToShow {
		return utils.ErrIncompleteSubmission
	}
	for _, a := range answers {
		if a.Option.QuestionID != a.Question.ID {
			return utils.ErrUnknownOption
		}
	}
	return nil
}

func BuildVocationalAggregate(answers []AnsweredQuestion, questionsToShow int) (*VocationalAggregate, error) {
	if err := validateAnswers(answers, questionsToShow); err != nil {
		return nil, err
	}

	agg := &VocationalAggregate{CategoryScores: make(map[string]int)}
	for _, a := range answers {
		if a.Option.Category == nil {
			continue
		}
		weight := 0
		if a.Option.WeightValue != nil {
			weight = *a.Option.WeightValue
		}
		agg.CategoryScores[*a.Option.Category] += weight
	}
	return agg, nil
}

func BuildCognitiveAggregate(answers []AnsweredQuestion, questionsToShow int) (*CognitiveAggregate, error) {
	if err := validateAnswers(answers, questionsToShow); err != nil {
		return nil, err
	}

	agg := &CognitiveAggregate{
		Scores:    make(map[string]int),
		MaxScores: make(map[string]int),
	}
	for _, a := range answers {
		if a.Option.Category == nil || a.Option.WeightValue == nil {
			continue
		}
		category := *a.Option.Category
		agg.Scores[category] += *a.Option.WeightValue

		maxWeight := 0
		for _, opt := range a.Question.AnswerOptions {
			if opt.Category == nil || *opt.Category != category {
				continue
			}
			if opt.WeightValue != nil && *opt.WeightValue > maxWeight {
				maxWeight = *opt.WeightValue
			}
		}
		agg.MaxScores[category] += maxWeight
	}
	return agg, nil
}

func BuildPersonalityAggregate(answers []AnsweredQuestion, questionsToShow int) (*PersonalityAggregate, error) {
	if err := validateAnswers(answers, questionsToShow); err != nil {
		return nil, err
	}

	var combined strings.Builder
	for _, a := range answers {
		combined.WriteString(a.Option.OptionText)
		combined.WriteString(". ")
	}
	return &PersonalityAggregate{CombinedText: combined.String()}, nil
}
