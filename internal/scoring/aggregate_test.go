package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/models/db_models"
	"careercompass/pkg/utils"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func answered(category string, weight int, others ...db_models.AnswerOption) AnsweredQuestion {
	questionID := uuid.New()
	chosen := db_models.AnswerOption{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		QuestionID:  questionID,
		WeightValue: intPtr(weight),
		Category:    strPtr(category),
	}
	options := append([]db_models.AnswerOption{chosen}, others...)
	for i := range options {
		options[i].QuestionID = questionID
	}
	return AnsweredQuestion{
		Question: db_models.Question{
			BaseModel:     db_models.BaseModel{ID: questionID},
			AnswerOptions: options,
		},
		Option: chosen,
	}
}

func TestBuildVocationalAggregateSumsWeightsPerCategory(t *testing.T) {
	answers := []AnsweredQuestion{
		answered("science", 3),
		answered("science", 2),
		answered("arts", 4),
	}

	agg, err := BuildVocationalAggregate(answers, 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"science": 5, "arts": 4}, agg.CategoryScores)
}

func TestBuildVocationalAggregateRejectsIncompleteSubmission(t *testing.T) {
	answers := []AnsweredQuestion{answered("science", 3)}

	_, err := BuildVocationalAggregate(answers, 2)
	assert.ErrorIs(t, err, utils.ErrIncompleteSubmission)
}

func TestBuildVocationalAggregateRejectsForeignOption(t *testing.T) {
	answer := answered("science", 3)
	answer.Option.QuestionID = uuid.New()

	_, err := BuildVocationalAggregate([]AnsweredQuestion{answer}, 1)
	assert.ErrorIs(t, err, utils.ErrUnknownOption)
}

func TestBuildCognitiveAggregateTracksPerQuestionCeilings(t *testing.T) {
	// Two logic questions with ceilings 5 and 3; user scored 4 and 1.
	first := answered("logic", 4, db_models.AnswerOption{
		WeightValue: intPtr(5), Category: strPtr("logic"),
	})
	second := answered("logic", 1, db_models.AnswerOption{
		WeightValue: intPtr(3), Category: strPtr("logic"),
	})

	agg, err := BuildCognitiveAggregate([]AnsweredQuestion{first, second}, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, agg.Scores["logic"])
	assert.Equal(t, 8, agg.MaxScores["logic"])
}

func TestBuildCognitiveAggregateSkipsUncategorizedOptions(t *testing.T) {
	answer := answered("memory", 2)
	answer.Option.Category = nil

	agg, err := BuildCognitiveAggregate([]AnsweredQuestion{answer}, 1)
	require.NoError(t, err)
	assert.Empty(t, agg.Scores)
}

func TestBuildPersonalityAggregateConcatenatesOptionTexts(t *testing.T) {
	first := answered("", 0)
	first.Option.OptionText = "I enjoy working with people"
	second := answered("", 0)
	second.Option.OptionText = "I plan my week in advance"

	agg, err := BuildPersonalityAggregate([]AnsweredQuestion{first, second}, 2)
	require.NoError(t, err)
	assert.Equal(t, "I enjoy working with people. I plan my week in advance. ", agg.CombinedText)
}
