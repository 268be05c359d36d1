package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/models/db_models"
	"careercompass/internal/models/request_models"
	"careercompass/internal/repositories"
	"careercompass/internal/scoring"
	mem "careercompass/pkg/memcache"
	"careercompass/pkg/utils"
)

type fakeTestRepo struct {
	repositories.TestRepositoryInterface
	test      *db_models.Test
	questions []db_models.Question
}

func (f *fakeTestRepo) GetTestByID(ctx context.Context, testID uuid.UUID) (*db_models.Test, error) {
	if f.test != nil && f.test.ID == testID {
		return f.test, nil
	}
	return nil, nil
}

func (f *fakeTestRepo) GetActiveTestByKind(ctx context.Context, kind string) (*db_models.Test, error) {
	if f.test != nil && f.test.TestType.Name == kind && f.test.Active {
		return f.test, nil
	}
	return nil, nil
}

func (f *fakeTestRepo) GetRandomActiveQuestions(ctx context.Context, testID uuid.UUID, count int) ([]db_models.Question, error) {
	if count > len(f.questions) {
		count = len(f.questions)
	}
	return f.questions[:count], nil
}

func (f *fakeTestRepo) GetQuestionsByIDs(ctx context.Context, testID uuid.UUID, questionIDs []uuid.UUID) ([]db_models.Question, error) {
	wanted := make(map[uuid.UUID]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}
	var out []db_models.Question
	for _, q := range f.questions {
		if wanted[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

type capturingEvaluationRepo struct {
	repositories.EvaluationRepositoryInterface
	saved      *db_models.CompletedEvaluation
	savedAreas []repositories.AreaResultInput
	stored     *db_models.CompletedEvaluation
}

func (f *capturingEvaluationRepo) SaveSubmission(ctx context.Context, evaluation *db_models.CompletedEvaluation, areas []repositories.AreaResultInput) error {
	evaluation.ID = uuid.New()
	f.saved = evaluation
	f.savedAreas = areas
	return nil
}

func (f *capturingEvaluationRepo) GetEvaluationByID(ctx context.Context, evaluationID uuid.UUID) (*db_models.CompletedEvaluation, error) {
	if f.stored != nil && f.stored.ID == evaluationID {
		return f.stored, nil
	}
	return nil, nil
}

type neutralTextClient struct{}

func (neutralTextClient) AnalyzeText(ctx context.Context, text string) scoring.TextAnalysis {
	return scoring.NeutralTextAnalysis()
}

func buildVocationalTest(t *testing.T, categories []string, weights []int) (*db_models.Test, []db_models.Question) {
	t.Helper()
	test := &db_models.Test{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		TestType:        db_models.TestType{Name: string(scoring.KindVocational)},
		Name:            "Vocational Interests",
		QuestionsToShow: len(categories),
		Active:          true,
	}

	questions := make([]db_models.Question, 0, len(categories))
	for i := range categories {
		questionID := uuid.New()
		questions = append(questions, db_models.Question{
			BaseModel:    db_models.BaseModel{ID: questionID},
			TestID:       test.ID,
			QuestionText: "question",
			AnswerOptions: []db_models.AnswerOption{{
				BaseModel:   db_models.BaseModel{ID: uuid.New()},
				QuestionID:  questionID,
				OptionText:  "option",
				WeightValue: intPtrSvc(weights[i]),
				Category:    strPtrSvc(categories[i]),
			}},
		})
	}
	return test, questions
}

func intPtrSvc(v int) *int       { return &v }
func strPtrSvc(v string) *string { return &v }

func submitRequestFor(test *db_models.Test, questions []db_models.Question) request_models.SubmitTestRequest {
	req := request_models.SubmitTestRequest{TestID: test.ID.String()}
	for _, q := range questions {
		req.Answers = append(req.Answers, request_models.UserAnswerRequest{
			QuestionID: q.ID.String(),
			OptionID:   q.AnswerOptions[0].ID.String(),
		})
	}
	return req
}

func TestSubmitTestScoresVocationalAndPersists(t *testing.T) {
	test, questions := buildVocationalTest(t,
		[]string{"technology", "technology", "arts", "science"},
		[]int{3, 3, 2, 2})
	evalRepo := &capturingEvaluationRepo{}
	cache := mem.NewRecommendationCache()

	service := NewEvaluationService(
		&fakeTestRepo{test: test, questions: questions},
		evalRepo,
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		cache,
	)

	userID := uuid.New()
	cache.Set(userID, RecommendationKindCareer, nil)

	result, err := service.SubmitTest(context.Background(), userID, string(scoring.KindVocational), submitRequestFor(test, questions))
	require.NoError(t, err)

	assert.Equal(t, string(scoring.KindVocational), result.Kind)
	require.NotNil(t, evalRepo.saved)
	assert.Len(t, evalRepo.saved.Answers, 4)
	require.NotNil(t, evalRepo.saved.Result)

	// technology 60%, arts 20%, science 20%; deterministic tie-break by name
	require.Len(t, evalRepo.savedAreas, 3)
	assert.Equal(t, repositories.AreaResultInput{AreaName: "technology", Percentage: 60.0, Ranking: 1}, evalRepo.savedAreas[0])
	assert.Equal(t, repositories.AreaResultInput{AreaName: "arts", Percentage: 20.0, Ranking: 2}, evalRepo.savedAreas[1])
	assert.Equal(t, repositories.AreaResultInput{AreaName: "science", Percentage: 20.0, Ranking: 3}, evalRepo.savedAreas[2])

	// New evaluations invalidate cached recommendations.
	_, ok := cache.Get(userID, RecommendationKindCareer)
	assert.False(t, ok)
}

func TestSubmitTestRejectsUnknownUser(t *testing.T) {
	test, questions := buildVocationalTest(t, []string{"arts"}, []int{1})
	service := NewEvaluationService(
		&fakeTestRepo{test: test, questions: questions},
		&capturingEvaluationRepo{},
		&fakeUsersClient{exists: false},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	_, err := service.SubmitTest(context.Background(), uuid.New(), string(scoring.KindVocational), submitRequestFor(test, questions))
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestSubmitTestRejectsIncompleteSubmission(t *testing.T) {
	test, questions := buildVocationalTest(t, []string{"arts", "science"}, []int{1, 2})
	service := NewEvaluationService(
		&fakeTestRepo{test: test, questions: questions},
		&capturingEvaluationRepo{},
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	req := submitRequestFor(test, questions)
	req.Answers = req.Answers[:1]

	_, err := service.SubmitTest(context.Background(), uuid.New(), string(scoring.KindVocational), req)
	assert.ErrorIs(t, err, utils.ErrIncompleteSubmission)
}

func TestSubmitTestRejectsForeignOption(t *testing.T) {
	test, questions := buildVocationalTest(t, []string{"arts", "science"}, []int{1, 2})
	service := NewEvaluationService(
		&fakeTestRepo{test: test, questions: questions},
		&capturingEvaluationRepo{},
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	req := submitRequestFor(test, questions)
	// Option from the second question answered against the first.
	req.Answers[0].OptionID = questions[1].AnswerOptions[0].ID.String()

	_, err := service.SubmitTest(context.Background(), uuid.New(), string(scoring.KindVocational), req)
	assert.ErrorIs(t, err, utils.ErrOptionNotFound)
}

func TestSubmitTestRejectsInactiveTest(t *testing.T) {
	test, questions := buildVocationalTest(t, []string{"arts", "science"}, []int{1, 2})
	test.Active = false

	evalRepo := &capturingEvaluationRepo{}
	service := NewEvaluationService(
		&fakeTestRepo{test: test, questions: questions},
		evalRepo,
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	_, err := service.SubmitTest(context.Background(), uuid.New(), string(scoring.KindVocational), submitRequestFor(test, questions))
	assert.ErrorIs(t, err, utils.ErrTestNotFound)
	assert.Nil(t, evalRepo.saved)
}

func TestSubmitTestRejectsKindMismatch(t *testing.T) {
	test, questions := buildVocationalTest(t, []string{"arts", "science"}, []int{1, 2})
	service := NewEvaluationService(
		&fakeTestRepo{test: test, questions: questions},
		&capturingEvaluationRepo{},
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	// A vocational test submitted through the cognitive endpoint.
	_, err := service.SubmitTest(context.Background(), uuid.New(), string(scoring.KindCognitive), submitRequestFor(test, questions))
	assert.ErrorIs(t, err, utils.ErrWrongTestKind)
}

func TestSubmitTestPersonalityFallsBackToNeutral(t *testing.T) {
	test := &db_models.Test{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		TestType:        db_models.TestType{Name: string(scoring.KindPersonality)},
		Name:            "Personality",
		QuestionsToShow: 2,
		Active:          true,
	}
	var questions []db_models.Question
	for i := 0; i < 2; i++ {
		questionID := uuid.New()
		questions = append(questions, db_models.Question{
			BaseModel: db_models.BaseModel{ID: questionID},
			TestID:    test.ID,
			AnswerOptions: []db_models.AnswerOption{{
				BaseModel:  db_models.BaseModel{ID: uuid.New()},
				QuestionID: questionID,
				OptionText: "I prefer quiet evenings",
			}},
		})
	}

	evalRepo := &capturingEvaluationRepo{}
	service := NewEvaluationService(
		&fakeTestRepo{test: test, questions: questions},
		evalRepo,
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	result, err := service.SubmitTest(context.Background(), uuid.New(), string(scoring.KindPersonality), submitRequestFor(test, questions))
	require.NoError(t, err)
	require.NotNil(t, result.TotalScore)
	assert.Equal(t, 50.0, *result.TotalScore)
}

func TestStartTestStripsScoringFields(t *testing.T) {
	test, questions := buildVocationalTest(t, []string{"arts"}, []int{1})
	service := NewEvaluationService(
		&fakeTestRepo{test: test, questions: questions},
		&capturingEvaluationRepo{},
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	response, err := service.StartTest(context.Background(), string(scoring.KindVocational))
	require.NoError(t, err)
	require.Len(t, response.Questions, 1)
	require.Len(t, response.Questions[0].AnswerOptions, 1)
	assert.Equal(t, "option", response.Questions[0].AnswerOptions[0].OptionText)
}

func TestStartTestUnknownKind(t *testing.T) {
	service := NewEvaluationService(
		&fakeTestRepo{},
		&capturingEvaluationRepo{},
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	_, err := service.StartTest(context.Background(), "astrology")
	assert.ErrorIs(t, err, utils.ErrTestNotFound)
}

func TestGetEvaluationDetailChecksOwnership(t *testing.T) {
	owner := uuid.New()
	score := 72.5
	stored := &db_models.CompletedEvaluation{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    owner,
		Test: db_models.Test{
			TestType: db_models.TestType{Name: string(scoring.KindCognitive)},
			Name:     "Cognitive Skills",
		},
		CompletionDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TotalScore:     &score,
	}
	service := NewEvaluationService(
		&fakeTestRepo{},
		&capturingEvaluationRepo{stored: stored},
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	detail, err := service.GetEvaluationDetail(context.Background(), owner, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cognitive Skills", detail.TestName)

	_, err = service.GetEvaluationDetail(context.Background(), uuid.New(), stored.ID)
	assert.ErrorIs(t, err, utils.ErrEvaluationNotFound)
}

func TestGetHistoryValidatesPaging(t *testing.T) {
	service := NewEvaluationService(
		&fakeTestRepo{},
		&capturingEvaluationRepo{},
		&fakeUsersClient{exists: true},
		neutralTextClient{},
		mem.NewRecommendationCache(),
	)

	_, err := service.GetHistory(context.Background(), uuid.New(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = service.GetHistory(context.Background(), uuid.New(), 1, 500)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}
