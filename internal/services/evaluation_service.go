package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"careercompass/internal/clients"
	"careercompass/internal/models/db_models"
	"careercompass/internal/models/request_models"
	"careercompass/internal/models/response_models"
	"careercompass/internal/repositories"
	"careercompass/internal/scoring"
	mem "careercompass/pkg/memcache"
	"careercompass/pkg/utils"
)

type EvaluationServiceInterface interface {
	StartTest(ctx context.Context, kind string) (*response_models.TestResponse, error)
	SubmitTest(ctx context.Context, userID uuid.UUID, kind string, req request_models.SubmitTestRequest) (*response_models.EvaluationResultResponse, error)
	GetHistory(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.EvaluationHistoryResponse, error)
	GetEvaluationDetail(ctx context.Context, userID uuid.UUID, evaluationID uuid.UUID) (*response_models.EvaluationDetailResponse, error)
}

type EvaluationService struct {
	testRepo       repositories.TestRepositoryInterface
	evaluationRepo repositories.EvaluationRepositoryInterface
	usersClient    clients.UsersAPIClientInterface
	textClient     clients.TextAnalysisClientInterface
	cache          mem.RecommendationCacheInterface
}

func NewEvaluationService(
	testRepo repositories.TestRepositoryInterface,
	evaluationRepo repositories.EvaluationRepositoryInterface,
	usersClient clients.UsersAPIClientInterface,
	textClient clients.TextAnalysisClientInterface,
	cache mem.RecommendationCacheInterface,
) EvaluationServiceInterface {
	return &EvaluationService{
		testRepo:       testRepo,
		evaluationRepo: evaluationRepo,
		usersClient:    usersClient,
		textClient:     textClient,
		cache:          cache,
	}
}

// StartTest hands out one sitting of the active test for the kind. Options
// are stripped of weights and categories before they leave the service.
func (s *EvaluationService) StartTest(ctx context.Context, kind string) (*response_models.TestResponse, error) {
	test, err := s.testRepo.GetActiveTestByKind(ctx, kind)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if test == nil {
		return nil, utils.ErrTestNotFound
	}

	questions, err := s.testRepo.GetRandomActiveQuestions(ctx, test.ID, test.QuestionsToShow)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	questionResponses := make([]response_models.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		options := make([]response_models.AnswerOptionResponse, 0, len(q.AnswerOptions))
		for _, opt := range q.AnswerOptions {
			options = append(options, response_models.AnswerOptionResponse{
				ID:         opt.ID.String(),
				OptionText: opt.OptionText,
			})
		}
		questionResponses = append(questionResponses, response_models.QuestionResponse{
			ID:            q.ID.String(),
			QuestionText:  q.QuestionText,
			Position:      q.Position,
			AnswerOptions: options,
		})
	}

	return &response_models.TestResponse{
		ID:              test.ID.String(),
		Kind:            test.TestType.Name,
		Name:            test.Name,
		Description:     test.Description,
		QuestionsToShow: test.QuestionsToShow,
		Questions:       questionResponses,
	}, nil
}

// SubmitTest scores one sitting and persists the evaluation atomically.
// The stored row is final; resubmitting creates a new evaluation. Only the
// active test of the invoked kind accepts submissions.
func (s *EvaluationService) SubmitTest(ctx context.Context, userID uuid.UUID, kind string, req request_models.SubmitTestRequest) (*response_models.EvaluationResultResponse, error) {
	exists, err := s.usersClient.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.ErrUserNotFound
	}

	testID, err := uuid.Parse(req.TestID)
	if err != nil {
		return nil, utils.ErrTestNotFound
	}
	test, err := s.testRepo.GetTestByID(ctx, testID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// A retired test is gone as far as submissions are concerned.
	if test == nil || !test.Active {
		return nil, utils.ErrTestNotFound
	}
	if test.TestType.Name != kind {
		return nil, utils.ErrWrongTestKind
	}

	answered, err := s.resolveAnswers(ctx, test, req.Answers)
	if err != nil {
		return nil, err
	}

	artifact, err := s.score(ctx, test.TestType.Name, answered, test.QuestionsToShow)
	if err != nil {
		return nil, err
	}

	resultJSON, err := scoring.MarshalArtifact(artifact)
	if err != nil {
		return nil, err
	}

	totalScore := artifact.OverallScore()
	evaluation := db_models.CompletedEvaluation{
		UserID:         userID,
		TestID:         test.ID,
		CompletionDate: time.Now().UTC(),
		TotalScore:     &totalScore,
		Result:         &db_models.EvaluationResult{ResultJSON: resultJSON},
	}
	for _, a := range answered {
		evaluation.Answers = append(evaluation.Answers, db_models.UserAnswer{
			QuestionID: a.Question.ID,
			OptionID:   a.Option.ID,
		})
	}

	var areas []repositories.AreaResultInput
	if vocational, ok := artifact.(*scoring.VocationalResult); ok {
		for _, area := range vocational.TopAreas {
			areas = append(areas, repositories.AreaResultInput{
				AreaName:   area.Area,
				Percentage: area.Percentage,
				Ranking:    area.Ranking,
			})
		}
	}

	if err := s.evaluationRepo.SaveSubmission(ctx, &evaluation, areas); err != nil {
		log.Printf("save submission failed for user %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	// Stored rankings are stale once a new evaluation lands.
	s.cache.Invalidate(userID)

	return &response_models.EvaluationResultResponse{
		EvaluationID:   evaluation.ID.String(),
		TestID:         test.ID.String(),
		Kind:           test.TestType.Name,
		CompletionDate: evaluation.CompletionDate.Format(time.RFC3339),
		TotalScore:     evaluation.TotalScore,
		Result:         json.RawMessage(resultJSON),
	}, nil
}

// resolveAnswers matches each submitted pair against the stored question and
// its options, rejecting duplicates and foreign options.
func (s *EvaluationService) resolveAnswers(ctx context.Context, test *db_models.Test, answers []request_models.UserAnswerRequest) ([]scoring.AnsweredQuestion, error) {
	questionIDs := make([]uuid.UUID, 0, len(answers))
	seen := make(map[uuid.UUID]bool, len(answers))
	for _, a := range answers {
		questionID, err := uuid.Parse(a.QuestionID)
		if err != nil {
			return nil, utils.ErrQuestionNotFound
		}
		if seen[questionID] {
			return nil, utils.ErrIncompleteSubmission
		}
		seen[questionID] = true
		questionIDs = append(questionIDs, questionID)
	}

	questions, err := s.testRepo.GetQuestionsByIDs(ctx, test.ID, questionIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	questionByID := make(map[uuid.UUID]db_models.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	answered := make([]scoring.AnsweredQuestion, 0, len(answers))
	for _, a := range answers {
		questionID, _ := uuid.Parse(a.QuestionID)
		question, ok := questionByID[questionID]
		if !ok {
			return nil, utils.ErrQuestionNotFound
		}

		optionID, err := uuid.Parse(a.OptionID)
		if err != nil {
			return nil, utils.ErrOptionNotFound
		}
		var option *db_models.AnswerOption
		for i := range question.AnswerOptions {
			if question.AnswerOptions[i].ID == optionID {
				option = &question.AnswerOptions[i]
				break
			}
		}
		if option == nil {
			return nil, utils.ErrOptionNotFound
		}

		answered = append(answered, scoring.AnsweredQuestion{
			Question: question,
			Option:   *option,
		})
	}
	return answered, nil
}

func (s *EvaluationService) score(ctx context.Context, kind string, answered []scoring.AnsweredQuestion, questionsToShow int) (scoring.ResultArtifact, error) {
	switch scoring.TestKind(kind) {
	case scoring.KindVocational:
		agg, err := scoring.BuildVocationalAggregate(answered, questionsToShow)
		if err != nil {
			return nil, err
		}
		return scoring.ScoreVocational(agg), nil
	case scoring.KindCognitive:
		agg, err := scoring.BuildCognitiveAggregate(answered, questionsToShow)
		if err != nil {
			return nil, err
		}
		return scoring.ScoreCognitive(agg), nil
	case scoring.KindPersonality:
		agg, err := scoring.BuildPersonalityAggregate(answered, questionsToShow)
		if err != nil {
			return nil, err
		}
		analysis := s.textClient.AnalyzeText(ctx, agg.CombinedText)
		return scoring.ScorePersonality(agg, analysis), nil
	default:
		return nil, utils.ErrWrongTestKind
	}
}

func (s *EvaluationService) GetHistory(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.EvaluationHistoryResponse, error) {
	if err := utils.ValidatePaging(page, pageSize); err != nil {
		return nil, err
	}

	evaluations, err := s.evaluationRepo.GetHistoryByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(evaluations) == 0 {
		return []response_models.EvaluationHistoryResponse{}, utils.ErrNoEvaluationHistory
	}

	history := make([]response_models.EvaluationHistoryResponse, 0, len(evaluations))
	for _, e := range evaluations {
		history = append(history, response_models.EvaluationHistoryResponse{
			EvaluationID:   e.ID.String(),
			TestName:       e.Test.Name,
			Kind:           e.Test.TestType.Name,
			CompletionDate: e.CompletionDate.Format(time.RFC3339),
			TotalScore:     e.TotalScore,
		})
	}
	return history, nil
}

func (s *EvaluationService) GetEvaluationDetail(ctx context.Context, userID uuid.UUID, evaluationID uuid.UUID) (*response_models.EvaluationDetailResponse, error) {
	evaluation, err := s.evaluationRepo.GetEvaluationByID(ctx, evaluationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// Another user's evaluation is indistinguishable from a missing one.
	if evaluation == nil || evaluation.UserID != userID {
		return nil, utils.ErrEvaluationNotFound
	}

	detail := &response_models.EvaluationDetailResponse{
		EvaluationID:   evaluation.ID.String(),
		TestName:       evaluation.Test.Name,
		Kind:           evaluation.Test.TestType.Name,
		CompletionDate: evaluation.CompletionDate.Format(time.RFC3339),
		TotalScore:     evaluation.TotalScore,
	}
	if evaluation.Result != nil {
		detail.Result = json.RawMessage(evaluation.Result.ResultJSON)
	}
	for _, answer := range evaluation.Answers {
		detail.Answers = append(detail.Answers, response_models.UserAnswerDetail{
			QuestionText: answer.Question.QuestionText,
			OptionText:   answer.Option.OptionText,
		})
	}
	return detail, nil
}
