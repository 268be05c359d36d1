package services

import (
	"context"

	"github.com/google/uuid"

	"careercompass/internal/models/db_models"
	"careercompass/internal/models/request_models"
	"careercompass/internal/models/response_models"
	"careercompass/internal/repositories"
	"careercompass/internal/scoring"
	"careercompass/pkg/utils"
)

const minQuestionsPerTest = 100

type TestServiceInterface interface {
	CreateTest(ctx context.Context, req request_models.CreateTestRequest) (*response_models.TestResponse, error)
	ListTests(ctx context.Context, page int, pageSize int) ([]response_models.TestSummaryResponse, error)
	GetTestDetail(ctx context.Context, testID uuid.UUID) (*response_models.TestAdminDetailResponse, error)
	UpdateTest(ctx context.Context, testID uuid.UUID, req request_models.UpdateTestRequest) error
	SetTestStatus(ctx context.Context, testID uuid.UUID, active bool) error
}

type TestService struct {
	testRepo repositories.TestRepositoryInterface
}

func NewTestService(testRepo repositories.TestRepositoryInterface) TestServiceInterface {
	return &TestService{testRepo: testRepo}
}

func validKind(kind string) bool {
	switch scoring.TestKind(kind) {
	case scoring.KindPersonality, scoring.KindVocational, scoring.KindCognitive:
		return true
	}
	return false
}

// CreateTest registers a full question bank. A test must carry the minimum
// bank size, and only one test per kind may be active at a time.
func (s *TestService) CreateTest(ctx context.Context, req request_models.CreateTestRequest) (*response_models.TestResponse, error) {
	if !validKind(req.Kind) {
		return nil, utils.ErrWrongTestKind
	}
	if len(req.Questions) < minQuestionsPerTest {
		return nil, utils.ErrTooFewQuestions
	}

	if req.Active {
		activeCount, err := s.testRepo.CountActiveByKind(ctx, req.Kind, uuid.Nil)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if activeCount > 0 {
			return nil, utils.ErrDuplicateActiveTest
		}
	}

	testType, err := s.testRepo.GetOrCreateTestType(ctx, req.Kind)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	test := db_models.Test{
		TestTypeID:      testType.ID,
		TestType:        *testType,
		Name:            req.Name,
		Description:     req.Description,
		QuestionsToShow: req.QuestionsToShow,
		Active:          req.Active,
	}
	for _, q := range req.Questions {
		question := db_models.Question{
			QuestionText: q.QuestionText,
			Position:     q.Position,
			Active:       true,
		}
		for _, opt := range q.AnswerOptions {
			question.AnswerOptions = append(question.AnswerOptions, db_models.AnswerOption{
				OptionText:  opt.OptionText,
				WeightValue: opt.WeightValue,
				Category:    opt.Category,
			})
		}
		test.Questions = append(test.Questions, question)
	}

	if err := s.testRepo.CreateTest(ctx, &test); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TestResponse{
		ID:              test.ID.String(),
		Kind:            req.Kind,
		Name:            test.Name,
		Description:     test.Description,
		QuestionsToShow: test.QuestionsToShow,
	}, nil
}

func (s *TestService) ListTests(ctx context.Context, page int, pageSize int) ([]response_models.TestSummaryResponse, error) {
	if err := utils.ValidatePaging(page, pageSize); err != nil {
		return nil, err
	}

	tests, err := s.testRepo.ListTests(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TestSummaryResponse, 0, len(tests))
	for _, test := range tests {
		summaries = append(summaries, toTestSummary(test))
	}
	return summaries, nil
}

func (s *TestService) GetTestDetail(ctx context.Context, testID uuid.UUID) (*response_models.TestAdminDetailResponse, error) {
	test, err := s.testRepo.GetTestWithQuestions(ctx, testID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if test == nil {
		return nil, utils.ErrTestNotFound
	}

	detail := response_models.TestAdminDetailResponse{
		TestSummaryResponse: toTestSummary(*test),
	}
	for _, q := range test.Questions {
		question := response_models.AdminQuestionResponse{
			ID:           q.ID.String(),
			QuestionText: q.QuestionText,
			Position:     q.Position,
			Active:       q.Active,
		}
		for _, opt := range q.AnswerOptions {
			question.AnswerOptions = append(question.AnswerOptions, response_models.AdminAnswerOptionResponse{
				ID:          opt.ID.String(),
				OptionText:  opt.OptionText,
				WeightValue: opt.WeightValue,
				Category:    opt.Category,
			})
		}
		detail.Questions = append(detail.Questions, question)
	}
	return &detail, nil
}

// UpdateTest edits the test metadata. The question bank itself is immutable
// once created; publishing a new bank means creating a new test.
func (s *TestService) UpdateTest(ctx context.Context, testID uuid.UUID, req request_models.UpdateTestRequest) error {
	test, err := s.testRepo.GetTestByID(ctx, testID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if test == nil {
		return utils.ErrTestNotFound
	}

	if req.Active && !test.Active {
		activeCount, err := s.testRepo.CountActiveByKind(ctx, test.TestType.Name, test.ID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if activeCount > 0 {
			return utils.ErrDuplicateActiveTest
		}
	}

	test.Name = req.Name
	test.Description = req.Description
	test.QuestionsToShow = req.QuestionsToShow
	test.Active = req.Active
	if err := s.testRepo.UpdateTest(ctx, test); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toTestSummary(test db_models.Test) response_models.TestSummaryResponse {
	return response_models.TestSummaryResponse{
		ID:              test.ID.String(),
		Kind:            test.TestType.Name,
		Name:            test.Name,
		Description:     test.Description,
		QuestionsToShow: test.QuestionsToShow,
		Active:          test.Active,
	}
}

func (s *TestService) SetTestStatus(ctx context.Context, testID uuid.UUID, active bool) error {
	test, err := s.testRepo.GetTestByID(ctx, testID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if test == nil {
		return utils.ErrTestNotFound
	}

	if active {
		activeCount, err := s.testRepo.CountActiveByKind(ctx, test.TestType.Name, test.ID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if activeCount > 0 {
			return utils.ErrDuplicateActiveTest
		}
	}

	test.Active = active
	if err := s.testRepo.UpdateTest(ctx, test); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
