package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/models/db_models"
	"careercompass/internal/models/request_models"
	"careercompass/internal/repositories"
	"careercompass/pkg/utils"
)

type fakeAdminTestRepo struct {
	repositories.TestRepositoryInterface
	tests map[uuid.UUID]*db_models.Test
}

func newFakeAdminTestRepo() *fakeAdminTestRepo {
	return &fakeAdminTestRepo{tests: make(map[uuid.UUID]*db_models.Test)}
}

func (f *fakeAdminTestRepo) GetTestByID(ctx context.Context, testID uuid.UUID) (*db_models.Test, error) {
	test, ok := f.tests[testID]
	if !ok {
		return nil, nil
	}
	copied := *test
	return &copied, nil
}

func (f *fakeAdminTestRepo) GetTestWithQuestions(ctx context.Context, testID uuid.UUID) (*db_models.Test, error) {
	return f.GetTestByID(ctx, testID)
}

func (f *fakeAdminTestRepo) CountActiveByKind(ctx context.Context, kind string, excludeTestID uuid.UUID) (int64, error) {
	var count int64
	for _, test := range f.tests {
		if test.TestType.Name == kind && test.Active && test.ID != excludeTestID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAdminTestRepo) GetOrCreateTestType(ctx context.Context, name string) (*db_models.TestType, error) {
	return &db_models.TestType{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      name,
	}, nil
}

func (f *fakeAdminTestRepo) CreateTest(ctx context.Context, test *db_models.Test) error {
	if test.ID == uuid.Nil {
		test.ID = uuid.New()
	}
	f.tests[test.ID] = test
	return nil
}

func (f *fakeAdminTestRepo) UpdateTest(ctx context.Context, test *db_models.Test) error {
	f.tests[test.ID] = test
	return nil
}

func bankOf(n int) []request_models.QuestionRequest {
	questions := make([]request_models.QuestionRequest, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, request_models.QuestionRequest{
			QuestionText: fmt.Sprintf("Question %d", i+1),
			Position:     i + 1,
			AnswerOptions: []request_models.AnswerOptionRequest{
				{OptionText: "Yes"},
				{OptionText: "No"},
			},
		})
	}
	return questions
}

func TestCreateTestRejectsUnknownKind(t *testing.T) {
	service := NewTestService(newFakeAdminTestRepo())

	_, err := service.CreateTest(context.Background(), request_models.CreateTestRequest{
		Kind:            "astrology",
		Name:            "Star signs",
		QuestionsToShow: 10,
		Questions:       bankOf(100),
	})

	assert.ErrorIs(t, err, utils.ErrWrongTestKind)
}

func TestCreateTestRejectsSmallBank(t *testing.T) {
	service := NewTestService(newFakeAdminTestRepo())

	_, err := service.CreateTest(context.Background(), request_models.CreateTestRequest{
		Kind:            "vocational_interests",
		Name:            "Interests",
		QuestionsToShow: 10,
		Questions:       bankOf(99),
	})

	assert.ErrorIs(t, err, utils.ErrTooFewQuestions)
}

func TestCreateTestRejectsSecondActivePerKind(t *testing.T) {
	repo := newFakeAdminTestRepo()
	service := NewTestService(repo)

	first, err := service.CreateTest(context.Background(), request_models.CreateTestRequest{
		Kind:            "vocational_interests",
		Name:            "Interests v1",
		QuestionsToShow: 20,
		Active:          true,
		Questions:       bankOf(100),
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = service.CreateTest(context.Background(), request_models.CreateTestRequest{
		Kind:            "vocational_interests",
		Name:            "Interests v2",
		QuestionsToShow: 20,
		Active:          true,
		Questions:       bankOf(100),
	})

	assert.ErrorIs(t, err, utils.ErrDuplicateActiveTest)
}

func TestUpdateTestActivationGate(t *testing.T) {
	repo := newFakeAdminTestRepo()
	service := NewTestService(repo)

	active := &db_models.Test{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		TestType:        db_models.TestType{Name: "cognitive_skills"},
		Name:            "Skills v1",
		QuestionsToShow: 15,
		Active:          true,
	}
	inactive := &db_models.Test{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		TestType:        db_models.TestType{Name: "cognitive_skills"},
		Name:            "Skills v2",
		QuestionsToShow: 15,
		Active:          false,
	}
	repo.tests[active.ID] = active
	repo.tests[inactive.ID] = inactive

	err := service.UpdateTest(context.Background(), inactive.ID, request_models.UpdateTestRequest{
		Name:            "Skills v2",
		QuestionsToShow: 15,
		Active:          true,
	})
	assert.ErrorIs(t, err, utils.ErrDuplicateActiveTest)

	// Metadata edits on the already-active test stay allowed.
	err = service.UpdateTest(context.Background(), active.ID, request_models.UpdateTestRequest{
		Name:            "Skills v1 renamed",
		QuestionsToShow: 25,
		Active:          true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Skills v1 renamed", repo.tests[active.ID].Name)
	assert.Equal(t, 25, repo.tests[active.ID].QuestionsToShow)
}

func TestGetTestDetailNotFound(t *testing.T) {
	service := NewTestService(newFakeAdminTestRepo())

	_, err := service.GetTestDetail(context.Background(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrTestNotFound)
}

func TestGetTestDetailKeepsScoringFields(t *testing.T) {
	repo := newFakeAdminTestRepo()
	service := NewTestService(repo)

	weight := 4
	category := "technology"
	test := &db_models.Test{
		BaseModel:       db_models.BaseModel{ID: uuid.New()},
		TestType:        db_models.TestType{Name: "vocational_interests"},
		Name:            "Interests",
		QuestionsToShow: 1,
		Active:          true,
		Questions: []db_models.Question{
			{
				BaseModel:    db_models.BaseModel{ID: uuid.New()},
				QuestionText: "Do you enjoy building things?",
				Position:     1,
				Active:       true,
				AnswerOptions: []db_models.AnswerOption{
					{
						BaseModel:   db_models.BaseModel{ID: uuid.New()},
						OptionText:  "Very much",
						WeightValue: &weight,
						Category:    &category,
					},
				},
			},
		},
	}
	repo.tests[test.ID] = test

	detail, err := service.GetTestDetail(context.Background(), test.ID)
	require.NoError(t, err)

	require.Len(t, detail.Questions, 1)
	require.Len(t, detail.Questions[0].AnswerOptions, 1)
	opt := detail.Questions[0].AnswerOptions[0]
	require.NotNil(t, opt.WeightValue)
	assert.Equal(t, 4, *opt.WeightValue)
	require.NotNil(t, opt.Category)
	assert.Equal(t, "technology", *opt.Category)
}
