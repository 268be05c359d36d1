package repositories

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careercompass/internal/models/db_models"
)

type TestRepositoryInterface interface {
	GetActiveTestByKind(ctx context.Context, kind string) (*db_models.Test, error)
	GetTestByID(ctx context.Context, testID uuid.UUID) (*db_models.Test, error)
	GetTestWithQuestions(ctx context.Context, testID uuid.UUID) (*db_models.Test, error)
	ListTests(ctx context.Context, page int, pageSize int) ([]db_models.Test, error)
	GetRandomActiveQuestions(ctx context.Context, testID uuid.UUID, count int) ([]db_models.Question, error)
	GetQuestionsByIDs(ctx context.Context, testID uuid.UUID, questionIDs []uuid.UUID) ([]db_models.Question, error)
	CountActiveByKind(ctx context.Context, kind string, excludeTestID uuid.UUID) (int64, error)
	GetOrCreateTestType(ctx context.Context, name string) (*db_models.TestType, error)
	CreateTest(ctx context.Context, test *db_models.Test) error
	UpdateTest(ctx context.Context, test *db_models.Test) error
}

func NewTestRepository(db *gorm.DB) TestRepositoryInterface {
	return &testRepository{db: db}
}

type testRepository struct {
	db *gorm.DB
}

func (r *testRepository) GetActiveTestByKind(ctx context.Context, kind string) (*db_models.Test, error) {
	var test db_models.Test
	err := r.db.WithContext(ctx).
		Joins("JOIN test_types ON test_types.id = tests.test_type_id").
		Where("test_types.name = ? AND tests.active = ?", kind, true).
		Preload("TestType").
		First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) GetTestByID(ctx context.Context, testID uuid.UUID) (*db_models.Test, error) {
	var test db_models.Test
	err := r.db.WithContext(ctx).
		Where("id = ?", testID).
		Preload("TestType").
		First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) GetTestWithQuestions(ctx context.Context, testID uuid.UUID) (*db_models.Test, error) {
	var test db_models.Test
	err := r.db.WithContext(ctx).
		Where("id = ?", testID).
		Preload("TestType").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Questions.AnswerOptions").
		First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) ListTests(ctx context.Context, page int, pageSize int) ([]db_models.Test, error) {
	var tests []db_models.Test
	err := r.db.WithContext(ctx).
		Preload("TestType").
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

// GetRandomActiveQuestions picks the presented subset for one sitting.
// Shuffling happens in process so the query stays portable.
func (r *testRepository) GetRandomActiveQuestions(ctx context.Context, testID uuid.UUID, count int) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("test_id = ? AND active = ?", testID, true).
		Preload("AnswerOptions").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

func (r *testRepository) GetQuestionsByIDs(ctx context.Context, testID uuid.UUID, questionIDs []uuid.UUID) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("test_id = ? AND id IN ?", testID, questionIDs).
		Preload("AnswerOptions").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *testRepository) CountActiveByKind(ctx context.Context, kind string, excludeTestID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Test{}).
		Joins("JOIN test_types ON test_types.id = tests.test_type_id").
		Where("test_types.name = ? AND tests.active = ? AND tests.id <> ?", kind, true, excludeTestID).
		Count(&count).Error
	return count, err
}

func (r *testRepository) GetOrCreateTestType(ctx context.Context, name string) (*db_models.TestType, error) {
	var testType db_models.TestType
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&testType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		testType = db_models.TestType{Name: name}
		err = r.db.WithContext(ctx).Create(&testType).Error
	}
	if err != nil {
		return nil, err
	}
	return &testType, nil
}

func (r *testRepository) CreateTest(ctx context.Context, test *db_models.Test) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(test).Error
	})
}

func (r *testRepository) UpdateTest(ctx context.Context, test *db_models.Test) error {
	return r.db.WithContext(ctx).Save(test).Error
}
