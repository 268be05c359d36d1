package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careercompass/internal/models/db_models"
)

// AreaResultInput carries one vocational area score into SaveSubmission;
// the area row itself is resolved (or created) inside the transaction.
type AreaResultInput struct {
	AreaName   string
	Percentage float64
	Ranking    int
}

type EvaluationRepositoryInterface interface {
	SaveSubmission(ctx context.Context, evaluation *db_models.CompletedEvaluation, areas []AreaResultInput) error
	GetHistoryByUser(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.CompletedEvaluation, error)
	GetEvaluationByID(ctx context.Context, evaluationID uuid.UUID) (*db_models.CompletedEvaluation, error)
	GetLatestResultJSON(ctx context.Context, userID uuid.UUID, kind string) (string, error)
	HasCompletedEvaluations(ctx context.Context, userID uuid.UUID) (bool, error)
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepositoryInterface {
	return &evaluationRepository{db: db}
}

type evaluationRepository struct {
	db *gorm.DB
}

// SaveSubmission persists the evaluation, its answers, the scored result and
// any vocational area rows in one transaction. The evaluation row is final
// once this commits.
func (r *evaluationRepository) SaveSubmission(ctx context.Context, evaluation *db_models.CompletedEvaluation, areas []AreaResultInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(evaluation).Error; err != nil {
			return err
		}

		for _, area := range areas {
			var vocationalArea db_models.VocationalArea
			err := tx.Where("name = ?", area.AreaName).First(&vocationalArea).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				vocationalArea = db_models.VocationalArea{Name: area.AreaName}
				err = tx.Create(&vocationalArea).Error
			}
			if err != nil {
				return err
			}

			areaResult := db_models.AreaResult{
				EvaluationID:     evaluation.ID,
				VocationalAreaID: vocationalArea.ID,
				Percentage:       area.Percentage,
				Ranking:          area.Ranking,
			}
			if err := tx.Create(&areaResult).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *evaluationRepository) GetHistoryByUser(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.CompletedEvaluation, error) {
	var evaluations []db_models.CompletedEvaluation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completion_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Test").
		Preload("Test.TestType").
		Preload("Result").
		Find(&evaluations).Error
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (r *evaluationRepository) GetEvaluationByID(ctx context.Context, evaluationID uuid.UUID) (*db_models.CompletedEvaluation, error) {
	var evaluation db_models.CompletedEvaluation
	err := r.db.WithContext(ctx).
		Where("id = ?", evaluationID).
		Preload("Test").
		Preload("Test.TestType").
		Preload("Result").
		Preload("Answers").
		Preload("Answers.Question").
		Preload("Answers.Option").
		First(&evaluation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &evaluation, nil
}

// GetLatestResultJSON returns the stored artifact of the user's most recent
// completed evaluation for the kind, or "" when none exists.
func (r *evaluationRepository) GetLatestResultJSON(ctx context.Context, userID uuid.UUID, kind string) (string, error) {
	var evaluation db_models.CompletedEvaluation
	err := r.db.WithContext(ctx).
		Joins("JOIN tests ON tests.id = completed_evaluations.test_id").
		Joins("JOIN test_types ON test_types.id = tests.test_type_id").
		Where("completed_evaluations.user_id = ? AND test_types.name = ?", userID, kind).
		Order("completed_evaluations.completion_date DESC").
		Preload("Result").
		First(&evaluation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	if evaluation.Result == nil {
		return "", nil
	}
	return evaluation.Result.ResultJSON, nil
}

func (r *evaluationRepository) HasCompletedEvaluations(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.CompletedEvaluation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}
