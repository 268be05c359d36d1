package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careercompass/internal/models/db_models"
)

type RecommendationRepositoryInterface interface {
	GetCareerRecommendations(ctx context.Context, userID uuid.UUID) ([]db_models.CareerRecommendation, error)
	GetSpecializationRecommendations(ctx context.Context, userID uuid.UUID) ([]db_models.SpecializationRecommendation, error)
	ReplaceCareerRecommendations(ctx context.Context, userID uuid.UUID, recommendations []db_models.CareerRecommendation) error
	ReplaceSpecializationRecommendations(ctx context.Context, userID uuid.UUID, recommendations []db_models.SpecializationRecommendation) error
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepositoryInterface {
	return &recommendationRepository{db: db}
}

type recommendationRepository struct {
	db *gorm.DB
}

func (r *recommendationRepository) GetCareerRecommendations(ctx context.Context, userID uuid.UUID) ([]db_models.CareerRecommendation, error) {
	var recommendations []db_models.CareerRecommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("compatibility_percentage DESC").
		Preload("Career").
		Find(&recommendations).Error
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}

func (r *recommendationRepository) GetSpecializationRecommendations(ctx context.Context, userID uuid.UUID) ([]db_models.SpecializationRecommendation, error) {
	var recommendations []db_models.SpecializationRecommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("compatibility_percentage DESC").
		Preload("SpecializationArea").
		Preload("SpecializationArea.Career").
		Find(&recommendations).Error
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}

// ReplaceCareerRecommendations swaps the user's persisted set atomically so
// readers never observe a partially generated batch.
func (r *recommendationRepository) ReplaceCareerRecommendations(ctx context.Context, userID uuid.UUID, recommendations []db_models.CareerRecommendation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Unscoped().
			Delete(&db_models.CareerRecommendation{}).Error; err != nil {
			return err
		}
		if len(recommendations) == 0 {
			return nil
		}
		return tx.Create(&recommendations).Error
	})
}

func (r *recommendationRepository) ReplaceSpecializationRecommendations(ctx context.Context, userID uuid.UUID, recommendations []db_models.SpecializationRecommendation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Unscoped().
			Delete(&db_models.SpecializationRecommendation{}).Error; err != nil {
			return err
		}
		if len(recommendations) == 0 {
			return nil
		}
		return tx.Create(&recommendations).Error
	})
}
