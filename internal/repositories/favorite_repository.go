package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careercompass/internal/models/db_models"
)

type FavoriteRepositoryInterface interface {
	CountActiveCareerFavorites(ctx context.Context, userID uuid.UUID) (int64, error)
	CountActiveSpecializationFavorites(ctx context.Context, userID uuid.UUID) (int64, error)
	GetCareerFavorite(ctx context.Context, userID uuid.UUID, careerID uuid.UUID) (*db_models.FavoriteCareer, error)
	GetSpecializationFavorite(ctx context.Context, userID uuid.UUID, specializationID uuid.UUID) (*db_models.FavoriteSpecialization, error)
	GetActiveCareerFavorites(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.FavoriteCareer, error)
	GetActiveSpecializationFavorites(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.FavoriteSpecialization, error)
	SaveCareerFavorite(ctx context.Context, favorite *db_models.FavoriteCareer) error
	SaveSpecializationFavorite(ctx context.Context, favorite *db_models.FavoriteSpecialization) error
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepositoryInterface {
	return &favoriteRepository{db: db}
}

type favoriteRepository struct {
	db *gorm.DB
}

func (r *favoriteRepository) CountActiveCareerFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.FavoriteCareer{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *favoriteRepository) CountActiveSpecializationFavorites(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.FavoriteSpecialization{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error
	return count, err
}

// GetCareerFavorite also returns deactivated rows so a re-add can flip the
// existing row back instead of violating the unique index.
func (r *favoriteRepository) GetCareerFavorite(ctx context.Context, userID uuid.UUID, careerID uuid.UUID) (*db_models.FavoriteCareer, error) {
	var favorite db_models.FavoriteCareer
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND career_id = ?", userID, careerID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) GetSpecializationFavorite(ctx context.Context, userID uuid.UUID, specializationID uuid.UUID) (*db_models.FavoriteSpecialization, error) {
	var favorite db_models.FavoriteSpecialization
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND specialization_area_id = ?", userID, specializationID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) GetActiveCareerFavorites(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.FavoriteCareer, error) {
	var favorites []db_models.FavoriteCareer
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Career").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) GetActiveSpecializationFavorites(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]db_models.FavoriteSpecialization, error) {
	var favorites []db_models.FavoriteSpecialization
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("SpecializationArea").
		Preload("SpecializationArea.Career").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) SaveCareerFavorite(ctx context.Context, favorite *db_models.FavoriteCareer) error {
	return r.db.WithContext(ctx).Save(favorite).Error
}

func (r *favoriteRepository) SaveSpecializationFavorite(ctx context.Context, favorite *db_models.FavoriteSpecialization) error {
	return r.db.WithContext(ctx).Save(favorite).Error
}
