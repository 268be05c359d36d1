package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careercompass/internal/models/db_models"
)

type SpecializationRepositoryInterface interface {
	GetAllSpecializations(ctx context.Context, page int, pageSize int) ([]db_models.SpecializationArea, error)
	ListAllSpecializations(ctx context.Context) ([]db_models.SpecializationArea, error)
	GetSpecializationsByCareer(ctx context.Context, careerID uuid.UUID) ([]db_models.SpecializationArea, error)
	GetSpecializationByID(ctx context.Context, specializationID uuid.UUID) (*db_models.SpecializationArea, error)
	GetSpecializationsByNames(ctx context.Context, names []string) ([]db_models.SpecializationArea, error)
	CreateSpecialization(ctx context.Context, specialization *db_models.SpecializationArea) error
	UpdateSpecialization(ctx context.Context, specialization *db_models.SpecializationArea) error
	DeleteSpecialization(ctx context.Context, specializationID uuid.UUID) error
}

func NewSpecializationRepository(db *gorm.DB) SpecializationRepositoryInterface {
	return &specializationRepository{db: db}
}

type specializationRepository struct {
	db *gorm.DB
}

func (r *specializationRepository) GetAllSpecializations(ctx context.Context, page int, pageSize int) ([]db_models.SpecializationArea, error) {
	var specializations []db_models.SpecializationArea
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Preload("Career").
		Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

// ListAllSpecializations loads the whole catalog for ranking, unpaginated.
func (r *specializationRepository) ListAllSpecializations(ctx context.Context) ([]db_models.SpecializationArea, error) {
	var specializations []db_models.SpecializationArea
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Preload("Career").
		Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) GetSpecializationsByCareer(ctx context.Context, careerID uuid.UUID) ([]db_models.SpecializationArea, error) {
	var specializations []db_models.SpecializationArea
	err := r.db.WithContext(ctx).
		Where("career_id = ?", careerID).
		Order("name ASC").
		Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) GetSpecializationByID(ctx context.Context, specializationID uuid.UUID) (*db_models.SpecializationArea, error) {
	var specialization db_models.SpecializationArea
	err := r.db.WithContext(ctx).
		Where("id = ?", specializationID).
		Preload("Career").
		First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) GetSpecializationsByNames(ctx context.Context, names []string) ([]db_models.SpecializationArea, error) {
	var specializations []db_models.SpecializationArea
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) CreateSpecialization(ctx context.Context, specialization *db_models.SpecializationArea) error {
	return r.db.WithContext(ctx).Create(specialization).Error
}

func (r *specializationRepository) UpdateSpecialization(ctx context.Context, specialization *db_models.SpecializationArea) error {
	return r.db.WithContext(ctx).Save(specialization).Error
}

func (r *specializationRepository) DeleteSpecialization(ctx context.Context, specializationID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", specializationID).Delete(&db_models.SpecializationArea{}).Error
}
