package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careercompass/internal/models/db_models"
)

type CareerRepositoryInterface interface {
	GetAllCareers(ctx context.Context, page int, pageSize int) ([]db_models.Career, error)
	ListAllCareers(ctx context.Context) ([]db_models.Career, error)
	GetCareerByID(ctx context.Context, careerID uuid.UUID) (*db_models.Career, error)
	GetCareersByNames(ctx context.Context, names []string) ([]db_models.Career, error)
	CreateCareer(ctx context.Context, career *db_models.Career) error
	UpdateCareer(ctx context.Context, career *db_models.Career) error
	DeleteCareer(ctx context.Context, careerID uuid.UUID) error
}

func NewCareerRepository(db *gorm.DB) CareerRepositoryInterface {
	return &careerRepository{db: db}
}

type careerRepository struct {
	db *gorm.DB
}

func (r *careerRepository) GetAllCareers(ctx context.Context, page int, pageSize int) ([]db_models.Career, error) {
	var careers []db_models.Career
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&careers).Error
	if err != nil {
		return nil, err
	}
	return careers, nil
}

// ListAllCareers loads the whole catalog. Ranking needs every row; paging
// stays on the public list endpoints only.
func (r *careerRepository) ListAllCareers(ctx context.Context) ([]db_models.Career, error) {
	var careers []db_models.Career
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&careers).Error
	if err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *careerRepository) GetCareerByID(ctx context.Context, careerID uuid.UUID) (*db_models.Career, error) {
	var career db_models.Career
	err := r.db.WithContext(ctx).Where("id = ?", careerID).First(&career).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &career, nil
}

func (r *careerRepository) GetCareersByNames(ctx context.Context, names []string) ([]db_models.Career, error) {
	var careers []db_models.Career
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&careers).Error
	if err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *careerRepository) CreateCareer(ctx context.Context, career *db_models.Career) error {
	return r.db.WithContext(ctx).Create(career).Error
}

func (r *careerRepository) UpdateCareer(ctx context.Context, career *db_models.Career) error {
	return r.db.WithContext(ctx).Save(career).Error
}

func (r *careerRepository) DeleteCareer(ctx context.Context, careerID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", careerID).Delete(&db_models.Career{}).Error
}
