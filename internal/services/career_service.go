package services

import (
	"context"

	"github.com/google/uuid"

	"careercompass/internal/clients"
	"careercompass/internal/models/db_models"
	"careercompass/internal/models/request_models"
	"careercompass/internal/models/response_models"
	"careercompass/internal/repositories"
	"careercompass/pkg/utils"
)

type CareerServiceInterface interface {
	GetAllCareers(ctx context.Context, page int, pageSize int) ([]response_models.CareerResponse, error)
	GetCareerDetail(ctx context.Context, careerID uuid.UUID) (*response_models.CareerDetailResponse, error)
	CreateCareer(ctx context.Context, req request_models.CreateCareerRequest) (*response_models.CareerResponse, error)
	UpdateCareer(ctx context.Context, careerID uuid.UUID, req request_models.UpdateCareerRequest) (*response_models.CareerResponse, error)
	DeleteCareer(ctx context.Context, careerID uuid.UUID) error
}

type CareerService struct {
	careerRepo         repositories.CareerRepositoryInterface
	specializationRepo repositories.SpecializationRepositoryInterface
	socialClient       clients.SocialMediaClientInterface
}

func NewCareerService(
	careerRepo repositories.CareerRepositoryInterface,
	specializationRepo repositories.SpecializationRepositoryInterface,
	socialClient clients.SocialMediaClientInterface,
) CareerServiceInterface {
	return &CareerService{
		careerRepo:         careerRepo,
		specializationRepo: specializationRepo,
		socialClient:       socialClient,
	}
}

func toCareerResponse(career *db_models.Career) response_models.CareerResponse {
	return response_models.CareerResponse{
		ID:                career.ID.String(),
		Name:              career.Name,
		Description:       career.Description,
		DurationSemesters: career.DurationSemesters,
		GraduateProfile:   career.GraduateProfile,
		JobField:          career.JobField,
		AverageSalary:     career.AverageSalary,
	}
}

func (s *CareerService) GetAllCareers(ctx context.Context, page int, pageSize int) ([]response_models.CareerResponse, error) {
	if err := utils.ValidatePaging(page, pageSize); err != nil {
		return nil, err
	}

	careers, err := s.careerRepo.GetAllCareers(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CareerResponse, 0, len(careers))
	for i := range careers {
		responses = append(responses, toCareerResponse(&careers[i]))
	}
	return responses, nil
}

// GetCareerDetail adds specializations and community discussion to the base
// career. Social enrichment degrades to an empty list on failure.
func (s *CareerService) GetCareerDetail(ctx context.Context, careerID uuid.UUID) (*response_models.CareerDetailResponse, error) {
	career, err := s.careerRepo.GetCareerByID(ctx, careerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if career == nil {
		return nil, utils.ErrCareerNotFound
	}

	specializations, err := s.specializationRepo.GetSpecializationsByCareer(ctx, careerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	specializationResponses := make([]response_models.SpecializationResponse, 0, len(specializations))
	for _, sp := range specializations {
		specializationResponses = append(specializationResponses, response_models.SpecializationResponse{
			ID:                sp.ID.String(),
			CareerID:          sp.CareerID.String(),
			Name:              sp.Name,
			Description:       sp.Description,
			ApplicationFields: sp.ApplicationFields,
			JobProjection:     sp.JobProjection,
		})
	}

	posts := s.socialClient.SearchPosts(ctx, career.Name, 5)
	if posts == nil {
		posts = []clients.CommunityPost{}
	}

	return &response_models.CareerDetailResponse{
		CareerResponse:  toCareerResponse(career),
		Specializations: specializationResponses,
		CommunityPosts:  posts,
	}, nil
}

func (s *CareerService) CreateCareer(ctx context.Context, req request_models.CreateCareerRequest) (*response_models.CareerResponse, error) {
	career := db_models.Career{
		Name:              req.Name,
		Description:       req.Description,
		DurationSemesters: req.DurationSemesters,
		GraduateProfile:   req.GraduateProfile,
		JobField:          req.JobField,
		AverageSalary:     req.AverageSalary,
	}
	if err := s.careerRepo.CreateCareer(ctx, &career); err != nil {
		return nil, utils.ErrDatabaseError
	}
	response := toCareerResponse(&career)
	return &response, nil
}

func (s *CareerService) UpdateCareer(ctx context.Context, careerID uuid.UUID, req request_models.UpdateCareerRequest) (*response_models.CareerResponse, error) {
	career, err := s.careerRepo.GetCareerByID(ctx, careerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if career == nil {
		return nil, utils.ErrCareerNotFound
	}

	career.Name = req.Name
	career.Description = req.Description
	career.DurationSemesters = req.DurationSemesters
	career.GraduateProfile = req.GraduateProfile
	career.JobField = req.JobField
	career.AverageSalary = req.AverageSalary

	if err := s.careerRepo.UpdateCareer(ctx, career); err != nil {
		return nil, utils.ErrDatabaseError
	}
	response := toCareerResponse(career)
	return &response, nil
}

func (s *CareerService) DeleteCareer(ctx context.Context, careerID uuid.UUID) error {
	career, err := s.careerRepo.GetCareerByID(ctx, careerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if career == nil {
		return utils.ErrCareerNotFound
	}
	if err := s.careerRepo.DeleteCareer(ctx, careerID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
