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

type SpecializationServiceInterface interface {
	GetAllSpecializations(ctx context.Context, page int, pageSize int) ([]response_models.SpecializationResponse, error)
	GetSpecializationDetail(ctx context.Context, specializationID uuid.UUID) (*response_models.SpecializationDetailResponse, error)
	CreateSpecialization(ctx context.Context, req request_models.CreateSpecializationRequest) (*response_models.SpecializationResponse, error)
	UpdateSpecialization(ctx context.Context, specializationID uuid.UUID, req request_models.UpdateSpecializationRequest) (*response_models.SpecializationResponse, error)
	DeleteSpecialization(ctx context.Context, specializationID uuid.UUID) error
}

type SpecializationService struct {
	specializationRepo repositories.SpecializationRepositoryInterface
	careerRepo         repositories.CareerRepositoryInterface
	socialClient       clients.SocialMediaClientInterface
}

func NewSpecializationService(
	specializationRepo repositories.SpecializationRepositoryInterface,
	careerRepo repositories.CareerRepositoryInterface,
	socialClient clients.SocialMediaClientInterface,
) SpecializationServiceInterface {
	return &SpecializationService{
		specializationRepo: specializationRepo,
		careerRepo:         careerRepo,
		socialClient:       socialClient,
	}
}

func toSpecializationResponse(sp *db_models.SpecializationArea) response_models.SpecializationResponse {
	return response_models.SpecializationResponse{
		ID:                sp.ID.String(),
		CareerID:          sp.CareerID.String(),
		CareerName:        sp.Career.Name,
		Name:              sp.Name,
		Description:       sp.Description,
		ApplicationFields: sp.ApplicationFields,
		JobProjection:     sp.JobProjection,
	}
}

func (s *SpecializationService) GetAllSpecializations(ctx context.Context, page int, pageSize int) ([]response_models.SpecializationResponse, error) {
	if err := utils.ValidatePaging(page, pageSize); err != nil {
		return nil, err
	}

	specializations, err := s.specializationRepo.GetAllSpecializations(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.SpecializationResponse, 0, len(specializations))
	for i := range specializations {
		responses = append(responses, toSpecializationResponse(&specializations[i]))
	}
	return responses, nil
}

func (s *SpecializationService) GetSpecializationDetail(ctx context.Context, specializationID uuid.UUID) (*response_models.SpecializationDetailResponse, error) {
	specialization, err := s.specializationRepo.GetSpecializationByID(ctx, specializationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if specialization == nil {
		return nil, utils.ErrSpecializationNotFound
	}

	posts := s.socialClient.SearchPosts(ctx, specialization.Name, 5)
	if posts == nil {
		posts = []clients.CommunityPost{}
	}

	return &response_models.SpecializationDetailResponse{
		SpecializationResponse: toSpecializationResponse(specialization),
		CommunityPosts:         posts,
	}, nil
}

func (s *SpecializationService) CreateSpecialization(ctx context.Context, req request_models.CreateSpecializationRequest) (*response_models.SpecializationResponse, error) {
	careerID, err := uuid.Parse(req.CareerID)
	if err != nil {
		return nil, utils.ErrCareerNotFound
	}
	career, err := s.careerRepo.GetCareerByID(ctx, careerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if career == nil {
		return nil, utils.ErrCareerNotFound
	}

	specialization := db_models.SpecializationArea{
		CareerID:          careerID,
		Career:            *career,
		Name:              req.Name,
		Description:       req.Description,
		ApplicationFields: req.ApplicationFields,
		JobProjection:     req.JobProjection,
	}
	if err := s.specializationRepo.CreateSpecialization(ctx, &specialization); err != nil {
		return nil, utils.ErrDatabaseError
	}
	response := toSpecializationResponse(&specialization)
	return &response, nil
}

func (s *SpecializationService) UpdateSpecialization(ctx context.Context, specializationID uuid.UUID, req request_models.UpdateSpecializationRequest) (*response_models.SpecializationResponse, error) {
	specialization, err := s.specializationRepo.GetSpecializationByID(ctx, specializationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if specialization == nil {
		return nil, utils.ErrSpecializationNotFound
	}

	specialization.Name = req.Name
	specialization.Description = req.Description
	specialization.ApplicationFields = req.ApplicationFields
	specialization.JobProjection = req.JobProjection

	if err := s.specializationRepo.UpdateSpecialization(ctx, specialization); err != nil {
		return nil, utils.ErrDatabaseError
	}
	response := toSpecializationResponse(specialization)
	return &response, nil
}

func (s *SpecializationService) DeleteSpecialization(ctx context.Context, specializationID uuid.UUID) error {
	specialization, err := s.specializationRepo.GetSpecializationByID(ctx, specializationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if specialization == nil {
		return utils.ErrSpecializationNotFound
	}
	if err := s.specializationRepo.DeleteSpecialization(ctx, specializationID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
