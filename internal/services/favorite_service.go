package services

import (
	"context"

	"github.com/google/uuid"

	"careercompass/internal/models/db_models"
	"careercompass/internal/models/request_models"
	"careercompass/internal/models/response_models"
	"careercompass/internal/repositories"
	"careercompass/pkg/utils"
)

const maxActiveFavorites = 10

type FavoriteServiceInterface interface {
	AddCareerFavorite(ctx context.Context, userID uuid.UUID, req request_models.AddFavoriteRequest) (*response_models.FavoriteResponse, error)
	AddSpecializationFavorite(ctx context.Context, userID uuid.UUID, req request_models.AddFavoriteRequest) (*response_models.FavoriteResponse, error)
	RemoveCareerFavorite(ctx context.Context, userID uuid.UUID, careerID uuid.UUID) error
	RemoveSpecializationFavorite(ctx context.Context, userID uuid.UUID, specializationID uuid.UUID) error
	GetCareerFavorites(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.FavoriteResponse, error)
	GetSpecializationFavorites(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.FavoriteResponse, error)
}

type FavoriteService struct {
	favoriteRepo       repositories.FavoriteRepositoryInterface
	careerRepo         repositories.CareerRepositoryInterface
	specializationRepo repositories.SpecializationRepositoryInterface
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepositoryInterface,
	careerRepo repositories.CareerRepositoryInterface,
	specializationRepo repositories.SpecializationRepositoryInterface,
) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo:       favoriteRepo,
		careerRepo:         careerRepo,
		specializationRepo: specializationRepo,
	}
}

// AddCareerFavorite marks a career, reactivating a previously removed row
// when one exists. Active favorites are capped per user.
func (s *FavoriteService) AddCareerFavorite(ctx context.Context, userID uuid.UUID, req request_models.AddFavoriteRequest) (*response_models.FavoriteResponse, error) {
	careerID, err := uuid.Parse(req.TargetID)
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

	existing, err := s.favoriteRepo.GetCareerFavorite(ctx, userID, careerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil && existing.Active {
		return nil, utils.ErrFavoriteAlreadyExists
	}

	count, err := s.favoriteRepo.CountActiveCareerFavorites(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count >= maxActiveFavorites {
		return nil, utils.ErrFavoriteLimitReached
	}

	favorite := existing
	if favorite == nil {
		favorite = &db_models.FavoriteCareer{
			UserID:   userID,
			CareerID: careerID,
		}
	}
	favorite.Active = true
	favorite.Notes = req.Notes

	if err := s.favoriteRepo.SaveCareerFavorite(ctx, favorite); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FavoriteResponse{
		ID:       favorite.ID.String(),
		TargetID: careerID.String(),
		Name:     career.Name,
		Notes:    favorite.Notes,
		AddedAt:  favorite.UpdatedAt,
	}, nil
}

func (s *FavoriteService) AddSpecializationFavorite(ctx context.Context, userID uuid.UUID, req request_models.AddFavoriteRequest) (*response_models.FavoriteResponse, error) {
	specializationID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return nil, utils.ErrSpecializationNotFound
	}
	specialization, err := s.specializationRepo.GetSpecializationByID(ctx, specializationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if specialization == nil {
		return nil, utils.ErrSpecializationNotFound
	}

	existing, err := s.favoriteRepo.GetSpecializationFavorite(ctx, userID, specializationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil && existing.Active {
		return nil, utils.ErrFavoriteAlreadyExists
	}

	count, err := s.favoriteRepo.CountActiveSpecializationFavorites(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count >= maxActiveFavorites {
		return nil, utils.ErrFavoriteLimitReached
	}

	favorite := existing
	if favorite == nil {
		favorite = &db_models.FavoriteSpecialization{
			UserID:               userID,
			SpecializationAreaID: specializationID,
		}
	}
	favorite.Active = true
	favorite.Notes = req.Notes

	if err := s.favoriteRepo.SaveSpecializationFavorite(ctx, favorite); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FavoriteResponse{
		ID:       favorite.ID.String(),
		TargetID: specializationID.String(),
		Name:     specialization.Name,
		Notes:    favorite.Notes,
		AddedAt:  favorite.UpdatedAt,
	}, nil
}

// RemoveCareerFavorite deactivates the row rather than deleting it so notes
// survive a later re-add.
func (s *FavoriteService) RemoveCareerFavorite(ctx context.Context, userID uuid.UUID, careerID uuid.UUID) error {
	favorite, err := s.favoriteRepo.GetCareerFavorite(ctx, userID, careerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if favorite == nil || !favorite.Active {
		return utils.ErrFavoriteNotFound
	}
	favorite.Active = false
	if err := s.favoriteRepo.SaveCareerFavorite(ctx, favorite); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) RemoveSpecializationFavorite(ctx context.Context, userID uuid.UUID, specializationID uuid.UUID) error {
	favorite, err := s.favoriteRepo.GetSpecializationFavorite(ctx, userID, specializationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if favorite == nil || !favorite.Active {
		return utils.ErrFavoriteNotFound
	}
	favorite.Active = false
	if err := s.favoriteRepo.SaveSpecializationFavorite(ctx, favorite); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) GetCareerFavorites(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.FavoriteResponse, error) {
	if err := utils.ValidatePaging(page, pageSize); err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.GetActiveCareerFavorites(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		responses = append(responses, response_models.FavoriteResponse{
			ID:       f.ID.String(),
			TargetID: f.CareerID.String(),
			Name:     f.Career.Name,
			Notes:    f.Notes,
			AddedAt:  f.UpdatedAt,
		})
	}
	return responses, nil
}

func (s *FavoriteService) GetSpecializationFavorites(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.FavoriteResponse, error) {
	if err := utils.ValidatePaging(page, pageSize); err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.GetActiveSpecializationFavorites(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		responses = append(responses, response_models.FavoriteResponse{
			ID:       f.ID.String(),
			TargetID: f.SpecializationAreaID.String(),
			Name:     f.SpecializationArea.Name,
			Notes:    f.Notes,
			AddedAt:  f.UpdatedAt,
		})
	}
	return responses, nil
}
