package favorite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"careercompass/internal/repositories"
	"careercompass/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo,
	provideFavoriteService,
)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepositoryInterface {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(
	favoriteRepo repositories.FavoriteRepositoryInterface,
	careerRepo repositories.CareerRepositoryInterface,
	specializationRepo repositories.SpecializationRepositoryInterface,
) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, careerRepo, specializationRepo)
}
