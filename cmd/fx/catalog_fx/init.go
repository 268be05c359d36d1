package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"careercompass/internal/clients"
	"careercompass/internal/repositories"
	"careercompass/internal/services"
)

var Module = fx.Provide(
	provideCareerRepo,
	provideSpecializationRepo,
	provideCareerService,
	provideSpecializationService,
)

func provideCareerRepo(db *gorm.DB) repositories.CareerRepositoryInterface {
	return repositories.NewCareerRepository(db)
}

func provideSpecializationRepo(db *gorm.DB) repositories.SpecializationRepositoryInterface {
	return repositories.NewSpecializationRepository(db)
}

func provideCareerService(
	careerRepo repositories.CareerRepositoryInterface,
	specializationRepo repositories.SpecializationRepositoryInterface,
	socialClient clients.SocialMediaClientInterface,
) services.CareerServiceInterface {
	return services.NewCareerService(careerRepo, specializationRepo, socialClient)
}

func provideSpecializationService(
	specializationRepo repositories.SpecializationRepositoryInterface,
	careerRepo repositories.CareerRepositoryInterface,
	socialClient clients.SocialMediaClientInterface,
) services.SpecializationServiceInterface {
	return services.NewSpecializationService(specializationRepo, careerRepo, socialClient)
}
