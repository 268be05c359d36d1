package recommendation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"careercompass/internal/clients"
	"careercompass/internal/repositories"
	"careercompass/internal/services"
	mem "careercompass/pkg/memcache"
)

var Module = fx.Provide(
	provideRecommendationRepo,
	provideRecommendationService,
)

func provideRecommendationRepo(db *gorm.DB) repositories.RecommendationRepositoryInterface {
	return repositories.NewRecommendationRepository(db)
}

func provideRecommendationService(
	evaluationRepo repositories.EvaluationRepositoryInterface,
	careerRepo repositories.CareerRepositoryInterface,
	specializationRepo repositories.SpecializationRepositoryInterface,
	recommendationRepo repositories.RecommendationRepositoryInterface,
	usersClient clients.UsersAPIClientInterface,
	rankingClient clients.RankingClientInterface,
	cache mem.RecommendationCacheInterface,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(
		evaluationRepo,
		careerRepo,
		specializationRepo,
		recommendationRepo,
		usersClient,
		rankingClient,
		cache,
	)
}
