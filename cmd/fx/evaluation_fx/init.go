package evaluation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"careercompass/internal/clients"
	"careercompass/internal/repositories"
	"careercompass/internal/services"
	mem "careercompass/pkg/memcache"
)

var Module = fx.Provide(
	provideTestRepo,
	provideEvaluationRepo,
	provideEvaluationService,
	provideTestService,
)

func provideTestRepo(db *gorm.DB) repositories.TestRepositoryInterface {
	return repositories.NewTestRepository(db)
}

func provideEvaluationRepo(db *gorm.DB) repositories.EvaluationRepositoryInterface {
	return repositories.NewEvaluationRepository(db)
}

func provideEvaluationService(
	testRepo repositories.TestRepositoryInterface,
	evaluationRepo repositories.EvaluationRepositoryInterface,
	usersClient clients.UsersAPIClientInterface,
	textClient clients.TextAnalysisClientInterface,
	cache mem.RecommendationCacheInterface,
) services.EvaluationServiceInterface {
	return services.NewEvaluationService(testRepo, evaluationRepo, usersClient, textClient, cache)
}

func provideTestService(testRepo repositories.TestRepositoryInterface) services.TestServiceInterface {
	return services.NewTestService(testRepo)
}
