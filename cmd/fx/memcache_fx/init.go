package memcache_fx

import (
	"go.uber.org/fx"

	mem "careercompass/pkg/memcache"
)

var Module = fx.Provide(provideRecommendationCache)

func provideRecommendationCache() mem.RecommendationCacheInterface {
	return mem.NewRecommendationCache()
}
