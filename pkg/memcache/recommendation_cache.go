// pkg/mem/recommendation_cache.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"careercompass/internal/models/response_models"
)

type RecommendationCacheInterface interface {
	Get(userID uuid.UUID, kind string) ([]response_models.RecommendationResponse, bool)
	Set(userID uuid.UUID, kind string, recommendations []response_models.RecommendationResponse)
	Invalidate(userID uuid.UUID)
}

type cacheEntry struct {
	recommendations []response_models.RecommendationResponse
	expiresAt       time.Time
}

// RecommendationCache holds ranked recommendation sets for one hour. The
// clock is injected so expiry is testable.
type RecommendationCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewRecommendationCache() *RecommendationCache {
	return NewRecommendationCacheWithClock(time.Hour, time.Now)
}

func NewRecommendationCacheWithClock(ttl time.Duration, now func() time.Time) *RecommendationCache {
	return &RecommendationCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
		now:  now,
	}
}

func cacheKey(userID uuid.UUID, kind string) string {
	return userID.String() + ":" + kind
}

func (c *RecommendationCache) Get(userID uuid.UUID, kind string) ([]response_models.RecommendationResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[cacheKey(userID, kind)]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.recommendations, true
}

func (c *RecommendationCache) Set(userID uuid.UUID, kind string, recommendations []response_models.RecommendationResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheKey(userID, kind)] = cacheEntry{
		recommendations: recommendations,
		expiresAt:       c.now().Add(c.ttl),
	}
}

// Invalidate drops every kind cached for the user, used when a new
// evaluation lands and stored rankings go stale.
func (c *RecommendationCache) Invalidate(userID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := userID.String() + ":"
	for key := range c.data {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.data, key)
		}
	}
}
