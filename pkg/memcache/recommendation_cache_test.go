package mem

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"careercompass/internal/models/response_models"
)

func TestRecommendationCacheExpiresAfterTTL(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	cache := NewRecommendationCacheWithClock(time.Hour, func() time.Time { return current })

	userID := uuid.New()
	set := []response_models.RecommendationResponse{{Name: "Software Engineering"}}
	cache.Set(userID, "career", set)

	got, ok := cache.Get(userID, "career")
	assert.True(t, ok)
	assert.Equal(t, set, got)

	current = current.Add(59 * time.Minute)
	_, ok = cache.Get(userID, "career")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = cache.Get(userID, "career")
	assert.False(t, ok)
}

func TestRecommendationCacheKeysByUserAndKind(t *testing.T) {
	cache := NewRecommendationCacheWithClock(time.Hour, time.Now)
	userID := uuid.New()

	cache.Set(userID, "career", []response_models.RecommendationResponse{{Name: "Medicine"}})

	_, ok := cache.Get(userID, "specialization")
	assert.False(t, ok)
	_, ok = cache.Get(uuid.New(), "career")
	assert.False(t, ok)
}

func TestRecommendationCacheInvalidateDropsAllKindsForUser(t *testing.T) {
	cache := NewRecommendationCacheWithClock(time.Hour, time.Now)
	userID := uuid.New()
	other := uuid.New()

	cache.Set(userID, "career", []response_models.RecommendationResponse{{Name: "Law"}})
	cache.Set(userID, "specialization", []response_models.RecommendationResponse{{Name: "Criminal Law"}})
	cache.Set(other, "career", []response_models.RecommendationResponse{{Name: "Design"}})

	cache.Invalidate(userID)

	_, ok := cache.Get(userID, "career")
	assert.False(t, ok)
	_, ok = cache.Get(userID, "specialization")
	assert.False(t, ok)
	_, ok = cache.Get(other, "career")
	assert.True(t, ok)
}
