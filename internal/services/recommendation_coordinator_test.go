package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/clients"
	"careercompass/internal/models/db_models"
	"careercompass/internal/repositories"
	"careercompass/internal/scoring"
	mem "careercompass/pkg/memcache"
	"careercompass/pkg/utils"
)

type fakeUsersClient struct {
	exists bool
	err    error
	skills map[string]int
}

func (f *fakeUsersClient) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return f.exists, f.err
}

func (f *fakeUsersClient) Skills(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	return f.skills, nil
}

type fakeRankingClient struct {
	calls int64
	items []clients.RankedItem
	err   error
	delay time.Duration
}

func (f *fakeRankingClient) RankCatalog(ctx context.Context, profile clients.StudentProfile, entries []clients.CatalogEntry, targetNoun string) ([]clients.RankedItem, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.items, f.err
}

type fakeEvaluationRepo struct {
	repositories.EvaluationRepositoryInterface
	resultsByKind map[string]string
}

func (f *fakeEvaluationRepo) GetLatestResultJSON(ctx context.Context, userID uuid.UUID, kind string) (string, error) {
	return f.resultsByKind[kind], nil
}

type fakeCareerRepo struct {
	repositories.CareerRepositoryInterface
	careers []db_models.Career
}

func (f *fakeCareerRepo) ListAllCareers(ctx context.Context) ([]db_models.Career, error) {
	return f.careers, nil
}

type fakeSpecializationRepo struct {
	repositories.SpecializationRepositoryInterface
	specializations []db_models.SpecializationArea
}

func (f *fakeSpecializationRepo) ListAllSpecializations(ctx context.Context) ([]db_models.SpecializationArea, error) {
	return f.specializations, nil
}

type fakeRecommendationRepo struct {
	mu          sync.Mutex
	careerRows  []db_models.CareerRecommendation
	specRows    []db_models.SpecializationRecommendation
	replaceHits int
}

func (f *fakeRecommendationRepo) GetCareerRecommendations(ctx context.Context, userID uuid.UUID) ([]db_models.CareerRecommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.careerRows, nil
}

func (f *fakeRecommendationRepo) GetSpecializationRecommendations(ctx context.Context, userID uuid.UUID) ([]db_models.SpecializationRecommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.specRows, nil
}

func (f *fakeRecommendationRepo) ReplaceCareerRecommendations(ctx context.Context, userID uuid.UUID, rows []db_models.CareerRecommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.careerRows = rows
	f.replaceHits++
	return nil
}

func (f *fakeRecommendationRepo) ReplaceSpecializationRecommendations(ctx context.Context, userID uuid.UUID, rows []db_models.SpecializationRecommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.specRows = rows
	f.replaceHits++
	return nil
}

func vocationalResultJSON(t *testing.T) string {
	t.Helper()
	artifact := &scoring.VocationalResult{TopAreas: []scoring.VocationalTopArea{
		{Area: "technology", Percentage: 60.0, Ranking: 1},
		{Area: "science", Percentage: 40.0, Ranking: 2},
	}}
	data, err := scoring.MarshalArtifact(artifact)
	require.NoError(t, err)
	return data
}

func newCoordinatorUnderTest(t *testing.T, ranking *fakeRankingClient) (*RecommendationService, *fakeRecommendationRepo, db_models.Career) {
	t.Helper()

	career := db_models.Career{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Name:        "Software Engineering",
		Description: "Builds software systems",
	}

	service := NewRecommendationService(
		&fakeEvaluationRepo{resultsByKind: map[string]string{
			string(scoring.KindVocational): vocationalResultJSON(t),
		}},
		&fakeCareerRepo{careers: []db_models.Career{career}},
		&fakeSpecializationRepo{},
		&fakeRecommendationRepo{},
		&fakeUsersClient{exists: true},
		ranking,
		mem.NewRecommendationCache(),
	).(*RecommendationService)

	return service, service.recommendationRepo.(*fakeRecommendationRepo), career
}

func TestGetRecommendationsGeneratesAndPersists(t *testing.T) {
	ranking := &fakeRankingClient{items: []clients.RankedItem{
		{Name: "Software Engineering", Affinity: 92.5, Reason: "strong technology interest"},
	}}
	service, repo, career := newCoordinatorUnderTest(t, ranking)

	got, err := service.GetRecommendations(context.Background(), uuid.New(), RecommendationKindCareer)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, career.ID.String(), got[0].TargetID)
	assert.Equal(t, 92.5, got[0].CompatibilityPercentage)
	assert.Equal(t, 1, repo.replaceHits)
}

func TestGetRecommendationsReusesStoredRows(t *testing.T) {
	ranking := &fakeRankingClient{items: []clients.RankedItem{
		{Name: "Software Engineering", Affinity: 92.5},
	}}
	service, repo, _ := newCoordinatorUnderTest(t, ranking)
	userID := uuid.New()

	first, err := service.GetRecommendations(context.Background(), userID, RecommendationKindCareer)
	require.NoError(t, err)

	second, err := service.GetRecommendations(context.Background(), userID, RecommendationKindCareer)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt64(&ranking.calls))
	assert.Equal(t, 1, repo.replaceHits)
}

func TestGetRecommendationsCollapsesConcurrentCalls(t *testing.T) {
	ranking := &fakeRankingClient{
		items: []clients.RankedItem{{Name: "Software Engineering", Affinity: 80.0}},
		delay: 50 * time.Millisecond,
	}
	service, _, _ := newCoordinatorUnderTest(t, ranking)
	userID := uuid.New()

	const concurrency = 8
	var wg sync.WaitGroup
	errs := make([]error, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.GetRecommendations(context.Background(), userID, RecommendationKindCareer)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, atomic.LoadInt64(&ranking.calls))
}

func TestGetRecommendationsRequiresCompletedEvaluation(t *testing.T) {
	service := NewRecommendationService(
		&fakeEvaluationRepo{resultsByKind: map[string]string{}},
		&fakeCareerRepo{careers: []db_models.Career{{Name: "Law"}}},
		&fakeSpecializationRepo{},
		&fakeRecommendationRepo{},
		&fakeUsersClient{exists: true},
		&fakeRankingClient{},
		mem.NewRecommendationCache(),
	)

	_, err := service.GetRecommendations(context.Background(), uuid.New(), RecommendationKindCareer)
	assert.ErrorIs(t, err, utils.ErrNoEvaluationsCompleted)
}

func TestGetRecommendationsRanksEntireCatalog(t *testing.T) {
	careers := make([]db_models.Career, 0, 150)
	for i := 0; i < 149; i++ {
		careers = append(careers, db_models.Career{
			BaseModel: db_models.BaseModel{ID: uuid.New()},
			Name:      fmt.Sprintf("Career %03d", i+1),
		})
	}
	// Sorts past any single page of the public list endpoints.
	last := db_models.Career{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Name:        "Zoology",
		Description: "Studies animal life",
	}
	careers = append(careers, last)

	service := NewRecommendationService(
		&fakeEvaluationRepo{resultsByKind: map[string]string{
			string(scoring.KindVocational): vocationalResultJSON(t),
		}},
		&fakeCareerRepo{careers: careers},
		&fakeSpecializationRepo{},
		&fakeRecommendationRepo{},
		&fakeUsersClient{exists: true},
		&fakeRankingClient{items: []clients.RankedItem{
			{Name: "Zoology", Affinity: 88.0, Reason: "strong science interest"},
		}},
		mem.NewRecommendationCache(),
	)

	got, err := service.GetRecommendations(context.Background(), uuid.New(), RecommendationKindCareer)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, last.ID.String(), got[0].TargetID)
	assert.Equal(t, "Zoology", got[0].Name)
}

func TestGetRecommendationsEmptyCatalog(t *testing.T) {
	service := NewRecommendationService(
		&fakeEvaluationRepo{resultsByKind: map[string]string{
			string(scoring.KindVocational): vocationalResultJSON(t),
		}},
		&fakeCareerRepo{},
		&fakeSpecializationRepo{},
		&fakeRecommendationRepo{},
		&fakeUsersClient{exists: true},
		&fakeRankingClient{},
		mem.NewRecommendationCache(),
	)

	_, err := service.GetRecommendations(context.Background(), uuid.New(), RecommendationKindCareer)
	assert.ErrorIs(t, err, utils.ErrEmptyCatalog)
}

func TestGetRecommendationsRejectsUnknownRankedName(t *testing.T) {
	ranking := &fakeRankingClient{items: []clients.RankedItem{
		{Name: "Underwater Basket Weaving", Affinity: 99.0},
	}}
	service, _, _ := newCoordinatorUnderTest(t, ranking)

	_, err := service.GetRecommendations(context.Background(), uuid.New(), RecommendationKindCareer)
	assert.ErrorIs(t, err, utils.ErrUnknownTarget)
}

func TestGetRecommendationsUnknownUser(t *testing.T) {
	service := NewRecommendationService(
		&fakeEvaluationRepo{},
		&fakeCareerRepo{},
		&fakeSpecializationRepo{},
		&fakeRecommendationRepo{},
		&fakeUsersClient{exists: false},
		&fakeRankingClient{},
		mem.NewRecommendationCache(),
	)

	_, err := service.GetRecommendations(context.Background(), uuid.New(), RecommendationKindCareer)
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestGetRecommendationsDirectoryOutagePropagates(t *testing.T) {
	service := NewRecommendationService(
		&fakeEvaluationRepo{},
		&fakeCareerRepo{},
		&fakeSpecializationRepo{},
		&fakeRecommendationRepo{},
		&fakeUsersClient{err: utils.ErrUserDirectoryUnavailable},
		&fakeRankingClient{},
		mem.NewRecommendationCache(),
	)

	_, err := service.GetRecommendations(context.Background(), uuid.New(), RecommendationKindCareer)
	assert.ErrorIs(t, err, utils.ErrUserDirectoryUnavailable)
}
