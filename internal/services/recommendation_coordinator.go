package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"careercompass/internal/clients"
	"careercompass/internal/models/db_models"
	"careercompass/internal/models/response_models"
	"careercompass/internal/repositories"
	"careercompass/internal/scoring"
	mem "careercompass/pkg/memcache"
	"careercompass/pkg/utils"
)

const (
	RecommendationKindCareer         = "career"
	RecommendationKindSpecialization = "specialization"
)

type RecommendationServiceInterface interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, kind string) ([]response_models.RecommendationResponse, error)
}

// RecommendationService coordinates evaluation results, the catalog and the
// ranking model. Concurrent requests for the same user and kind collapse
// into one generation via singleflight.
type RecommendationService struct {
	evaluationRepo     repositories.EvaluationRepositoryInterface
	careerRepo         repositories.CareerRepositoryInterface
	specializationRepo repositories.SpecializationRepositoryInterface
	recommendationRepo repositories.RecommendationRepositoryInterface
	usersClient        clients.UsersAPIClientInterface
	rankingClient      clients.RankingClientInterface
	cache              mem.RecommendationCacheInterface
	group              singleflight.Group
}

func NewRecommendationService(
	evaluationRepo repositories.EvaluationRepositoryInterface,
	careerRepo repositories.CareerRepositoryInterface,
	specializationRepo repositories.SpecializationRepositoryInterface,
	recommendationRepo repositories.RecommendationRepositoryInterface,
	usersClient clients.UsersAPIClientInterface,
	rankingClient clients.RankingClientInterface,
	cache mem.RecommendationCacheInterface,
) RecommendationServiceInterface {
	return &RecommendationService{
		evaluationRepo:     evaluationRepo,
		careerRepo:         careerRepo,
		specializationRepo: specializationRepo,
		recommendationRepo: recommendationRepo,
		usersClient:        usersClient,
		rankingClient:      rankingClient,
		cache:              cache,
	}
}

func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID, kind string) ([]response_models.RecommendationResponse, error) {
	if kind != RecommendationKindCareer && kind != RecommendationKindSpecialization {
		return nil, utils.ErrRecommendationFailed
	}

	exists, err := s.usersClient.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.ErrUserNotFound
	}

	key := userID.String() + ":" + kind
	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.fetchOrGenerate(ctx, userID, kind)
	})
	if err != nil {
		return nil, err
	}
	return result.([]response_models.RecommendationResponse), nil
}

func (s *RecommendationService) fetchOrGenerate(ctx context.Context, userID uuid.UUID, kind string) ([]response_models.RecommendationResponse, error) {
	if cached, ok := s.cache.Get(userID, kind); ok {
		return cached, nil
	}

	// Persisted rows are authoritative: once generated, a set is reused
	// until a new evaluation invalidates it.
	stored, err := s.loadStored(ctx, userID, kind)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(stored) > 0 {
		s.cache.Set(userID, kind, stored)
		return stored, nil
	}

	generated, err := s.generate(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	s.cache.Set(userID, kind, generated)
	return generated, nil
}

func (s *RecommendationService) loadStored(ctx context.Context, userID uuid.UUID, kind string) ([]response_models.RecommendationResponse, error) {
	if kind == RecommendationKindCareer {
		rows, err := s.recommendationRepo.GetCareerRecommendations(ctx, userID)
		if err != nil {
			return nil, err
		}
		out := make([]response_models.RecommendationResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, response_models.RecommendationResponse{
				TargetID:                row.CareerID.String(),
				Name:                    row.Career.Name,
				Description:             row.Career.Description,
				CompatibilityPercentage: row.CompatibilityPercentage,
			})
		}
		return out, nil
	}

	rows, err := s.recommendationRepo.GetSpecializationRecommendations(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.RecommendationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.RecommendationResponse{
			TargetID:                row.SpecializationAreaID.String(),
			Name:                    row.SpecializationArea.Name,
			Description:             row.SpecializationArea.Description,
			CompatibilityPercentage: row.CompatibilityPercentage,
			CareerName:              row.SpecializationArea.Career.Name,
		})
	}
	return out, nil
}

func (s *RecommendationService) generate(ctx context.Context, userID uuid.UUID, kind string) ([]response_models.RecommendationResponse, error) {
	profile, err := s.buildProfile(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	if kind == RecommendationKindCareer {
		return s.generateCareers(ctx, userID, profile)
	}
	return s.generateSpecializations(ctx, userID, profile)
}

// buildProfile folds the user's latest result of each test kind into prompt
// summaries. At least one completed evaluation is required.
func (s *RecommendationService) buildProfile(ctx context.Context, userID uuid.UUID, kind string) (clients.StudentProfile, error) {
	var profile clients.StudentProfile
	found := false

	vocationalJSON, err := s.evaluationRepo.GetLatestResultJSON(ctx, userID, string(scoring.KindVocational))
	if err != nil {
		return profile, utils.ErrDatabaseError
	}
	if vocationalJSON != "" {
		if artifact, err := scoring.UnmarshalArtifact(scoring.KindVocational, []byte(vocationalJSON)); err == nil {
			profile.VocationalSummary = summarizeVocational(artifact.(*scoring.VocationalResult))
			found = true
		}
	}

	cognitiveJSON, err := s.evaluationRepo.GetLatestResultJSON(ctx, userID, string(scoring.KindCognitive))
	if err != nil {
		return profile, utils.ErrDatabaseError
	}
	if cognitiveJSON != "" {
		if artifact, err := scoring.UnmarshalArtifact(scoring.KindCognitive, []byte(cognitiveJSON)); err == nil {
			profile.CognitiveSummary = summarizeCognitive(artifact.(*scoring.CognitiveResult))
			found = true
		}
	}

	personalityJSON, err := s.evaluationRepo.GetLatestResultJSON(ctx, userID, string(scoring.KindPersonality))
	if err != nil {
		return profile, utils.ErrDatabaseError
	}
	if personalityJSON != "" {
		if artifact, err := scoring.UnmarshalArtifact(scoring.KindPersonality, []byte(personalityJSON)); err == nil {
			profile.PersonalitySummary = summarizePersonality(artifact.(*scoring.PersonalityResult))
			found = true
		}
	}

	if !found {
		return profile, utils.ErrNoEvaluationsCompleted
	}

	// Skills only sharpen specialization ranking; a directory hiccup here
	// must not block generation.
	if kind == RecommendationKindSpecialization {
		skills, err := s.usersClient.Skills(ctx, userID)
		if err != nil {
			log.Printf("skills lookup failed for user %s: %v", userID, err)
		} else {
			profile.Skills = skills
		}
	}

	return profile, nil
}

func (s *RecommendationService) generateCareers(ctx context.Context, userID uuid.UUID, profile clients.StudentProfile) ([]response_models.RecommendationResponse, error) {
	careers, err := s.careerRepo.ListAllCareers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(careers) == 0 {
		return nil, utils.ErrEmptyCatalog
	}

	entries := make([]clients.CatalogEntry, 0, len(careers))
	careerByName := make(map[string]db_models.Career, len(careers))
	for _, career := range careers {
		entries = append(entries, clients.CatalogEntry{Name: career.Name, Description: career.Description})
		careerByName[career.Name] = career
	}

	ranked, err := s.rankingClient.RankCatalog(ctx, profile, entries, "careers")
	if err != nil {
		log.Printf("career ranking failed for user %s: %v", userID, err)
		return nil, utils.ErrRecommendationFailed
	}

	rows := make([]db_models.CareerRecommendation, 0, len(ranked))
	out := make([]response_models.RecommendationResponse, 0, len(ranked))
	for _, item := range ranked {
		career, ok := careerByName[item.Name]
		if !ok {
			log.Printf("ranking returned unknown career %q for user %s", item.Name, userID)
			return nil, utils.ErrUnknownTarget
		}
		rows = append(rows, db_models.CareerRecommendation{
			UserID:                  userID,
			CareerID:                career.ID,
			CompatibilityPercentage: item.Affinity,
		})
		out = append(out, response_models.RecommendationResponse{
			TargetID:                career.ID.String(),
			Name:                    career.Name,
			Description:             career.Description,
			CompatibilityPercentage: item.Affinity,
		})
	}

	if err := s.recommendationRepo.ReplaceCareerRecommendations(ctx, userID, rows); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return out, nil
}

func (s *RecommendationService) generateSpecializations(ctx context.Context, userID uuid.UUID, profile clients.StudentProfile) ([]response_models.RecommendationResponse, error) {
	specializations, err := s.specializationRepo.ListAllSpecializations(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(specializations) == 0 {
		return nil, utils.ErrEmptyCatalog
	}

	entries := make([]clients.CatalogEntry, 0, len(specializations))
	specializationByName := make(map[string]db_models.SpecializationArea, len(specializations))
	for _, specialization := range specializations {
		entries = append(entries, clients.CatalogEntry{
			Name:        specialization.Name,
			Description: specialization.Description,
		})
		specializationByName[specialization.Name] = specialization
	}

	ranked, err := s.rankingClient.RankCatalog(ctx, profile, entries, "specialization areas")
	if err != nil {
		log.Printf("specialization ranking failed for user %s: %v", userID, err)
		return nil, utils.ErrRecommendationFailed
	}

	rows := make([]db_models.SpecializationRecommendation, 0, len(ranked))
	out := make([]response_models.RecommendationResponse, 0, len(ranked))
	for _, item := range ranked {
		specialization, ok := specializationByName[item.Name]
		if !ok {
			log.Printf("ranking returned unknown specialization %q for user %s", item.Name, userID)
			return nil, utils.ErrUnknownTarget
		}
		rows = append(rows, db_models.SpecializationRecommendation{
			UserID:                  userID,
			SpecializationAreaID:    specialization.ID,
			CompatibilityPercentage: item.Affinity,
		})
		out = append(out, response_models.RecommendationResponse{
			TargetID:                specialization.ID.String(),
			Name:                    specialization.Name,
			Description:             specialization.Description,
			CompatibilityPercentage: item.Affinity,
			CareerName:              specialization.Career.Name,
		})
	}

	if err := s.recommendationRepo.ReplaceSpecializationRecommendations(ctx, userID, rows); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return out, nil
}

func summarizeVocational(result *scoring.VocationalResult) string {
	parts := make([]string, 0, len(result.TopAreas))
	for _, area := range result.TopAreas {
		parts = append(parts, fmt.Sprintf("%s (%.2f%%, rank %d)", area.Area, area.Percentage, area.Ranking))
	}
	return strings.Join(parts, ", ")
}

func summarizeCognitive(result *scoring.CognitiveResult) string {
	areas := make([]string, 0, len(result.CognitiveAreas))
	for name := range result.CognitiveAreas {
		areas = append(areas, name)
	}
	sort.Strings(areas)

	parts := make([]string, 0, len(areas)+1)
	for _, name := range areas {
		score := result.CognitiveAreas[name]
		parts = append(parts, fmt.Sprintf("%s %.2f%% (%s)", name, score.Score, score.Level))
	}
	parts = append(parts, "overall "+result.OverallLevel)
	return strings.Join(parts, ", ")
}

func summarizePersonality(result *scoring.PersonalityResult) string {
	names := make([]string, 0, len(result.Dimensions))
	for name := range result.Dimensions {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names)+1)
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %.0f", name, result.Dimensions[name]))
	}
	if len(result.KeyTraits) > 0 {
		parts = append(parts, "traits: "+strings.Join(result.KeyTraits, "; "))
	}
	return strings.Join(parts, ", ")
}
