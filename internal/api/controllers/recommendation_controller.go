package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careercompass/internal/services"
	"careercompass/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

func (rc *RecommendationController) GetCareerRecommendationsHandler(c *gin.Context) {
	rc.respond(c, services.RecommendationKindCareer)
}

func (rc *RecommendationController) GetSpecializationRecommendationsHandler(c *gin.Context) {
	rc.respond(c, services.RecommendationKindSpecialization)
}

func (rc *RecommendationController) respond(c *gin.Context, kind string) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	recommendations, err := rc.recommendationService.GetRecommendations(c.Request.Context(), userID, kind)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Recommendations fetched successfully")
}
