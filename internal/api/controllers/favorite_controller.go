package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careercompass/internal/models/request_models"
	"careercompass/internal/models/response_models"
	"careercompass/internal/services"
	"careercompass/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

func (fc *FavoriteController) AddCareerFavoriteHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req request_models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid favorite payload")
		return
	}

	favorite, err := fc.favoriteService.AddCareerFavorite(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, favorite, "Career favorite added successfully")
}

func (fc *FavoriteController) AddSpecializationFavoriteHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req request_models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid favorite payload")
		return
	}

	favorite, err := fc.favoriteService.AddSpecializationFavorite(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, favorite, "Specialization favorite added successfully")
}

func (fc *FavoriteController) RemoveCareerFavoriteHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	careerID, err := uuid.Parse(c.Param("careerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid career ID")
		return
	}

	if err := fc.favoriteService.RemoveCareerFavorite(c.Request.Context(), userID, careerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Career favorite removed successfully")
}

func (fc *FavoriteController) RemoveSpecializationFavoriteHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	specializationID, err := uuid.Parse(c.Param("specializationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid specialization ID")
		return
	}

	if err := fc.favoriteService.RemoveSpecializationFavorite(c.Request.Context(), userID, specializationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Specialization favorite removed successfully")
}

func (fc *FavoriteController) ListCareerFavoritesHandler(c *gin.Context) {
	fc.list(c, fc.favoriteService.GetCareerFavorites, "Career favorites fetched successfully")
}

func (fc *FavoriteController) ListSpecializationFavoritesHandler(c *gin.Context) {
	fc.list(c, fc.favoriteService.GetSpecializationFavorites, "Specialization favorites fetched successfully")
}

func (fc *FavoriteController) list(
	c *gin.Context,
	fetch func(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]response_models.FavoriteResponse, error),
	message string,
) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	favorites, err := fetch(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, message)
}
