package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careercompass/internal/models/request_models"
	"careercompass/internal/services"
	"careercompass/pkg/utils"
)

type CareerController struct {
	careerService services.CareerServiceInterface
}

func NewCareerController(careerService services.CareerServiceInterface) *CareerController {
	return &CareerController{
		careerService: careerService,
	}
}

func (cc *CareerController) ListCareersHandler(c *gin.Context) {
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

	careers, err := cc.careerService.GetAllCareers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, careers, "Careers fetched successfully")
}

func (cc *CareerController) GetCareerDetailHandler(c *gin.Context) {
	careerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid career ID")
		return
	}

	detail, err := cc.careerService.GetCareerDetail(c.Request.Context(), careerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Career fetched successfully")
}

func (cc *CareerController) CreateCareerHandler(c *gin.Context) {
	var req request_models.CreateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid career payload")
		return
	}

	career, err := cc.careerService.CreateCareer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, career, "Career created successfully")
}

func (cc *CareerController) UpdateCareerHandler(c *gin.Context) {
	careerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid career ID")
		return
	}

	var req request_models.UpdateCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid career payload")
		return
	}

	career, err := cc.careerService.UpdateCareer(c.Request.Context(), careerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, career, "Career updated successfully")
}

func (cc *CareerController) DeleteCareerHandler(c *gin.Context) {
	careerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid career ID")
		return
	}

	if err := cc.careerService.DeleteCareer(c.Request.Context(), careerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Career deleted successfully")
}
