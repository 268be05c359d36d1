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

type SpecializationController struct {
	specializationService services.SpecializationServiceInterface
}

func NewSpecializationController(specializationService services.SpecializationServiceInterface) *SpecializationController {
	return &SpecializationController{
		specializationService: specializationService,
	}
}

func (sc *SpecializationController) ListSpecializationsHandler(c *gin.Context) {
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

	specializations, err := sc.specializationService.GetAllSpecializations(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, specializations, "Specializations fetched successfully")
}

func (sc *SpecializationController) GetSpecializationDetailHandler(c *gin.Context) {
	specializationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid specialization ID")
		return
	}

	detail, err := sc.specializationService.GetSpecializationDetail(c.Request.Context(), specializationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Specialization fetched successfully")
}

func (sc *SpecializationController) CreateSpecializationHandler(c *gin.Context) {
	var req request_models.CreateSpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid specialization payload")
		return
	}

	specialization, err := sc.specializationService.CreateSpecialization(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, specialization, "Specialization created successfully")
}

func (sc *SpecializationController) UpdateSpecializationHandler(c *gin.Context) {
	specializationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid specialization ID")
		return
	}

	var req request_models.UpdateSpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid specialization payload")
		return
	}

	specialization, err := sc.specializationService.UpdateSpecialization(c.Request.Context(), specializationID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, specialization, "Specialization updated successfully")
}

func (sc *SpecializationController) DeleteSpecializationHandler(c *gin.Context) {
	specializationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid specialization ID")
		return
	}

	if err := sc.specializationService.DeleteSpecialization(c.Request.Context(), specializationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Specialization deleted successfully")
}
