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

type EvaluationController struct {
	evaluationService services.EvaluationServiceInterface
}

func NewEvaluationController(evaluationService services.EvaluationServiceInterface) *EvaluationController {
	return &EvaluationController{
		evaluationService: evaluationService,
	}
}

// StartTestHandler hands out a sitting of the active test for the kind in
// the path, e.g. /tests/vocational_interests/start.
func (ec *EvaluationController) StartTestHandler(c *gin.Context) {
	kind := c.Param("kind")
	if kind == "" {
		utils.RespondError(c, http.StatusBadRequest, "Test kind is required")
		return
	}

	test, err := ec.evaluationService.StartTest(c.Request.Context(), kind)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, test, "Test fetched successfully")
}

func (ec *EvaluationController) SubmitTestHandler(c *gin.Context) {
	kind := c.Param("kind")
	if kind == "" {
		utils.RespondError(c, http.StatusBadRequest, "Test kind is required")
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req request_models.SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid submission payload")
		return
	}

	result, err := ec.evaluationService.SubmitTest(c.Request.Context(), userID, kind, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Evaluation scored successfully")
}

func (ec *EvaluationController) GetHistoryHandler(c *gin.Context) {
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

	history, err := ec.evaluationService.GetHistory(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Evaluation history fetched successfully")
}

func (ec *EvaluationController) GetEvaluationDetailHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	evaluationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid evaluation ID")
		return
	}

	detail, err := ec.evaluationService.GetEvaluationDetail(c.Request.Context(), userID, evaluationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Evaluation fetched successfully")
}
