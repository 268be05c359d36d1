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

// TestController covers test administration. Routes behind it are
// admin-only via the JWT middleware.
type TestController struct {
	testService services.TestServiceInterface
}

func NewTestController(testService services.TestServiceInterface) *TestController {
	return &TestController{
		testService: testService,
	}
}

func (tc *TestController) CreateTestHandler(c *gin.Context) {
	var req request_models.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid test payload")
		return
	}

	test, err := tc.testService.CreateTest(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, test, "Test created successfully")
}

func (tc *TestController) ListTestsHandler(c *gin.Context) {
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

	tests, err := tc.testService.ListTests(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tests, "Tests fetched successfully")
}

func (tc *TestController) GetTestDetailHandler(c *gin.Context) {
	testID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid test ID")
		return
	}

	detail, err := tc.testService.GetTestDetail(c.Request.Context(), testID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Test fetched successfully")
}

func (tc *TestController) UpdateTestHandler(c *gin.Context) {
	testID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid test ID")
		return
	}

	var req request_models.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid test payload")
		return
	}

	if err := tc.testService.UpdateTest(c.Request.Context(), testID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Test updated successfully")
}

func (tc *TestController) SetTestStatusHandler(c *gin.Context) {
	testID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid test ID")
		return
	}

	var req request_models.UpdateTestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid status payload")
		return
	}

	if err := tc.testService.SetTestStatus(c.Request.Context(), testID, req.Active); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Test status updated successfully")
}
