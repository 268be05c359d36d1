package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

// serviceErrorMap pins every sentinel to its HTTP status and client message.
// Order matters only for readability; sentinels are disjoint.
var serviceErrorMap = []struct {
	err     error
	code    int
	message string
}{
	{ErrUserNotFound, http.StatusNotFound, "User not found"},
	{ErrTestNotFound, http.StatusNotFound, "Test not found"},
	{ErrQuestionNotFound, http.StatusNotFound, "Question not found"},
	{ErrOptionNotFound, http.StatusNotFound, "Answer option not found"},
	{ErrEvaluationNotFound, http.StatusNotFound, "Evaluation not found"},
	{ErrNoEvaluationHistory, http.StatusNotFound, "No completed evaluations found"},
	{ErrCareerNotFound, http.StatusNotFound, "Career not found"},
	{ErrSpecializationNotFound, http.StatusNotFound, "Specialization not found"},
	{ErrFavoriteNotFound, http.StatusNotFound, "Favorite not found"},
	{ErrWrongTestKind, http.StatusBadRequest, "Answers do not match the test kind"},
	{ErrIncompleteSubmission, http.StatusBadRequest, "Every presented question must be answered exactly once"},
	{ErrUnknownOption, http.StatusBadRequest, "An answer option does not belong to its question"},
	{ErrNoEvaluationsCompleted, http.StatusConflict, "Complete at least one evaluation before requesting recommendations"},
	{ErrEmptyCatalog, http.StatusConflict, "No catalog entries available to recommend"},
	{ErrFavoriteLimitReached, http.StatusConflict, "Favorite limit of 10 reached"},
	{ErrFavoriteAlreadyExists, http.StatusConflict, "Already marked as favorite"},
	{ErrDuplicateActiveTest, http.StatusConflict, "An active test already exists for this kind"},
	{ErrTooFewQuestions, http.StatusBadRequest, "A test requires at least 100 questions"},
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrUserDirectoryUnavailable, http.StatusBadGateway, "User directory unavailable"},
	{ErrRecommendationFailed, http.StatusBadGateway, "Recommendation service unavailable"},
	{ErrUnknownTarget, http.StatusBadGateway, "Recommendation service returned an unknown item"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, entry := range serviceErrorMap {
		if errors.Is(err, entry.err) {
			RespondError(c, entry.code, entry.message)
			return
		}
	}

	if errors.Is(err, ErrDatabaseError) {
		log.Printf("Database error: %v", err)
	} else {
		log.Printf("Unknown error: %v", err)
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
