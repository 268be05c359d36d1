package utils

import "errors"

var (
	// Submission and scoring.
	ErrUserNotFound         = errors.New("user not found")
	ErrTestNotFound         = errors.New("test not found")
	ErrWrongTestKind        = errors.New("answers do not match the test kind")
	ErrIncompleteSubmission = errors.New("submission does not answer every presented question")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrOptionNotFound       = errors.New("answer option not found")
	ErrUnknownOption        = errors.New("answer option does not belong to the question")
	ErrEvaluationNotFound   = errors.New("evaluation not found")
	ErrNoEvaluationHistory  = errors.New("no completed evaluations for user")

	// Recommendations.
	ErrNoEvaluationsCompleted   = errors.New("no completed evaluations to recommend from")
	ErrEmptyCatalog             = errors.New("catalog is empty")
	ErrUnknownTarget            = errors.New("ranked item does not match any catalog entry")
	ErrRecommendationFailed     = errors.New("recommendation ranking failed")
	ErrUserDirectoryUnavailable = errors.New("user directory unavailable")

	// Catalog and favorites.
	ErrCareerNotFound         = errors.New("career not found")
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrFavoriteNotFound       = errors.New("favorite not found")
	ErrFavoriteLimitReached   = errors.New("favorite limit reached")
	ErrFavoriteAlreadyExists  = errors.New("favorite already exists")

	// Test administration.
	ErrDuplicateActiveTest = errors.New("an active test already exists for this kind")
	ErrTooFewQuestions     = errors.New("test needs at least 100 questions")

	// Shared.
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
