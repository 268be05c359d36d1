package request_models

type AnswerOptionRequest struct {
	OptionText  string  `json:"option_text" binding:"required"`
	WeightValue *int    `json:"weight_value,omitempty"`
	Category    *string `json:"category,omitempty"`
}

type QuestionRequest struct {
	QuestionText  string                `json:"question_text" binding:"required"`
	Position      int                   `json:"position"`
	AnswerOptions []AnswerOptionRequest `json:"answer_options" binding:"required,min=2,dive"`
}

type CreateTestRequest struct {
	Kind            string            `json:"kind" binding:"required"`
	Name            string            `json:"name" binding:"required"`
	Description     string            `json:"description"`
	QuestionsToShow int               `json:"questions_to_show" binding:"required,min=1"`
	Active          bool              `json:"active"`
	Questions       []QuestionRequest `json:"questions" binding:"required,dive"`
}

type UpdateTestRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	QuestionsToShow int    `json:"questions_to_show" binding:"required,min=1"`
	Active          bool   `json:"active"`
}

type UpdateTestStatusRequest struct {
	Active bool `json:"active"`
}
