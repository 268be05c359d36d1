package response_models

type AnswerOptionResponse struct {
	ID         string `json:"id"`
	OptionText string `json:"option_text"`
}

type QuestionResponse struct {
	ID            string                 `json:"id"`
	QuestionText  string                 `json:"question_text"`
	Position      int                    `json:"position"`
	AnswerOptions []AnswerOptionResponse `json:"answer_options"`
}

// TestResponse is the sitting handed to the client: the presented question
// subset with options stripped of weights and categories.
type TestResponse struct {
	ID              string             `json:"id"`
	Kind            string             `json:"kind"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	QuestionsToShow int                `json:"questions_to_show"`
	Questions       []QuestionResponse `json:"questions"`
}

type TestSummaryResponse struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	QuestionsToShow int    `json:"questions_to_show"`
	Active          bool   `json:"active"`
}

type AdminAnswerOptionResponse struct {
	ID          string  `json:"id"`
	OptionText  string  `json:"option_text"`
	WeightValue *int    `json:"weight_value,omitempty"`
	Category    *string `json:"category,omitempty"`
}

type AdminQuestionResponse struct {
	ID            string                      `json:"id"`
	QuestionText  string                      `json:"question_text"`
	Position      int                         `json:"position"`
	Active        bool                        `json:"active"`
	AnswerOptions []AdminAnswerOptionResponse `json:"answer_options"`
}

// TestAdminDetailResponse keeps the scoring fields; it is only served on the
// admin routes.
type TestAdminDetailResponse struct {
	TestSummaryResponse
	Questions []AdminQuestionResponse `json:"questions"`
}
