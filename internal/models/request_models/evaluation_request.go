package request_models

type UserAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required,uuid"`
	OptionID   string `json:"option_id" binding:"required,uuid"`
}

type SubmitTestRequest struct {
	TestID  string              `json:"test_id" binding:"required,uuid"`
	Answers []UserAnswerRequest `json:"answers" binding:"required,min=1,dive"`
}
