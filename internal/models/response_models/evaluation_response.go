package response_models

import "encoding/json"

// EvaluationResultResponse returns the scored artifact right after
// submission. Result carries the kind-specific shape untouched.
type EvaluationResultResponse struct {
	EvaluationID   string          `json:"evaluation_id"`
	TestID         string          `json:"test_id"`
	Kind           string          `json:"kind"`
	CompletionDate string          `json:"completion_date"`
	TotalScore     *float64        `json:"total_score,omitempty"`
	Result         json.RawMessage `json:"result"`
}

type EvaluationHistoryResponse struct {
	EvaluationID   string   `json:"evaluation_id"`
	TestName       string   `json:"test_name"`
	Kind           string   `json:"kind"`
	CompletionDate string   `json:"completion_date"`
	TotalScore     *float64 `json:"total_score,omitempty"`
}

type UserAnswerDetail struct {
	QuestionText string `json:"question_text"`
	OptionText   string `json:"option_text"`
}

type EvaluationDetailResponse struct {
	EvaluationID   string             `json:"evaluation_id"`
	TestName       string             `json:"test_name"`
	Kind           string             `json:"kind"`
	CompletionDate string             `json:"completion_date"`
	TotalScore     *float64           `json:"total_score,omitempty"`
	Result         json.RawMessage    `json:"result"`
	Answers        []UserAnswerDetail `json:"answers"`
}
