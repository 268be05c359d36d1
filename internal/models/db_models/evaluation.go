package db_models

import (
	"time"

	"github.com/google/uuid"
)

// CompletedEvaluation is one user's attempt at a test. Once a result is
// attached the row is append-only.
type CompletedEvaluation struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;index"`
	TestID         uuid.UUID `gorm:"type:uuid;index"`
	Test           Test
	CompletionDate time.Time
	TotalScore     *float64

	Answers []UserAnswer      `gorm:"foreignKey:EvaluationID"`
	Result  *EvaluationResult `gorm:"foreignKey:EvaluationID"`
}

type UserAnswer struct {
	BaseModel
	EvaluationID uuid.UUID `gorm:"type:uuid;index"`
	QuestionID   uuid.UUID `gorm:"type:uuid"`
	Question     Question
	OptionID     uuid.UUID `gorm:"type:uuid"`
	Option       AnswerOption `gorm:"foreignKey:OptionID"`
}

// EvaluationResult stores the scored artifact as an opaque JSON blob.
// The typed form lives in internal/scoring.
type EvaluationResult struct {
	BaseModel
	EvaluationID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ResultJSON   string    `gorm:"type:text"`
}

type VocationalArea struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;size:100"`
	Description string `gorm:"type:text"`
}

type AreaResult struct {
	BaseModel
	EvaluationID     uuid.UUID `gorm:"type:uuid;index"`
	VocationalAreaID uuid.UUID `gorm:"type:uuid"`
	VocationalArea   VocationalArea
	Percentage       float64
	Ranking          int
}
