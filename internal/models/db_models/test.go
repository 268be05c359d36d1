package db_models

import (
	"github.com/google/uuid"
)

type TestType struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;size:50"`
	Description string
}

type Test struct {
	BaseModel
	TestTypeID      uuid.UUID `gorm:"type:uuid;index"`
	TestType        TestType
	Name            string `gorm:"size:200"`
	Description     string `gorm:"type:text"`
	QuestionsToShow int
	Active          bool `gorm:"index"`

	Questions []Question
}

type Question struct {
	BaseModel
	TestID       uuid.UUID `gorm:"type:uuid;index"`
	QuestionText string    `gorm:"type:text"`
	Position     int
	Active       bool

	AnswerOptions []AnswerOption
}

// AnswerOption carries the scoring inputs for a question. WeightValue and
// Category are nil for personality-test options, which are scored from the
// option text instead.
type AnswerOption struct {
	BaseModel
	QuestionID  uuid.UUID `gorm:"type:uuid;index"`
	OptionText  string    `gorm:"type:text"`
	WeightValue *int
	Category    *string `gorm:"size:100"`
}
