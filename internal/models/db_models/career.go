package db_models

import (
	"github.com/google/uuid"
)

type Career struct {
	BaseModel
	Name              string `gorm:"size:200"`
	Description       string `gorm:"type:text"`
	DurationSemesters int
	GraduateProfile   string `gorm:"type:text"`
	JobField          string `gorm:"type:text"`
	AverageSalary     float64
}

type SpecializationArea struct {
	BaseModel
	CareerID          uuid.UUID `gorm:"type:uuid;index"`
	Career            Career
	Name              string `gorm:"size:200"`
	Description       string `gorm:"type:text"`
	ApplicationFields string `gorm:"type:text"`
	JobProjection     string `gorm:"type:text"`
}
