package db_models

import (
	"github.com/google/uuid"
)

// CareerRecommendation rows are written by the recommendation coordinator and
// never updated in place; regeneration replaces the whole set for a user.
type CareerRecommendation struct {
	BaseModel
	UserID                  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_career_rec_user_target"`
	CareerID                uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_career_rec_user_target"`
	Career                  Career
	CompatibilityPercentage float64
}

type SpecializationRecommendation struct {
	BaseModel
	UserID                  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_spec_rec_user_target"`
	SpecializationAreaID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_spec_rec_user_target"`
	SpecializationArea      SpecializationArea
	CompatibilityPercentage float64
}
