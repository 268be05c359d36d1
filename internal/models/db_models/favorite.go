package db_models

import (
	"github.com/google/uuid"
)

type FavoriteCareer struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_fav_career_user"`
	CareerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_fav_career_user"`
	Career   Career
	Notes    string `gorm:"type:text"`
	Active   bool
}

type FavoriteSpecialization struct {
	BaseModel
	UserID               uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_fav_spec_user"`
	SpecializationAreaID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_fav_spec_user"`
	SpecializationArea   SpecializationArea
	Notes                string `gorm:"type:text"`
	Active               bool
}
