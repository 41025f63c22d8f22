package models

import (
	"time"

	"gorm.io/gorm"
)

type Prize struct {
	gorm.Model
	Title string `json:"title"`
}

// LevelPrize records that a prize was granted for a level. The composite
// unique index is what makes the grant insert atomic: a second grant for the
// same (level, prize) pair fails with a duplicate-key error instead of
// racing a prior existence check.
type LevelPrize struct {
	gorm.Model
	LevelID  uint       `gorm:"uniqueIndex:idx_level_prize" json:"level_id"`
	Level    Level      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PrizeID  uint       `gorm:"uniqueIndex:idx_level_prize" json:"prize_id"`
	Prize    Prize      `json:"-"`
	Received *time.Time `json:"received"`
}
