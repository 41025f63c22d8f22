package models

import (
	"time"

	"gorm.io/gorm"
)

type Level struct {
	gorm.Model
	Title string `json:"title"`
	Order int    `gorm:"column:display_order" json:"order"`
}

// PlayerLevel tracks a player's progress through a level. One row per
// (player, level) pair.
type PlayerLevel struct {
	gorm.Model
	PlayerID    uint       `gorm:"uniqueIndex:idx_player_level" json:"player_id"`
	Player      Player     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	LevelID     uint       `gorm:"uniqueIndex:idx_player_level" json:"level_id"`
	Level       Level      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	Completed   *time.Time `json:"completed"`
	Score       int        `gorm:"default:0" json:"score"`
}
