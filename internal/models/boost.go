package models

import (
	"time"

	"gorm.io/gorm"
)

type Boost struct {
	gorm.Model
	Name        string `json:"name"`
	BoostType   string `json:"boost_type"`
	Description string `json:"description"`
}

type PlayerBoost struct {
	gorm.Model
	PlayerID   uint      `json:"player_id"`
	Player     Player    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	BoostID    uint      `json:"boost_id"`
	Boost      Boost     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AssignedAt time.Time `json:"assigned_at"`
}
