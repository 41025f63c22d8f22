package models

import (
	"time"

	"gorm.io/gorm"
)

type Player struct {
	gorm.Model
	Username   string    `gorm:"uniqueIndex" json:"username"`
	FirstLogin time.Time `json:"first_login"`
	Points     int       `gorm:"default:0" json:"points"`
}

// BeforeCreate defaults FirstLogin to the creation time.
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.FirstLogin.IsZero() {
		p.FirstLogin = time.Now()
	}
	return nil
}
