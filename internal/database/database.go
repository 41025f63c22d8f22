package database

import (
	"log"

	"github.com/playforge/gamify-api/internal/config"
	"github.com/playforge/gamify-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the prize grant relies on for its atomic duplicate check.
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&models.Player{},
		&models.Boost{},
		&models.PlayerBoost{},
		&models.Level{},
		&models.Prize{},
		&models.PlayerLevel{},
		&models.LevelPrize{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
