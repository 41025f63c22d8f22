package store

import (
	"errors"
	"time"

	"github.com/playforge/gamify-api/internal/models"
	"gorm.io/gorm"
)

// GormStore implements Store on a GORM connection. It translates GORM's
// sentinel errors so callers never depend on the driver.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func (s *GormStore) CreatePlayer(player *models.Player) error {
	return translate(s.db.Create(player).Error)
}

func (s *GormStore) FindPlayer(id uint) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, id).Error; err != nil {
		return nil, translate(err)
	}
	return &player, nil
}

func (s *GormStore) CreateBoost(boost *models.Boost) error {
	return translate(s.db.Create(boost).Error)
}

func (s *GormStore) FindBoost(id uint) (*models.Boost, error) {
	var boost models.Boost
	if err := s.db.First(&boost, id).Error; err != nil {
		return nil, translate(err)
	}
	return &boost, nil
}

func (s *GormStore) GrantBoost(grant *models.PlayerBoost) error {
	return translate(s.db.Create(grant).Error)
}

func (s *GormStore) CreateLevel(level *models.Level) error {
	return translate(s.db.Create(level).Error)
}

func (s *GormStore) FindLevel(id uint) (*models.Level, error) {
	var level models.Level
	if err := s.db.First(&level, id).Error; err != nil {
		return nil, translate(err)
	}
	return &level, nil
}

func (s *GormStore) CreatePrize(prize *models.Prize) error {
	return translate(s.db.Create(prize).Error)
}

func (s *GormStore) FindPrize(id uint) (*models.Prize, error) {
	var prize models.Prize
	if err := s.db.First(&prize, id).Error; err != nil {
		return nil, translate(err)
	}
	return &prize, nil
}

func (s *GormStore) CreatePlayerLevel(progress *models.PlayerLevel) error {
	return translate(s.db.Create(progress).Error)
}

func (s *GormStore) FindPlayerLevel(playerID, levelID uint) (*models.PlayerLevel, error) {
	var progress models.PlayerLevel
	err := s.db.Preload("Player").Preload("Level").
		Where("player_id = ? AND level_id = ?", playerID, levelID).
		First(&progress).Error
	if err != nil {
		return nil, translate(err)
	}
	return &progress, nil
}

func (s *GormStore) CompletePlayerLevel(playerID, levelID uint, score int, at time.Time) (*models.PlayerLevel, error) {
	progress, err := s.FindPlayerLevel(playerID, levelID)
	if err != nil {
		return nil, err
	}

	progress.IsCompleted = true
	progress.Completed = &at
	progress.Score = score

	if err := s.db.Save(progress).Error; err != nil {
		return nil, translate(err)
	}
	return progress, nil
}

func (s *GormStore) CreateLevelPrize(grant *models.LevelPrize) error {
	return translate(s.db.Create(grant).Error)
}

func (s *GormStore) ListPlayerLevels() ([]models.PlayerLevel, error) {
	var rows []models.PlayerLevel
	if err := s.db.Preload("Level").Order("id").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (s *GormStore) FirstLevelPrize(levelID uint) (*models.LevelPrize, error) {
	var grant models.LevelPrize
	err := s.db.Preload("Prize").Where("level_id = ?", levelID).First(&grant).Error
	if err != nil {
		return nil, translate(err)
	}
	return &grant, nil
}
