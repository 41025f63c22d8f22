package store

import (
	"errors"
	"time"

	"github.com/playforge/gamify-api/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// Store exposes typed lookup and insert operations over the gamification
// schema. Services hold a Store rather than a database handle.
type Store interface {
	CreatePlayer(player *models.Player) error
	FindPlayer(id uint) (*models.Player, error)

	CreateBoost(boost *models.Boost) error
	FindBoost(id uint) (*models.Boost, error)
	GrantBoost(grant *models.PlayerBoost) error

	CreateLevel(level *models.Level) error
	FindLevel(id uint) (*models.Level, error)

	CreatePrize(prize *models.Prize) error
	FindPrize(id uint) (*models.Prize, error)

	CreatePlayerLevel(progress *models.PlayerLevel) error
	// FindPlayerLevel returns the progress row for (player, level) with its
	// Player and Level associations loaded.
	FindPlayerLevel(playerID, levelID uint) (*models.PlayerLevel, error)
	CompletePlayerLevel(playerID, levelID uint, score int, at time.Time) (*models.PlayerLevel, error)

	// CreateLevelPrize inserts a grant row. Returns ErrDuplicate when a grant
	// for the same (level, prize) pair already exists.
	CreateLevelPrize(grant *models.LevelPrize) error

	ListPlayerLevels() ([]models.PlayerLevel, error)
	// FirstLevelPrize returns the lowest-ID grant for a level with its Prize
	// loaded, or ErrNotFound when the level has no grants.
	FirstLevelPrize(levelID uint) (*models.LevelPrize, error)
}
