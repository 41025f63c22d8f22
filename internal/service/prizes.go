package service

import (
	"errors"
	"log"
	"time"

	"github.com/playforge/gamify-api/internal/models"
	"github.com/playforge/gamify-api/internal/notifier"
	"github.com/playforge/gamify-api/internal/store"
)

// AssignStatus is the outcome of a prize assignment. All three values are
// normal results, not errors.
type AssignStatus string

const (
	StatusAssigned          AssignStatus = "Prize assigned"
	StatusAlreadyAssigned   AssignStatus = "Prize already assigned"
	StatusLevelNotCompleted AssignStatus = "Level not completed"
)

type PrizeService struct {
	store    store.Store
	notifier notifier.Notifier
}

func NewPrizeService(st store.Store, n notifier.Notifier) *PrizeService {
	return &PrizeService{store: st, notifier: n}
}

// AssignPrize grants a prize for a level the player has completed. The
// duplicate-grant check is the insert itself: the (level, prize) unique index
// rejects a second grant, so concurrent calls cannot both succeed.
func (s *PrizeService) AssignPrize(playerID, levelID, prizeID uint) (AssignStatus, error) {
	progress, err := s.store.FindPlayerLevel(playerID, levelID)
	if errors.Is(err, store.ErrNotFound) {
		return "", notFound("player-or-level")
	} else if err != nil {
		return "", storage("player level lookup", err)
	}

	prize, err := s.store.FindPrize(prizeID)
	if errors.Is(err, store.ErrNotFound) {
		return "", notFound("prize")
	} else if err != nil {
		return "", storage("prize lookup", err)
	}

	if !progress.IsCompleted {
		return StatusLevelNotCompleted, nil
	}

	now := time.Now()
	grant := models.LevelPrize{
		LevelID:  levelID,
		PrizeID:  prizeID,
		Received: &now,
	}
	if err := s.store.CreateLevelPrize(&grant); errors.Is(err, store.ErrDuplicate) {
		return StatusAlreadyAssigned, nil
	} else if err != nil {
		return "", storage("prize grant", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyPrizeGrant(progress.Player, progress.Level, *prize); err != nil {
			// Best effort; the grant is already persisted.
			log.Printf("Failed to send prize notification: %v", err)
		}
	}

	return StatusAssigned, nil
}
