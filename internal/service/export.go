package service

import (
	"errors"

	"github.com/playforge/gamify-api/internal/store"
)

// NoPrizeMarker is emitted in place of a prize title for levels with no
// recorded grant.
const NoPrizeMarker = "None"

// ExportRow is one line of the player-level export: one row per PlayerLevel
// record, carrying the first prize granted for that level if any.
type ExportRow struct {
	PlayerID   uint
	LevelTitle string
	Completed  bool
	Prize      string
}

type ExportService struct {
	store store.Store
}

func NewExportService(st store.Store) *ExportService {
	return &ExportService{store: st}
}

func (s *ExportService) Rows() ([]ExportRow, error) {
	progress, err := s.store.ListPlayerLevels()
	if err != nil {
		return nil, storage("player level scan", err)
	}

	rows := make([]ExportRow, 0, len(progress))
	for _, p := range progress {
		prize := NoPrizeMarker
		grant, err := s.store.FirstLevelPrize(p.LevelID)
		if err == nil {
			prize = grant.Prize.Title
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, storage("level prize lookup", err)
		}

		rows = append(rows, ExportRow{
			PlayerID:   p.PlayerID,
			LevelTitle: p.Level.Title,
			Completed:  p.IsCompleted,
			Prize:      prize,
		})
	}

	return rows, nil
}
