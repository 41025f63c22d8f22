package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/playforge/gamify-api/internal/models"
	"github.com/playforge/gamify-api/internal/store"
)

type PlayerHandler struct {
	store store.Store
}

func NewPlayerHandler(st store.Store) *PlayerHandler {
	return &PlayerHandler{store: st}
}

type CreatePlayerRequest struct {
	Body struct {
		Username string `json:"username" doc:"Unique player username" required:"true" minLength:"1"`
	}
}

type CreatePlayerResponse struct {
	Body struct {
		ID         uint      `json:"id"`
		Username   string    `json:"username"`
		FirstLogin time.Time `json:"first_login"`
		Points     int       `json:"points"`
	}
}

func (h *PlayerHandler) HandleCreatePlayer(ctx context.Context, input *CreatePlayerRequest) (*CreatePlayerResponse, error) {
	player := models.Player{Username: input.Body.Username}

	if err := h.store.CreatePlayer(&player); errors.Is(err, store.ErrDuplicate) {
		return nil, huma.Error409Conflict("Username already taken")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create player: " + err.Error())
	}

	res := &CreatePlayerResponse{}
	res.Body.ID = player.ID
	res.Body.Username = player.Username
	res.Body.FirstLogin = player.FirstLogin
	res.Body.Points = player.Points
	return res, nil
}

type GrantBoostRequest struct {
	Body struct {
		PlayerID uint `json:"player_id" doc:"ID of the player" required:"true"`
		BoostID  uint `json:"boost_id" doc:"ID of the boost to grant" required:"true"`
	}
}

type GrantBoostResponse struct {
	Body struct {
		ID         uint      `json:"id"`
		AssignedAt time.Time `json:"assigned_at"`
	}
}

func (h *PlayerHandler) HandleGrantBoost(ctx context.Context, input *GrantBoostRequest) (*GrantBoostResponse, error) {
	if _, err := h.store.FindPlayer(input.Body.PlayerID); errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error400BadRequest("player not found")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("Failed to look up player: " + err.Error())
	}

	if _, err := h.store.FindBoost(input.Body.BoostID); errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error400BadRequest("boost not found")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("Failed to look up boost: " + err.Error())
	}

	grant := models.PlayerBoost{
		PlayerID:   input.Body.PlayerID,
		BoostID:    input.Body.BoostID,
		AssignedAt: time.Now(),
	}
	if err := h.store.GrantBoost(&grant); err != nil {
		return nil, huma.Error500InternalServerError("Failed to grant boost: " + err.Error())
	}

	res := &GrantBoostResponse{}
	res.Body.ID = grant.ID
	res.Body.AssignedAt = grant.AssignedAt
	return res, nil
}

type StartProgressRequest struct {
	Body struct {
		PlayerID uint `json:"player_id" doc:"ID of the player" required:"true"`
		LevelID  uint `json:"level_id" doc:"ID of the level being started" required:"true"`
	}
}

type ProgressResponse struct {
	Body struct {
		ID          uint       `json:"id"`
		PlayerID    uint       `json:"player_id"`
		LevelID     uint       `json:"level_id"`
		IsCompleted bool       `json:"is_completed"`
		Completed   *time.Time `json:"completed"`
		Score       int        `json:"score"`
	}
}

func progressResponse(progress *models.PlayerLevel) *ProgressResponse {
	res := &ProgressResponse{}
	res.Body.ID = progress.ID
	res.Body.PlayerID = progress.PlayerID
	res.Body.LevelID = progress.LevelID
	res.Body.IsCompleted = progress.IsCompleted
	res.Body.Completed = progress.Completed
	res.Body.Score = progress.Score
	return res
}

func (h *PlayerHandler) HandleStartProgress(ctx context.Context, input *StartProgressRequest) (*ProgressResponse, error) {
	if _, err := h.store.FindPlayer(input.Body.PlayerID); errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error400BadRequest("player not found")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("Failed to look up player: " + err.Error())
	}

	if _, err := h.store.FindLevel(input.Body.LevelID); errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error400BadRequest("level not found")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("Failed to look up level: " + err.Error())
	}

	progress := models.PlayerLevel{
		PlayerID: input.Body.PlayerID,
		LevelID:  input.Body.LevelID,
	}
	if err := h.store.CreatePlayerLevel(&progress); errors.Is(err, store.ErrDuplicate) {
		return nil, huma.Error409Conflict("Progress already tracked for this player and level")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("Failed to track progress: " + err.Error())
	}

	return progressResponse(&progress), nil
}

type CompleteProgressRequest struct {
	Body struct {
		PlayerID uint `json:"player_id" doc:"ID of the player" required:"true"`
		LevelID  uint `json:"level_id" doc:"ID of the level completed" required:"true"`
		Score    int  `json:"score" doc:"Score achieved on the level" minimum:"0"`
	}
}

func (h *PlayerHandler) HandleCompleteProgress(ctx context.Context, input *CompleteProgressRequest) (*ProgressResponse, error) {
	progress, err := h.store.CompletePlayerLevel(input.Body.PlayerID, input.Body.LevelID, input.Body.Score, time.Now())
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error400BadRequest("player-or-level not found")
	} else if err != nil {
		return nil, huma.Error500InternalServerError("Failed to complete level: " + err.Error())
	}

	return progressResponse(progress), nil
}
