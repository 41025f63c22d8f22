package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/playforge/gamify-api/internal/service"
)

type PrizeHandler struct {
	prizes *service.PrizeService
}

func NewPrizeHandler(prizes *service.PrizeService) *PrizeHandler {
	return &PrizeHandler{prizes: prizes}
}

type AssignPrizeRequest struct {
	Body struct {
		PlayerID uint `json:"player_id" doc:"ID of the player" required:"true"`
		LevelID  uint `json:"level_id" doc:"ID of the level the player completed" required:"true"`
		PrizeID  uint `json:"prize_id" doc:"ID of the prize to grant" required:"true"`
	}
}

type AssignPrizeResponse struct {
	Body struct {
		Status string `json:"status"`
	}
}

func (h *PrizeHandler) HandleAssignPrize(ctx context.Context, input *AssignPrizeRequest) (*AssignPrizeResponse, error) {
	status, err := h.prizes.AssignPrize(input.Body.PlayerID, input.Body.LevelID, input.Body.PrizeID)
	if err != nil {
		var svcErr *service.Error
		if errors.As(err, &svcErr) && svcErr.Kind == service.KindNotFound {
			return nil, huma.Error400BadRequest(svcErr.Error())
		}
		return nil, huma.Error500InternalServerError("Failed to assign prize: " + err.Error())
	}

	res := &AssignPrizeResponse{}
	res.Body.Status = string(status)
	return res, nil
}
