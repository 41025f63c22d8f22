package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/playforge/gamify-api/internal/models"
	"github.com/playforge/gamify-api/internal/store"
)

// ContentHandler covers the admin surface: boosts, levels, and prizes.
type ContentHandler struct {
	store store.Store
}

func NewContentHandler(st store.Store) *ContentHandler {
	return &ContentHandler{store: st}
}

type CreateBoostRequest struct {
	Body struct {
		Name        string `json:"name" doc:"Name of the boost" required:"true"`
		BoostType   string `json:"boost_type" doc:"Kind of boost, e.g. xp or speed" required:"true"`
		Description string `json:"description" doc:"Free-text description"`
	}
}

type CreatedResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

func (h *ContentHandler) HandleCreateBoost(ctx context.Context, input *CreateBoostRequest) (*CreatedResponse, error) {
	boost := models.Boost{
		Name:        input.Body.Name,
		BoostType:   input.Body.BoostType,
		Description: input.Body.Description,
	}
	if err := h.store.CreateBoost(&boost); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create boost: " + err.Error())
	}

	res := &CreatedResponse{}
	res.Body.ID = boost.ID
	return res, nil
}

type CreateLevelRequest struct {
	Body struct {
		Title string `json:"title" doc:"Title of the level" required:"true"`
		Order int    `json:"order" doc:"Display order of the level"`
	}
}

func (h *ContentHandler) HandleCreateLevel(ctx context.Context, input *CreateLevelRequest) (*CreatedResponse, error) {
	level := models.Level{
		Title: input.Body.Title,
		Order: input.Body.Order,
	}
	if err := h.store.CreateLevel(&level); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create level: " + err.Error())
	}

	res := &CreatedResponse{}
	res.Body.ID = level.ID
	return res, nil
}

type CreatePrizeRequest struct {
	Body struct {
		Title string `json:"title" doc:"Title of the prize" required:"true"`
	}
}

func (h *ContentHandler) HandleCreatePrize(ctx context.Context, input *CreatePrizeRequest) (*CreatedResponse, error) {
	prize := models.Prize{Title: input.Body.Title}
	if err := h.store.CreatePrize(&prize); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create prize: " + err.Error())
	}

	res := &CreatedResponse{}
	res.Body.ID = prize.ID
	return res, nil
}
