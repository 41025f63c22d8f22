package handlers

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/playforge/gamify-api/internal/models"
)

func TestHandleCreatePlayer(t *testing.T) {
	db, st := newTestDB(t)

	handler := NewPlayerHandler(st)

	req := CreatePlayerRequest{}
	req.Body.Username = "alice"

	resp, err := handler.HandleCreatePlayer(context.Background(), &req)
	if err != nil {
		t.Fatalf("HandleCreatePlayer returned error: %v", err)
	}
	if resp.Body.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", resp.Body.Username)
	}
	if resp.Body.FirstLogin.IsZero() {
		t.Error("expected first_login to default to creation time")
	}

	// Duplicate username is rejected.
	_, err = handler.HandleCreatePlayer(context.Background(), &req)
	statusErr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("expected huma.StatusError, got %T", err)
	}
	if statusErr.GetStatus() != 409 {
		t.Errorf("expected status 409, got %d", statusErr.GetStatus())
	}

	var count int64
	db.Model(&models.Player{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 player in DB, got %d", count)
	}
}

func TestHandleGrantBoost(t *testing.T) {
	db, st := newTestDB(t)

	player := models.Player{Username: "alice"}
	db.Create(&player)
	boost := models.Boost{Name: "Double XP", BoostType: "xp", Description: "Doubles earned points"}
	db.Create(&boost)

	handler := NewPlayerHandler(st)

	req := GrantBoostRequest{}
	req.Body.PlayerID = player.ID
	req.Body.BoostID = boost.ID

	resp, err := handler.HandleGrantBoost(context.Background(), &req)
	if err != nil {
		t.Fatalf("HandleGrantBoost returned error: %v", err)
	}
	if resp.Body.AssignedAt.IsZero() {
		t.Error("expected assigned_at to be set")
	}

	req.Body.BoostID = 999
	_, err = handler.HandleGrantBoost(context.Background(), &req)
	statusErr, ok := err.(huma.StatusError)
	if !ok || statusErr.GetStatus() != 400 {
		t.Errorf("expected status 400 for unknown boost, got %v", err)
	}
}

func TestProgressLifecycle(t *testing.T) {
	db, st := newTestDB(t)

	player := models.Player{Username: "alice"}
	db.Create(&player)
	level := models.Level{Title: "Forest", Order: 1}
	db.Create(&level)

	handler := NewPlayerHandler(st)

	start := StartProgressRequest{}
	start.Body.PlayerID = player.ID
	start.Body.LevelID = level.ID

	resp, err := handler.HandleStartProgress(context.Background(), &start)
	if err != nil {
		t.Fatalf("HandleStartProgress returned error: %v", err)
	}
	if resp.Body.IsCompleted {
		t.Error("new progress should not be completed")
	}

	// Second start for the same pair conflicts.
	_, err = handler.HandleStartProgress(context.Background(), &start)
	statusErr, ok := err.(huma.StatusError)
	if !ok || statusErr.GetStatus() != 409 {
		t.Errorf("expected status 409 for duplicate progress, got %v", err)
	}

	complete := CompleteProgressRequest{}
	complete.Body.PlayerID = player.ID
	complete.Body.LevelID = level.ID
	complete.Body.Score = 150

	resp, err = handler.HandleCompleteProgress(context.Background(), &complete)
	if err != nil {
		t.Fatalf("HandleCompleteProgress returned error: %v", err)
	}
	if !resp.Body.IsCompleted {
		t.Error("expected progress to be completed")
	}
	if resp.Body.Completed == nil {
		t.Error("expected completed date to be set")
	}
	if resp.Body.Score != 150 {
		t.Errorf("expected score 150, got %d", resp.Body.Score)
	}
}
