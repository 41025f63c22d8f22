package handlers

import (
	"encoding/csv"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/playforge/gamify-api/internal/models"
	"github.com/playforge/gamify-api/internal/service"
)

func TestHandleExportCSV(t *testing.T) {
	db, st := newTestDB(t)

	player := models.Player{Username: "alice"}
	db.Create(&player)
	level := models.Level{Title: "Forest", Order: 1}
	db.Create(&level)
	now := time.Now()
	db.Create(&models.PlayerLevel{PlayerID: player.ID, LevelID: level.ID, IsCompleted: true, Completed: &now})
	prize := models.Prize{Title: "Golden Key"}
	db.Create(&prize)
	db.Create(&models.LevelPrize{LevelID: level.ID, PrizeID: prize.ID, Received: &now})

	// A second progress row with no grant.
	other := models.Player{Username: "bob"}
	db.Create(&other)
	cave := models.Level{Title: "Cave", Order: 2}
	db.Create(&cave)
	db.Create(&models.PlayerLevel{PlayerID: other.ID, LevelID: cave.ID})

	handler := NewExportHandler(service.NewExportService(st))

	req := httptest.NewRequest("GET", "/export-csv", nil)
	rec := httptest.NewRecorder()
	handler.HandleExportCSV(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("expected Content-Type text/csv, got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="player_level_data.csv"` {
		t.Errorf("unexpected Content-Disposition: %q", got)
	}

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	want := []string{"Player ID", "Level Title", "Completed", "Prize"}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("header column %d: expected %q, got %q", i, want[i], header[i])
		}
	}

	rowsByLevel := map[string][]string{}
	for _, record := range records[1:] {
		rowsByLevel[record[1]] = record
	}

	forest := rowsByLevel["Forest"]
	if forest == nil {
		t.Fatal("missing Forest row")
	}
	if forest[2] != "true" || forest[3] != "Golden Key" {
		t.Errorf("unexpected Forest row: %v", forest)
	}

	cave2 := rowsByLevel["Cave"]
	if cave2 == nil {
		t.Fatal("missing Cave row")
	}
	if cave2[2] != "false" || cave2[3] != "None" {
		t.Errorf("unexpected Cave row: %v", cave2)
	}
}
