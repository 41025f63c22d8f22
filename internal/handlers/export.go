package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/playforge/gamify-api/internal/service"
)

type ExportHandler struct {
	export *service.ExportService
}

func NewExportHandler(export *service.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

// HandleExportCSV writes the full player-level export as a CSV download.
// It is a plain chi handler because the response body is not JSON.
func (h *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.export.Rows()
	if err != nil {
		http.Error(w, "Failed to export player data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="player_level_data.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"Player ID", "Level Title", "Completed", "Prize"})
	for _, row := range rows {
		cw.Write([]string{
			strconv.FormatUint(uint64(row.PlayerID), 10),
			row.LevelTitle,
			strconv.FormatBool(row.Completed),
			row.Prize,
		})
	}
	cw.Flush()
}
