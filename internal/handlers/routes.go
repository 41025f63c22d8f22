package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, playerHandler *PlayerHandler, contentHandler *ContentHandler, prizeHandler *PrizeHandler, exportHandler *ExportHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Gamify API", "1.0.0")
	api := humachi.New(r, config)

	// Non-JSON routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Get("/export-csv", exportHandler.HandleExportCSV)

	// Player and gameplay routes
	huma.Post(api, "/players", playerHandler.HandleCreatePlayer)
	huma.Post(api, "/boosts/grant", playerHandler.HandleGrantBoost)
	huma.Post(api, "/progress", playerHandler.HandleStartProgress)
	huma.Post(api, "/progress/complete", playerHandler.HandleCompleteProgress)
	huma.Post(api, "/assign-prize", prizeHandler.HandleAssignPrize)

	// Admin content routes
	huma.Post(api, "/boosts", contentHandler.HandleCreateBoost)
	huma.Post(api, "/levels", contentHandler.HandleCreateLevel)
	huma.Post(api, "/prizes", contentHandler.HandleCreatePrize)
}
