package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/playforge/gamify-api/internal/config"
	"github.com/playforge/gamify-api/internal/database"
	"github.com/playforge/gamify-api/internal/handlers"
	"github.com/playforge/gamify-api/internal/notifier"
	"github.com/playforge/gamify-api/internal/service"
	"github.com/playforge/gamify-api/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)
	st := store.NewGormStore(db)

	// Optional Discord notifier for prize grants
	var prizeNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			prizeNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Services
	prizeService := service.NewPrizeService(st, prizeNotifier)
	exportService := service.NewExportService(st)

	// Initialize Handlers
	playerHandler := handlers.NewPlayerHandler(st)
	contentHandler := handlers.NewContentHandler(st)
	prizeHandler := handlers.NewPrizeHandler(prizeService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, playerHandler, contentHandler, prizeHandler, exportHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
