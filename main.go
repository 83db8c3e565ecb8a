package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/kickstats/config"
	_ "github.com/DhavalSuthar-24/kickstats/docs"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/routes"
)

// @title Kickstats Soccer Statistics API
// @version 1.0
// @description Player, team, league and match prediction analytics for the soccer statistics dashboard.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	provider := sample.New(time.Now)
	r := routes.SetupRoutes(provider, cfg)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode (league: %s, season length: %d)\n",
		cfg.App.Port, cfg.App.Env, cfg.League.Name, cfg.League.SeasonLength)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
