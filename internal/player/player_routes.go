package player

import (
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/gin-gonic/gin"
)

// RegisterPlayerRoutes sets up the player statistics routes
func RegisterPlayerRoutes(router *gin.RouterGroup, provider sample.Provider) {
	playerController := NewPlayerController(provider)

	players := router.Group("/players")
	{
		players.GET("", playerController.GetPlayers)
		players.GET("/teams", playerController.GetPlayerTeams)
		players.GET("/:name/radar", playerController.GetPlayerRadar)
	}
}
