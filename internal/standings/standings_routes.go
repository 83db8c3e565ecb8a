package standings

import (
	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/gin-gonic/gin"
)

// RegisterStandingsRoutes sets up the league table routes
func RegisterStandingsRoutes(router *gin.RouterGroup, provider sample.Provider, appConfig *config.Config) {
	standingsController := NewStandingsController(provider, appConfig)

	standings := router.Group("/standings")
	{
		standings.GET("", standingsController.GetStandings)
		standings.GET("/leagues", standingsController.GetLeagues)
		standings.GET("/summary", standingsController.GetSummary)
		standings.GET("/advanced", standingsController.GetAdvanced)
		standings.GET("/top", standingsController.GetTop)
		standings.GET("/trends", standingsController.GetTrends)
	}
}
