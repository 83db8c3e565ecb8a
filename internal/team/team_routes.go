package team

import (
	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up all team analysis routes
func TeamRoutes(router *gin.RouterGroup, provider sample.Provider, appConfig *config.Config) {
	teamRepo := NewTeamRepository(provider)
	teamController := NewTeamController(teamRepo, appConfig)

	router.GET("/teams", teamController.GetTeams)
	router.GET("/teams/:name", teamController.GetTeam)
	router.GET("/teams/:name/form", teamController.GetTeamForm)
	router.GET("/teams/:name/history", teamController.GetTeamHistory)
	router.GET("/teams/:name/projection", teamController.GetTeamProjection)
	router.GET("/teams/:name/performance", teamController.GetTeamPerformance)

	router.GET("/compare/teams", teamController.CompareTeams)
}
