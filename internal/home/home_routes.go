package home

import (
	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/gin-gonic/gin"
)

// RegisterHomeRoutes sets up the dashboard landing route
func RegisterHomeRoutes(router *gin.RouterGroup, appConfig *config.Config) {
	homeController := NewHomeController(appConfig)
	router.GET("/overview", homeController.GetOverview)
}
