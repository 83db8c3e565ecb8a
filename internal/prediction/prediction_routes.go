package prediction

import (
	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/gin-gonic/gin"
)

// RegisterPredictionRoutes sets up the match prediction routes
func RegisterPredictionRoutes(router *gin.RouterGroup, provider sample.Provider, appConfig *config.Config) {
	predictionController := NewPredictionController(provider, appConfig)

	predictions := router.Group("/predictions")
	{
		predictions.GET("", predictionController.GetPredictions)
		predictions.GET("/overview", predictionController.GetOverview)
		predictions.GET("/confidence", predictionController.GetConfidence)
		predictions.GET("/teams", predictionController.GetTeams)
		predictions.GET("/model", predictionController.GetModel)
		predictions.GET("/:id", predictionController.GetPrediction)
	}
}
