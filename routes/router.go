package routes

import (
	"html"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/internal/home"
	"github.com/DhavalSuthar-24/kickstats/internal/middleware"
	"github.com/DhavalSuthar-24/kickstats/internal/player"
	"github.com/DhavalSuthar-24/kickstats/internal/prediction"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/internal/standings"
	"github.com/DhavalSuthar-24/kickstats/internal/team"
)

func SetupRoutes(provider sample.Provider, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{cfg.App.FrontendURL},
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Soccer Statistics Dashboard</title></head>
				<body style="text-align:center; margin-top: 40px;">
				<h1>Soccer Statistics Dashboard ⚽</h1>
				<p>`+html.EscapeString(cfg.League.Name)+` analytics API</p>
				<div>
					<a href="/swagger/index.html">API documentation</a>
				</div>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	home.RegisterHomeRoutes(api, cfg)
	player.RegisterPlayerRoutes(api, provider)
	team.TeamRoutes(api, provider, cfg)
	standings.RegisterStandingsRoutes(api, provider, cfg)
	prediction.RegisterPredictionRoutes(api, provider, cfg)

	return r
}
