package home

import (
	"net/http"

	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/pkg/responses"
	"github.com/gin-gonic/gin"
)

// Metric is a headline figure with its change since the last period.
type Metric struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Change int    `json:"change"`
}

// Page is an entry in the dashboard navigation.
type Page struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Overview is the landing payload of the dashboard.
type Overview struct {
	League  string   `json:"league"`
	Metrics []Metric `json:"metrics"`
	Pages   []Page   `json:"pages"`
}

var (
	headlineMetrics = []Metric{
		{Label: "Total Players", Value: 1247, Change: 15},
		{Label: "Active Teams", Value: 89, Change: 3},
		{Label: "Matches Analyzed", Value: 2156, Change: 42},
	}
	pages = []Page{
		{Name: "Player Statistics", Path: "/api/players", Description: "Individual performance, top scorers and player comparisons"},
		{Name: "Team Analysis", Path: "/api/teams", Description: "Team form, comparisons, history and season projections"},
		{Name: "League Standings", Path: "/api/standings", Description: "League tables, qualification zones and league-wide statistics"},
		{Name: "Match Predictions", Path: "/api/predictions", Description: "Outcome probabilities and model performance for upcoming fixtures"},
	}
)

// HomeController serves the dashboard landing data.
type HomeController struct {
	appConfig *config.Config
}

// NewHomeController creates a new home controller
func NewHomeController(appConfig *config.Config) *HomeController {
	return &HomeController{appConfig: appConfig}
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Headline platform metrics and the available dashboard pages.
// @Tags Home
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Overview}
// @Router /overview [get]
func (hc *HomeController) GetOverview(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Welcome to the Soccer Statistics Dashboard", Overview{
		League:  hc.appConfig.League.Name,
		Metrics: append([]Metric(nil), headlineMetrics...),
		Pages:   append([]Page(nil), pages...),
	})
}
