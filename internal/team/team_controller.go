package team

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/internal/form"
	"github.com/DhavalSuthar-24/kickstats/internal/projection"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/pkg/responses"
	"github.com/DhavalSuthar-24/kickstats/pkg/validator"
	"github.com/gin-gonic/gin"
)

const defaultHistorySeasons = 5

// TeamController handles team analysis HTTP requests
type TeamController struct {
	repo      TeamRepository
	appConfig *config.Config
	projector *projection.Projector
	forms     *form.Generator
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository, appConfig *config.Config) *TeamController {
	return &TeamController{
		repo:      repo,
		appConfig: appConfig,
		projector: projection.New(appConfig.League.SeasonLength),
		forms:     form.NewGenerator(form.DefaultWeights),
	}
}

// --- DTOs for requests ---

type TeamSearchQuery struct {
	Search string `form:"search" binding:"omitempty,max=100"`
}

type FormQuery struct {
	Form string `form:"form" binding:"omitempty,max=50"`
}

type CompareQuery struct {
	Teams []string `form:"teams" binding:"required,min=2,max=4,dive,required,max=100"`
}

type HistoryQuery struct {
	Seasons int `form:"seasons" binding:"omitempty,min=1,max=20"`
}

type ProjectionQuery struct {
	GamesPlayed *int `form:"games_played"`
}

// GetTeams godoc
// @Summary List team statistics
// @Description Season statistics for every team, optionally filtered by a case-insensitive name search.
// @Tags Teams
// @Produce json
// @Param search query string false "Substring of the team name"
// @Success 200 {object} responses.SuccessResponse{data=[]TeamRow}
// @Failure 400 {object} responses.ErrorResponse "Invalid query"
// @Router /teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
	var q TeamSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	teams, err := tc.repo.SearchTeams(q.Search)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams")
		return
	}
	rows := make([]TeamRow, len(teams))
	for i, t := range teams {
		rows[i] = NewTeamRow(t)
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", rows)
}

// GetTeam godoc
// @Summary Team overview
// @Description Headline numbers and a 0-100 performance radar for one team.
// @Tags Teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} responses.SuccessResponse{data=Overview}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{name} [get]
func (tc *TeamController) GetTeam(c *gin.Context) {
	t, ok := tc.findTeam(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", BuildOverview(*t))
}

// GetTeamForm godoc
// @Summary Recent form and momentum
// @Description Scores a run of results (oldest first). Without the form parameter a seeded demo run is used.
// @Tags Teams
// @Produce json
// @Param name path string true "Team name"
// @Param form query string false "Results oldest first, e.g. WDLWW"
// @Success 200 {object} responses.SuccessResponse{data=FormReport}
// @Failure 400 {object} responses.ErrorResponse "Malformed form string"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{name}/form [get]
func (tc *TeamController) GetTeamForm(c *gin.Context) {
	var q FormQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return
	}
	t, ok := tc.findTeam(c)
	if !ok {
		return
	}

	if q.Form == "" {
		seq := tc.forms.For(t.Team, tc.appConfig.League.FormWindow)
		responses.SendSuccess(c, http.StatusOK, "Form retrieved successfully", BuildFormReport(t.Team, seq, true))
		return
	}

	seq, err := form.Parse(q.Form)
	if err != nil {
		responses.SendValidationError(c, "Invalid form string", map[string]string{"form": err.Error()})
		return
	}
	if len(seq) == 0 {
		responses.SendValidationError(c, "Invalid form string", map[string]string{"form": "must contain at least one result"})
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Form retrieved successfully", BuildFormReport(t.Team, seq, false))
}

// CompareTeams godoc
// @Summary Compare teams
// @Description Side-by-side metrics for two to four teams with the standout team in attack, defence and possession.
// @Tags Teams
// @Produce json
// @Param teams query []string true "Team names (2 to 4)" collectionFormat(multi)
// @Success 200 {object} responses.SuccessResponse{data=Comparison}
// @Failure 400 {object} responses.ErrorResponse "Wrong number of teams"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /compare/teams [get]
func (tc *TeamController) CompareTeams(c *gin.Context) {
	var q CompareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Select between 2 and 4 teams to compare", validator.ParseError(err))
		return
	}

	selected := make([]sample.TeamStats, 0, len(q.Teams))
	for _, name := range q.Teams {
		t, err := tc.repo.GetTeamByName(name)
		if err != nil {
			responses.InternalServerError(c, "Failed to retrieve team")
			return
		}
		if t == nil {
			responses.NotFound(c, "Team '"+name+"'")
			return
		}
		selected = append(selected, *t)
	}
	responses.SendSuccess(c, http.StatusOK, "Comparison computed successfully", Compare(selected))
}

// GetTeamHistory godoc
// @Summary Historical seasons
// @Description Recent seasons, most recent first, with an improving or declining trend.
// @Tags Teams
// @Produce json
// @Param name path string true "Team name"
// @Param seasons query int false "Number of seasons (default 5)"
// @Success 200 {object} responses.SuccessResponse{data=sample.History}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{name}/history [get]
func (tc *TeamController) GetTeamHistory(c *gin.Context) {
	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return
	}
	if q.Seasons == 0 {
		q.Seasons = defaultHistorySeasons
	}
	t, ok := tc.findTeam(c)
	if !ok {
		return
	}

	history, err := tc.repo.GetHistory(t.Team, q.Seasons)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve history")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "History retrieved successfully", history)
}

// GetTeamProjection godoc
// @Summary Season projection
// @Description Extrapolates the final points total from the current pace. games_played defaults to an estimate from the points total.
// @Tags Teams
// @Produce json
// @Param name path string true "Team name"
// @Param games_played query int false "Games played so far"
// @Success 200 {object} responses.SuccessResponse{data=Projection}
// @Failure 400 {object} responses.ErrorResponse "games_played out of range"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{name}/projection [get]
func (tc *TeamController) GetTeamProjection(c *gin.Context) {
	var q ProjectionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return
	}
	t, ok := tc.findTeam(c)
	if !ok {
		return
	}

	estimated := q.GamesPlayed == nil
	var played int
	if estimated {
		played = tc.projector.EstimateGamesPlayed(t.Points)
	} else {
		played = *q.GamesPlayed
	}

	proj, err := tc.projector.Project(t.Points, played)
	if err != nil {
		if errors.Is(err, projection.ErrInvalidInput) {
			responses.SendValidationError(c, "Invalid projection input", map[string]string{"games_played": err.Error()})
			return
		}
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Projection computed successfully", Projection{
		Team:             t.Team,
		SeasonLength:     tc.projector.SeasonLength(),
		Estimated:        estimated,
		SeasonProjection: proj,
	})
}

// GetTeamPerformance godoc
// @Summary Performance analysis
// @Description Per-game rates, area ratings and strengths/weaknesses against the league average.
// @Tags Teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} responses.SuccessResponse{data=Performance}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{name}/performance [get]
func (tc *TeamController) GetTeamPerformance(c *gin.Context) {
	t, ok := tc.findTeam(c)
	if !ok {
		return
	}
	league, err := tc.repo.GetAllTeams()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve league")
		return
	}
	perf := BuildPerformance(*t, league, tc.projector.SeasonLength())
	responses.SendSuccess(c, http.StatusOK, "Performance computed successfully", perf)
}

// findTeam resolves the :name path parameter, writing the error response
// itself when the team cannot be returned.
func (tc *TeamController) findTeam(c *gin.Context) (*sample.TeamStats, bool) {
	t, err := tc.repo.GetTeamByName(c.Param("name"))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team")
		return nil, false
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return nil, false
	}
	return t, true
}
