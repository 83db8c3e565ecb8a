package player

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/internal/stats"
	"github.com/DhavalSuthar-24/kickstats/pkg/responses"
	"github.com/DhavalSuthar-24/kickstats/pkg/validator"
	"github.com/gin-gonic/gin"
)

// PlayerController handles the player statistics endpoints.
type PlayerController struct {
	provider sample.Provider
}

// NewPlayerController creates a new player controller
func NewPlayerController(provider sample.Provider) *PlayerController {
	return &PlayerController{provider: provider}
}

type PlayerFilterQuery struct {
	Team string `form:"team" binding:"omitempty,max=100"`
}

// GetPlayers godoc
// @Summary List player statistics
// @Description Players with goal involvement and per-match rates, plus headline totals. Sorted by goals.
// @Tags Players
// @Produce json
// @Param team query string false "Team filter (All for every team)"
// @Success 200 {object} responses.SuccessResponse{data=ListResult}
// @Failure 400 {object} responses.ErrorResponse "Invalid query"
// @Failure 422 {object} responses.ErrorResponse "A player has no matches played"
// @Router /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	var q PlayerFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	players := FilterByTeam(pc.provider.Players(), q.Team)
	rows, err := BuildRows(players)
	if err != nil {
		pc.sendStatsError(c, err)
		return
	}

	team := q.Team
	if team == "" {
		team = AllTeams
	}
	responses.SendSuccess(c, http.StatusOK, "Players retrieved successfully", ListResult{
		Team:    team,
		Summary: Summarize(players),
		Players: rows,
	})
}

// GetPlayerTeams godoc
// @Summary List player teams
// @Description Distinct team names for the player filter, starting with All.
// @Tags Players
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Router /players/teams [get]
func (pc *PlayerController) GetPlayerTeams(c *gin.Context) {
	teams := append([]string{AllTeams}, Teams(pc.provider.Players())...)
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// GetPlayerRadar godoc
// @Summary Player performance radar
// @Description Player metrics scaled 0-100 against the best in the (optionally team-filtered) group.
// @Tags Players
// @Produce json
// @Param name path string true "Player name"
// @Param team query string false "Team filter (All for every team)"
// @Success 200 {object} responses.SuccessResponse{data=Radar}
// @Failure 404 {object} responses.ErrorResponse "Player not found in the group"
// @Router /players/{name}/radar [get]
func (pc *PlayerController) GetPlayerRadar(c *gin.Context) {
	var q PlayerFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return
	}

	group := FilterByTeam(pc.provider.Players(), q.Team)
	radar, found, err := BuildRadar(c.Param("name"), group)
	if err != nil {
		pc.sendStatsError(c, err)
		return
	}
	if !found {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Radar computed successfully", radar)
}

func (pc *PlayerController) sendStatsError(c *gin.Context, err error) {
	if errors.Is(err, stats.ErrDivisionUndefined) {
		responses.Unprocessable(c, err.Error())
		return
	}
	responses.InternalServerError(c, "")
}
