package standings

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/internal/stats"
	"github.com/DhavalSuthar-24/kickstats/pkg/responses"
	"github.com/DhavalSuthar-24/kickstats/pkg/validator"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	defaultLimit    = 10
)

// StandingsController serves the league table pages.
type StandingsController struct {
	provider  sample.Provider
	appConfig *config.Config
}

// NewStandingsController creates a new standings controller
func NewStandingsController(provider sample.Provider, appConfig *config.Config) *StandingsController {
	return &StandingsController{
		provider:  provider,
		appConfig: appConfig,
	}
}

type TableQuery struct {
	League   string `form:"league" binding:"omitempty,oneof='Premier League' 'La Liga' 'Serie A' 'Bundesliga' 'Ligue 1'"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=50"`
}

type TrendsQuery struct {
	Teams int `form:"teams" binding:"omitempty,min=1,max=10"`
}

type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=20"`
}

// GetLeagues godoc
// @Summary List leagues
// @Description Leagues selectable on the standings page.
// @Tags Standings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Router /standings/leagues [get]
func (sc *StandingsController) GetLeagues(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Leagues retrieved successfully", sc.provider.Leagues())
}

// GetStandings godoc
// @Summary League table
// @Description Table rows with goal difference, qualification zone and a record consistency flag.
// @Tags Standings
// @Produce json
// @Param league query string false "League name (defaults to the configured league)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Rows per page (default 20)"
// @Success 200 {object} responses.PaginatedResponse{data=Table}
// @Failure 400 {object} responses.ErrorResponse "Unknown league"
// @Router /standings [get]
func (sc *StandingsController) GetStandings(c *gin.Context) {
	var q TableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return
	}
	if q.League == "" {
		q.League = sc.appConfig.League.Name
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}

	rows := BuildRows(sc.provider.Standings())
	start, end := responses.PageBounds(len(rows), q.Page, q.PageSize)
	responses.SendPaginated(c, http.StatusOK, "Standings retrieved successfully",
		Table{League: q.League, Rows: rows[start:end]}, int64(len(rows)), q.Page, q.PageSize)
}

// GetSummary godoc
// @Summary League summary
// @Description Total goals, goals per game, highest scoring team and best defence.
// @Tags Standings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Summary}
// @Router /standings/summary [get]
func (sc *StandingsController) GetSummary(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Summary computed successfully", Summarize(sc.provider.Standings()))
}

// GetAdvanced godoc
// @Summary Detailed statistics
// @Description Win rate and points per game for the top of the table.
// @Tags Standings
// @Produce json
// @Param limit query int false "Number of rows (default 10)"
// @Success 200 {object} responses.SuccessResponse{data=[]AdvancedRow}
// @Failure 422 {object} responses.ErrorResponse "A team has no games played"
// @Router /standings/advanced [get]
func (sc *StandingsController) GetAdvanced(c *gin.Context) {
	limit, ok := bindLimit(c)
	if !ok {
		return
	}
	rows, err := Advanced(sc.provider.Standings(), limit)
	if err != nil {
		if errors.Is(err, stats.ErrDivisionUndefined) {
			responses.Unprocessable(c, err.Error())
			return
		}
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Statistics computed successfully", rows)
}

// GetTop godoc
// @Summary Top of the table
// @Description Points and goal difference series for the leading teams.
// @Tags Standings
// @Produce json
// @Param limit query int false "Number of teams (default 10)"
// @Success 200 {object} responses.SuccessResponse{data=TopSeries}
// @Router /standings/top [get]
func (sc *StandingsController) GetTop(c *gin.Context) {
	limit, ok := bindLimit(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Series computed successfully", Top(sc.provider.Standings(), limit))
}

// GetTrends godoc
// @Summary Position trends
// @Description Simulated league position over the season for the leading teams.
// @Tags Standings
// @Produce json
// @Param teams query int false "Number of teams (default 6)"
// @Success 200 {object} responses.SuccessResponse{data=Trends}
// @Failure 400 {object} responses.ErrorResponse "Invalid query"
// @Router /standings/trends [get]
func (sc *StandingsController) GetTrends(c *gin.Context) {
	var q TrendsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return
	}
	if q.Teams == 0 {
		q.Teams = defaultTrendTeams
	}
	trends := PositionTrends(sc.provider.Standings(), q.Teams, sc.appConfig.League.SeasonLength)
	responses.SendSuccess(c, http.StatusOK, "Trends generated successfully", trends)
}

func bindLimit(c *gin.Context) (int, bool) {
	var q LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid query parameters", validator.ParseError(err))
		return 0, false
	}
	if q.Limit == 0 {
		return defaultLimit, true
	}
	return q.Limit, true
}
