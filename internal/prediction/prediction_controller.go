package prediction

import (
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/internal/form"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/pkg/responses"
	"github.com/DhavalSuthar-24/kickstats/pkg/validator"
	"github.com/gin-gonic/gin"
)

// PredictionController serves the match prediction pages.
type PredictionController struct {
	provider  sample.Provider
	appConfig *config.Config
	homeForm  *form.Generator
	awayForm  *form.Generator
}

// NewPredictionController creates a new prediction controller
func NewPredictionController(provider sample.Provider, appConfig *config.Config) *PredictionController {
	return &PredictionController{
		provider:  provider,
		appConfig: appConfig,
		homeForm:  form.NewGenerator(form.HomeWeights),
		awayForm:  form.NewGenerator(form.AwayWeights),
	}
}

type FilterQuery struct {
	From  string   `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To    string   `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Teams []string `form:"teams" binding:"omitempty,dive,max=100"`
}

type FixtureURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}

// GetPredictions godoc
// @Summary Upcoming fixtures with predictions
// @Description Fixtures in an inclusive date range involving any of the given teams.
// @Tags Predictions
// @Produce json
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Param teams query []string false "Teams playing home or away" collectionFormat(multi)
// @Success 200 {object} responses.SuccessResponse{data=[]FixtureRow}
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Router /predictions [get]
func (pc *PredictionController) GetPredictions(c *gin.Context) {
	fixtures, ok := pc.filtered(c)
	if !ok {
		return
	}
	rows := make([]FixtureRow, len(fixtures))
	for i, f := range fixtures {
		rows[i] = NewFixtureRow(f)
	}
	responses.SendSuccess(c, http.StatusOK, "Predictions retrieved successfully", rows)
}

// GetOverview godoc
// @Summary Prediction overview
// @Description Match count, average home win percentage, high-confidence count and predicted goals over the filtered fixtures.
// @Tags Predictions
// @Produce json
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Param teams query []string false "Teams playing home or away" collectionFormat(multi)
// @Success 200 {object} responses.SuccessResponse{data=Overview}
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Router /predictions/overview [get]
func (pc *PredictionController) GetOverview(c *gin.Context) {
	fixtures, ok := pc.filtered(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Overview computed successfully", Summarize(fixtures))
}

// GetConfidence godoc
// @Summary Prediction confidence
// @Description Filtered fixtures binned by home win percentage and by predicted total goals.
// @Tags Predictions
// @Produce json
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Param teams query []string false "Teams playing home or away" collectionFormat(multi)
// @Success 200 {object} responses.SuccessResponse{data=Confidence}
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Router /predictions/confidence [get]
func (pc *PredictionController) GetConfidence(c *gin.Context) {
	fixtures, ok := pc.filtered(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Confidence computed successfully", Distribute(fixtures))
}

// GetTeams godoc
// @Summary Teams with fixtures
// @Description Team names for the prediction filter.
// @Tags Predictions
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Router /predictions/teams [get]
func (pc *PredictionController) GetTeams(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", Teams(pc.provider.Fixtures()))
}

// GetModel godoc
// @Summary Model performance
// @Description Simulated accuracy metrics and feature importance of the prediction model.
// @Tags Predictions
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=ModelReport}
// @Router /predictions/model [get]
func (pc *PredictionController) GetModel(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Model report retrieved successfully", Model())
}

// GetPrediction godoc
// @Summary Fixture analysis
// @Description Probabilities, predicted score, demo recent form and key statistics for one fixture.
// @Tags Predictions
// @Produce json
// @Param id path int true "Fixture ID"
// @Success 200 {object} responses.SuccessResponse{data=Detail}
// @Failure 400 {object} responses.ErrorResponse "Invalid fixture ID"
// @Failure 404 {object} responses.ErrorResponse "Fixture not found"
// @Router /predictions/{id} [get]
func (pc *PredictionController) GetPrediction(c *gin.Context) {
	var uri FixtureURI
	if err := c.ShouldBindUri(&uri); err != nil {
		responses.SendValidationError(c, "Invalid fixture ID", validator.ParseError(err))
		return
	}

	for _, f := range pc.provider.Fixtures() {
		if f.ID == uri.ID {
			detail := BuildDetail(f, pc.homeForm, pc.awayForm, pc.appConfig.League.FormWindow)
			responses.SendSuccess(c, http.StatusOK, "Prediction retrieved successfully", detail)
			return
		}
	}
	responses.NotFound(c, "Fixture")
}

// filtered binds the shared filter query and applies it, writing the
// error response itself on bad input.
func (pc *PredictionController) filtered(c *gin.Context) ([]sample.Fixture, bool) {
	var q FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.SendValidationError(c, "Invalid filter", validator.ParseError(err))
		return nil, false
	}

	var flt Filter
	flt.Teams = q.Teams
	if q.From != "" {
		flt.From, _ = time.Parse(DateLayout, q.From) // already validated
	}
	if q.To != "" {
		flt.To, _ = time.Parse(DateLayout, q.To)
	}
	if !flt.From.IsZero() && !flt.To.IsZero() && flt.From.After(flt.To) {
		responses.SendValidationError(c, "Invalid filter", map[string]string{"from": "from must not be after to"})
		return nil, false
	}
	return flt.Apply(pc.provider.Fixtures()), true
}
