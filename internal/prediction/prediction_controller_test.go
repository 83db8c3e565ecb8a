package prediction

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/kickstats/config"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
)

var matchday = time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC)

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	provider := sample.New(func() time.Time { return matchday })
	RegisterPredictionRoutes(r.Group("/api"), provider, config.Default())
	return r
}

func get(t *testing.T, r *gin.Engine, path string, out any) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(body.Data, out))
	}
	return w.Code, body
}

func TestGetPredictions(t *testing.T) {
	var rows []FixtureRow
	code, _ := get(t, newTestRouter(), "/api/predictions", &rows)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, rows, 10)

	first := rows[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Manchester City vs Liverpool", first.Match)
	assert.Equal(t, "2-1", first.PredictedScore)
	assert.True(t, first.Date.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rows[9].Date.Equal(time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC)))
}

func TestGetPredictions_Filters(t *testing.T) {
	r := newTestRouter()

	var rows []FixtureRow
	code, _ := get(t, r, "/api/predictions?from=2024-03-12&to=2024-03-14", &rows)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, rows, 3)
	assert.Equal(t, []int{3, 4, 5}, []int{rows[0].ID, rows[1].ID, rows[2].ID})

	code, _ = get(t, r, "/api/predictions?teams=liverpool", &rows)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, rows, 2)
	assert.Equal(t, "Liverpool", rows[0].AwayTeam)
	assert.Equal(t, "Liverpool", rows[1].HomeTeam)

	code, _ = get(t, r, "/api/predictions?teams=Liverpool&teams=Fulham&from=2024-03-11", &rows)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, rows, 2)
	assert.Equal(t, 10, rows[1].ID)
}

func TestGetPredictions_InvalidFilter(t *testing.T) {
	r := newTestRouter()

	code, body := get(t, r, "/api/predictions?from=12/03/2024", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Errors["From"], "2006-01-02")

	code, body = get(t, r, "/api/predictions?from=2024-03-15&to=2024-03-12", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, body.Errors["from"])
}

func TestGetOverview(t *testing.T) {
	r := newTestRouter()

	var o Overview
	code, _ := get(t, r, "/api/predictions/overview", &o)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, Overview{
		TotalMatches:        10,
		AvgHomeWinPct:       56.3,
		HighConfidenceCount: 3,
		PredictedTotalGoals: 24,
	}, o)

	code, _ = get(t, r, "/api/predictions/overview?from=2025-01-01", &o)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, Overview{}, o)
}

func TestGetConfidence(t *testing.T) {
	var c Confidence
	code, _ := get(t, newTestRouter(), "/api/predictions/confidence", &c)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, []Bin{
		{Label: "Low (40-55%)", Count: 4},
		{Label: "Medium (55-70%)", Count: 5},
		{Label: "High (70%+)", Count: 1},
	}, c.Bins)
	assert.Equal(t, []GoalsBin{{Goals: 2, Count: 6}, {Goals: 3, Count: 4}}, c.Goals)
}

func TestGetPrediction(t *testing.T) {
	r := newTestRouter()

	var d Detail
	code, _ := get(t, r, "/api/predictions/3", &d)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Liverpool vs Manchester United", d.Match)
	assert.Equal(t, "3-0", d.PredictedScore)
	assert.Equal(t, []Outcome{
		{Label: "Home Win", Pct: 72},
		{Label: "Draw", Pct: 18},
		{Label: "Away Win", Pct: 10},
	}, d.Outcomes)
	assert.Len(t, d.HomeForm, 5)
	assert.Len(t, d.AwayForm, 5)
	require.Len(t, d.KeyStats, 4)
	assert.Equal(t, KeyStat{Metric: "Form Points", Home: 13, Away: 7}, d.KeyStats[3])

	var again Detail
	get(t, r, "/api/predictions/3", &again)
	assert.Equal(t, d.HomeForm, again.HomeForm)
	assert.Equal(t, d.AwayForm, again.AwayForm)
}

func TestGetPrediction_Errors(t *testing.T) {
	r := newTestRouter()

	code, body := get(t, r, "/api/predictions/11", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Fixture not found", body.Message)

	code, _ = get(t, r, "/api/predictions/0", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = get(t, r, "/api/predictions/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetTeams(t *testing.T) {
	var teams []string
	code, _ := get(t, newTestRouter(), "/api/predictions/teams", &teams)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, teams, 12)
	assert.Equal(t, "Arsenal", teams[0])
	assert.Equal(t, "West Ham", teams[11])
}

func TestGetModel(t *testing.T) {
	var m ModelReport
	code, _ := get(t, newTestRouter(), "/api/predictions/model", &m)
	require.Equal(t, http.StatusOK, code)

	require.Len(t, m.Metrics, 4)
	assert.Equal(t, ModelMetric{Name: "Accuracy", Value: 72.5, Change: 2.1}, m.Metrics[0])
	require.Len(t, m.Features, 6)

	total := 0
	for _, f := range m.Features {
		total += f.Importance
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, Disclaimer, m.Disclaimer)
}
