package player

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

// stubProvider overrides the player list of the static sample data.
type stubProvider struct {
	*sample.Static
	players []stats.PlayerRecord
}

func (s stubProvider) Players() []stats.PlayerRecord { return s.players }

func newTestRouter(p sample.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterPlayerRoutes(r.Group("/api"), p)
	return r
}

func staticProvider() sample.Provider {
	return sample.New(func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) })
}

func get(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w, body
}

func TestGetPlayers_All(t *testing.T) {
	w, body := get(t, newTestRouter(staticProvider()), "/api/players")
	require.Equal(t, http.StatusOK, w.Code)

	var res ListResult
	require.NoError(t, json.Unmarshal(body["data"], &res))

	assert.Equal(t, AllTeams, res.Team)
	assert.Equal(t, Summary{TotalPlayers: 5, TotalGoals: 160, TotalAssists: 63, AvgGoalsPerMatch: 0.91}, res.Summary)
	require.Len(t, res.Players, 5)

	top := res.Players[0]
	assert.Equal(t, "Erling Haaland", top.Name)
	assert.Equal(t, 52, top.GoalInvolvement)
	assert.Equal(t, 1.05, top.GoalsPerMatch)
	assert.Equal(t, 0.25, top.AssistsPerMatch)
	assert.Equal(t, "Neymar Jr", res.Players[4].Name)
}

func TestGetPlayers_TeamFilter(t *testing.T) {
	w, body := get(t, newTestRouter(staticProvider()), "/api/players?team=psg")
	require.Equal(t, http.StatusOK, w.Code)

	var res ListResult
	require.NoError(t, json.Unmarshal(body["data"], &res))
	assert.Equal(t, 2, res.Summary.TotalPlayers)
	assert.Equal(t, 65, res.Summary.TotalGoals)
	assert.Equal(t, 0.89, res.Summary.AvgGoalsPerMatch)
}

func TestGetPlayers_UnknownTeamIsEmpty(t *testing.T) {
	w, body := get(t, newTestRouter(staticProvider()), "/api/players?team=Wrexham")
	require.Equal(t, http.StatusOK, w.Code)

	var res ListResult
	require.NoError(t, json.Unmarshal(body["data"], &res))
	assert.Empty(t, res.Players)
	assert.Equal(t, 0.0, res.Summary.AvgGoalsPerMatch)
}

func TestGetPlayers_RejectsLongTeam(t *testing.T) {
	w, _ := get(t, newTestRouter(staticProvider()), "/api/players?team="+strings.Repeat("x", 101))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPlayers_ZeroMatchesIsUnprocessable(t *testing.T) {
	p := stubProvider{
		Static:  sample.New(nil),
		players: []stats.PlayerRecord{{Name: "Academy Kid", Team: "Arsenal"}},
	}
	w, body := get(t, newTestRouter(p), "/api/players")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, string(body["message"]), "Academy Kid")
}

func TestGetPlayerTeams(t *testing.T) {
	_, body := get(t, newTestRouter(staticProvider()), "/api/players/teams")

	var teams []string
	require.NoError(t, json.Unmarshal(body["data"], &teams))
	assert.Equal(t, []string{"All", "PSG", "Al Nassr", "Man City", "Al Hilal"}, teams)
}

func TestGetPlayerRadar(t *testing.T) {
	w, body := get(t, newTestRouter(staticProvider()), "/api/players/Erling%20Haaland/radar")
	require.Equal(t, http.StatusOK, w.Code)

	var radar Radar
	require.NoError(t, json.Unmarshal(body["data"], &radar))
	assert.Equal(t, RadarCategories, radar.Categories)
	assert.Equal(t, []float64{100, 55.6, 100, 100, 41.7}, radar.Values)
}

func TestGetPlayerRadar_WithinTeam(t *testing.T) {
	w, body := get(t, newTestRouter(staticProvider()), "/api/players/lionel%20messi/radar?team=PSG")
	require.Equal(t, http.StatusOK, w.Code)

	var radar Radar
	require.NoError(t, json.Unmarshal(body["data"], &radar))
	assert.Equal(t, "Lionel Messi", radar.Player)
	assert.Equal(t, []float64{85.7, 100, 92.1, 93.1, 100}, radar.Values)
}

func TestGetPlayerRadar_NotInGroup(t *testing.T) {
	w, _ := get(t, newTestRouter(staticProvider()), "/api/players/Erling%20Haaland/radar?team=PSG")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
