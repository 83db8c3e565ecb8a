package routes

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
	_ "github.com/DhavalSuthar-24/kickstats/docs"
	"github.com/DhavalSuthar-24/kickstats/internal/home"
	"github.com/DhavalSuthar-24/kickstats/internal/middleware"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	provider := sample.New(func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) })
	return SetupRoutes(provider, config.Default())
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWelcomePage(t *testing.T) {
	w := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Premier League analytics API")
}

func TestOverview(t *testing.T) {
	w := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/api/overview", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data home.Overview `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Premier League", body.Data.League)
	require.Len(t, body.Data.Metrics, 3)
	assert.Equal(t, home.Metric{Label: "Total Players", Value: 1247, Change: 15}, body.Data.Metrics[0])
	assert.Len(t, body.Data.Pages, 4)
}

func TestEveryPageIsMounted(t *testing.T) {
	r := newRouter()
	for _, path := range []string{
		"/api/players",
		"/api/players/teams",
		"/api/teams",
		"/api/teams/Arsenal",
		"/api/compare/teams?teams=Arsenal&teams=Liverpool",
		"/api/standings",
		"/api/standings/summary",
		"/api/standings/trends",
		"/api/predictions",
		"/api/predictions/1",
		"/api/predictions/model",
	} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRequestIDHeader(t *testing.T) {
	w := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/api/overview", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestCORS(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/overview", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(r, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/overview", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSwaggerDoc(t *testing.T) {
	w := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc["basePath"])
	assert.Contains(t, doc["paths"], "/teams/{name}/projection")
}
