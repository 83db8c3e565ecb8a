package sample

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 9, 15, 30, 0, 0, time.UTC)
}

func TestStandings(t *testing.T) {
	rows := New(fixedClock).Standings()
	require.Len(t, rows, 20)

	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, "Manchester City", rows[0].Name)
	assert.Equal(t, 20, rows[19].Position)
	assert.Equal(t, "Southampton", rows[19].Name)
	assert.Equal(t, -37, stats.GoalDifference(rows[19].TeamRecord))
}

func TestStandings_ReturnsFreshCopies(t *testing.T) {
	p := New(fixedClock)
	rows := p.Standings()
	rows[0].Points = 0

	assert.Equal(t, 89, p.Standings()[0].Points)

	players := p.Players()
	players[0].Goals = 0
	assert.Equal(t, 30, p.Players()[0].Goals)
}

func TestFixtures_DatedFromClock(t *testing.T) {
	fx := New(fixedClock).Fixtures()
	require.Len(t, fx, 10)

	assert.Equal(t, 1, fx[0].ID)
	assert.Equal(t, "2024-03-10", fx[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-03-19", fx[9].Date.Format("2006-01-02"))
	assert.Equal(t, 10, fx[9].ID)

	for _, f := range fx {
		assert.Equal(t, 100, f.HomeWinProb+f.DrawProb+f.AwayWinProb, "%s vs %s", f.HomeTeam, f.AwayTeam)
	}
}

func TestHistory(t *testing.T) {
	h := New(fixedClock).History("Arsenal", 5)
	require.Len(t, h.Seasons, 5)

	assert.Equal(t, "Arsenal", h.Team)
	assert.Equal(t, "2023/24", h.Seasons[0].Season)
	assert.Equal(t, "2019/20", h.Seasons[4].Season)
	assert.Equal(t, 75, h.Seasons[0].Points)
	assert.Equal(t, 55, h.Seasons[4].Points)
	assert.Equal(t, 7, h.Seasons[4].Position)
	assert.Equal(t, TrendImproving, h.Trend)

	single := New(fixedClock).History("Arsenal", 1)
	assert.Equal(t, TrendDeclining, single.Trend)

	assert.Len(t, New(fixedClock).History("Arsenal", 0).Seasons, 5)
}

func TestFindAndSearchTeamStats(t *testing.T) {
	p := New(fixedClock)

	ts, ok := FindTeamStats(p, "liverpool")
	require.True(t, ok)
	assert.Equal(t, 21, ts.CleanSheets)

	_, ok = FindTeamStats(p, "Wrexham")
	assert.False(t, ok)

	found := SearchTeamStats(p, "manchester")
	require.Len(t, found, 2)
	assert.Equal(t, "Manchester City", found[0].Team)

	assert.Len(t, SearchTeamStats(p, ""), 8)
}

func TestLeagues(t *testing.T) {
	assert.Contains(t, New(nil).Leagues(), "Serie A")
}
