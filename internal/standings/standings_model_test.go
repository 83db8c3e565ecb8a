package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

func TestZoneFor(t *testing.T) {
	tests := []struct {
		position, teams int
		want            Zone
	}{
		{1, 20, ZoneChampionsLeague},
		{4, 20, ZoneChampionsLeague},
		{5, 20, ZoneEuropaLeague},
		{6, 20, ZoneEuropaLeague},
		{7, 20, ZoneNone},
		{17, 20, ZoneNone},
		{18, 20, ZoneRelegation},
		{20, 20, ZoneRelegation},
		{8, 10, ZoneRelegation},
		{7, 10, ZoneNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneFor(tt.position, tt.teams), "position %d of %d", tt.position, tt.teams)
	}
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_TiesGoToHigherPlaced(t *testing.T) {
	table := []sample.Standing{
		{Position: 1, TeamRecord: stats.TeamRecord{Name: "A", Played: 2, GoalsFor: 4, GoalsAgainst: 1}},
		{Position: 2, TeamRecord: stats.TeamRecord{Name: "B", Played: 2, GoalsFor: 4, GoalsAgainst: 1}},
	}
	s := Summarize(table)
	assert.Equal(t, "A", s.HighestScoringTeam)
	assert.Equal(t, "A", s.BestDefence)
	assert.Equal(t, 4.0, s.AvgGoalsPerGame)
}

func TestAdvanced_LimitBeyondTable(t *testing.T) {
	rows, err := Advanced(sample.New(nil).Standings(), 50)
	require.NoError(t, err)
	assert.Len(t, rows, 20)
}

func TestAdvanced_ZeroPlayed(t *testing.T) {
	_, err := Advanced([]sample.Standing{{Position: 1}}, 10)
	assert.ErrorIs(t, err, stats.ErrDivisionUndefined)
}

func TestBuildRows_Input(t *testing.T) {
	table := sample.New(nil).Standings()
	before := table[0]
	BuildRows(table)
	assert.Equal(t, before, table[0])
}
