package prediction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DhavalSuthar-24/kickstats/internal/form"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
)

func TestFilter_ComparesCalendarDays(t *testing.T) {
	evening := sample.Fixture{ID: 1, Date: time.Date(2024, 3, 10, 20, 45, 0, 0, time.UTC)}
	flt := Filter{
		From: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Len(t, flt.Apply([]sample.Fixture{evening}), 1)
}

func TestFilter_ZeroValueKeepsAll(t *testing.T) {
	fixtures := sample.New(nil).Fixtures()
	assert.Equal(t, fixtures, Filter{}.Apply(fixtures))
}

func TestDistribute_BelowLowestBin(t *testing.T) {
	c := Distribute([]sample.Fixture{{HomeWinProb: 30, PredictedHomeScore: 0, PredictedAwayScore: 2}})
	for _, b := range c.Bins {
		assert.Zero(t, b.Count, b.Label)
	}
	assert.Equal(t, []GoalsBin{{Goals: 2, Count: 1}}, c.Goals)
}

func TestDistribute_Empty(t *testing.T) {
	c := Distribute(nil)
	assert.Len(t, c.Bins, 3)
	assert.Empty(t, c.Goals)
}

func TestSummarize_HighConfidenceIsStrict(t *testing.T) {
	o := Summarize([]sample.Fixture{{HomeWinProb: 60}, {HomeWinProb: 61}})
	assert.Equal(t, 1, o.HighConfidenceCount)
	assert.Equal(t, 60.5, o.AvgHomeWinPct)
}

func TestBuildDetail_UsesWindow(t *testing.T) {
	f := sample.Fixture{HomeTeam: "Arsenal", AwayTeam: "Chelsea"}
	d := BuildDetail(f, form.NewGenerator(form.HomeWeights), form.NewGenerator(form.AwayWeights), 3)
	assert.Len(t, d.HomeForm, 3)
	assert.Len(t, d.AwayForm, 3)
	assert.Equal(t, "Arsenal vs Chelsea", d.Match)
	assert.Equal(t, "0-0", d.PredictedScore)
}

func TestModel_ReturnsCopies(t *testing.T) {
	m := Model()
	m.Metrics[0].Value = 0
	assert.Equal(t, 72.5, Model().Metrics[0].Value)
}
