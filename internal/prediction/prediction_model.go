package prediction

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/kickstats/internal/form"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

// DateLayout is the format of the from and to filters.
const DateLayout = "2006-01-02"

// highConfidenceHomeWin is the home win percentage above which a
// prediction counts as high confidence.
const highConfidenceHomeWin = 60

// Disclaimer accompanies every model report.
const Disclaimer = "These predictions are for demonstration purposes only and should not be used for actual betting or gambling."

// FixtureRow is a fixture with its display columns.
type FixtureRow struct {
	sample.Fixture
	Match          string `json:"match"`
	PredictedScore string `json:"predicted_score"`
}

// Filter narrows the fixture list. Zero values do not filter.
type Filter struct {
	From  time.Time
	To    time.Time
	Teams []string
}

// Overview holds the headline numbers over the filtered fixtures.
type Overview struct {
	TotalMatches        int     `json:"total_matches"`
	AvgHomeWinPct       float64 `json:"avg_home_win_pct"`
	HighConfidenceCount int     `json:"high_confidence_count"`
	PredictedTotalGoals int     `json:"predicted_total_goals"`
}

// Outcome is one slice of the win probability chart.
type Outcome struct {
	Label string `json:"label"`
	Pct   int    `json:"pct"`
}

// KeyStat is one line of the side-by-side statistics table.
type KeyStat struct {
	Metric string  `json:"metric"`
	Home   float64 `json:"home"`
	Away   float64 `json:"away"`
}

// Detail is the full analysis of a single fixture.
type Detail struct {
	FixtureRow
	Outcomes []Outcome `json:"outcomes"`
	HomeForm string    `json:"home_form"`
	AwayForm string    `json:"away_form"`
	KeyStats []KeyStat `json:"key_stats"`
}

// Bin is a labelled count.
type Bin struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GoalsBin counts fixtures with a given predicted total.
type GoalsBin struct {
	Goals int `json:"goals"`
	Count int `json:"count"`
}

// Confidence is the distribution of predictions by home win percentage
// and by predicted total goals.
type Confidence struct {
	Bins  []Bin      `json:"bins"`
	Goals []GoalsBin `json:"goals"`
}

// ModelMetric is a simulated model score with its change since the last run.
type ModelMetric struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

// Feature is a model input with its share of importance in percent.
type Feature struct {
	Name       string `json:"name"`
	Importance int    `json:"importance"`
}

// ModelReport describes the (simulated) prediction model.
type ModelReport struct {
	Metrics    []ModelMetric `json:"metrics"`
	Features   []Feature     `json:"features"`
	Disclaimer string        `json:"disclaimer"`
}

var (
	modelMetrics = []ModelMetric{
		{Name: "Accuracy", Value: 72.5, Change: 2.1},
		{Name: "Precision", Value: 68.9, Change: 1.8},
		{Name: "Recall", Value: 71.2, Change: 0.9},
		{Name: "F1 Score", Value: 70.0, Change: 1.3},
	}
	featureImportance = []Feature{
		{Name: "Recent Form", Importance: 25},
		{Name: "Head-to-Head", Importance: 20},
		{Name: "Home Advantage", Importance: 18},
		{Name: "Player Injuries", Importance: 15},
		{Name: "Goal Difference", Importance: 12},
		{Name: "League Position", Importance: 10},
	}
	// Placeholder figures until fixtures carry real team numbers.
	keyStats = []KeyStat{
		{Metric: "Goals/Game", Home: 2.1, Away: 1.7},
		{Metric: "Goals Conceded/Game", Home: 0.8, Away: 1.2},
		{Metric: "Win Rate %", Home: 65, Away: 45},
		{Metric: "Form Points", Home: 13, Away: 7},
	}
)

// NewFixtureRow adds the "Home vs Away" title and "h-a" score.
func NewFixtureRow(f sample.Fixture) FixtureRow {
	return FixtureRow{
		Fixture:        f,
		Match:          f.HomeTeam + " vs " + f.AwayTeam,
		PredictedScore: fmt.Sprintf("%d-%d", f.PredictedHomeScore, f.PredictedAwayScore),
	}
}

// Apply keeps fixtures dated within [From, To], compared by calendar day,
// that involve one of Teams at home or away.
func (flt Filter) Apply(fixtures []sample.Fixture) []sample.Fixture {
	out := make([]sample.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		day := truncateDay(f.Date)
		if !flt.From.IsZero() && day.Before(truncateDay(flt.From)) {
			continue
		}
		if !flt.To.IsZero() && day.After(truncateDay(flt.To)) {
			continue
		}
		if len(flt.Teams) > 0 && !involves(f, flt.Teams) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func involves(f sample.Fixture, teams []string) bool {
	for _, t := range teams {
		if strings.EqualFold(f.HomeTeam, t) || strings.EqualFold(f.AwayTeam, t) {
			return true
		}
	}
	return false
}

// Teams lists every team with a fixture, sorted by name.
func Teams(fixtures []sample.Fixture) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, f := range fixtures {
		for _, t := range []string{f.HomeTeam, f.AwayTeam} {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Summarize computes the overview. An empty list yields zeros.
func Summarize(fixtures []sample.Fixture) Overview {
	o := Overview{TotalMatches: len(fixtures)}
	home := make([]float64, len(fixtures))
	for i, f := range fixtures {
		home[i] = float64(f.HomeWinProb)
		if f.HomeWinProb > highConfidenceHomeWin {
			o.HighConfidenceCount++
		}
		o.PredictedTotalGoals += f.PredictedHomeScore + f.PredictedAwayScore
	}
	o.AvgHomeWinPct = stats.Round(stats.Mean(home), 1)
	return o
}

// BuildDetail expands a fixture with a demo form run for each side.
func BuildDetail(f sample.Fixture, home, away *form.Generator, window int) Detail {
	return Detail{
		FixtureRow: NewFixtureRow(f),
		Outcomes: []Outcome{
			{Label: "Home Win", Pct: f.HomeWinProb},
			{Label: "Draw", Pct: f.DrawProb},
			{Label: "Away Win", Pct: f.AwayWinProb},
		},
		HomeForm: home.For(f.HomeTeam, window).String(),
		AwayForm: away.For(f.AwayTeam, window).String(),
		KeyStats: append([]KeyStat(nil), keyStats...),
	}
}

// Distribute bins predictions as Low [40,55), Medium [55,70) and High 70+
// by home win percentage. Below 40 falls in no bin.
func Distribute(fixtures []sample.Fixture) Confidence {
	c := Confidence{
		Bins: []Bin{
			{Label: "Low (40-55%)"},
			{Label: "Medium (55-70%)"},
			{Label: "High (70%+)"},
		},
		Goals: []GoalsBin{},
	}
	goals := make(map[int]int)
	for _, f := range fixtures {
		switch p := f.HomeWinProb; {
		case p >= 70:
			c.Bins[2].Count++
		case p >= 55:
			c.Bins[1].Count++
		case p >= 40:
			c.Bins[0].Count++
		}
		goals[f.PredictedHomeScore+f.PredictedAwayScore]++
	}
	for g, n := range goals {
		c.Goals = append(c.Goals, GoalsBin{Goals: g, Count: n})
	}
	sort.Slice(c.Goals, func(i, j int) bool { return c.Goals[i].Goals < c.Goals[j].Goals })
	return c
}

// Model returns the simulated model report.
func Model() ModelReport {
	return ModelReport{
		Metrics:    append([]ModelMetric(nil), modelMetrics...),
		Features:   append([]Feature(nil), featureImportance...),
		Disclaimer: Disclaimer,
	}
}
