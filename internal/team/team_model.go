package team

import (
	"fmt"
	"math"

	"github.com/DhavalSuthar-24/kickstats/internal/form"
	"github.com/DhavalSuthar-24/kickstats/internal/projection"
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

// Radar axes for the team overview.
var RadarCategories = []string{"Possession %", "Pass Accuracy %", "Shots per Game", "Tackles per Game"}

// Scale of the per-game radar axes; a team at this figure plots at 100.
const (
	shotsScale   = 20.0
	tacklesScale = 25.0
	// defenceScale is the goals-conceded total that rates a defence at zero.
	defenceScale = 80.0
)

const (
	MetricPoints        = "Points"
	MetricGoalsScored   = "Goals Scored"
	MetricGoalsConceded = "Goals Conceded"
	MetricCleanSheets   = "Clean Sheets"
)

// TeamRow is a team stats line with its goal difference.
type TeamRow struct {
	sample.TeamStats
	GoalDifference int `json:"goal_difference"`
}

// Radar is a set of 0-100 values, one per category.
type Radar struct {
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
}

// Overview is the headline card of a single team.
type Overview struct {
	TeamRow
	Radar Radar `json:"radar"`
}

// FormReport is a team's recent results with points and momentum.
type FormReport struct {
	Team       string        `json:"team"`
	Form       string        `json:"form"`
	Results    []form.Result `json:"results"`
	FormPoints int           `json:"form_points"`
	MaxPoints  int           `json:"max_points"`
	Label      string        `json:"label"`
	Momentum   form.Momentum `json:"momentum"`
	Simulated  bool          `json:"simulated"`
}

// MetricSeries holds one metric for each compared team, in request order.
type MetricSeries struct {
	Metric string `json:"metric"`
	Values []int  `json:"values"`
}

// Insights names the standout team in each area.
type Insights struct {
	BestAttack     string `json:"best_attack"`
	BestDefence    string `json:"best_defence"`
	MostPossession string `json:"most_possession"`
}

// Comparison is the side-by-side view of two to four teams.
type Comparison struct {
	Teams    []TeamRow      `json:"teams"`
	Metrics  []MetricSeries `json:"metrics"`
	Insights Insights       `json:"insights"`
}

// Projection is a season projection for a named team.
type Projection struct {
	Team         string `json:"team"`
	SeasonLength int    `json:"season_length"`
	Estimated    bool   `json:"estimated_games_played"`
	projection.SeasonProjection
}

// Ratings are 0-100 scores per area of play.
type Ratings struct {
	Attack   float64 `json:"attack"`
	Defence  float64 `json:"defence"`
	Midfield float64 `json:"midfield"`
	Overall  float64 `json:"overall"`
}

// Performance is the advanced metrics view of a team.
type Performance struct {
	Team                string   `json:"team"`
	GoalsPerGame        float64  `json:"goals_per_game"`
	GoalsAgainstPerGame float64  `json:"goals_against_per_game"`
	CleanSheetPct       float64  `json:"clean_sheet_pct"`
	Ratings             Ratings  `json:"ratings"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
}

// NewTeamRow attaches the goal difference to a stats line.
func NewTeamRow(t sample.TeamStats) TeamRow {
	return TeamRow{
		TeamStats: t,
		GoalDifference: stats.GoalDifference(stats.TeamRecord{
			GoalsFor:     t.GoalsScored,
			GoalsAgainst: t.GoalsConceded,
		}),
	}
}

// BuildOverview rescales shots and tackles so every radar axis is 0-100.
func BuildOverview(t sample.TeamStats) Overview {
	return Overview{
		TeamRow: NewTeamRow(t),
		Radar: Radar{
			Categories: RadarCategories,
			Values: []float64{
				stats.Round(t.PossessionPct, 1),
				stats.Round(t.PassAccuracyPct, 1),
				stats.Round(t.ShotsPerGame/shotsScale*100, 1),
				stats.Round(t.TacklesPerGame/tacklesScale*100, 1),
			},
		},
	}
}

// BuildFormReport scores a sequence of results.
func BuildFormReport(team string, seq form.Sequence, simulated bool) FormReport {
	m := form.Analyze(seq)
	m.Magnitude = stats.Round(m.Magnitude, 2)
	pts, top := form.Points(seq), form.Max(seq)
	return FormReport{
		Team:       team,
		Form:       seq.String(),
		Results:    seq,
		FormPoints: pts,
		MaxPoints:  top,
		Label:      fmt.Sprintf("%d/%d", pts, top),
		Momentum:   m,
		Simulated:  simulated,
	}
}

// Compare lines up the given teams. Ties in the insights go to the team
// listed first.
func Compare(teams []sample.TeamStats) Comparison {
	c := Comparison{
		Teams: make([]TeamRow, len(teams)),
		Metrics: []MetricSeries{
			{Metric: MetricPoints, Values: make([]int, len(teams))},
			{Metric: MetricGoalsScored, Values: make([]int, len(teams))},
			{Metric: MetricGoalsConceded, Values: make([]int, len(teams))},
			{Metric: MetricCleanSheets, Values: make([]int, len(teams))},
		},
	}
	attack, defence, possession := -1, -1, -1
	for i, t := range teams {
		c.Teams[i] = NewTeamRow(t)
		c.Metrics[0].Values[i] = t.Points
		c.Metrics[1].Values[i] = t.GoalsScored
		c.Metrics[2].Values[i] = t.GoalsConceded
		c.Metrics[3].Values[i] = t.CleanSheets

		if attack < 0 || t.GoalsScored > teams[attack].GoalsScored {
			attack = i
		}
		if defence < 0 || t.GoalsConceded < teams[defence].GoalsConceded {
			defence = i
		}
		if possession < 0 || t.PossessionPct > teams[possession].PossessionPct {
			possession = i
		}
	}
	if len(teams) > 0 {
		c.Insights = Insights{
			BestAttack:     teams[attack].Team,
			BestDefence:    teams[defence].Team,
			MostPossession: teams[possession].Team,
		}
	}
	return c
}

// BuildPerformance rates a team over a season of the given length and
// measures it against the league averages of league.
func BuildPerformance(t sample.TeamStats, league []sample.TeamStats, seasonLength int) Performance {
	games := float64(seasonLength)
	p := Performance{
		Team:                t.Team,
		GoalsPerGame:        stats.Round(float64(t.GoalsScored)/games, 2),
		GoalsAgainstPerGame: stats.Round(float64(t.GoalsConceded)/games, 2),
		CleanSheetPct:       stats.Round(float64(t.CleanSheets)/games*100, 1),
		Ratings: Ratings{
			Attack:   math.Min(100, float64(t.GoalsScored)),
			Defence:  stats.Round(math.Max(0, math.Min(100, 100-float64(t.GoalsConceded)/defenceScale*100)), 1),
			Midfield: t.PassAccuracyPct,
			Overall:  stats.Round(float64(t.Points)/(games*3)*100, 1),
		},
		Strengths:  []string{},
		Weaknesses: []string{},
	}

	scored := make([]float64, len(league))
	conceded := make([]float64, len(league))
	possession := make([]float64, len(league))
	for i, l := range league {
		scored[i] = float64(l.GoalsScored)
		conceded[i] = float64(l.GoalsConceded)
		possession[i] = l.PossessionPct
	}
	avgScored, avgConceded, avgPossession := stats.Mean(scored), stats.Mean(conceded), stats.Mean(possession)

	switch gf := float64(t.GoalsScored); {
	case gf > avgScored*1.1:
		p.Strengths = append(p.Strengths, "Strong attacking play")
	case gf < avgScored*0.9:
		p.Weaknesses = append(p.Weaknesses, "Lacks attacking threat")
	}
	switch ga := float64(t.GoalsConceded); {
	case ga < avgConceded*0.9:
		p.Strengths = append(p.Strengths, "Solid defensive structure")
	case ga > avgConceded*1.1:
		p.Weaknesses = append(p.Weaknesses, "Defensive vulnerabilities")
	}
	switch {
	case t.PossessionPct > avgPossession*1.05:
		p.Strengths = append(p.Strengths, "Excellent ball control")
	case t.PossessionPct < avgPossession*0.95:
		p.Weaknesses = append(p.Weaknesses, "Struggles to keep possession")
	}
	return p
}
