package standings

import (
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

// Zone is the end-of-season outcome a table position leads to.
type Zone string

const (
	ZoneChampionsLeague Zone = "champions_league"
	ZoneEuropaLeague    Zone = "europa_league"
	ZoneRelegation      Zone = "relegation"
	ZoneNone            Zone = "none"
)

const (
	championsLeaguePlaces = 4
	europaLeaguePlaces    = 6
	relegationPlaces      = 3
)

// Row is a table line with its derived columns.
type Row struct {
	sample.Standing
	GoalDifference int    `json:"goal_difference"`
	Zone           Zone   `json:"zone"`
	Consistent     bool   `json:"consistent"`
	Issue          string `json:"issue,omitempty"`
}

// Table is one page of a league table.
type Table struct {
	League string `json:"league"`
	Rows   []Row  `json:"rows"`
}

// Summary holds the league-wide headline numbers.
type Summary struct {
	TotalGoals         int     `json:"total_goals"`
	AvgGoalsPerGame    float64 `json:"avg_goals_per_game"`
	HighestScoringTeam string  `json:"highest_scoring_team"`
	BestDefence        string  `json:"best_defence"`
}

// AdvancedRow is a line of the detailed statistics table.
type AdvancedRow struct {
	Position       int     `json:"position"`
	Team           string  `json:"team"`
	Points         int     `json:"points"`
	WinRate        float64 `json:"win_rate"`
	PointsPerGame  float64 `json:"points_per_game"`
	GoalDifference int     `json:"goal_difference"`
}

// TopSeries feeds the points and goal difference charts.
type TopSeries struct {
	Teams          []string `json:"teams"`
	Points         []int    `json:"points"`
	GoalDifference []int    `json:"goal_difference"`
}

// ZoneFor places a position in a table of size teams.
func ZoneFor(position, teams int) Zone {
	switch {
	case position <= championsLeaguePlaces:
		return ZoneChampionsLeague
	case position <= europaLeaguePlaces:
		return ZoneEuropaLeague
	case position > teams-relegationPlaces:
		return ZoneRelegation
	default:
		return ZoneNone
	}
}

// BuildRows annotates every standing. Rows that fail stats.Check are kept
// and flagged.
func BuildRows(table []sample.Standing) []Row {
	rows := make([]Row, len(table))
	for i, s := range table {
		rows[i] = Row{
			Standing:       s,
			GoalDifference: stats.GoalDifference(s.TeamRecord),
			Zone:           ZoneFor(s.Position, len(table)),
			Consistent:     true,
		}
		if err := stats.Check(s.TeamRecord); err != nil {
			rows[i].Consistent = false
			rows[i].Issue = err.Error()
		}
	}
	return rows
}

// Summarize totals the table. A match involves two teams, so games are
// half the summed appearances.
func Summarize(table []sample.Standing) Summary {
	var s Summary
	played := 0
	top, best := -1, -1
	for i, t := range table {
		s.TotalGoals += t.GoalsFor
		played += t.Played
		if top < 0 || t.GoalsFor > table[top].GoalsFor {
			top = i
		}
		if best < 0 || t.GoalsAgainst < table[best].GoalsAgainst {
			best = i
		}
	}
	if played > 0 {
		s.AvgGoalsPerGame = stats.Round(float64(s.TotalGoals)/(float64(played)/2), 1)
	}
	if top >= 0 {
		s.HighestScoringTeam = table[top].Name
		s.BestDefence = table[best].Name
	}
	return s
}

// Advanced builds the detailed statistics for the first limit rows.
func Advanced(table []sample.Standing, limit int) ([]AdvancedRow, error) {
	table = head(table, limit)
	out := make([]AdvancedRow, len(table))
	for i, t := range table {
		wr, err := stats.WinRate(t.TeamRecord)
		if err != nil {
			return nil, err
		}
		ppg, err := stats.PointsPerGame(t.TeamRecord)
		if err != nil {
			return nil, err
		}
		out[i] = AdvancedRow{
			Position:       t.Position,
			Team:           t.Name,
			Points:         t.Points,
			WinRate:        wr,
			PointsPerGame:  ppg,
			GoalDifference: stats.GoalDifference(t.TeamRecord),
		}
	}
	return out, nil
}

// Top returns chart series for the first limit rows.
func Top(table []sample.Standing, limit int) TopSeries {
	table = head(table, limit)
	s := TopSeries{
		Teams:          make([]string, len(table)),
		Points:         make([]int, len(table)),
		GoalDifference: make([]int, len(table)),
	}
	for i, t := range table {
		s.Teams[i] = t.Name
		s.Points[i] = t.Points
		s.GoalDifference[i] = stats.GoalDifference(t.TeamRecord)
	}
	return s
}

func head(table []sample.Standing, n int) []sample.Standing {
	if n >= 0 && n < len(table) {
		return table[:n]
	}
	return table
}
