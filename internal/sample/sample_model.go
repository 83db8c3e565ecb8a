package sample

import (
	"time"

	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

// Standing is one row of a league table.
type Standing struct {
	Position int `json:"position"`
	stats.TeamRecord
}

// TeamStats is the season summary used by the team analysis pages.
type TeamStats struct {
	Team            string  `json:"team"`
	LeaguePosition  int     `json:"league_position"`
	Points          int     `json:"points"`
	GoalsScored     int     `json:"goals_scored"`
	GoalsConceded   int     `json:"goals_conceded"`
	CleanSheets     int     `json:"clean_sheets"`
	PossessionPct   float64 `json:"possession_pct"`
	PassAccuracyPct float64 `json:"pass_accuracy_pct"`
	ShotsPerGame    float64 `json:"shots_per_game"`
	TacklesPerGame  float64 `json:"tackles_per_game"`
}

// Fixture is an upcoming match with its (static) prediction.
type Fixture struct {
	ID                 int       `json:"id"`
	Date               time.Time `json:"date"`
	HomeTeam           string    `json:"home_team"`
	AwayTeam           string    `json:"away_team"`
	HomeWinProb        int       `json:"home_win_prob"`
	DrawProb           int       `json:"draw_prob"`
	AwayWinProb        int       `json:"away_win_prob"`
	PredictedHomeScore int       `json:"predicted_home_score"`
	PredictedAwayScore int       `json:"predicted_away_score"`
}

// Season is one past season in a team's history.
type Season struct {
	Season   string `json:"season"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
	Goals    int    `json:"goals"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Losses   int    `json:"losses"`
}

// History is a team's recent seasons, most recent first.
type History struct {
	Team    string   `json:"team"`
	Seasons []Season `json:"seasons"`
	Trend   string   `json:"trend"`
}

const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
)
