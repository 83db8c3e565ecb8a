package player

import (
	"sort"
	"strings"

	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

// AllTeams is the filter value meaning "no team filter".
const AllTeams = "All"

// RadarCategories are the axes of the player radar, in order.
var RadarCategories = []string{"Goals", "Assists", "Matches", "Goals_per_Match", "Assists_per_Match"}

// PlayerRow is a player with derived per-match columns.
type PlayerRow struct {
	stats.PlayerRecord
	GoalInvolvement int     `json:"goal_involvement"`
	GoalsPerMatch   float64 `json:"goals_per_match"`
	AssistsPerMatch float64 `json:"assists_per_match"`
}

// Summary holds the headline metrics over a set of players.
type Summary struct {
	TotalPlayers     int     `json:"total_players"`
	TotalGoals       int     `json:"total_goals"`
	TotalAssists     int     `json:"total_assists"`
	AvgGoalsPerMatch float64 `json:"avg_goals_per_match"`
}

// ListResult is the payload of the player statistics page.
type ListResult struct {
	Team    string      `json:"team"`
	Summary Summary     `json:"summary"`
	Players []PlayerRow `json:"players"`
}

// Radar is one player's metrics scaled 0-100 against the group maximum.
type Radar struct {
	Player     string    `json:"player"`
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
}

// FilterByTeam keeps players of the given team. Empty or "All" keeps everyone.
func FilterByTeam(players []stats.PlayerRecord, team string) []stats.PlayerRecord {
	if team == "" || strings.EqualFold(team, AllTeams) {
		return players
	}
	out := make([]stats.PlayerRecord, 0, len(players))
	for _, p := range players {
		if strings.EqualFold(p.Team, team) {
			out = append(out, p)
		}
	}
	return out
}

// Teams lists distinct team names in first-seen order.
func Teams(players []stats.PlayerRecord) []string {
	seen := make(map[string]bool, len(players))
	out := make([]string, 0, len(players))
	for _, p := range players {
		if !seen[p.Team] {
			seen[p.Team] = true
			out = append(out, p.Team)
		}
	}
	return out
}

// Summarize totals the players. The average is total goals over total
// matches, not a mean of per-player rates.
func Summarize(players []stats.PlayerRecord) Summary {
	s := Summary{TotalPlayers: len(players)}
	matches := 0
	for _, p := range players {
		s.TotalGoals += p.Goals
		s.TotalAssists += p.Assists
		matches += p.MatchesPlayed
	}
	if matches > 0 {
		s.AvgGoalsPerMatch = stats.Round(float64(s.TotalGoals)/float64(matches), 2)
	}
	return s
}

// BuildRows derives the per-match columns and orders by goals, most first.
func BuildRows(players []stats.PlayerRecord) ([]PlayerRow, error) {
	rows := make([]PlayerRow, 0, len(players))
	for _, p := range players {
		gpm, err := stats.GoalsPerMatch(p)
		if err != nil {
			return nil, err
		}
		apm, err := stats.AssistsPerMatch(p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, PlayerRow{
			PlayerRecord:    p,
			GoalInvolvement: stats.GoalInvolvement(p),
			GoalsPerMatch:   stats.Round(gpm, 2),
			AssistsPerMatch: stats.Round(apm, 2),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Goals > rows[j].Goals
	})
	return rows, nil
}

// BuildRadar scales the named player's metrics against the group. The
// player must be a member of group.
func BuildRadar(name string, group []stats.PlayerRecord) (Radar, bool, error) {
	n := len(group)
	goals := make([]float64, n)
	assists := make([]float64, n)
	matches := make([]float64, n)
	gpm := make([]float64, n)
	apm := make([]float64, n)

	target := -1
	for i, p := range group {
		g, err := stats.GoalsPerMatch(p)
		if err != nil {
			return Radar{}, false, err
		}
		a, err := stats.AssistsPerMatch(p)
		if err != nil {
			return Radar{}, false, err
		}
		goals[i], assists[i], matches[i] = float64(p.Goals), float64(p.Assists), float64(p.MatchesPlayed)
		gpm[i], apm[i] = g, a
		if target < 0 && strings.EqualFold(p.Name, name) {
			target = i
		}
	}
	if target < 0 {
		return Radar{}, false, nil
	}

	columns := [][]float64{goals, assists, matches, gpm, apm}
	values := make([]float64, len(columns))
	for i, col := range columns {
		values[i] = stats.Round(stats.Normalize(col[target], col), 1)
	}
	return Radar{
		Player:     group[target].Name,
		Categories: RadarCategories,
		Values:     values,
	}, true, nil
}
