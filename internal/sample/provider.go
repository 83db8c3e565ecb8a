// Package sample supplies the literal demo data behind the dashboard.
// Nothing here is fetched; every call rebuilds values from constants.
package sample

import (
	"fmt"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/kickstats/internal/stats"
)

// Provider is the source of all dashboard data. Controllers receive one
// explicitly; tests substitute their own.
type Provider interface {
	Leagues() []string
	Standings() []Standing
	TeamStats() []TeamStats
	Players() []stats.PlayerRecord
	Fixtures() []Fixture
	History(team string, seasons int) History
}

// Static serves the built-in sample tables.
type Static struct {
	now func() time.Time
}

// New returns a Static provider. now dates the upcoming fixtures; nil
// means time.Now.
func New(now func() time.Time) *Static {
	if now == nil {
		now = time.Now
	}
	return &Static{now: now}
}

func (s *Static) Leagues() []string {
	return []string{"Premier League", "La Liga", "Serie A", "Bundesliga", "Ligue 1"}
}

func (s *Static) Standings() []Standing {
	rows := make([]Standing, len(standingRows))
	for i, r := range standingRows {
		rows[i] = Standing{
			Position: i + 1,
			TeamRecord: stats.TeamRecord{
				Name:         r.team,
				Played:       r.played,
				Won:          r.won,
				Drawn:        r.drawn,
				Lost:         r.lost,
				GoalsFor:     r.gf,
				GoalsAgainst: r.ga,
				Points:       r.points,
			},
		}
	}
	return rows
}

func (s *Static) TeamStats() []TeamStats {
	out := make([]TeamStats, len(teamStatsRows))
	copy(out, teamStatsRows)
	return out
}

func (s *Static) Players() []stats.PlayerRecord {
	out := make([]stats.PlayerRecord, len(playerRows))
	copy(out, playerRows)
	return out
}

// Fixtures are the next ten days of matches, one per day, starting tomorrow.
func (s *Static) Fixtures() []Fixture {
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	out := make([]Fixture, len(fixtureRows))
	for i, f := range fixtureRows {
		f.ID = i + 1
		f.Date = today.AddDate(0, 0, i+1)
		out[i] = f
	}
	return out
}

// History fabricates a gently declining record over the given number of
// seasons, most recent first.
func (s *Static) History(team string, seasons int) History {
	if seasons <= 0 {
		seasons = 5
	}
	out := make([]Season, seasons)
	for i := range out {
		out[i] = Season{
			Season:   fmt.Sprintf("%d/%02d", 2023-i, (24-i+100)%100),
			Position: 3 + i,
			Points:   75 - i*5,
			Goals:    68 - i*3,
			Wins:     22 - i,
			Draws:    8 + i,
			Losses:   8 + i,
		}
	}
	trend := TrendDeclining
	if out[0].Points > out[len(out)-1].Points {
		trend = TrendImproving
	}
	return History{Team: team, Seasons: out, Trend: trend}
}

// FindTeamStats looks a team up by exact, case-insensitive name.
func FindTeamStats(p Provider, name string) (TeamStats, bool) {
	for _, t := range p.TeamStats() {
		if strings.EqualFold(t.Team, name) {
			return t, true
		}
	}
	return TeamStats{}, false
}

// SearchTeamStats keeps teams whose name contains term, ignoring case.
// An empty term keeps everything.
func SearchTeamStats(p Provider, term string) []TeamStats {
	all := p.TeamStats()
	if term == "" {
		return all
	}
	term = strings.ToLower(term)
	out := make([]TeamStats, 0, len(all))
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Team), term) {
			out = append(out, t)
		}
	}
	return out
}
