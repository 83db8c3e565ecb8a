// Package stats derives per-row and per-collection metrics from team and
// player records. Every function is pure; inputs are never modified.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrDivisionUndefined is returned when a rate is requested for a record
// whose denominator (games or matches played) is zero.
var ErrDivisionUndefined = errors.New("division undefined: denominator is zero")

// ErrInconsistentRecord is returned by Check when a team's totals disagree.
var ErrInconsistentRecord = errors.New("inconsistent team record")

// TeamRecord is one club's season line.
type TeamRecord struct {
	Name            string  `json:"name"`
	Played          int     `json:"played"`
	Won             int     `json:"won"`
	Drawn           int     `json:"drawn"`
	Lost            int     `json:"lost"`
	GoalsFor        int     `json:"goals_for"`
	GoalsAgainst    int     `json:"goals_against"`
	Points          int     `json:"points"`
	PossessionPct   float64 `json:"possession_pct"`
	PassAccuracyPct float64 `json:"pass_accuracy_pct"`
}

// PlayerRecord is one player's season line.
type PlayerRecord struct {
	Name          string `json:"name"`
	Team          string `json:"team"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	MatchesPlayed int    `json:"matches_played"`
}

// GoalDifference returns goals scored minus goals conceded.
func GoalDifference(t TeamRecord) int {
	return t.GoalsFor - t.GoalsAgainst
}

// WinRate returns the percentage of games won, rounded to one decimal.
func WinRate(t TeamRecord) (float64, error) {
	if t.Played == 0 {
		return 0, fmt.Errorf("win rate for %q: %w", t.Name, ErrDivisionUndefined)
	}
	return Round(float64(t.Won)/float64(t.Played)*100, 1), nil
}

// PointsPerGame returns points divided by games played, rounded to two decimals.
func PointsPerGame(t TeamRecord) (float64, error) {
	if t.Played == 0 {
		return 0, fmt.Errorf("points per game for %q: %w", t.Name, ErrDivisionUndefined)
	}
	return Round(float64(t.Points)/float64(t.Played), 2), nil
}

// GoalsPerMatch is unrounded; callers round for display.
func GoalsPerMatch(p PlayerRecord) (float64, error) {
	if p.MatchesPlayed == 0 {
		return 0, fmt.Errorf("goals per match for %q: %w", p.Name, ErrDivisionUndefined)
	}
	return float64(p.Goals) / float64(p.MatchesPlayed), nil
}

func AssistsPerMatch(p PlayerRecord) (float64, error) {
	if p.MatchesPlayed == 0 {
		return 0, fmt.Errorf("assists per match for %q: %w", p.Name, ErrDivisionUndefined)
	}
	return float64(p.Assists) / float64(p.MatchesPlayed), nil
}

func GoalInvolvement(p PlayerRecord) int {
	return p.Goals + p.Assists
}

// Check reports whether played = won+drawn+lost and points = 3*won+drawn.
// The sample tables do not always satisfy this; callers decide what to do.
func Check(t TeamRecord) error {
	if sum := t.Won + t.Drawn + t.Lost; sum != t.Played {
		return fmt.Errorf("%w: %q played %d but W+D+L is %d", ErrInconsistentRecord, t.Name, t.Played, sum)
	}
	if pts := 3*t.Won + t.Drawn; pts != t.Points {
		return fmt.Errorf("%w: %q has %d points but 3W+D is %d", ErrInconsistentRecord, t.Name, t.Points, pts)
	}
	return nil
}

// Normalize scales value to a 0-100 range against the largest value in
// collection. An empty collection or a maximum of zero yields 0.
func Normalize(value float64, collection []float64) float64 {
	top := Max(collection)
	if top == 0 {
		return 0
	}
	return value / top * 100
}

// Max returns the largest element, or 0 for an empty slice.
func Max(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return floats.Max(vals)
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
