// Package projection extrapolates a final league points total from the
// current pace.
package projection

import (
	"errors"
	"fmt"
	"math"
)

// SeasonLength is the number of league games in a standard season.
const SeasonLength = 38

const (
	// fallbackPointsPerGame is assumed before any game has been played.
	fallbackPointsPerGame = 2.0
	confidenceFactor      = 30
	minConfidence         = 60
	maxConfidence         = 95
)

var ErrInvalidInput = errors.New("invalid projection input")

// SeasonProjection is the outcome of a projection.
type SeasonProjection struct {
	CurrentPoints        int     `json:"current_points"`
	GamesPlayed          int     `json:"games_played"`
	GamesLeft            int     `json:"games_left"`
	ProjectedPoints      int     `json:"projected_points"`
	ConfidencePct        int     `json:"confidence_pct"`
	CurrentPointsPerGame float64 `json:"current_points_per_game"`
}

// Projector projects seasons of a fixed length.
type Projector struct {
	seasonLength int
}

// New returns a Projector for seasons of the given length. A non-positive
// length falls back to SeasonLength.
func New(seasonLength int) *Projector {
	if seasonLength <= 0 {
		seasonLength = SeasonLength
	}
	return &Projector{seasonLength: seasonLength}
}

func (p *Projector) SeasonLength() int {
	return p.seasonLength
}

// Project extrapolates points-per-game over the games left. Confidence is a
// bounded heuristic of the current pace, not a statistical interval.
func (p *Projector) Project(currentPoints, gamesPlayed int) (SeasonProjection, error) {
	if currentPoints < 0 {
		return SeasonProjection{}, fmt.Errorf("%w: current points %d is negative", ErrInvalidInput, currentPoints)
	}
	if gamesPlayed < 0 || gamesPlayed > p.seasonLength {
		return SeasonProjection{}, fmt.Errorf("%w: games played %d outside [0, %d]", ErrInvalidInput, gamesPlayed, p.seasonLength)
	}

	gamesLeft := p.seasonLength - gamesPlayed
	ppg := fallbackPointsPerGame
	if divisor := p.seasonLength - gamesLeft; divisor > 0 {
		ppg = float64(currentPoints) / float64(divisor)
	}

	return SeasonProjection{
		CurrentPoints:        currentPoints,
		GamesPlayed:          gamesPlayed,
		GamesLeft:            gamesLeft,
		ProjectedPoints:      currentPoints + int(math.Round(ppg*float64(gamesLeft))),
		ConfidencePct:        clamp(int(math.Round(ppg*confidenceFactor)), minConfidence, maxConfidence),
		CurrentPointsPerGame: math.Round(ppg*100) / 100,
	}, nil
}

// EstimateGamesPlayed guesses games played from a points total when the
// real figure is unknown: half the points, at least 10, at most a season.
func (p *Projector) EstimateGamesPlayed(points int) int {
	return clamp(points/2, 10, p.seasonLength)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
