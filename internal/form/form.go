// Package form turns a run of match results into form points and a
// momentum reading.
package form

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Result is the outcome of one match from a team's point of view.
type Result string

const (
	Win  Result = "W"
	Draw Result = "D"
	Loss Result = "L"
)

// ErrUnknownResult is returned when parsing a letter other than W, D or L.
var ErrUnknownResult = errors.New("unknown match result")

// Points awarded for a result; anything unrecognised scores nothing.
func (r Result) Points() int {
	switch r {
	case Win:
		return 3
	case Draw:
		return 1
	default:
		return 0
	}
}

// Sequence is ordered oldest first, most recent last.
type Sequence []Result

func (s Sequence) String() string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(string(r))
	}
	return b.String()
}

// Parse reads a compact form string such as "WWDLW". Spaces and commas are
// ignored and letters are case-insensitive.
func Parse(raw string) (Sequence, error) {
	seq := make(Sequence, 0, len(raw))
	for i, ch := range strings.ToUpper(raw) {
		switch Result(ch) {
		case Win, Draw, Loss:
			seq = append(seq, Result(ch))
		case " ", ",":
			continue
		default:
			return nil, fmt.Errorf("%w %q at position %d", ErrUnknownResult, ch, i)
		}
	}
	return seq, nil
}

// Direction of a momentum reading.
type Direction string

const (
	Positive Direction = "Positive"
	Negative Direction = "Negative"
)

// Momentum is the trend of a team's recent results.
type Momentum struct {
	Direction Direction `json:"direction"`
	Magnitude float64   `json:"magnitude"`
}

// Points sums the points earned across the sequence.
func Points(seq Sequence) int {
	total := 0
	for _, r := range seq {
		total += r.Points()
	}
	return total
}

// Max is the best possible points total for a sequence of this length.
func Max(seq Sequence) int {
	return len(seq) * Win.Points()
}

// Slope fits points against match index by least squares.
// Fewer than two results have no defined slope and return 0.
func Slope(seq Sequence) float64 {
	if len(seq) < 2 {
		return 0
	}
	xs := make([]float64, len(seq))
	ys := make([]float64, len(seq))
	for i, r := range seq {
		xs[i] = float64(i)
		ys[i] = float64(r.Points())
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}

// Analyze returns the momentum of the sequence. Only a strictly positive
// slope counts as Positive; a flat run reports Negative.
func Analyze(seq Sequence) Momentum {
	slope := Slope(seq)
	if slope > 0 {
		return Momentum{Direction: Positive, Magnitude: slope}
	}
	return Momentum{Direction: Negative, Magnitude: math.Abs(slope)}
}
