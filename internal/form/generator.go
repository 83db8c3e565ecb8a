package form

import (
	"hash/fnv"
	"math/rand"
)

// Weights are the relative chances of a win, draw and loss.
type Weights struct {
	Win, Draw, Loss float64
}

var (
	// DefaultWeights is used for the team analysis form guide.
	DefaultWeights = Weights{Win: 0.4, Draw: 0.3, Loss: 0.3}
	// HomeWeights and AwayWeights shape fixture previews.
	HomeWeights = Weights{Win: 0.6, Draw: 0.25, Loss: 0.15}
	AwayWeights = Weights{Win: 0.4, Draw: 0.3, Loss: 0.3}
)

// Generator produces illustrative form sequences for the demo data.
// The same team name always yields the same sequence.
type Generator struct {
	weights Weights
}

func NewGenerator(w Weights) *Generator {
	return &Generator{weights: w}
}

// For returns n results seeded from the team name.
func (g *Generator) For(team string, n int) Sequence {
	if n <= 0 {
		return Sequence{}
	}
	rng := rand.New(rand.NewSource(seedFor(team)))
	total := g.weights.Win + g.weights.Draw + g.weights.Loss

	seq := make(Sequence, n)
	for i := range seq {
		if total <= 0 {
			seq[i] = Draw
			continue
		}
		x := rng.Float64() * total
		switch {
		case x < g.weights.Win:
			seq[i] = Win
		case x < g.weights.Win+g.weights.Draw:
			seq[i] = Draw
		default:
			seq[i] = Loss
		}
	}
	return seq
}

func seedFor(team string) int64 {
	h := fnv.New32a()
	h.Write([]byte(team))
	return int64(h.Sum32() % 1000)
}
