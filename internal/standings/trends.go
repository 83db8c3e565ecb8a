package standings

import (
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/DhavalSuthar-24/kickstats/internal/sample"
)

const (
	defaultTrendTeams = 6
	maxTrendPosition  = 9
)

// TrendSeries is one team's league position week by week.
type TrendSeries struct {
	Team      string `json:"team"`
	Positions []int  `json:"positions"`
}

// Trends is an illustrative position-over-season chart. No weekly history is
// kept, so the series are generated and flagged as simulated.
type Trends struct {
	Weeks     []int         `json:"weeks"`
	Series    []TrendSeries `json:"series"`
	Simulated bool          `json:"simulated"`
}

// PositionTrends builds series for the leading teams of the table. The top
// three climb over the season and the rest drift down. Each team's series is
// seeded from its name, so repeated calls agree.
func PositionTrends(table []sample.Standing, teams, weeks int) Trends {
	if teams > len(table) {
		teams = len(table)
	}
	if weeks < 0 {
		weeks = 0
	}

	out := Trends{Weeks: make([]int, weeks), Series: make([]TrendSeries, 0, teams), Simulated: true}
	for i := range out.Weeks {
		out.Weeks[i] = i + 1
	}
	for i, s := range table[:teams] {
		rng := rand.New(rand.NewSource(trendSeed(s.Name)))
		positions := make([]int, weeks)
		for w := range positions {
			positions[w] = rng.Intn(maxTrendPosition) + 1
		}
		if i < 3 {
			sort.Sort(sort.Reverse(sort.IntSlice(positions)))
		} else {
			sort.Ints(positions)
		}
		out.Series = append(out.Series, TrendSeries{Team: s.Name, Positions: positions})
	}
	return out
}

func trendSeed(team string) int64 {
	h := fnv.New64a()
	h.Write([]byte(team))
	return int64(h.Sum64() >> 1)
}
