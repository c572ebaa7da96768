package achievements

import (
	"math"
	"slices"
)

// Division is a leaderboard tier.
type Division string

const (
	DivisionGold   Division = "Gold"
	DivisionSilver Division = "Silver"
	DivisionBronze Division = "Bronze"
)

// Division thresholds. A learner reaches a division by rank share or by
// points, whichever is more generous.
const (
	goldShare    = 0.1
	silverShare  = 0.3
	goldPoints   = 800
	silverPoints = 500
)

// Entry is one learner's point total.
type Entry struct {
	Name   string `json:"username" yaml:"name"`
	Points int    `json:"points" yaml:"points"`
}

// Standing is a ranked entry.
type Standing struct {
	Entry
	Rank     int      `json:"rank"`
	Division Division `json:"division"`
}

// Leaderboard ranks entries by points, highest first. Equal totals keep
// their input order. The input slice is not modified.
func Leaderboard(entries []Entry) []Standing {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return b.Points - a.Points
	})

	n := len(sorted)
	gold := int(math.Ceil(float64(n) * goldShare))
	silver := int(math.Ceil(float64(n) * silverShare))

	out := make([]Standing, n)
	for i, e := range sorted {
		out[i] = Standing{Entry: e, Rank: i + 1, Division: divisionFor(i, e.Points, gold, silver)}
	}
	return out
}

func divisionFor(idx, points, gold, silver int) Division {
	switch {
	case idx < gold || points >= goldPoints:
		return DivisionGold
	case idx < silver || points >= silverPoints:
		return DivisionSilver
	default:
		return DivisionBronze
	}
}
