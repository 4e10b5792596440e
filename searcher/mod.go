package searcher

import (
	"fanorona/experiments/metrics"
	"fanorona/game"
)

// Inf bounds every heuristic score. A node whose player has no moves scores
// -Inf when maximizing and +Inf when minimizing.
const Inf = 999_999

// Result is the outcome of one root search.
type Result struct {
	Move        game.Move
	State       game.Board // Chosen successor, captures applied
	Captured    []game.Coord
	Value       int   // Root value, Green-positive
	Index       int   // Position of State in the root frontier
	ChildValues []int // Values recorded for the root's children, in frontier order
	Trace       *Trace
	Metric      metrics.SearchMetric
}

func worst(maximizing bool) int {
	if maximizing {
		return -Inf
	}
	return Inf
}
