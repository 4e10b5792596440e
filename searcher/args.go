package searcher

import (
	"fanorona/experiments/metrics"
	"fanorona/game"
)

type Option func(s *Searcher)

// WithDepth sets the ply depth as a player would choose it. The search runs
// meta.DEPTH_BIAS levels deeper.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.depth = depth
	}
}

func WithAlphaBeta() Option {
	return func(s *Searcher) {
		s.alphaBeta = true
	}
}

func WithMinimax() Option {
	return func(s *Searcher) {
		s.alphaBeta = false
	}
}

func WithHeuristic(h game.Heuristic) Option {
	return func(s *Searcher) {
		s.heuristic = h
	}
}

// WithTrace keeps the explored tree of the last search in Result.Trace.
func WithTrace() Option {
	return func(s *Searcher) {
		s.trace = true
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// WithAlternatingTurns hands the move to the opponent at every ply. Without
// it the searching color expands every level of the tree.
func WithAlternatingTurns() Option {
	return func(s *Searcher) {
		s.alternate = true
	}
}
