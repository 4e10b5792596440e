package searcher

import (
	"fanorona/experiments/metrics"
	"fanorona/game"
	"fanorona/meta"
	"fanorona/utils"
	"fmt"
)

type Searcher struct {
	depth     int
	alphaBeta bool
	heuristic game.Heuristic
	trace     bool
	alternate bool
	metrics   metrics.Collector
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:     meta.DEFAULT_DEPTH,
		heuristic: game.Naive,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// FindMove searches from board for player and returns the chosen successor
// along with the move that produces it. Green maximizes, Red minimizes. Among
// root children sharing the root value, the first in frontier order wins.
func (s *Searcher) FindMove(board game.Board, player game.Color) (Result, error) {
	if s.depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", game.ErrInvalidDepth, s.depth)
	}
	if !s.heuristic.Valid() {
		return Result{}, fmt.Errorf("%w: %s", game.ErrUnknownHeuristic, s.heuristic)
	}
	frontier := Frontier(&board, player)
	if len(frontier) == 0 {
		return Result{}, fmt.Errorf("%w for %s", game.ErrNoLegalMoves, player)
	}

	level := s.depth + meta.DEPTH_BIAS
	maximizing := player == game.Green
	run := &search{
		evaluate:  s.heuristic.Fn(),
		alternate: s.alternate,
		metrics:   s.metrics,
	}
	var root *Trace
	if s.trace {
		root = &Trace{}
	}

	s.metrics.Start(s.alphaBeta, s.heuristic, s.depth)
	s.metrics.SetFrontier(len(frontier))

	var value int
	childValues := []int{}
	if s.alphaBeta {
		value = run.alphabeta(&board, &board, player, player, level, -Inf, Inf, maximizing, root, &childValues)
	} else {
		value = run.minimax(&board, &board, player, player, level, maximizing, root, &childValues)
	}

	index := utils.FindIndex(childValues, value)
	if index < 0 { // Root evaluated as a leaf
		index = 0
	}
	chosen := frontier[index]
	move, err := game.InferMove(&board, &chosen, player.Opponent())
	if err != nil {
		return Result{}, fmt.Errorf("recovering chosen move: %w", err)
	}

	return Result{
		Move:        move,
		State:       chosen,
		Captured:    game.CapturedBetween(&board, &chosen, player),
		Value:       value,
		Index:       index,
		ChildValues: childValues,
		Trace:       root,
		Metric:      s.metrics.Complete(),
	}, nil
}

// search carries the per-call settings through the recursion.
type search struct {
	evaluate  game.Evaluate
	alternate bool
	metrics   metrics.Collector
}

func (s *search) next(player game.Color) game.Color {
	if s.alternate {
		return player.Opponent()
	}
	return player
}

func (s *search) leaf(prev, state *game.Board, mover game.Color, trace *Trace) int {
	s.metrics.AddLeaf()
	value := s.evaluate(prev, state, mover)
	trace.set(value)
	return value
}

// minimax values state, which mover produced from prev and player now
// expands. level 1 is a leaf. record, when non-nil, receives every child
// value in frontier order.
func (s *search) minimax(prev, state *game.Board, player, mover game.Color, level int, maximizing bool, trace *Trace, record *[]int) int {
	if level <= 1 {
		return s.leaf(prev, state, mover, trace)
	}

	s.metrics.AddNode()
	best := worst(maximizing)
	frontier := Frontier(state, player)
	for i := range frontier {
		value := s.minimax(state, &frontier[i], s.next(player), player, level-1, !maximizing, trace.child(), nil)
		if record != nil {
			*record = append(*record, value)
		}
		if maximizing {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}

	trace.set(best)
	return best
}

// alphabeta is minimax that stops expanding siblings once beta <= alpha.
func (s *search) alphabeta(prev, state *game.Board, player, mover game.Color, level, alpha, beta int, maximizing bool, trace *Trace, record *[]int) int {
	if level <= 1 {
		return s.leaf(prev, state, mover, trace)
	}

	s.metrics.AddNode()
	best := worst(maximizing)
	frontier := Frontier(state, player)
	for i := range frontier {
		value := s.alphabeta(state, &frontier[i], s.next(player), player, level-1, alpha, beta, !maximizing, trace.child(), nil)
		if record != nil {
			*record = append(*record, value)
		}
		if maximizing {
			best = max(best, value)
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			beta = min(beta, best)
		}
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}

	trace.set(best)
	return best
}
