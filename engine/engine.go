package engine

import (
	"fanorona/experiments/metrics"
	"fanorona/game"
	"fanorona/gamemaster"

	"golang.org/x/exp/rand"
)

type Engine interface {
	// Run plays a game till it is over or the turn limit is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Agent plays one move for color on a session.
type Agent interface {
	Play(s *gamemaster.Session, color game.Color) (gamemaster.MoveResult, metrics.SearchMetric, error)
}

// SearchAgent picks its moves with a minimax or alpha-beta search.
type SearchAgent struct {
	Depth     int
	AlphaBeta bool
	Heuristic game.Heuristic
}

func (a *SearchAgent) Play(s *gamemaster.Session, color game.Color) (gamemaster.MoveResult, metrics.SearchMetric, error) {
	move, err := s.RequestAIMove(gamemaster.AIRequest{
		Color:     color,
		Depth:     a.Depth,
		AlphaBeta: a.AlphaBeta,
		Heuristic: a.Heuristic,
		Metrics:   metrics.NewCollector(),
	})
	if err != nil {
		return gamemaster.MoveResult{}, metrics.SearchMetric{}, err
	}
	return move.MoveResult, move.Metric, nil
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Play(s *gamemaster.Session, color game.Color) (gamemaster.MoveResult, metrics.SearchMetric, error) {
	if s.Turn() != color {
		return gamemaster.MoveResult{}, metrics.SearchMetric{}, game.ErrWrongTurn
	}
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return gamemaster.MoveResult{}, metrics.SearchMetric{}, game.ErrNoLegalMoves
	}
	move := moves[a.rng.Intn(len(moves))]
	result, err := s.AttemptMove(move.From, move.To)
	return result, metrics.SearchMetric{Frontier: len(moves)}, err
}

// NewAgent builds the agent an experiment config describes. seed only
// matters for random agents.
func NewAgent(config metrics.AgentConfig, seed uint64) Agent {
	if config.Random {
		return NewRandomAgent(seed)
	}
	return &SearchAgent{
		Depth:     config.Depth,
		AlphaBeta: config.AlphaBeta,
		Heuristic: config.Heuristic,
	}
}
