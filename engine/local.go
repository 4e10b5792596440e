package engine

import (
	"errors"
	"fanorona/experiments/metrics"
	"fanorona/game"
	"fanorona/gamemaster"
	"fanorona/meta"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ReasonCapture      = "capture"
	ReasonStalemate    = "stalemate"
	ReasonNoLegalMoves = "no_legal_moves"
	ReasonTurnLimit    = "turn_limit"
	ReasonError        = "error"
)

var _ Engine = (*LocalEngine)(nil)

// LocalEngine drives a session in-process, asking each agent for a move in turn.
type LocalEngine struct {
	Session  *gamemaster.Session
	Agents   map[game.Color]Agent
	MaxTurns int
}

func NewLocalEngine(green, red Agent) *LocalEngine {
	return &LocalEngine{
		Session:  gamemaster.NewSession(),
		Agents:   map[game.Color]Agent{game.Green: green, game.Red: red},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run plays until the session is over or MaxTurns moves were made. A player
// left without moves loses.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Session.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.Session.Turn())

	winner := game.Empty
	reason := ReasonTurnLimit
	for step := 1; step <= e.MaxTurns; step++ {
		if e.Session.Status().IsOver {
			break
		}
		player := e.Session.Turn()

		result, searchMetric, err := e.Agents[player].Play(e.Session, player)
		if errors.Is(err, game.ErrNoLegalMoves) {
			winner = player.Opponent()
			reason = ReasonNoLegalMoves
			log.Info().Msgf("player %s has no legal moves", player)
			break
		}
		if err != nil {
			reason = ReasonError
			log.Error().Err(err).Msgf("player %s failed to move", player)
			break
		}

		log.Debug().Msgf("step %d: player %s played %s capturing %d", step, player, result.Move, len(result.Captured))
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         result.Move,
			Captured:     len(result.Captured),
			SearchMetric: searchMetric,
		})
	}

	status := e.Session.Status()
	switch {
	case status.NoLegalMoves:
		winner = status.Winner
		reason = ReasonNoLegalMoves
	case status.Winner != game.Empty:
		winner = status.Winner
		reason = ReasonCapture
	case status.IsStalemate:
		reason = ReasonStalemate
	}

	if winner != game.Empty {
		gameMetric.Winner = winner.String()
	}
	gameMetric.Reason = reason
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = status.Moves
	gameMetric.GreenTokens = status.GreenTokens
	gameMetric.RedTokens = status.RedTokens

	log.Info().Msgf("game over after %d moves: winner=%q reason=%s", status.Moves, gameMetric.Winner, reason)
	return winner, gameMetric, moveMetrics
}
