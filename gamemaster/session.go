package gamemaster

import (
	"encoding/json"
	"fanorona/experiments/metrics"
	"fanorona/game"
	"fanorona/meta"
	"fanorona/searcher"
	"fmt"
	"io"
)

// Session is one match: a board, its counters, whose turn it is and whether
// the game has ended. It is not safe for concurrent use.
type Session struct {
	ID        string
	board     game.Board
	tally     game.Tally
	turn      game.Color
	over      bool
	stalemate bool
	stuck     bool // the player on turn had no legal move
	lastTrace *searcher.Trace
}

// MoveResult reports an applied move and the cells it emptied.
type MoveResult struct {
	Applied  bool
	Move     game.Move
	Captured []game.Coord
}

// Destinations splits the empty neighbors of a cell into reachable ones and
// ones blocked by the tile rule.
type Destinations struct {
	Valid           []game.Coord
	IllegalButEmpty []game.Coord
}

type AIRequest struct {
	Color     game.Color
	Depth     int
	AlphaBeta bool
	Heuristic game.Heuristic
	Trace     bool              // Keep the explored tree, see LastTrace
	Alternate bool              // Flip the mover at every ply
	Metrics   metrics.Collector // Optional
}

type AIMove struct {
	MoveResult
	Value  int
	Metric metrics.SearchMetric
}

type Status struct {
	Turn         game.Color
	GreenTokens  int
	RedTokens    int
	Moves        int
	Defensive    int
	Offensive    int
	IsOver       bool
	IsStalemate  bool
	NoLegalMoves bool       // Turn has no move and lost
	Winner       game.Color // Empty while running and on a stalemate
}

func NewSession() *Session {
	s := &Session{}
	s.Restart()
	return s
}

// NewSessionFromBoard starts a session on an arbitrary position with turn to
// move. Token counters are taken from the board.
func NewSessionFromBoard(board game.Board, turn game.Color) *Session {
	s := &Session{
		board: board,
		tally: game.Tally{GreenTokens: board.Tokens(game.Green), RedTokens: board.Tokens(game.Red)},
		turn:  turn,
	}
	return s
}

// Restart returns the session to the starting layout with Green to move.
func (s *Session) Restart() {
	s.board = game.NewBoard()
	s.tally = game.NewTally()
	s.turn = game.Green
	s.over = false
	s.stalemate = false
	s.stuck = false
	s.lastTrace = nil
}

// Board returns a copy of the current board.
func (s *Session) Board() game.Board {
	return s.board
}

func (s *Session) Turn() game.Color {
	return s.turn
}

func (s *Session) Tally() game.Tally {
	return s.tally
}

// CheckStalemate ends the game once STALEMATE_LIMIT consecutive moves have
// captured nothing.
func (s *Session) CheckStalemate() bool {
	if s.tally.Defensive >= meta.STALEMATE_LIMIT {
		s.stalemate = true
		s.over = true
	}
	return s.stalemate
}

// CheckGameOver ends the game once either side has no tokens left.
func (s *Session) CheckGameOver() bool {
	if s.tally.GreenTokens <= 0 || s.tally.RedTokens <= 0 {
		s.over = true
	}
	return s.over
}

// terminal runs every end check: stalemate, token exhaustion, then the player
// on turn being left without a move.
func (s *Session) terminal() bool {
	stalemate := s.CheckStalemate()
	over := s.CheckGameOver()
	if !stalemate && !over && len(s.LegalMoves()) == 0 {
		s.stuck = true
		s.over = true
	}
	return s.over
}

// ended returns the error a move request gets once the game is over.
func (s *Session) ended() error {
	if s.stuck {
		return fmt.Errorf("%w for %s", game.ErrNoLegalMoves, s.turn)
	}
	return game.ErrGameOver
}

func (s *Session) Status() Status {
	s.terminal()

	winner := game.Empty
	switch {
	case s.tally.GreenTokens <= 0 && s.tally.RedTokens > 0:
		winner = game.Red
	case s.tally.RedTokens <= 0 && s.tally.GreenTokens > 0:
		winner = game.Green
	case s.stuck:
		winner = s.turn.Opponent()
	}

	return Status{
		Turn:         s.turn,
		GreenTokens:  s.tally.GreenTokens,
		RedTokens:    s.tally.RedTokens,
		Moves:        s.tally.Moves,
		Defensive:    s.tally.Defensive,
		Offensive:    s.tally.Offensive,
		IsOver:       s.over,
		IsStalemate:  s.stalemate,
		NoLegalMoves: s.stuck,
		Winner:       winner,
	}
}

// LegalDestinations lists where the token on c could go.
func (s *Session) LegalDestinations(c game.Coord) (Destinations, error) {
	if !c.InBounds() {
		return Destinations{}, fmt.Errorf("%w: %s", game.ErrOutOfBounds, c)
	}
	return Destinations{
		Valid:           s.board.EmptyAdjacentValidTiles(c),
		IllegalButEmpty: s.board.EmptyAdjacentInvalidTiles(c),
	}, nil
}

// LegalMoves lists the moves available to the player on turn.
func (s *Session) LegalMoves() []game.Move {
	return s.board.LegalMoves(s.turn)
}

// AttemptMove plays a move for the player on turn.
func (s *Session) AttemptMove(from, to game.Coord) (MoveResult, error) {
	if s.terminal() {
		return MoveResult{}, s.ended()
	}
	if !from.InBounds() || !to.InBounds() {
		return MoveResult{}, fmt.Errorf("%w: %s->%s", game.ErrOutOfBounds, from, to)
	}
	switch owner := s.board.At(from); owner {
	case s.turn:
	case game.Empty:
		return MoveResult{}, fmt.Errorf("%w: no token on %s", game.ErrIllegalMove, from)
	default:
		return MoveResult{}, fmt.Errorf("%w: %s holds %s, %s to move", game.ErrWrongTurn, from, owner, s.turn)
	}
	if !s.board.IsLegalMove(from, to) {
		return MoveResult{}, fmt.Errorf("%w: %s->%s", game.ErrIllegalMove, from, to)
	}

	move := game.Move{From: from, To: to}
	return MoveResult{Applied: true, Move: move, Captured: s.apply(move)}, nil
}

func (s *Session) apply(move game.Move) []game.Coord {
	captured := s.board.ApplyMove(move.From, move.To, &s.tally)
	s.turn = s.turn.Opponent()
	return captured
}

// RequestAIMove searches for req.Color and plays the chosen move. A player
// without moves loses: the session is marked over and ErrNoLegalMoves
// returned.
func (s *Session) RequestAIMove(req AIRequest) (AIMove, error) {
	if s.terminal() {
		return AIMove{}, s.ended()
	}
	if req.Color != s.turn {
		return AIMove{}, fmt.Errorf("%w: %s requested, %s to move", game.ErrWrongTurn, req.Color, s.turn)
	}

	options := []searcher.Option{
		searcher.WithDepth(req.Depth),
		searcher.WithHeuristic(req.Heuristic),
		searcher.WithMetrics(req.Metrics),
	}
	if req.AlphaBeta {
		options = append(options, searcher.WithAlphaBeta())
	}
	if req.Trace {
		options = append(options, searcher.WithTrace())
	}
	if req.Alternate {
		options = append(options, searcher.WithAlternatingTurns())
	}

	result, err := searcher.New(options...).FindMove(s.board, req.Color)
	if err != nil {
		return AIMove{}, err
	}
	s.lastTrace = result.Trace

	captured := s.apply(result.Move)
	return AIMove{
		MoveResult: MoveResult{Applied: true, Move: result.Move, Captured: captured},
		Value:      result.Value,
		Metric:     result.Metric,
	}, nil
}

// LastTrace is the tree explored by the last traced AI move, or nil.
func (s *Session) LastTrace() *searcher.Trace {
	return s.lastTrace
}

// ExportTrace writes the last trace as JSON.
func (s *Session) ExportTrace(w io.Writer) error {
	if s.lastTrace == nil {
		return fmt.Errorf("no search trace recorded")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s.lastTrace)
}
