package game

import "errors"

const (
	Width  = 9
	Height = 5

	InitialTokens = 22 // per side: two full rows plus four cells of the middle row
)

// Color is the occupancy of a cell. Green and Red double as the two players.
type Color int8

const (
	Empty Color = iota
	Green       // player 1 (A), moves first
	Red         // player 2 (B)
)

func (c Color) Opponent() Color {
	switch c {
	case Green:
		return Red
	case Red:
		return Green
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Green:
		return "G"
	case Red:
		return "R"
	default:
		return "X"
	}
}

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrOutOfBounds      = errors.New("coordinates out of bounds")
	ErrGameOver         = errors.New("game is over")
	ErrNoLegalMoves     = errors.New("no legal moves")
	ErrAmbiguousDiff    = errors.New("states do not differ by exactly one move")
	ErrWrongTurn        = errors.New("not this player's turn")
	ErrInvalidDepth     = errors.New("invalid search depth")
	ErrUnknownHeuristic = errors.New("unknown heuristic")
)

// Evaluate scores state from Green's point of view: positive favors Green,
// negative favors Red. prev is the state state was reached from and current
// is the player whose move produced it; only the informed heuristic reads them.
type Evaluate func(prev, state *Board, current Color) int
