package game

import (
	"fmt"
	"strings"
)

// Heuristic selects one of the static evaluation functions.
type Heuristic int

const (
	Naive Heuristic = iota
	Counting
	Informed
)

var heuristicNames = map[Heuristic]string{
	Naive:    "naive",
	Counting: "counting",
	Informed: "informed",
}

func (h Heuristic) String() string {
	if name, ok := heuristicNames[h]; ok {
		return name
	}
	return fmt.Sprintf("heuristic(%d)", int(h))
}

func ParseHeuristic(s string) (Heuristic, error) {
	for h, name := range heuristicNames {
		if strings.EqualFold(s, name) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownHeuristic, s)
}

func (h Heuristic) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Heuristic) UnmarshalText(text []byte) error {
	parsed, err := ParseHeuristic(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (h Heuristic) Valid() bool {
	_, ok := heuristicNames[h]
	return ok
}

// Fn returns the evaluation function for h. h must be Valid.
func (h Heuristic) Fn() Evaluate {
	switch h {
	case Naive:
		return func(_, state *Board, _ Color) int { return EvaluateNaive(state) }
	case Counting:
		return func(_, state *Board, _ Color) int { return EvaluateCounting(state) }
	case Informed:
		return EvaluateInformed
	default:
		panic(fmt.Sprintf("unexpected heuristic %d", int(h)))
	}
}

// EvaluateNaive rewards advancement: every token adds its 1-based row to its
// side's vertical sum and its 1-based column to the horizontal sum, and the
// score is 100*vertical + 50*horizontal, Green minus Red.
func EvaluateNaive(state *Board) int {
	var hGreen, hRed, vGreen, vRed int
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			switch state[x][y] {
			case Green:
				hGreen += x + 1
				vGreen += y + 1
			case Red:
				hRed += x + 1
				vRed += y + 1
			}
		}
	}
	return 100*vGreen + 50*hGreen - 100*vRed - 50*hRed
}

// EvaluateCounting is the material difference.
func EvaluateCounting(state *Board) int {
	return state.Tokens(Green) - state.Tokens(Red)
}

const (
	diagonalTileWeight   = 100
	orthogonalTileWeight = 50
	defensiveWeight      = 5
	offensiveWeight      = 10
)

// EvaluateInformed weights material by tile (tokens on diagonal-capable tiles
// count double), then looks at the cell current's last move landed on and
// adjusts by the longest runs of each color leading away from it: current's
// own run is exposure, the opponent's run is capture potential.
func EvaluateInformed(prev, state *Board, current Color) int {
	var green, red int
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			weight := orthogonalTileWeight
			if TileColor(x, y).AllowsDiagonal() {
				weight = diagonalTileWeight
			}
			switch state[x][y] {
			case Green:
				green += weight
			case Red:
				red += weight
			}
		}
	}
	value := green - red

	opponent := current.Opponent()
	move, err := InferMove(prev, state, opponent)
	if err != nil {
		// Root evaluation: there is no last move to inspect.
		return value
	}

	defensive := state.TokenStreak(move.To, current)
	offensive := state.TokenStreak(move.To, opponent)
	if current == Green {
		value -= defensiveWeight * defensive
		value += offensiveWeight * offensive
	} else {
		value += defensiveWeight * defensive
		value -= offensiveWeight * offensive
	}
	return value
}
