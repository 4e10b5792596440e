package game

import "fmt"

// InferMove recovers the move that turned before into after. Cells whose
// before or after value is the excluded color are skipped, so tokens captured
// from that side do not register as movement. Exactly one token of the other
// color must have changed position; anything else is ErrAmbiguousDiff.
func InferMove(before, after *Board, excluded Color) (Move, error) {
	var origins, destinations []Coord
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			was, is := before[x][y], after[x][y]
			if was == is || was == excluded || is == excluded {
				continue
			}
			if was == Empty {
				destinations = append(destinations, Coord{x, y})
			}
			if is == Empty {
				origins = append(origins, Coord{x, y})
			}
		}
	}
	if len(origins) != 1 || len(destinations) != 1 {
		return Move{}, fmt.Errorf("%w: %d origins, %d destinations", ErrAmbiguousDiff, len(origins), len(destinations))
	}
	return Move{From: origins[0], To: destinations[0]}, nil
}

// CapturedBetween lists the cells that held mover's opponent in before and are
// empty in after, in column-major order.
func CapturedBetween(before, after *Board, mover Color) []Coord {
	opponent := mover.Opponent()
	var removed []Coord
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if before[x][y] == opponent && after[x][y] == Empty {
				removed = append(removed, Coord{x, y})
			}
		}
	}
	return removed
}
