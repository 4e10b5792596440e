package searcher

import "fanorona/game"

// Frontier returns every board player can reach with one move, in the order
// of Board.LegalMoves. Transpositions are not merged.
func Frontier(state *game.Board, player game.Color) []game.Board {
	moves := state.LegalMoves(player)
	frontier := make([]game.Board, 0, len(moves))
	for _, move := range moves {
		child := *state
		child.ApplyMove(move.From, move.To, nil)
		frontier = append(frontier, child)
	}
	return frontier
}

// Trace is the explored search tree with the value backed up at each node.
// Pruned siblings are absent.
type Trace struct {
	Value    int      `json:"value"`
	Children []*Trace `json:"children,omitempty"`
}

// child appends and returns a new child, or nil when t is nil.
func (t *Trace) child() *Trace {
	if t == nil {
		return nil
	}
	c := &Trace{}
	t.Children = append(t.Children, c)
	return c
}

func (t *Trace) set(value int) {
	if t != nil {
		t.Value = value
	}
}

// Size counts the nodes in the trace.
func (t *Trace) Size() int {
	if t == nil {
		return 0
	}
	size := 1
	for _, c := range t.Children {
		size += c.Size()
	}
	return size
}

// Depth is the number of levels below t.
func (t *Trace) Depth() int {
	if t == nil {
		return 0
	}
	deepest := 0
	for _, c := range t.Children {
		deepest = max(deepest, 1+c.Depth())
	}
	return deepest
}
